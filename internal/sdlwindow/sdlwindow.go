// Package sdlwindow is the window display backend. One field unit maps to
// one pixel.
package sdlwindow

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"pong/internal/pong"
	"pong/internal/raster"
)

type Options struct {
	Title    string
	FontPath string
	FontSize int
}

type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font
	points   []sdl.Point
}

// Open creates the window, renderer and font. Any failure tears down
// whatever was already created.
func Open(field pong.Field, opts Options) (_ *Window, err error) {
	slog.Debug("initializing SDL")
	if err := sdl.Init(uint32(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_TIMER)); err != nil {
		return nil, fmt.Errorf("error initializing SDL: %w", err)
	}
	w := &Window{}
	defer func() {
		if err != nil {
			w.Close()
		}
	}()

	w.window, err = sdl.CreateWindow(opts.Title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(field.Width), int32(field.Height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	slog.Debug("creating renderer")
	w.renderer, err = sdl.CreateRenderer(w.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, fmt.Errorf("error initializing SDL renderer: %w", err)
	}

	if err = ttf.Init(); err != nil {
		return nil, fmt.Errorf("error initializing SDL_ttf: %w", err)
	}
	w.font, err = ttf.OpenFont(opts.FontPath, opts.FontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load font %q: %w", opts.FontPath, err)
	}

	return w, nil
}

func (w *Window) Close() {
	if w.font != nil {
		w.font.Close()
	}
	if ttf.WasInit() {
		ttf.Quit()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}

func (w *Window) PollEvent() (pong.Action, bool) {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return pong.NoAction, false
		}
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return pong.Quit, true
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				continue
			}
			if a := keyAction(ev.Keysym.Sym); a != pong.NoAction {
				return a, true
			}
		}
	}
}

func keyAction(key sdl.Keycode) pong.Action {
	switch key {
	case sdl.K_ESCAPE:
		return pong.Quit
	case sdl.K_UP:
		return pong.LeftUp
	case sdl.K_DOWN:
		return pong.LeftDown
	case sdl.K_w:
		return pong.RightUp
	case sdl.K_s:
		return pong.RightDown
	}
	return pong.NoAction
}

func (w *Window) Now() int64 {
	return int64(sdl.GetTicks64())
}

func (w *Window) Clear(c color.RGBA) error {
	if err := w.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return w.renderer.Clear()
}

func (w *Window) FillRect(r pong.Rect, c color.RGBA) error {
	if err := w.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return w.renderer.FillRect(&sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.Width), H: int32(r.Height)})
}

func (w *Window) DrawPoints(points []raster.Point, c color.RGBA) error {
	if err := w.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	w.points = w.points[:0]
	for _, p := range points {
		w.points = append(w.points, sdl.Point{X: int32(p.X), Y: int32(p.Y)})
	}
	return w.renderer.DrawPoints(w.points)
}

func (w *Window) DrawText(text string, x, y int, c color.RGBA) error {
	surface, err := w.font.RenderUTF8Blended(text, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		return err
	}
	defer surface.Free()

	texture, err := w.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	dst := sdl.Rect{X: int32(x), Y: int32(y), W: surface.W, H: surface.H}
	return w.renderer.Copy(texture, nil, &dst)
}

func (w *Window) Present() error {
	w.renderer.Present()
	return nil
}
