// Package tcellscreen is a terminal display backend built on tcell.
package tcellscreen

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"pong/internal/pong"
	"pong/internal/raster"
	"pong/internal/renderer"
)

const block = '█'

type Screen struct {
	screen tcell.Screen
	field  pong.Field
	view   renderer.Viewport
	bg     tcell.Color
	events chan pong.Action
	start  time.Time
}

// Open initializes the terminal. Close restores it.
func Open(field pong.Field) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	return New(screen, field), nil
}

// New wraps an already initialized tcell screen and starts its event pump.
func New(screen tcell.Screen, field pong.Field) *Screen {
	screen.HideCursor()
	cols, rows := screen.Size()
	s := &Screen{
		screen: screen,
		field:  field,
		view:   renderer.Viewport{Field: field, Cols: cols, Rows: rows},
		events: make(chan pong.Action, 100),
		start:  time.Now(),
	}
	go s.pump()
	return s
}

func (s *Screen) Close() {
	s.screen.Fini()
}

func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if a := keyAction(ev); a != pong.NoAction {
				s.events <- a
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

func keyAction(ev *tcell.EventKey) pong.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return pong.Quit
	case tcell.KeyUp:
		return pong.LeftUp
	case tcell.KeyDown:
		return pong.LeftDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return pong.RightUp
		case 's', 'S':
			return pong.RightDown
		}
	}
	return pong.NoAction
}

func (s *Screen) PollEvent() (pong.Action, bool) {
	select {
	case a := <-s.events:
		return a, true
	default:
		return pong.NoAction, false
	}
}

func (s *Screen) Now() int64 {
	return time.Since(s.start).Milliseconds()
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *Screen) style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(toColor(c)).Background(s.bg)
}

func (s *Screen) Clear(c color.RGBA) error {
	// Follow terminal resizes between frames.
	cols, rows := s.screen.Size()
	s.view = renderer.Viewport{Field: s.field, Cols: cols, Rows: rows}
	s.bg = toColor(c)
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.bg))
	return nil
}

func (s *Screen) FillRect(r pong.Rect, c color.RGBA) error {
	st := s.style(c)
	c0, r0, c1, r1 := s.view.CellRect(r)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.screen.SetContent(col, row, block, nil, st)
		}
	}
	return nil
}

func (s *Screen) DrawPoints(points []raster.Point, c color.RGBA) error {
	st := s.style(c)
	for _, p := range points {
		col, row := s.view.Cell(p.X, p.Y)
		if s.view.Contains(col, row) {
			s.screen.SetContent(col, row, block, nil, st)
		}
	}
	return nil
}

func (s *Screen) DrawText(text string, x, y int, c color.RGBA) error {
	st := s.style(c)
	col, row := s.view.Cell(x, y)
	for i, r := range []rune(text) {
		if s.view.Contains(col+i, row) {
			s.screen.SetContent(col+i, row, r, nil, st)
		}
	}
	return nil
}

func (s *Screen) Present() error {
	s.screen.Show()
	return nil
}
