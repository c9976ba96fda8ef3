package ansii

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"pong/internal/pong"
	"pong/internal/raster"
	"pong/internal/renderer"
)

type ANSI string

const (
	reset       ANSI = "\033[0m"
	home        ANSI = "\033[H"
	clearScreen ANSI = "\033[2J"
	hideCursor  ANSI = "\033[?25l"
	showCursor  ANSI = "\033[?25h"
)

type screen struct {
	Reset       ANSI
	Home        ANSI
	ClearScreen ANSI
	HideCursor  ANSI
	ShowCursor  ANSI
}

var Screen = screen{Reset: reset, Home: home, ClearScreen: clearScreen, HideCursor: hideCursor, ShowCursor: showCursor}

func Foreground(c color.RGBA) ANSI {
	return ANSI(fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B))
}

func Background(c color.RGBA) ANSI {
	return ANSI(fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B))
}

const block = '█'

type cell struct {
	r  rune
	fg color.RGBA
}

// Terminal draws frames as full-screen ANSI output and reads keys from a
// raw-mode input stream.
type Terminal struct {
	out   io.Writer
	view  renderer.Viewport
	cells []cell
	bg    color.RGBA
	keys  chan pong.Action
	start time.Time

	fd   int
	prev *term.State
}

func GetTermSize() (width int, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Open puts the controlling terminal in raw mode and sizes the frame to
// it. Close must be called to give the terminal back.
func Open(field pong.Field) (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}

	width, height, err := GetTermSize()
	if err != nil {
		return nil, fmt.Errorf("error getting terminal size: %w", err)
	}

	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to make terminal raw: %w", err)
	}

	t := NewTerminal(os.Stdout, os.Stdin, field, width, height)
	t.fd = fd
	t.prev = prev

	io.WriteString(t.out, string(Screen.HideCursor+Screen.ClearScreen))
	return t, nil
}

// NewTerminal builds a terminal surface over arbitrary streams without
// touching terminal modes.
func NewTerminal(out io.Writer, in io.Reader, field pong.Field, cols, rows int) *Terminal {
	t := &Terminal{
		out:   out,
		view:  renderer.Viewport{Field: field, Cols: cols, Rows: rows},
		cells: make([]cell, cols*rows),
		keys:  make(chan pong.Action, 64),
		start: time.Now(),
	}
	go t.readInput(in)
	return t
}

func (t *Terminal) Close() error {
	io.WriteString(t.out, string(Screen.Reset+Screen.ShowCursor+Screen.ClearScreen+Screen.Home))
	if t.prev == nil {
		return nil
	}
	return term.Restore(t.fd, t.prev)
}

func (t *Terminal) readInput(in io.Reader) {
	r := bufio.NewReader(in)
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		if err != nil {
			slog.Debug("terminal input closed", slog.Any("error", err))
			t.keys <- pong.Quit
			return
		}
		for _, a := range DecodeKeys(buf[:n]) {
			t.keys <- a
		}
	}
}

func (t *Terminal) PollEvent() (pong.Action, bool) {
	select {
	case a := <-t.keys:
		return a, true
	default:
		return pong.NoAction, false
	}
}

func (t *Terminal) Now() int64 {
	return time.Since(t.start).Milliseconds()
}

func (t *Terminal) set(col, row int, r rune, fg color.RGBA) {
	if !t.view.Contains(col, row) {
		return
	}
	t.cells[row*t.view.Cols+col] = cell{r: r, fg: fg}
}

func (t *Terminal) Clear(c color.RGBA) error {
	t.bg = c
	for i := range t.cells {
		t.cells[i] = cell{r: ' ', fg: c}
	}
	return nil
}

func (t *Terminal) FillRect(r pong.Rect, c color.RGBA) error {
	c0, r0, c1, r1 := t.view.CellRect(r)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			t.set(col, row, block, c)
		}
	}
	return nil
}

func (t *Terminal) DrawPoints(points []raster.Point, c color.RGBA) error {
	for _, p := range points {
		col, row := t.view.Cell(p.X, p.Y)
		t.set(col, row, block, c)
	}
	return nil
}

// DrawText writes text left to right starting at the cell holding (x, y).
// Text running off the right edge is clipped.
func (t *Terminal) DrawText(text string, x, y int, c color.RGBA) error {
	col, row := t.view.Cell(x, y)
	for i, r := range []rune(text) {
		t.set(col+i, row, r, c)
	}
	return nil
}

func (t *Terminal) Present() error {
	var builder strings.Builder
	builder.WriteString(string(Screen.Home))
	builder.WriteString(string(Background(t.bg)))

	var current color.RGBA
	for row := 0; row < t.view.Rows; row++ {
		if row > 0 {
			builder.WriteString("\r\n")
		}
		for col := 0; col < t.view.Cols; col++ {
			c := t.cells[row*t.view.Cols+col]
			if c.r == 0 {
				c.r = ' '
			}
			if c.fg != current {
				builder.WriteString(string(Foreground(c.fg)))
				current = c.fg
			}
			builder.WriteRune(c.r)
		}
	}
	builder.WriteString(string(Screen.Reset))

	_, err := io.WriteString(t.out, builder.String())
	return err
}
