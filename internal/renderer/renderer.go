package renderer

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"time"

	"pong/internal/pong"
	"pong/internal/raster"
)

const (
	TargetFps = 60
	// TickIntervalMs is the minimum wall-clock gap between two ticks.
	TickIntervalMs int64 = 1000 / TargetFps
	FrameBudget          = time.Second / TargetFps
)

var ErrDraw = errors.New("draw failed")

var (
	Background = color.RGBA{R: 18, G: 18, B: 18, A: 255}
	Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Divider    = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// Surface is the drawing target of a display backend. Coordinates are in
// field units; backends scale them to whatever they render onto.
type Surface interface {
	Clear(c color.RGBA) error
	FillRect(r pong.Rect, c color.RGBA) error
	DrawPoints(points []raster.Point, c color.RGBA) error
	DrawText(text string, x, y int, c color.RGBA) error
	Present() error
}

type FrameStats struct {
	Frame     uint64
	FrameTime time.Duration
}

func (s FrameStats) SpareTime() time.Duration {
	return FrameBudget - s.FrameTime
}

type pointSink struct {
	surface Surface
	color   color.RGBA
}

func (p pointSink) DrawPoints(points []raster.Point) error {
	return p.surface.DrawPoints(points, p.color)
}

// Render draws one full frame of state and presents it. Stats are drawn
// only when non-nil. Any failing call aborts the frame.
func Render(s Surface, state pong.GameState, stats *FrameStats) error {
	if err := s.Clear(Background); err != nil {
		return drawErr("clear", err)
	}

	if err := drawDivider(s, state.Field); err != nil {
		return drawErr("divider", err)
	}

	b := state.Ball
	if err := raster.DrawFilledCircle(pointSink{s, Foreground}, b.Pos.X, b.Pos.Y, b.Radius); err != nil {
		return drawErr("ball", err)
	}

	if err := s.FillRect(state.Left.Rect, Foreground); err != nil {
		return drawErr("left paddle", err)
	}
	if err := s.FillRect(state.Right.Rect, Foreground); err != nil {
		return drawErr("right paddle", err)
	}

	if err := drawScores(s, state); err != nil {
		return drawErr("score", err)
	}

	if stats != nil {
		if err := drawFrameStats(s, state.Field, *stats); err != nil {
			return drawErr("frame stats", err)
		}
	}

	if err := s.Present(); err != nil {
		return drawErr("present", err)
	}
	return nil
}

func drawErr(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDraw, step, err)
}

const (
	dashWidth  = 4
	dashHeight = 20
	dashGap    = 20
)

func drawDivider(s Surface, field pong.Field) error {
	x := field.Width/2 - dashWidth/2
	for y := 0; y < field.Height; y += dashHeight + dashGap {
		h := min(dashHeight, field.Height-y)
		if err := s.FillRect(pong.Rect{X: x, Y: y, Width: dashWidth, Height: h}, Divider); err != nil {
			return err
		}
	}
	return nil
}

func drawScores(s Surface, state pong.GameState) error {
	y := state.Field.Height / 20
	if err := s.DrawText(strconv.Itoa(state.Score.Left), state.Field.Width/4, y, Foreground); err != nil {
		return err
	}
	return s.DrawText(strconv.Itoa(state.Score.Right), state.Field.Width*3/4, y, Foreground)
}

func drawFrameStats(s Surface, field pong.Field, stats FrameStats) error {
	x := field.Width * 3 / 5
	lines := []string{
		fmt.Sprintf("Frame #: %d", stats.Frame),
		fmt.Sprintf("Frame Time: %.4fms", float64(stats.FrameTime.Microseconds())/1000),
		fmt.Sprintf("Spare Time: %.4fms", float64(stats.SpareTime().Microseconds())/1000),
	}
	for i, line := range lines {
		y := field.Height - (len(lines)-i)*field.Height/20
		if err := s.DrawText(line, x, y, Divider); err != nil {
			return err
		}
	}
	return nil
}
