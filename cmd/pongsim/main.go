package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"

	"github.com/google/uuid"

	"pong/internal/game"
	"pong/internal/pong"
	"pong/internal/raster"
	"pong/internal/renderer"
)

const defaultTicks = 60 * 60

// discard accepts every draw call and never produces input.
type discard struct{}

func (discard) Clear(color.RGBA) error { return nil }
func (discard) FillRect(pong.Rect, color.RGBA) error { return nil }
func (discard) DrawPoints([]raster.Point, color.RGBA) error { return nil }
func (discard) DrawText(string, int, int, color.RGBA) error { return nil }
func (discard) Present() error { return nil }
func (discard) PollEvent() (pong.Action, bool) { return pong.NoAction, false }

type manualClock struct {
	now int64
}

func (c *manualClock) Now() int64 {
	return c.now
}

// Runs the game without a display for a number of ticks (one simulated
// minute by default) and prints the score.
func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
	slog.SetDefault(slog.Default().With("session", uuid.NewString()))

	ticks := defaultTicks
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 0 {
			fmt.Println("ERROR: tick count must be a non-negative integer")
			os.Exit(1)
		}
		ticks = n
	}

	field := pong.DefaultField
	clock := &manualClock{}
	loop := game.NewLoop(pong.NewGameState(field, pong.DefaultRules(field)), discard{}, discard{}, clock)

	fmt.Println("Starting headless pong...")
	for i := 0; i < ticks && loop.Running(); i++ {
		clock.now += renderer.TickIntervalMs + 1
		if _, err := loop.Frame(clock.now); err != nil {
			fmt.Println("ERROR:", err)
			break
		}
	}

	s := loop.State.Score
	fmt.Printf("Finished after %d frames: left %d, right %d\n", loop.State.Frames, s.Left, s.Right)
}
