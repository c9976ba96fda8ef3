// Package game runs the frame loop: it drains input, gates simulation
// ticks on wall-clock time and hands each tick's state to the renderer.
package game

import (
	"log/slog"
	"time"

	"pong/internal/pong"
	"pong/internal/renderer"
)

// EventSource yields pending input without blocking. ok is false once the
// queue is drained for this frame.
type EventSource interface {
	PollEvent() (action pong.Action, ok bool)
}

// Clock returns milliseconds from an arbitrary fixed origin.
type Clock interface {
	Now() int64
}

// Display is what a backend provides to the loop.
type Display interface {
	renderer.Surface
	EventSource
	Clock
}

type Loop struct {
	State     pong.GameState
	ShowStats bool

	surface  renderer.Surface
	events   EventSource
	clock    Clock
	lastTick int64
	running  bool

	statsFrom  int64
	statsTicks uint64
	lastStats  renderer.FrameStats
}

func NewLoop(state pong.GameState, surface renderer.Surface, events EventSource, clock Clock) *Loop {
	now := clock.Now()
	return &Loop{
		State:     state,
		surface:   surface,
		events:    events,
		clock:     clock,
		lastTick:  now,
		running:   true,
		statsFrom: now,
	}
}

func NewDisplayLoop(state pong.GameState, d Display) *Loop {
	return NewLoop(state, d, d, d)
}

func (l *Loop) Running() bool {
	return l.running
}

// Run spins until quit is requested or a frame fails to draw. A draw
// failure is returned wrapped in renderer.ErrDraw.
func (l *Loop) Run() error {
	for l.running {
		if _, err := l.Frame(l.clock.Now()); err != nil {
			return err
		}
	}
	return nil
}

// Frame performs one pass of the loop at time now. It reports whether a
// simulation tick ran. A quit request only takes effect at the top of the
// next pass, so the current frame still completes.
func (l *Loop) Frame(now int64) (bool, error) {
	l.drainInput()

	if now <= l.lastTick+renderer.TickIntervalMs {
		return false, nil
	}

	started := time.Now()
	ev := pong.Tick(&l.State, nil)
	l.logEvent(ev)

	var stats *renderer.FrameStats
	if l.ShowStats {
		stats = &l.lastStats
	}
	if err := renderer.Render(l.surface, l.State, stats); err != nil {
		slog.Error("render failed", slog.Any("error", err))
		l.running = false
		return true, err
	}

	l.lastTick = now
	l.trackStats(now, time.Since(started))
	return true, nil
}

func (l *Loop) drainInput() {
	for {
		action, ok := l.events.PollEvent()
		if !ok {
			return
		}
		if action == pong.Quit {
			slog.Debug("quit requested")
			l.running = false
			continue
		}
		pong.Apply(&l.State, action)
	}
}

func (l *Loop) logEvent(ev pong.Event) {
	switch {
	case ev.IsGoal():
		slog.Debug("goal", slog.Any("event", ev), slog.Any("score", l.State.Score))
	case ev != pong.Advanced:
		slog.Debug("bounce", slog.Any("event", ev), slog.Any("velocity", l.State.Ball.Vel))
	}
}

func (l *Loop) trackStats(now int64, frameTime time.Duration) {
	l.lastStats = renderer.FrameStats{Frame: l.State.Frames, FrameTime: frameTime}
	l.statsTicks++
	if now-l.statsFrom < 1000 {
		return
	}
	slog.Debug("frame stats",
		slog.Any("frame", l.lastStats.Frame),
		slog.Any("ticks", l.statsTicks),
		slog.Any("frameTime", l.lastStats.FrameTime),
		slog.Any("spareTime", l.lastStats.SpareTime()))
	l.statsFrom = now
	l.statsTicks = 0
}
