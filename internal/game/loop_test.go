package game

import (
	"errors"
	"image/color"
	"testing"

	"pong/internal/pong"
	"pong/internal/raster"
	"pong/internal/renderer"
)

type fakeDisplay struct {
	now      int64
	queue    []pong.Action
	presents int
	fail     error
}

func (f *fakeDisplay) Now() int64 { return f.now }

func (f *fakeDisplay) PollEvent() (pong.Action, bool) {
	if len(f.queue) == 0 {
		return pong.NoAction, false
	}
	a := f.queue[0]
	f.queue = f.queue[1:]
	return a, true
}

func (f *fakeDisplay) Clear(color.RGBA) error { return nil }
func (f *fakeDisplay) FillRect(pong.Rect, color.RGBA) error { return nil }
func (f *fakeDisplay) DrawPoints([]raster.Point, color.RGBA) error { return f.fail }
func (f *fakeDisplay) DrawText(string, int, int, color.RGBA) error { return nil }
func (f *fakeDisplay) Present() error {
	f.presents++
	return nil
}

func newTestLoop() (*Loop, *fakeDisplay) {
	d := &fakeDisplay{now: 1000}
	state := pong.NewGameState(pong.DefaultField, pong.DefaultRules(pong.DefaultField))
	return NewDisplayLoop(state, d), d
}

func TestFrameGate(t *testing.T) {
	l, d := newTestLoop()
	start := l.State.Ball.Pos

	ticked, err := l.Frame(1000 + renderer.TickIntervalMs)
	if err != nil || ticked {
		t.Fatalf("Frame at exactly one interval: ticked=%v err=%v", ticked, err)
	}
	if l.State.Ball.Pos != start {
		t.Fatal("ball moved before the tick interval elapsed")
	}

	ticked, err = l.Frame(1000 + renderer.TickIntervalMs + 1)
	if err != nil || !ticked {
		t.Fatalf("Frame past interval: ticked=%v err=%v", ticked, err)
	}
	if d.presents != 1 {
		t.Errorf("presents = %d, want 1", d.presents)
	}

	// A late frame still advances by exactly one velocity step.
	before := l.State.Ball.Pos
	if _, err := l.Frame(10_000); err != nil {
		t.Fatal(err)
	}
	want := pong.Vector{X: before.X + l.State.Ball.Vel.X, Y: before.Y + l.State.Ball.Vel.Y}
	if l.State.Ball.Pos != want {
		t.Errorf("ball at %+v after late frame, want %+v", l.State.Ball.Pos, want)
	}
}

func TestInputAppliedWithoutTick(t *testing.T) {
	l, d := newTestLoop()
	y := l.State.Left.Y
	d.queue = []pong.Action{pong.LeftUp, pong.LeftUp, pong.RightDown}

	ticked, err := l.Frame(1001)
	if err != nil || ticked {
		t.Fatalf("ticked=%v err=%v", ticked, err)
	}
	if l.State.Left.Y != y-2*l.State.Rules.PaddleStep {
		t.Errorf("left y = %d, want %d", l.State.Left.Y, y-2*l.State.Rules.PaddleStep)
	}
	if len(d.queue) != 0 {
		t.Errorf("%d events left undrained", len(d.queue))
	}
}

func TestQuitStopsRun(t *testing.T) {
	l, d := newTestLoop()
	d.queue = []pong.Action{pong.Quit}
	d.now = 5000

	if err := l.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if l.Running() {
		t.Error("loop still running after quit")
	}
	if d.presents != 1 {
		t.Errorf("presents = %d, want the in-flight frame only", d.presents)
	}
}

func TestRenderFailureEndsRun(t *testing.T) {
	l, d := newTestLoop()
	backend := errors.New("lost renderer")
	d.fail = backend
	d.now = 5000

	err := l.Run()
	if !errors.Is(err, renderer.ErrDraw) || !errors.Is(err, backend) {
		t.Fatalf("Run() error = %v", err)
	}
	if l.Running() {
		t.Error("loop still running after draw failure")
	}
	if d.presents != 0 {
		t.Errorf("presents = %d, want 0", d.presents)
	}
}

func TestScoresThroughLoop(t *testing.T) {
	l, d := newTestLoop()
	l.State.Ball.Vel = pong.Vector{X: 4, Y: 0}
	l.State.Ball.Pos.Y = 700
	l.State.Right.Y = 0

	for i := 0; i < 500 && l.State.Score == (pong.Score{}); i++ {
		d.now += renderer.TickIntervalMs + 1
		if _, err := l.Frame(d.now); err != nil {
			t.Fatal(err)
		}
	}
	if l.State.Score != (pong.Score{Left: 1}) {
		t.Fatalf("score = %+v, want {1 0}", l.State.Score)
	}
	if l.State.Ball.Pos != l.State.Field.Center() {
		t.Errorf("ball at %+v after goal, want center", l.State.Ball.Pos)
	}
}
