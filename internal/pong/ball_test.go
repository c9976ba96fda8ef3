package pong

import "testing"

func newTestState() GameState {
	return NewGameState(DefaultField, DefaultRules(DefaultField))
}

func TestGoalLeftScoresRight(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = Vector{X: s.Ball.Radius, Y: 100}
	s.Ball.Vel = Vector{X: -4, Y: 1}
	// Keep the paddle out of the way.
	s.Left.Y = 500

	ev := MoveBall(&s)
	if ev != GoalLeft {
		t.Fatalf("event = %v, want %v", ev, GoalLeft)
	}
	if s.Ball.Pos != s.Field.Center() {
		t.Errorf("ball at %+v, want center %+v", s.Ball.Pos, s.Field.Center())
	}
	if s.Score != (Score{Left: 0, Right: 1}) {
		t.Errorf("score = %+v, want {0 1}", s.Score)
	}
}

func TestGoalRightScoresLeft(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = Vector{X: s.Field.Width - s.Ball.Radius, Y: 100}
	s.Ball.Vel = Vector{X: 4, Y: 1}
	s.Right.Y = 500

	if ev := MoveBall(&s); ev != GoalRight {
		t.Fatalf("event = %v, want %v", ev, GoalRight)
	}
	if s.Score != (Score{Left: 1, Right: 0}) {
		t.Errorf("score = %+v, want {1 0}", s.Score)
	}
}

func TestGoalVelocityPolicy(t *testing.T) {
	for _, reset := range []bool{true, false} {
		s := newTestState()
		s.Rules.ResetServe = reset
		s.Ball.Pos = Vector{X: s.Ball.Radius - 1, Y: 100}
		s.Ball.Vel = Vector{X: -7, Y: -2}
		s.Left.Y = 500

		MoveBall(&s)

		want := Vector{X: -7, Y: -2}
		if reset {
			want = s.Rules.Serve
		}
		if s.Ball.Vel != want {
			t.Errorf("ResetServe=%v: velocity = %+v, want %+v", reset, s.Ball.Vel, want)
		}
	}
}

func TestGoalTakesPriorityOverPaddle(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = Vector{X: s.Ball.Radius, Y: s.Left.CenterY()}
	s.Ball.Vel = Vector{X: -3, Y: 0}

	if ev := MoveBall(&s); ev != GoalLeft {
		t.Fatalf("event = %v, want %v", ev, GoalLeft)
	}
}

func TestLeftPaddleHit(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = Vector{X: s.Left.Width + s.Ball.Radius, Y: s.Left.CenterY()}
	s.Ball.Vel = Vector{X: -2, Y: 3}

	ev := MoveBall(&s)
	if ev != HitLeftPaddle {
		t.Fatalf("event = %v, want %v", ev, HitLeftPaddle)
	}
	want := Vector{X: int(s.Rules.SpeedFactor) + 1, Y: 0}
	if s.Ball.Vel != want {
		t.Errorf("velocity = %+v, want %+v", s.Ball.Vel, want)
	}
	if s.Ball.Pos.X != s.Left.Width+s.Ball.Radius {
		t.Errorf("deflection moved the ball to x=%d", s.Ball.Pos.X)
	}
}

func TestRightPaddleHit(t *testing.T) {
	s := newTestState()
	s.Ball.Pos = Vector{X: s.Right.X - s.Ball.Radius, Y: s.Right.CenterY()}
	s.Ball.Vel = Vector{X: 2, Y: 3}

	if ev := MoveBall(&s); ev != HitRightPaddle {
		t.Fatalf("event = %v, want %v", ev, HitRightPaddle)
	}
	if want := -(int(s.Rules.SpeedFactor) + 1); s.Ball.Vel.X != want {
		t.Errorf("x velocity = %d, want %d", s.Ball.Vel.X, want)
	}
}

func TestPaddleIgnoredWhenMovingAway(t *testing.T) {
	s := newTestState()
	start := Vector{X: s.Left.Width + s.Ball.Radius, Y: s.Left.CenterY()}
	s.Ball.Pos = start
	s.Ball.Vel = Vector{X: 2, Y: 1}

	if ev := MoveBall(&s); ev != Advanced {
		t.Fatalf("event = %v, want %v", ev, Advanced)
	}
	if want := (Vector{X: start.X + 2, Y: start.Y + 1}); s.Ball.Pos != want {
		t.Errorf("ball at %+v, want %+v", s.Ball.Pos, want)
	}
}

func TestPaddleMissWhenNoOverlap(t *testing.T) {
	s := newTestState()
	s.Left.Y = 0
	// One pixel below the radius-expanded overlap range.
	y := s.Left.Y + s.Left.Height + s.Ball.Radius + 1
	s.Ball.Pos = Vector{X: s.Left.Width + s.Ball.Radius, Y: y}
	s.Ball.Vel = Vector{X: -2, Y: 0}

	if ev := MoveBall(&s); ev != Advanced {
		t.Fatalf("event = %v, want %v", ev, Advanced)
	}

	// Exactly on the inclusive edge is a hit.
	s.Ball.Pos = Vector{X: s.Left.Width + s.Ball.Radius, Y: y - 1}
	if ev := MoveBall(&s); ev != HitLeftPaddle {
		t.Fatalf("edge event = %v, want %v", ev, HitLeftPaddle)
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name  string
		y     int
		vy    int
		event Event
		wantY func(s GameState) int
	}{
		{"top", 10, -3, BounceTop, func(s GameState) int { return 20 }},
		{"top inside", 4, -3, BounceTop, func(s GameState) int { return 14 }},
		{"bottom", 790, 3, BounceBottom, func(s GameState) int { return 780 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			s.Ball.Pos = Vector{X: 400, Y: tt.y}
			s.Ball.Vel = Vector{X: 2, Y: tt.vy}

			ev := MoveBall(&s)
			if ev != tt.event {
				t.Fatalf("event = %v, want %v", ev, tt.event)
			}
			if s.Ball.Vel.Y != -tt.vy {
				t.Errorf("y velocity = %d, want %d", s.Ball.Vel.Y, -tt.vy)
			}
			if s.Ball.Vel.X != 2 {
				t.Errorf("x velocity changed to %d", s.Ball.Vel.X)
			}
			if s.Ball.Pos.X != 400 {
				t.Errorf("x position changed to %d", s.Ball.Pos.X)
			}
			if want := tt.wantY(s); s.Ball.Pos.Y != want {
				t.Errorf("y = %d, want %d", s.Ball.Pos.Y, want)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	s := newTestState()
	s.Ball.Vel = Vector{X: 5, Y: -4}
	start := s.Ball.Pos

	if ev := MoveBall(&s); ev != Advanced {
		t.Fatalf("event = %v, want %v", ev, Advanced)
	}
	if want := (Vector{X: start.X + 5, Y: start.Y - 4}); s.Ball.Pos != want {
		t.Errorf("ball at %+v, want %+v", s.Ball.Pos, want)
	}
}

func TestDeflect(t *testing.T) {
	p := Paddle{Rect{X: 0, Y: 100, Width: 40, Height: 240}}
	center := p.CenterY()

	tests := []struct {
		name string
		y    int
		side Side
		want Vector
	}{
		{"center left", center, Left, Vector{X: 11, Y: 0}},
		{"center right", center, Right, Vector{X: -11, Y: 0}},
		{"below center", center + 50, Left, Vector{X: 6, Y: 5}},
		{"above center", center - 50, Left, Vector{X: 6, Y: -5}},
		{"above center right", center - 50, Right, Vector{X: -6, Y: -5}},
		{"offset 100", center + 100, Left, Vector{X: 1, Y: 10}},
		{"offset 110 forced to one", center + 110, Left, Vector{X: 1, Y: 11}},
		{"offset 130 unclamped", center + 130, Left, Vector{X: -2, Y: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Ball{Pos: Vector{X: 50, Y: tt.y}, Radius: 10}
			got := Deflect(b, p, tt.side, 10)
			if got != tt.want {
				t.Errorf("Deflect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
