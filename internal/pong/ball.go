package pong

import "math"

// Event reports which branch of the ball state machine fired on a tick.
type Event int

const (
	Advanced Event = iota
	GoalRight
	GoalLeft
	HitLeftPaddle
	HitRightPaddle
	BounceTop
	BounceBottom
)

var eventNames = map[Event]string{
	Advanced:       "advanced",
	GoalRight:      "goal_right",
	GoalLeft:       "goal_left",
	HitLeftPaddle:  "hit_left_paddle",
	HitRightPaddle: "hit_right_paddle",
	BounceTop:      "bounce_top",
	BounceBottom:   "bounce_bottom",
}

func (e Event) String() string {
	return eventNames[e]
}

func (e Event) IsGoal() bool {
	return e == GoalRight || e == GoalLeft
}

// MoveBall runs one physics tick. Conditions are checked in a fixed order
// and only the first match is applied.
func MoveBall(s *GameState) Event {
	b := &s.Ball
	r := b.Radius

	switch {
	case s.Field.Width-b.Pos.X <= r:
		// Ball left through the right side: point for the left player.
		s.Score.Left++
		s.resetBall()
		return GoalRight

	case b.Pos.X <= r:
		s.Score.Right++
		s.resetBall()
		return GoalLeft

	case b.Pos.X-s.Left.Width <= r && b.Vel.X < 0 && overlaps(*b, s.Left):
		b.Vel = Deflect(*b, s.Left, Left, s.Rules.SpeedFactor)
		return HitLeftPaddle

	case s.Right.X-b.Pos.X <= r && b.Vel.X > 0 && overlaps(*b, s.Right):
		b.Vel = Deflect(*b, s.Right, Right, s.Rules.SpeedFactor)
		return HitRightPaddle

	case b.Pos.Y <= r:
		b.Pos.Y += r
		b.Vel.Y = -b.Vel.Y
		return BounceTop

	case s.Field.Height-b.Pos.Y <= r:
		b.Pos.Y -= r
		b.Vel.Y = -b.Vel.Y
		return BounceBottom
	}

	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y
	return Advanced
}

func (s *GameState) resetBall() {
	s.Ball.Pos = s.Field.Center()
	if s.Rules.ResetServe {
		s.Ball.Vel = s.Rules.Serve
	}
}

// overlaps tests the ball's vertical extent against the paddle, inclusive
// on both ends.
func overlaps(b Ball, p Paddle) bool {
	return b.Pos.Y+b.Radius >= p.Y && b.Pos.Y-b.Radius <= p.Y+p.Height
}

// Deflect computes the velocity of a ball that struck the paddle on the
// given side. The further from the paddle center the ball hits, the more
// speed moves from the horizontal into the vertical component. Offsets over
// 100 units drive the horizontal factor negative; that is left as is.
func Deflect(b Ball, p Paddle, side Side, speedFactor float64) Vector {
	offset := float64(abs(b.Pos.Y - p.CenterY()))
	yFactor := offset / 100.0
	xFactor := 1 - offset/100.0

	x := int(math.Round(speedFactor*xFactor)) + 1
	if x == 0 {
		x = 1
	}
	if side == Right {
		x = -x
	}

	y := int(math.Round(speedFactor * yFactor))
	if b.Pos.Y <= p.CenterY() {
		y = -y
	}

	return Vector{X: x, Y: y}
}
