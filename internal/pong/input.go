package pong

// Action is a single input command. Backends translate their native key
// events into actions.
type Action int

const (
	NoAction Action = iota
	LeftUp
	LeftDown
	RightUp
	RightDown
	Quit
)

var actionNames = map[Action]string{
	NoAction:  "none",
	LeftUp:    "left_up",
	LeftDown:  "left_down",
	RightUp:   "right_up",
	RightDown: "right_down",
	Quit:      "quit",
}

func (a Action) String() string {
	return actionNames[a]
}

// Apply moves the paddle an action refers to. Quit and NoAction leave the
// state untouched; the frame loop owns termination.
func Apply(s *GameState, a Action) bool {
	step := s.Rules.PaddleStep
	switch a {
	case LeftUp:
		return MovePaddle(&s.Left, s.Field, -step)
	case LeftDown:
		return MovePaddle(&s.Left, s.Field, step)
	case RightUp:
		return MovePaddle(&s.Right, s.Field, -step)
	case RightDown:
		return MovePaddle(&s.Right, s.Field, step)
	}
	return false
}

// Tick applies every pending action in order and then runs exactly one
// physics step. It is the whole simulation for one frame.
func Tick(s *GameState, actions []Action) Event {
	for _, a := range actions {
		Apply(s, a)
	}
	s.Frames++
	return MoveBall(s)
}
