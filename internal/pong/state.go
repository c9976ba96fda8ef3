package pong

// Field is the playfield. Width and height are kept apart on purpose so a
// non-square field exercises every bound independently.
type Field struct {
	Width  int
	Height int
}

var (
	DefaultField = Field{Width: 800, Height: 800}
	CompactField = Field{Width: 640, Height: 640}
)

func (f Field) Center() Vector {
	return Vector{X: f.Width / 2, Y: f.Height / 2}
}

type Vector struct {
	X int
	Y int
}

type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Paddle x never changes after creation. Y is only ever changed by MovePaddle.
type Paddle struct {
	Rect
}

func (p Paddle) CenterY() int {
	return p.Y + p.Height/2
}

type Ball struct {
	Pos    Vector
	Vel    Vector
	Radius int
}

type Score struct {
	Left  int
	Right int
}

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Rules holds the tuning constants of a session.
type Rules struct {
	PaddleStep  int
	SpeedFactor float64
	Serve       Vector
	BallRadius  int
	// ResetServe restores Serve on every goal. When false the ball keeps
	// whatever velocity it had when it crossed the goal line.
	ResetServe bool
}

func DefaultRules(field Field) Rules {
	step := 15
	if field.Height <= CompactField.Height {
		step = 10
	}
	return Rules{
		PaddleStep:  step,
		SpeedFactor: 10,
		Serve:       Vector{X: 2, Y: 3},
		BallRadius:  10,
		ResetServe:  true,
	}
}

type GameState struct {
	Field  Field
	Rules  Rules
	Left   Paddle
	Right  Paddle
	Ball   Ball
	Score  Score
	Frames uint64
}

func NewGameState(field Field, rules Rules) GameState {
	w := field.Width * 5 / 100
	h := field.Height * 30 / 100

	return GameState{
		Field: field,
		Rules: rules,
		Left: Paddle{Rect{
			X:      0,
			Y:      field.Height / 2,
			Width:  w,
			Height: h,
		}},
		Right: Paddle{Rect{
			X:      field.Width - w,
			Y:      field.Height / 2,
			Width:  w,
			Height: h,
		}},
		Ball: Ball{
			Pos:    field.Center(),
			Vel:    rules.Serve,
			Radius: rules.BallRadius,
		},
	}
}
