package pong

// MovePaddle shifts the paddle vertically by delta. A move that would take
// the paddle past the top or bottom of the field is dropped entirely.
func MovePaddle(p *Paddle, field Field, delta int) bool {
	if delta < 0 {
		if p.Y >= -delta {
			p.Y += delta
			return true
		}
		return false
	}

	if p.Y+p.Height+delta <= field.Height {
		p.Y += delta
		return true
	}
	return false
}
