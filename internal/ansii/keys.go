package ansii

import "pong/internal/pong"

const (
	keyEsc   = 27
	keyCtrlC = 3
)

// DecodeKeys maps one read of raw terminal input to actions. Arrow keys
// arrive as ESC [ A/B; an ESC on its own means quit. Raw mode swallows
// SIGINT so Ctrl-C quits too.
func DecodeKeys(buf []byte) []pong.Action {
	var actions []pong.Action
	for i := 0; i < len(buf); i++ {
		switch b := buf[i]; b {
		case keyEsc:
			if i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				switch buf[i+2] {
				case 'A':
					actions = append(actions, pong.LeftUp)
				case 'B':
					actions = append(actions, pong.LeftDown)
				}
				i += 2
				continue
			}
			actions = append(actions, pong.Quit)
		case keyCtrlC:
			actions = append(actions, pong.Quit)
		default:
			// Convert to upper case
			if b >= 'a' && b <= 'z' {
				b -= 'a' - 'A'
			}
			switch b {
			case 'W':
				actions = append(actions, pong.RightUp)
			case 'S':
				actions = append(actions, pong.RightDown)
			}
		}
	}
	return actions
}
