package pong

// Direction is a vertical paddle intent.
type Direction int8

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

// ParseDirection maps "up" and "down" to a Direction. Anything else is DirNone.
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return DirUp
	case "down":
		return DirDown
	}
	return DirNone
}

// Key is a host-neutral keyboard key. Hosts translate their own key codes
// and pass everything else as KeyOther.
type Key uint8

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
)

func (k Key) direction() Direction {
	switch k {
	case KeyUp:
		return DirUp
	case KeyDown:
		return DirDown
	}
	return DirNone
}

// Press sets the player's speed for the given direction. Touch and pointer
// buttons call it directly.
func (m *Match) Press(d Direction) {
	switch d {
	case DirUp:
		m.state.PlayerSpeed = -m.cfg.PaddleSpeed
	case DirDown:
		m.state.PlayerSpeed = m.cfg.PaddleSpeed
	}
}

// Release stops the paddle if d is the direction it is currently moving in.
// Releasing one control never cancels another control's active press.
func (m *Match) Release(d Direction) {
	if m.Intent() == d {
		m.state.PlayerSpeed = 0
	}
}

// Intent returns the direction the player paddle is being driven in.
func (m *Match) Intent() Direction {
	switch {
	case m.state.PlayerSpeed < 0:
		return DirUp
	case m.state.PlayerSpeed > 0:
		return DirDown
	}
	return DirNone
}

// PressKey handles a key-down. Keys other than up and down are ignored, and
// so is every key while the match is not running.
func (m *Match) PressKey(k Key) {
	if !m.state.Running {
		return
	}
	m.Press(k.direction())
}

// ReleaseKey handles a key-up.
func (m *Match) ReleaseKey(k Key) {
	if d := k.direction(); d != DirNone {
		m.Release(d)
	}
}
