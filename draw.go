package pong

import (
	"math"
	"strconv"
)

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandClear       CommandType = iota // fill the whole surface with Color
	CommandFillRect                       // filled Rect
	CommandFillEllipse                    // filled ellipse inscribed in Rect
	CommandDashedLine                     // line From→To with Dash on / Gap off
	CommandText                           // Text centred horizontally on From, baseline at From.Y
)

// Tag identifies which court element a command draws so hosts can decorate
// it (for example pulsing a score that just changed).
type Tag uint8

const (
	TagNone Tag = iota
	TagPlayerPaddle
	TagOpponentPaddle
	TagBall
	TagDivider
	TagPlayerScore
	TagOpponentScore
)

// DrawCommand is a single drawing instruction against a 2D raster surface.
type DrawCommand struct {
	Type  CommandType
	Tag   Tag
	Color Color

	Rect Rect

	From, To  Vec2
	Dash, Gap float64
	Width     float64 // stroke width

	Text     string
	FontSize float64
}

// DrawStyle controls the look of the court.
type DrawStyle struct {
	Background Color
	Foreground Color

	DividerDash  float64
	DividerGap   float64
	DividerWidth float64

	ScoreSize     float64
	ScoreBaseline float64
}

// DefaultDrawStyle returns white-on-black with a 10/10 dashed divider and
// 36 px scores.
func DefaultDrawStyle() DrawStyle {
	return DrawStyle{
		Background:    ColorBlack,
		Foreground:    ColorWhite,
		DividerDash:   10,
		DividerGap:    10,
		DividerWidth:  1,
		ScoreSize:     36,
		ScoreBaseline: 50,
	}
}

// AppendDrawList appends the commands that render s to dst and returns the
// extended slice. Rendering never feeds back into the state.
func AppendDrawList(dst []DrawCommand, s *State, style DrawStyle) []DrawCommand {
	fg := style.Foreground
	mid := s.Width / 2

	return append(dst,
		DrawCommand{Type: CommandClear, Color: style.Background,
			Rect: Rect{Width: s.Width, Height: s.Height}},
		DrawCommand{Type: CommandFillRect, Tag: TagPlayerPaddle, Color: fg, Rect: s.Player},
		DrawCommand{Type: CommandFillRect, Tag: TagOpponentPaddle, Color: fg, Rect: s.Opponent},
		DrawCommand{Type: CommandFillEllipse, Tag: TagBall, Color: fg, Rect: s.Ball.Rect},
		DrawCommand{Type: CommandDashedLine, Tag: TagDivider, Color: fg,
			From: Vec2{X: mid}, To: Vec2{X: mid, Y: s.Height},
			Dash: style.DividerDash, Gap: style.DividerGap, Width: style.DividerWidth},
		DrawCommand{Type: CommandText, Tag: TagPlayerScore, Color: fg,
			From: Vec2{X: s.Width / 4, Y: style.ScoreBaseline},
			Text: strconv.Itoa(s.PlayerScore), FontSize: style.ScoreSize},
		DrawCommand{Type: CommandText, Tag: TagOpponentScore, Color: fg,
			From: Vec2{X: 3 * s.Width / 4, Y: style.ScoreBaseline},
			Text: strconv.Itoa(s.OpponentScore), FontSize: style.ScoreSize},
	)
}

// Dashes splits the segment from→to into the visible dash segments of a
// dash/gap pattern starting with a dash. A non-positive dash yields the
// whole segment.
func Dashes(from, to Vec2, dash, gap float64, fn func(a, b Vec2)) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	if dash <= 0 {
		fn(from, to)
		return
	}
	if gap < 0 {
		gap = 0
	}
	ux, uy := dx/length, dy/length
	for t := 0.0; t < length; t += dash + gap {
		end := t + dash
		if end > length {
			end = length
		}
		fn(Vec2{X: from.X + ux*t, Y: from.Y + uy*t},
			Vec2{X: from.X + ux*end, Y: from.Y + uy*end})
	}
}
