package spectate

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/phanxgames/pong"
)

// Message types.
const (
	MsgTypeFrame = "frame"
	MsgTypeEvent = "event"
)

// Box is a rectangle on the wire.
type Box struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
	W float64 `msgpack:"w"`
	H float64 `msgpack:"h"`
}

// FrameMsg is a snapshot of the court after a frame.
type FrameMsg struct {
	Frame         uint64  `msgpack:"frame"`
	Width         float64 `msgpack:"width"`
	Height        float64 `msgpack:"height"`
	Player        Box     `msgpack:"player"`
	Opponent      Box     `msgpack:"opponent"`
	Ball          Box     `msgpack:"ball"`
	BallVX        float64 `msgpack:"ballVX"`
	BallVY        float64 `msgpack:"ballVY"`
	PlayerScore   int     `msgpack:"playerScore"`
	OpponentScore int     `msgpack:"opponentScore"`
	Running       bool    `msgpack:"running"`
}

// EventMsg is a match event on the wire.
type EventMsg struct {
	Kind          string `msgpack:"kind"`
	Side          string `msgpack:"side"`
	Frame         uint64 `msgpack:"frame"`
	PlayerScore   int    `msgpack:"playerScore"`
	OpponentScore int    `msgpack:"opponentScore"`
}

// Message is the envelope of every binary websocket message. Exactly one of
// Frame and Event is set, according to Type.
type Message struct {
	Type  string    `msgpack:"type"`
	Frame *FrameMsg `msgpack:"frame,omitempty"`
	Event *EventMsg `msgpack:"event,omitempty"`
}

func box(r pong.Rect) Box {
	return Box{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

// NewFrameMessage converts a state snapshot.
func NewFrameMessage(s pong.State) Message {
	return Message{
		Type: MsgTypeFrame,
		Frame: &FrameMsg{
			Frame:         s.Frame,
			Width:         s.Width,
			Height:        s.Height,
			Player:        box(s.Player),
			Opponent:      box(s.Opponent),
			Ball:          box(s.Ball.Rect),
			BallVX:        s.Ball.VX,
			BallVY:        s.Ball.VY,
			PlayerScore:   s.PlayerScore,
			OpponentScore: s.OpponentScore,
			Running:       s.Running,
		},
	}
}

// NewEventMessage converts a match event.
func NewEventMessage(e pong.Event) Message {
	return Message{
		Type: MsgTypeEvent,
		Event: &EventMsg{
			Kind:          e.Type.String(),
			Side:          e.Side.String(),
			Frame:         e.Frame,
			PlayerScore:   e.PlayerScore,
			OpponentScore: e.OpponentScore,
		},
	}
}

// Decode parses a message received from the feed.
func Decode(data []byte) (Message, error) {
	var m Message
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("spectate: decode: %w", err)
	}
	switch m.Type {
	case MsgTypeFrame:
		if m.Frame == nil {
			return Message{}, fmt.Errorf("spectate: decode: frame message without frame")
		}
	case MsgTypeEvent:
		if m.Event == nil {
			return Message{}, fmt.Errorf("spectate: decode: event message without event")
		}
	default:
		return Message{}, fmt.Errorf("spectate: decode: unknown type %q", m.Type)
	}
	return m, nil
}
