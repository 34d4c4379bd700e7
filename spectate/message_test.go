package spectate

import (
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/phanxgames/pong"
)

func TestNewFrameMessage(t *testing.T) {
	s := pong.State{
		Width: 800, Height: 600,
		Player:        pong.Rect{X: 50, Y: 255, Width: 15, Height: 90},
		Ball:          pong.Ball{Rect: pong.Rect{X: 392.5, Y: 292.5, Width: 15, Height: 15}, VX: 7, VY: -7},
		PlayerScore:   2,
		OpponentScore: 5,
		Running:       true,
		Frame:         120,
	}
	m := NewFrameMessage(s)
	if m.Type != MsgTypeFrame || m.Frame == nil || m.Event != nil {
		t.Fatalf("message = %+v", m)
	}
	f := m.Frame
	if f.Player != (Box{50, 255, 15, 90}) || f.Ball != (Box{392.5, 292.5, 15, 15}) {
		t.Errorf("boxes = %+v, %+v", f.Player, f.Ball)
	}
	if f.BallVX != 7 || f.BallVY != -7 || f.Frame != 120 || !f.Running {
		t.Errorf("frame = %+v", f)
	}
}

func TestDecodeFrame(t *testing.T) {
	data, err := msgpack.Marshal(NewFrameMessage(pong.State{Width: 640, Height: 480, PlayerScore: 3}))
	if err != nil {
		t.Fatal(err)
	}
	m, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.Frame.Width != 640 || m.Frame.PlayerScore != 3 {
		t.Errorf("frame = %+v", m.Frame)
	}
}

func TestDecodeEvent(t *testing.T) {
	data, err := msgpack.Marshal(NewEventMessage(pong.Event{
		Type: pong.EventPointScored, Side: pong.SidePlayer, Frame: 9, PlayerScore: 1,
	}))
	if err != nil {
		t.Fatal(err)
	}
	m, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	e := m.Event
	if e.Kind != "point_scored" || e.Side != "player" || e.Frame != 9 || e.PlayerScore != 1 {
		t.Errorf("event = %+v", e)
	}
}

func TestDecodeErrors(t *testing.T) {
	mustMarshal := func(v any) []byte {
		data, err := msgpack.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		return data
	}
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"garbage", []byte{0xc1}, "decode"},
		{"unknown type", mustMarshal(Message{Type: "chat"}), "unknown type"},
		{"frame without body", mustMarshal(Message{Type: MsgTypeFrame}), "without frame"},
		{"event without body", mustMarshal(Message{Type: MsgTypeEvent}), "without event"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}
