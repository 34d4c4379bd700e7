package ecs

import (
	"testing"

	"github.com/phanxgames/pong"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []pong.Event
	Subscribe(world, func(e pong.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(pong.Event{Type: pong.EventWallBounce, Frame: 3})
	sink.EmitEvent(pong.Event{
		Type:          pong.EventPointScored,
		Side:          pong.SideOpponent,
		Frame:         9,
		OpponentScore: 1,
	})

	if len(received) != 0 {
		t.Fatalf("events delivered before Flush: %d", len(received))
	}
	Flush(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != pong.EventWallBounce || received[0].Frame != 3 {
		t.Errorf("event 0: %+v", received[0])
	}
	e1 := received[1]
	if e1.Type != pong.EventPointScored || e1.Side != pong.SideOpponent || e1.OpponentScore != 1 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	Subscribe(world, func(pong.Event) { count1++ })
	Subscribe(world, func(pong.Event) { count2++ })

	sink.EmitEvent(pong.Event{Type: pong.EventPaddleHit})
	Flush(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("count1=%d, count2=%d; want 1, 1", count1, count2)
	}
}

func TestDonburiSink_FlushDrains(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count int
	Subscribe(world, func(pong.Event) { count++ })

	sink.EmitEvent(pong.Event{Type: pong.EventStarted})
	Flush(world)
	Flush(world)

	if count != 1 {
		t.Errorf("count = %d after two flushes, want 1", count)
	}
}

func TestDonburiSink_FromMatch(t *testing.T) {
	world := donburi.NewWorld()
	m := pong.NewMatch(pong.DefaultConfig(), pong.NewRandomSource(1))
	m.SetEventSink(NewDonburiSink(world))

	var types []pong.EventType
	Subscribe(world, func(e pong.Event) { types = append(types, e.Type) })

	m.Resize(800, 600)
	m.Start()
	m.Stop()
	Flush(world)

	want := []pong.EventType{pong.EventResized, pong.EventStarted, pong.EventStopped}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}
