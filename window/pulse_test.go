package window

import (
	"testing"

	"github.com/phanxgames/pong"
)

func TestPulse(t *testing.T) {
	ps := make(pulseSet)
	if ps.scale(pong.TagPlayerScore) != 1 {
		t.Fatal("idle scale != 1")
	}

	ps.start(pong.TagPlayerScore)
	if got := ps.scale(pong.TagPlayerScore); got != pulsePeak {
		t.Fatalf("scale = %v, want %v", got, pulsePeak)
	}

	prev := ps.scale(pong.TagPlayerScore)
	for i := 0; i < 10; i++ {
		ps.update(0.02)
		cur := ps.scale(pong.TagPlayerScore)
		if cur > prev {
			t.Fatalf("step %d: scale grew from %v to %v", i, prev, cur)
		}
		prev = cur
	}
	if prev <= 1 {
		t.Errorf("scale = %v before the pulse ended", prev)
	}

	ps.update(1)
	if _, ok := ps[pong.TagPlayerScore]; ok {
		t.Error("finished pulse not removed")
	}
	if ps.scale(pong.TagPlayerScore) != 1 {
		t.Error("scale != 1 after the pulse ended")
	}
}

func TestPulseRestart(t *testing.T) {
	ps := make(pulseSet)
	ps.start(pong.TagOpponentScore)
	ps.update(0.3)
	ps.start(pong.TagOpponentScore)
	if got := ps.scale(pong.TagOpponentScore); got != pulsePeak {
		t.Errorf("restarted scale = %v, want %v", got, pulsePeak)
	}
}
