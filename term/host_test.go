package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/pong"
	"github.com/phanxgames/pong/ecs"
)

func newTestHost(t *testing.T, hold int) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 40)

	m := pong.NewMatch(pong.DefaultConfig(), pong.NewRandomSource(5))
	h := New(screen, m, Options{HoldFrames: hold})
	h.Resize()
	return h, screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestResize(t *testing.T) {
	h, _ := newTestHost(t, 0)
	s := h.match.State()
	if s.Width != 800 || s.Height != 640 {
		t.Errorf("canvas = %vx%v, want 800x640", s.Width, s.Height)
	}
	if h.Canvas().Cols != 100 || h.Canvas().Rows != 40 {
		t.Errorf("grid = %dx%d", h.Canvas().Cols, h.Canvas().Rows)
	}
}

func TestQuitKeys(t *testing.T) {
	h, _ := newTestHost(t, 0)
	for _, ev := range []*tcell.EventKey{key(tcell.KeyEscape), key(tcell.KeyCtrlC), runeKey('q')} {
		if h.HandleEvent(ev) {
			t.Errorf("%v did not quit", ev.Name())
		}
	}
	if !h.HandleEvent(runeKey('x')) {
		t.Error("unrelated key quit")
	}
}

func TestStartAndPause(t *testing.T) {
	h, _ := newTestHost(t, 0)

	h.HandleEvent(runeKey('p'))
	if h.match.Running() {
		t.Fatal("pause started an unstarted match")
	}
	h.HandleEvent(key(tcell.KeyEnter))
	if !h.match.Running() {
		t.Fatal("enter did not start")
	}
	h.HandleEvent(runeKey('p'))
	if h.match.Running() {
		t.Fatal("p did not pause")
	}
	h.HandleEvent(runeKey('p'))
	if !h.match.Running() {
		t.Fatal("p did not resume")
	}
}

func TestArrowHold(t *testing.T) {
	h, _ := newTestHost(t, 3)
	h.HandleEvent(runeKey(' '))

	h.HandleEvent(key(tcell.KeyUp))
	if h.match.Intent() != pong.DirUp {
		t.Fatalf("intent = %v, want up", h.match.Intent())
	}
	h.Tick()
	h.Tick()
	// A repeat extends the hold.
	h.HandleEvent(key(tcell.KeyUp))
	h.Tick()
	h.Tick()
	if h.match.Intent() != pong.DirUp {
		t.Fatalf("released before the hold expired")
	}
	h.Tick()
	if h.match.Intent() != pong.DirNone {
		t.Errorf("intent = %v after hold expired, want none", h.match.Intent())
	}
}

func TestArrowSwitch(t *testing.T) {
	h, _ := newTestHost(t, 5)
	h.HandleEvent(key(tcell.KeyEnter))
	h.HandleEvent(key(tcell.KeyUp))
	h.HandleEvent(key(tcell.KeyDown))
	if h.match.Intent() != pong.DirDown {
		t.Errorf("intent = %v, want down", h.match.Intent())
	}
}

func TestArrowIgnoredWhileIdle(t *testing.T) {
	h, _ := newTestHost(t, 3)
	h.HandleEvent(key(tcell.KeyUp))
	if h.match.Intent() != pong.DirNone || h.held != pong.KeyOther {
		t.Error("arrow held before start")
	}
}

func TestDrawShowsCourt(t *testing.T) {
	h, screen := newTestHost(t, 0)
	h.HandleEvent(key(tcell.KeyEnter))
	h.Draw()

	r, _, _, _ := screen.GetContent(50, 20)
	if r != glyphBall {
		t.Errorf("ball cell = %q, want %q", r, glyphBall)
	}
	r, _, _, _ = screen.GetContent(7, 20)
	if r != glyphBlock {
		t.Errorf("paddle cell = %q, want %q", r, glyphBlock)
	}
}

func TestIdleOverlay(t *testing.T) {
	h, _ := newTestHost(t, 0)
	h.Draw()
	var found bool
	for col := 0; col < h.Canvas().Cols; col++ {
		if h.Canvas().At(col, 20).Rune == 'E' {
			found = true
			break
		}
	}
	if !found {
		t.Error("start prompt not drawn")
	}
}

func TestTickPublishesEvents(t *testing.T) {
	h, _ := newTestHost(t, 0)
	var points int
	ecs.Subscribe(h.World(), func(e pong.Event) {
		if e.Type == pong.EventPointScored {
			points++
		}
	})
	h.HandleEvent(key(tcell.KeyEnter))
	s := h.match.State()
	s.Ball.X, s.Ball.Y = 0, 300
	s.Ball.VX, s.Ball.VY = -7, 0
	h.Tick()
	if points != 1 {
		t.Errorf("points = %d, want 1", points)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	h, screen := newTestHost(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	h, _ := newTestHost(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := h.Run(ctx); err != nil {
		t.Errorf("Run: %v", err)
	}
}
