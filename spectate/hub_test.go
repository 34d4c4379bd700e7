package spectate

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/phanxgames/pong"
)

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func read(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	typ, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if typ != websocket.BinaryMessage {
		t.Fatalf("message type = %d, want binary", typ)
	}
	m, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestHubPublish(t *testing.T) {
	hub := NewHub()
	conn := dial(t, hub)

	hub.Publish(pong.State{Width: 800, Height: 600, Frame: 42, Running: true})
	hub.PublishEvent(pong.Event{Type: pong.EventWallBounce, Frame: 43})

	m := read(t, conn)
	if m.Type != MsgTypeFrame || m.Frame.Frame != 42 || m.Frame.Width != 800 {
		t.Errorf("first message = %+v", m)
	}
	m = read(t, conn)
	if m.Type != MsgTypeEvent || m.Event.Kind != "wall_bounce" || m.Event.Frame != 43 {
		t.Errorf("second message = %+v", m.Event)
	}
}

func TestHubMultipleSpectators(t *testing.T) {
	hub := NewHub()
	a := dial(t, hub)
	b := dial(t, hub)
	if hub.Clients() != 2 {
		t.Fatalf("Clients() = %d, want 2", hub.Clients())
	}

	hub.PublishEvent(pong.Event{Type: pong.EventPaddleHit, Side: pong.SideOpponent})
	for _, conn := range []*websocket.Conn{a, b} {
		if m := read(t, conn); m.Event.Side != "opponent" {
			t.Errorf("event = %+v", m.Event)
		}
	}
}

func TestHubDropsWhenQueueFull(t *testing.T) {
	hub := NewHub()
	c := &client{send: make(chan []byte, 1)}
	hub.add(c)

	done := make(chan struct{})
	go func() {
		hub.Publish(pong.State{Frame: 1})
		hub.Publish(pong.State{Frame: 2})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full queue")
	}

	m, err := Decode(<-c.send)
	if err != nil {
		t.Fatal(err)
	}
	if m.Frame.Frame != 1 {
		t.Errorf("kept frame %d, want 1", m.Frame.Frame)
	}
}

func TestHubClose(t *testing.T) {
	hub := NewHub()
	conn := dial(t, hub)

	hub.Close()
	if hub.Clients() != 0 {
		t.Errorf("Clients() = %d after Close", hub.Clients())
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNoStatusReceived, websocket.CloseNormalClosure) {
		t.Errorf("read after Close: %v, want a close error", err)
	}

	// Publishing to a closed hub is a no-op.
	hub.Publish(pong.State{})
}

func TestHubRemovesDisconnected(t *testing.T) {
	hub := NewHub()
	conn := dial(t, hub)
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("client not removed after disconnect")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
