package pong

// EventType identifies something that happened during a match.
type EventType uint8

const (
	EventStarted     EventType = iota // match transitioned to running and entities were rebuilt
	EventStopped                      // match stopped; further frames are no-ops
	EventResized                      // canvas size changed
	EventWallBounce                   // ball reflected off the top or bottom wall
	EventPaddleHit                    // ball reflected off a paddle
	EventPointScored                  // a side scored and the ball was served again
)

var eventNames = [...]string{
	EventStarted:     "started",
	EventStopped:     "stopped",
	EventResized:     "resized",
	EventWallBounce:  "wall_bounce",
	EventPaddleHit:   "paddle_hit",
	EventPointScored: "point_scored",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Side names one half of the court.
type Side uint8

const (
	SideNone     Side = iota
	SidePlayer        // left, human controlled
	SideOpponent      // right, computer controlled
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	}
	return "none"
}

// Event carries a match event with the score at the time it happened.
// Side is the paddle that was hit for EventPaddleHit and the side that
// scored for EventPointScored.
type Event struct {
	Type          EventType
	Side          Side
	Frame         uint64
	PlayerScore   int
	OpponentScore int
}

// EventSink receives match events. Set one with Match.SetEventSink.
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(Event)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event Event) { f(event) }
