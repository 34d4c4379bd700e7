// Package ecs bridges pong match events into a [Donburi] world.
//
// A sink created with [NewDonburiSink] publishes every match event to
// [MatchEventType]. Systems subscribe with [Subscribe] and the host calls
// [Flush] once per tick, so subscribers see events in publish order after the
// frame that produced them.
//
//	world := donburi.NewWorld()
//	match.SetEventSink(ecs.NewDonburiSink(world))
//	ecs.Subscribe(world, func(e pong.Event) { ... })
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

import (
	"github.com/phanxgames/pong"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MatchEventType is the Donburi event type carrying pong match events.
var MatchEventType = events.NewEventType[pong.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued until the next Flush.
func NewDonburiSink(world donburi.World) pong.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event pong.Event) {
	MatchEventType.Publish(s.world, event)
}

// Subscribe registers fn for every match event published to world.
func Subscribe(world donburi.World, fn func(pong.Event)) {
	MatchEventType.Subscribe(world, func(_ donburi.World, e pong.Event) {
		fn(e)
	})
}

// Flush delivers all queued match events to their subscribers.
func Flush(world donburi.World) {
	MatchEventType.ProcessEvents(world)
}
