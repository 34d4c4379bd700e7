// Package pong is a two-paddle ball-bounce arcade game: a human-controlled
// paddle on the left, a reactive computer opponent on the right.
//
// The package holds only the simulation. A [Match] owns one [State] and
// advances it one frame per host tick; rendering is a separate pure step
// that turns a State into a list of [DrawCommand] values. Hosts live in
// sub-packages: [github.com/phanxgames/pong/window] runs the game in an
// Ebitengine window, [github.com/phanxgames/pong/term] in a terminal.
//
// # Quick start
//
//	m := pong.NewMatch(pong.DefaultConfig(), nil)
//	m.Resize(800, 600)
//	m.Start()
//
//	loop := pong.NewLoop(m)
//	for loop.Tick() {
//		cmds = pong.AppendDrawList(cmds[:0], m.State(), pong.DefaultDrawStyle())
//		// ... draw cmds ...
//	}
//
// # Frame step
//
// Every frame moves the player paddle by the current input intent, moves the
// opponent one step toward the ball, clamps both paddles to the court,
// moves the ball, reflects it off the top and bottom walls and off either
// paddle, and awards a point when it reaches a side wall. See [Step].
//
// # Input
//
// Input handlers only write the player's speed intent through
// [Match.Press], [Match.Release], [Match.PressKey] and [Match.ReleaseKey].
// Irrelevant keys are ignored silently.
//
// # Events
//
// Set an [EventSink] to observe bounces, points and lifecycle changes. The
// [github.com/phanxgames/pong/ecs] package bridges them into a Donburi world.
//
// # Randomness
//
// Serve directions and paddle bounce jitter come from an injected
// [RandomSource]; tests pass a fixed sequence to get exact velocities.
package pong
