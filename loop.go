package pong

// Loop adapts a host tick source (a display refresh callback or a ticker)
// to a Match. Each Tick advances one frame and then runs the frame hooks.
// Elapsed time between ticks is not measured.
type Loop struct {
	match *Match
	hooks []func(*State)
}

// NewLoop creates a loop driving m.
func NewLoop(m *Match) *Loop {
	return &Loop{match: m}
}

// Match returns the driven match.
func (l *Loop) Match() *Match {
	return l.match
}

// OnFrame registers fn to run after every advanced frame, in registration
// order. fn must not retain the state pointer.
func (l *Loop) OnFrame(fn func(*State)) {
	l.hooks = append(l.hooks, fn)
}

// Tick advances the match by one frame when it is running. It reports
// whether a frame was advanced; once the match stops, ticks are no-ops
// until it is started or resumed again.
func (l *Loop) Tick() bool {
	if !l.match.Running() {
		return false
	}
	l.match.AdvanceFrame()
	s := l.match.State()
	for _, fn := range l.hooks {
		fn(s)
	}
	return true
}
