package pong

// Ball is the ball's bounding box plus its per-frame velocity.
type Ball struct {
	Rect
	VX, VY float64
}

// State is the complete mutable state of a match. Step and Rebuild are pure
// functions of a State, its Config and a RandomSource.
type State struct {
	Width, Height float64

	Player   Rect
	Opponent Rect
	Ball     Ball

	// PlayerSpeed is the input intent: -PaddleSpeed, 0 or +PaddleSpeed.
	PlayerSpeed float64

	PlayerScore   int
	OpponentScore int

	Running bool
	Frame   uint64
}

// Rebuild places both paddles and the ball at their starting positions for
// the current canvas size and serves the ball in a random diagonal.
func Rebuild(s *State, cfg *Config, rng RandomSource) {
	top := s.Height/2 - cfg.PaddleHeight/2
	maxY := s.Height - cfg.PaddleHeight

	s.Player = Rect{
		X:      cfg.PaddleInset,
		Y:      clamp(top, 0, maxY),
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
	}
	s.Opponent = Rect{
		X:      s.Width - cfg.PaddleInset - cfg.PaddleWidth,
		Y:      clamp(top, 0, maxY),
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
	}
	s.Ball = Ball{Rect: Rect{Width: cfg.BallSize, Height: cfg.BallSize}}
	centerBall(s)

	speed := cfg.BallSpeedFor(s.Width)
	s.Ball.VX = speed * sign(rng)
	s.Ball.VY = speed * sign(rng)
}

func centerBall(s *State) {
	s.Ball.X = s.Width/2 - s.Ball.Width/2
	s.Ball.Y = s.Height/2 - s.Ball.Height/2
}

// serve recentres the ball after a point and sends it toward receiver.
func serve(s *State, cfg *Config, rng RandomSource, receiver Side) {
	centerBall(s)
	speed := cfg.BallSpeedFor(s.Width)
	s.Ball.VY = speed * sign(rng)
	if receiver == SidePlayer {
		s.Ball.VX = -speed
	} else {
		s.Ball.VX = speed
	}
}

// Step advances s by one frame. It does nothing while s is not running.
// emit may be nil.
func Step(s *State, cfg *Config, rng RandomSource, emit func(Event)) {
	if !s.Running {
		return
	}
	s.Frame++
	if emit == nil {
		emit = func(Event) {}
	}

	s.Player.Y += s.PlayerSpeed
	trackBall(s, cfg)

	maxY := s.Height - cfg.PaddleHeight
	s.Player.Y = clamp(s.Player.Y, 0, maxY)
	s.Opponent.Y = clamp(s.Opponent.Y, 0, maxY)

	b := &s.Ball
	b.X += b.VX
	b.Y += b.VY

	// Reflect only while heading into the wall so a ball that is still
	// overlapping the edge next frame keeps its new direction.
	switch {
	case b.Y <= 0 && b.VY < 0:
		b.VY = -b.VY
		emit(s.event(EventWallBounce, SideNone))
	case b.Bottom() >= s.Height && b.VY > 0:
		b.VY = -b.VY
		emit(s.event(EventWallBounce, SideNone))
	}

	hitPlayer := b.Rect.Intersects(s.Player)
	if hitPlayer || b.Rect.Intersects(s.Opponent) {
		b.VX = -b.VX
		b.VY += (rng.Float64()*2 - 1) * cfg.BounceJitter
		side := SideOpponent
		if hitPlayer {
			side = SidePlayer
		}
		emit(s.event(EventPaddleHit, side))
	}

	if b.X <= 0 {
		s.OpponentScore++
		serve(s, cfg, rng, SideOpponent)
		emit(s.event(EventPointScored, SideOpponent))
	}
	if b.Right() >= s.Width {
		s.PlayerScore++
		serve(s, cfg, rng, SidePlayer)
		emit(s.event(EventPointScored, SidePlayer))
	}
}

// trackBall moves the opponent one step toward the ball's vertical centre.
// The two checks run in sequence, so a step that overshoots the centre is
// undone in the same frame.
func trackBall(s *State, cfg *Config) {
	target := s.Ball.Center().Y
	if s.Opponent.Center().Y < target && s.Opponent.Bottom() < s.Height {
		s.Opponent.Y += cfg.PaddleSpeed
	}
	if s.Opponent.Center().Y > target && s.Opponent.Y > 0 {
		s.Opponent.Y -= cfg.PaddleSpeed
	}
}

func (s *State) event(t EventType, side Side) Event {
	return Event{
		Type:          t,
		Side:          side,
		Frame:         s.Frame,
		PlayerScore:   s.PlayerScore,
		OpponentScore: s.OpponentScore,
	}
}

// Match owns a State together with the configuration, random source and
// event sink it is simulated with. A Match is not safe for concurrent use;
// hosts drive it from their tick goroutine.
type Match struct {
	cfg   Config
	rng   RandomSource
	state State
	sink  EventSink
}

// NewMatch creates an idle match with a zero-sized canvas. Call Resize with
// the surface size before Start. A nil rng uses a randomly seeded source.
func NewMatch(cfg Config, rng RandomSource) *Match {
	if rng == nil {
		rng = NewRandomSource(0)
	}
	return &Match{cfg: cfg, rng: rng}
}

// Config returns the court configuration.
func (m *Match) Config() Config {
	return m.cfg
}

// State returns the live state. Writes through the pointer are seen by the
// next frame.
func (m *Match) State() *State {
	return &m.state
}

// Snapshot returns a copy of the current state.
func (m *Match) Snapshot() State {
	return m.state
}

// Running reports whether frames currently advance.
func (m *Match) Running() bool {
	return m.state.Running
}

// SetEventSink sets the receiver of match events. nil disables events.
func (m *Match) SetEventSink(sink EventSink) {
	m.sink = sink
}

// Start sets the match running and rebuilds every entity at the current
// canvas size. Scores carry over.
func (m *Match) Start() {
	m.state.Running = true
	Rebuild(&m.state, &m.cfg, m.rng)
	m.emit(m.state.event(EventStarted, SideNone))
}

// Stop halts the match. Entities stay where they are.
func (m *Match) Stop() {
	if !m.state.Running {
		return
	}
	m.state.Running = false
	m.emit(m.state.event(EventStopped, SideNone))
}

// Resume continues a stopped match without rebuilding it.
func (m *Match) Resume() {
	if m.state.Running {
		return
	}
	m.state.Running = true
	m.emit(m.state.event(EventStarted, SideNone))
}

// Resize records a new canvas size. A running match is rebuilt from scratch
// at the new size; an idle one only stores it.
func (m *Match) Resize(width, height float64) {
	m.state.Width = width
	m.state.Height = height
	if m.state.Running {
		Rebuild(&m.state, &m.cfg, m.rng)
	}
	m.emit(m.state.event(EventResized, SideNone))
}

// AdvanceFrame runs one simulation step. It is a no-op while stopped.
func (m *Match) AdvanceFrame() {
	Step(&m.state, &m.cfg, m.rng, m.emit)
}

func (m *Match) emit(e Event) {
	if m.sink != nil {
		m.sink.EmitEvent(e)
	}
}
