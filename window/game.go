// Package window runs a pong match in an Ebitengine window.
//
// The simplest entry point is [Run]:
//
//	m := pong.NewMatch(pong.DefaultConfig(), nil)
//	if err := window.Run(m, window.RunConfig{Title: "Pong", Width: 800, Height: 600}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, create a [Game] with [New] and pass it to
// [ebiten.RunGame] yourself.
//
// # Controls
//
// Arrow keys move the paddle. Enter or Space starts a match, P pauses and
// resumes, F12 saves a screenshot and Escape quits. On touch screens the
// on-screen Up, Down and Start buttons do the same; the mouse drives them
// too.
package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/pong"
	"github.com/phanxgames/pong/ecs"
)

// RunConfig configures a window host.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// TPS sets ticks per second. Zero keeps Ebitengine's default of 60.
	TPS int
	// Debug logs per-frame simulation and draw timing to stderr.
	Debug bool
	// ScreenshotDir receives PNGs from F12 and script screenshot steps.
	// Defaults to "screenshots".
	ScreenshotDir string
	// Script, when set, replays scripted input one step per frame.
	Script *ScriptRunner
	// World receives match events. When nil the game creates its own.
	World donburi.World
	// OnFrame runs after every advanced frame.
	OnFrame func(*pong.State)
	Style   pong.DrawStyle
}

// Game implements ebiten.Game for a single match.
type Game struct {
	match *pong.Match
	loop  *pong.Loop
	world donburi.World
	cfg   RunConfig

	width, height int
	started       bool
	quit          bool

	cmds     []pong.DrawCommand
	renderer *renderer
	pulses   pulseSet
	fps      *fpsWidget

	runner          *ScriptRunner
	injectQueue     []syntheticPointerEvent
	screenshotQueue []string

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	stats debugStats
}

// New creates a game hosting m. The match's event sink is pointed at the
// game's Donburi world.
func New(m *pong.Match, cfg RunConfig) *Game {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	if cfg.Style == (pong.DrawStyle{}) {
		cfg.Style = pong.DefaultDrawStyle()
	}
	world := cfg.World
	if world == nil {
		world = donburi.NewWorld()
	}
	m.SetEventSink(ecs.NewDonburiSink(world))

	g := &Game{
		match:    m,
		loop:     pong.NewLoop(m),
		world:    world,
		cfg:      cfg,
		cmds:     make([]pong.DrawCommand, 0, 16),
		renderer: newRenderer(),
		runner:   cfg.Script,
		pulses:   make(pulseSet),
	}
	if cfg.OnFrame != nil {
		g.loop.OnFrame(cfg.OnFrame)
	}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	ecs.Subscribe(world, g.onEvent)
	return g
}

// Match returns the hosted match.
func (g *Game) Match() *pong.Match {
	return g.match
}

// World returns the Donburi world match events are published to.
func (g *Game) World() donburi.World {
	return g.world
}

// Layout reports the window's outside size as the canvas size and resizes
// the match when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.match.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Update handles input and advances the match by one frame.
func (g *Game) Update() error {
	if g.runner != nil {
		g.runner.step(g)
	}
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.processKeys()
	g.processInput()
	g.advance(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// advance ticks the match, delivers its events and steps the score pulses.
func (g *Game) advance(dt float32) {
	var t0 time.Time
	if g.cfg.Debug {
		t0 = time.Now()
	}
	g.loop.Tick()
	ecs.Flush(g.world)
	g.pulses.update(dt)
	if g.fps != nil {
		g.fps.update(float64(dt))
	}
	if g.cfg.Debug {
		g.stats.simTime = time.Since(t0)
	}
}

func (g *Game) processKeys() {
	keys := [...]struct {
		ek ebiten.Key
		k  pong.Key
	}{
		{ebiten.KeyArrowUp, pong.KeyUp},
		{ebiten.KeyArrowDown, pong.KeyDown},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.ek) {
			g.match.PressKey(k.k)
		}
		if inpututil.IsKeyJustReleased(k.ek) {
			g.match.ReleaseKey(k.k)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}
}

// start begins a fresh serve when the match is idle.
func (g *Game) start() {
	if g.match.Running() {
		return
	}
	g.started = true
	g.match.Start()
}

func (g *Game) togglePause() {
	switch {
	case g.match.Running():
		g.match.Stop()
	case g.started:
		g.match.Resume()
	}
}

func (g *Game) onEvent(e pong.Event) {
	if e.Type != pong.EventPointScored {
		return
	}
	tag := pong.TagPlayerScore
	if e.Side == pong.SideOpponent {
		tag = pong.TagOpponentScore
	}
	g.pulses.start(tag)
}

// Draw renders the court, the on-screen controls and overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.cfg.Debug {
		t0 = time.Now()
	}

	g.cmds = pong.AppendDrawList(g.cmds[:0], g.match.State(), g.cfg.Style)
	g.renderer.draw(screen, g.cmds, g.pulses)
	g.drawControls(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}

	if g.cfg.Debug {
		g.stats.drawTime = time.Since(t0)
		g.stats.commandCount = len(g.cmds)
		g.debugLog()
	}
	g.flushScreenshots(screen)
}

func (g *Game) drawControls(screen *ebiten.Image) {
	fg := g.cfg.Style.Foreground
	w, h := float64(g.width), float64(g.height)
	lay := layoutButtons(w, h)

	if g.match.Running() {
		g.renderer.button(screen, lay.up, fg, arrowUp)
		g.renderer.button(screen, lay.down, fg, arrowDown)
		return
	}

	msg := "PRESS ENTER OR TAP START"
	label := "START"
	if g.started {
		msg = "PAUSED"
		label = "RESUME"
	}
	g.renderer.label(screen, msg, pong.Vec2{X: w / 2, Y: h/2 - 20}, 24, fg)
	g.renderer.button(screen, lay.start, fg, arrowNone)
	c := lay.start.Center()
	g.renderer.label(screen, label, pong.Vec2{X: c.X, Y: c.Y + 8}, 20, fg)
}

// Run opens a resizable window and runs m until the window closes, Escape is
// pressed or a script quits.
func Run(m *pong.Match, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	g := New(m, cfg)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(g)
}
