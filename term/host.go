// Package term runs a pong match in a terminal using tcell.
//
// The court is rasterized at CellWidth by CellHeight canvas pixels per
// character. Terminals report no key-up, so an arrow key keeps the paddle
// moving for Options.HoldFrames ticks after the last press or repeat.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/pong"
	"github.com/phanxgames/pong/ecs"
)

// Options configures a terminal host.
type Options struct {
	// TPS is the number of frames per second. Defaults to 60.
	TPS int
	// HoldFrames is how many ticks an arrow press lasts without a repeat.
	// Defaults to 20.
	HoldFrames int
	// World receives match events. When nil the host creates its own.
	World donburi.World
	// OnFrame runs after every advanced frame.
	OnFrame func(*pong.State)
	Style   pong.DrawStyle
}

// Host drives a match on a tcell screen.
type Host struct {
	screen tcell.Screen
	match  *pong.Match
	loop   *pong.Loop
	world  donburi.World
	opts   Options

	canvas *Canvas
	cmds   []pong.DrawCommand

	held     pong.Key
	holdLeft int
	started  bool
}

// New creates a host for m on an initialized screen.
func New(screen tcell.Screen, m *pong.Match, opts Options) *Host {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.HoldFrames <= 0 {
		opts.HoldFrames = 20
	}
	if opts.Style == (pong.DrawStyle{}) {
		opts.Style = pong.DefaultDrawStyle()
	}
	world := opts.World
	if world == nil {
		world = donburi.NewWorld()
	}
	m.SetEventSink(ecs.NewDonburiSink(world))

	h := &Host{
		screen: screen,
		match:  m,
		loop:   pong.NewLoop(m),
		world:  world,
		opts:   opts,
		canvas: NewCanvas(0, 0),
		cmds:   make([]pong.DrawCommand, 0, 16),
	}
	if opts.OnFrame != nil {
		h.loop.OnFrame(opts.OnFrame)
	}
	return h
}

// World returns the Donburi world match events are published to.
func (h *Host) World() donburi.World {
	return h.world
}

// Canvas returns the last rasterized frame.
func (h *Host) Canvas() *Canvas {
	return h.canvas
}

// Resize reads the screen size and resizes the match to match it.
func (h *Host) Resize() {
	cols, rows := h.screen.Size()
	h.canvas.Reset(cols, rows)
	h.match.Resize(float64(cols*CellWidth), float64(rows*CellHeight))
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventResize:
		h.screen.Sync()
		h.Resize()
		h.Draw()
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.press(pong.KeyUp)
	case tcell.KeyDown:
		h.press(pong.KeyDown)
	case tcell.KeyEnter:
		h.start()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			h.start()
		case 'p', 'P':
			h.togglePause()
		}
	}
	return true
}

// press starts or extends a held arrow. Switching direction releases the
// previous one first.
func (h *Host) press(k pong.Key) {
	if h.held != pong.KeyOther && h.held != k {
		h.match.ReleaseKey(h.held)
	}
	h.match.PressKey(k)
	if !h.match.Running() {
		return
	}
	h.held = k
	h.holdLeft = h.opts.HoldFrames
}

func (h *Host) start() {
	if h.match.Running() {
		return
	}
	h.started = true
	h.match.Start()
}

func (h *Host) togglePause() {
	switch {
	case h.match.Running():
		h.match.Stop()
	case h.started:
		h.match.Resume()
	}
}

// Tick expires held keys, advances the match one frame, delivers its
// events and redraws.
func (h *Host) Tick() {
	if h.held != pong.KeyOther {
		h.holdLeft--
		if h.holdLeft <= 0 {
			h.match.ReleaseKey(h.held)
			h.held = pong.KeyOther
		}
	}
	h.loop.Tick()
	ecs.Flush(h.world)
	h.Draw()
}

// Draw rasterizes the current state and shows it.
func (h *Host) Draw() {
	h.cmds = pong.AppendDrawList(h.cmds[:0], h.match.State(), h.opts.Style)
	h.canvas.Rasterize(h.cmds)
	h.overlay()

	bg := color(h.canvas.Background)
	for row := 0; row < h.canvas.Rows; row++ {
		for col := 0; col < h.canvas.Cols; col++ {
			cell := h.canvas.At(col, row)
			style := tcell.StyleDefault.Background(bg).Foreground(color(cell.Color))
			h.screen.SetContent(col, row, cell.Rune, nil, style)
		}
	}
	h.screen.Show()
}

// overlay writes the idle and paused prompts onto the canvas.
func (h *Host) overlay() {
	if h.match.Running() {
		return
	}
	msg := "PRESS ENTER TO START  ·  ARROWS MOVE  ·  Q QUITS"
	if h.started {
		msg = "PAUSED  ·  P RESUMES"
	}
	s := h.match.State()
	h.canvas.text(msg, pong.Vec2{X: s.Width / 2, Y: s.Height / 2}, 0, h.opts.Style.Foreground)
}

// Run polls terminal events and ticks the match at Options.TPS until the
// user quits or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	h.Resize()
	h.Draw()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(h.opts.TPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Tick()
		}
	}
}

func color(c pong.Color) tcell.Color {
	r, g, b, _ := c.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
