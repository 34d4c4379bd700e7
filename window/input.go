package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pong"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

const (
	buttonSize   = 64
	buttonMargin = 16
)

// button identifies an on-screen control.
type button uint8

const (
	buttonNone button = iota
	buttonUp
	buttonDown
	buttonStart
)

// buttonLayout holds the on-screen control rectangles for a canvas size.
type buttonLayout struct {
	up, down, start pong.Rect
}

// layoutButtons places Up and Down side by side at the bottom centre and
// the Start button just below the middle of the court.
func layoutButtons(w, h float64) buttonLayout {
	y := h - buttonSize - buttonMargin
	return buttonLayout{
		up:    pong.Rect{X: w/2 - buttonSize - buttonMargin, Y: y, Width: buttonSize, Height: buttonSize},
		down:  pong.Rect{X: w/2 + buttonMargin, Y: y, Width: buttonSize, Height: buttonSize},
		start: pong.Rect{X: w/2 - 80, Y: h/2 + 10, Width: 160, Height: 48},
	}
}

// buttonAt hit-tests the controls visible in the current match state.
func (g *Game) buttonAt(x, y float64) button {
	lay := layoutButtons(float64(g.width), float64(g.height))
	if !g.match.Running() {
		if lay.start.Contains(x, y) {
			return buttonStart
		}
		return buttonNone
	}
	switch {
	case lay.up.Contains(x, y):
		return buttonUp
	case lay.down.Contains(x, y):
		return buttonDown
	}
	return buttonNone
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	target button // button hit at press time
}

// processInput handles mouse and touch input. An injected pointer event
// replaces the real mouse for the frame.
func (g *Game) processInput() {
	if !g.processInjectedInput() {
		g.processMousePointer()
	}
	g.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (g *Game) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (g *Game) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(g.prevTouchIDs[:0])
	g.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := g.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		g.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && !activeSlots[i] {
			ps := &g.pointers[i]
			if ps.down {
				g.processPointer(i, ps.lastX, ps.lastY, false)
			}
			g.touchUsed[i] = false
			g.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (g *Game) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && g.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !g.touchUsed[i] {
			g.touchUsed[i] = true
			g.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
// Up and Down act on press and release. Start acts as a click: pressed and
// released over the button.
func (g *Game) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &g.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.target = g.buttonAt(x, y)
		switch ps.target {
		case buttonUp:
			g.match.Press(pong.DirUp)
		case buttonDown:
			g.match.Press(pong.DirDown)
		}
	case !pressed && ps.down:
		// The release goes to the button the pointer pressed, wherever
		// the pointer is now.
		switch ps.target {
		case buttonUp:
			g.match.Release(pong.DirUp)
		case buttonDown:
			g.match.Release(pong.DirDown)
		case buttonStart:
			if g.buttonAt(x, y) == buttonStart {
				g.clickStart()
			}
		}
		ps.down = false
		ps.target = buttonNone
	}
	ps.lastX = x
	ps.lastY = y
}

// clickStart starts an idle match or resumes a paused one.
func (g *Game) clickStart() {
	if g.started {
		g.togglePause()
		return
	}
	g.start()
}
