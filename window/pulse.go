package window

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/pong"
)

const (
	pulsePeak     = 1.6
	pulseDuration = 0.4 // seconds
)

// pulse scales a score up and eases it back to normal size.
type pulse struct {
	tween *gween.Tween
	value float64
}

// pulseSet holds the active pulse per draw tag. There is no global
// animation manager; the game calls update once per tick.
type pulseSet map[pong.Tag]*pulse

// start (re)starts the pulse for tag at its peak.
func (ps pulseSet) start(tag pong.Tag) {
	ps[tag] = &pulse{
		tween: gween.New(pulsePeak, 1, pulseDuration, ease.OutQuad),
		value: pulsePeak,
	}
}

// update advances every pulse by dt seconds and drops finished ones.
func (ps pulseSet) update(dt float32) {
	for tag, p := range ps {
		val, finished := p.tween.Update(dt)
		p.value = float64(val)
		if finished {
			delete(ps, tag)
		}
	}
}

// scale returns the current scale for tag, 1 when it is not pulsing.
func (ps pulseSet) scale(tag pong.Tag) float64 {
	if p, ok := ps[tag]; ok {
		return p.value
	}
	return 1
}
