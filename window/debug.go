package window

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing. Only populated when RunConfig.Debug is
// set.
type debugStats struct {
	simTime      time.Duration
	drawTime     time.Duration
	commandCount int
}

// debugLog prints timing stats to stderr.
func (g *Game) debugLog() {
	s := g.match.State()
	_, _ = fmt.Fprintf(os.Stderr,
		"[pong] frame %d | sim: %v | draw: %v | commands: %d | score: %d-%d\n",
		s.Frame, g.stats.simTime, g.stats.drawTime, g.stats.commandCount,
		s.PlayerScore, s.OpponentScore)
}
