// Package audio plays short synthesized blips for match events.
package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/pong"
)

// SampleRate is the rate every tone is generated at.
const SampleRate = beep.SampleRate(44100)

// Tone is a sine blip.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	toneWall     = Tone{Freq: 440, Duration: 40 * time.Millisecond}
	tonePaddle   = Tone{Freq: 880, Duration: 50 * time.Millisecond}
	tonePlayer   = Tone{Freq: 220, Duration: 250 * time.Millisecond}
	toneOpponent = Tone{Freq: 165, Duration: 250 * time.Millisecond}
)

// ToneFor returns the tone for a match event. Events without a sound report
// false.
func ToneFor(e pong.Event) (Tone, bool) {
	switch e.Type {
	case pong.EventWallBounce:
		return toneWall, true
	case pong.EventPaddleHit:
		return tonePaddle, true
	case pong.EventPointScored:
		if e.Side == pong.SidePlayer {
			return tonePlayer, true
		}
		return toneOpponent, true
	}
	return Tone{}, false
}

// Bank turns match events into streamers and hands them to a play function.
type Bank struct {
	play  func(...beep.Streamer)
	muted atomic.Bool
	volume float64 // gain in powers of two
}

// New creates a bank that plays through play. Tests pass a recorder;
// Init passes speaker.Play.
func New(play func(...beep.Streamer)) *Bank {
	return &Bank{play: play, volume: -2}
}

// Init opens the default speaker with a 100 ms buffer and returns a bank
// playing through it.
func Init() (*Bank, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return New(speaker.Play), nil
}

// SetMuted silences or restores the bank.
func (b *Bank) SetMuted(muted bool) {
	b.muted.Store(muted)
}

// Muted reports whether the bank is silenced.
func (b *Bank) Muted() bool {
	return b.muted.Load()
}

// OnEvent plays the tone for e, if it has one.
func (b *Bank) OnEvent(e pong.Event) {
	if b.muted.Load() {
		return
	}
	t, ok := ToneFor(e)
	if !ok {
		return
	}
	s, err := b.Streamer(t)
	if err != nil {
		return
	}
	b.play(s)
}

// Streamer builds a finite streamer for t.
func (b *Bank) Streamer(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %v Hz: %w", t.Freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(SampleRate.N(t.Duration), sine),
		Base:     2,
		Volume:   b.volume,
	}, nil
}
