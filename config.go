package pong

import (
	"errors"
	"fmt"
)

// Config holds the court constants. All distances are in canvas pixels and
// all speeds in pixels per frame.
type Config struct {
	PaddleWidth  float64
	PaddleHeight float64
	// PaddleInset is the horizontal gap between a side wall and its paddle.
	PaddleInset float64
	// PaddleSpeed is the per-frame step of both the player and the opponent.
	PaddleSpeed float64

	BallSize  float64
	BallSpeed float64

	// BounceJitter bounds the random vertical kick added on a paddle hit.
	BounceJitter float64

	// ScaleSpeed multiplies BallSpeed by width/ReferenceWidth so a rally
	// takes the same number of frames on any canvas width. When false the
	// ball always travels BallSpeed pixels per frame.
	ScaleSpeed     bool
	ReferenceWidth float64
}

// DefaultConfig returns the classic court.
func DefaultConfig() Config {
	return Config{
		PaddleWidth:    15,
		PaddleHeight:   90,
		PaddleInset:    50,
		PaddleSpeed:    8,
		BallSize:       15,
		BallSpeed:      7,
		BounceJitter:   2,
		ScaleSpeed:     true,
		ReferenceWidth: 800,
	}
}

// Validate reports the first field that cannot produce a playable court.
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"paddle width", c.PaddleWidth},
		{"paddle height", c.PaddleHeight},
		{"paddle speed", c.PaddleSpeed},
		{"ball size", c.BallSize},
		{"ball speed", c.BallSpeed},
	}
	for _, ch := range checks {
		if ch.v <= 0 {
			return fmt.Errorf("pong: %s must be positive, got %v", ch.name, ch.v)
		}
	}
	if c.PaddleInset < 0 {
		return fmt.Errorf("pong: paddle inset must not be negative, got %v", c.PaddleInset)
	}
	if c.BounceJitter < 0 {
		return fmt.Errorf("pong: bounce jitter must not be negative, got %v", c.BounceJitter)
	}
	if c.ScaleSpeed && c.ReferenceWidth <= 0 {
		return errors.New("pong: reference width must be positive when speed scaling is enabled")
	}
	return nil
}

// BallSpeedFor returns the ball speed magnitude for a canvas of the given width.
func (c Config) BallSpeedFor(width float64) float64 {
	if !c.ScaleSpeed || c.ReferenceWidth <= 0 {
		return c.BallSpeed
	}
	return c.BallSpeed * width / c.ReferenceWidth
}
