package core

import "time"

// RuntimeConfig contains settings the platform passes to scenes and the
// frame driver at startup.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in character cells
	ScreenH  int // Terminal height in character cells
	TickRate int // Frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameDuration returns the target duration of one frame.
// Non-positive tick rates fall back to 60 frames per second.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
