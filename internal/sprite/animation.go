package sprite

import (
	"errors"
	"fmt"
	"time"
)

// Animation construction errors.
var (
	ErrNoFrames      = errors.New("sprite: animation has no frames")
	ErrFrameDuration = errors.New("sprite: frame duration must be positive")
)

// Animation cycles through frames at a fixed rate.
type Animation struct {
	name          string
	frames        []*Sprite
	frameDuration time.Duration
	current       int
	accumulated   time.Duration
}

// NewAnimation creates an animation positioned on its first frame.
func NewAnimation(name string, frames []*Sprite, frameDuration time.Duration) (*Animation, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoFrames, name)
	}
	if frameDuration <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrFrameDuration, name)
	}
	for i, f := range frames {
		if f == nil {
			return nil, fmt.Errorf("sprite: animation %q frame %d is nil", name, i)
		}
	}

	return &Animation{
		name:          name,
		frames:        frames,
		frameDuration: frameDuration,
	}, nil
}

// Name returns the animation name.
func (a *Animation) Name() string {
	return a.name
}

// Update accumulates elapsed time and advances one frame per full frame
// duration. A long tick advances several frames instead of dropping time.
func (a *Animation) Update(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}

	a.accumulated += elapsed
	for a.accumulated >= a.frameDuration {
		a.current = (a.current + 1) % len(a.frames)
		a.accumulated -= a.frameDuration
	}
}

// Current returns the active frame.
func (a *Animation) Current() *Sprite {
	return a.frames[a.current]
}

// Frame returns the index of the active frame.
func (a *Animation) Frame() int {
	return a.current
}

// FrameCount returns the number of frames.
func (a *Animation) FrameCount() int {
	return len(a.frames)
}

// FrameDuration returns how long each frame is shown.
func (a *Animation) FrameDuration() time.Duration {
	return a.frameDuration
}

// Accumulated returns time carried toward the next frame advance.
func (a *Animation) Accumulated() time.Duration {
	return a.accumulated
}

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	a.current = 0
	a.accumulated = 0
}

// Clone returns an independent animation sharing the same immutable frames.
func (a *Animation) Clone() *Animation {
	clone := *a
	return &clone
}
