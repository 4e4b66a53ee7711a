package sim

import (
	"context"
	"time"
)

// DefaultPlaybackFPS is the replay cadence.
const DefaultPlaybackFPS = 30

// Playback loops over a recorded frame sequence independently of any live run.
type Playback struct {
	frames []Frame
	pos    int
}

// NewPlayback creates a playback over frames. The slice is not copied;
// callers hand over recorded frames and must not modify them.
func NewPlayback(frames []Frame) *Playback {
	return &Playback{frames: frames}
}

// Len returns the number of frames in the loop.
func (p *Playback) Len() int {
	return len(p.frames)
}

// Position returns the index of the frame Next will return.
func (p *Playback) Position() int {
	return p.pos
}

// Next returns the current frame and moves forward, wrapping to the
// first frame after the last. It returns false when there is nothing to play.
func (p *Playback) Next() (Frame, bool) {
	if len(p.frames) == 0 {
		return Frame{}, false
	}
	if p.pos >= len(p.frames) {
		p.pos = 0
	}
	f := p.frames[p.pos]
	p.pos++
	return f, true
}

// Run emits frames at fps until ctx is done. It returns nil immediately
// for an empty playback and ctx.Err() otherwise.
func (p *Playback) Run(ctx context.Context, fps int, emit func(Frame)) error {
	if len(p.frames) == 0 {
		return nil
	}
	if fps <= 0 {
		fps = DefaultPlaybackFPS
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		f, _ := p.Next()
		emit(f)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
