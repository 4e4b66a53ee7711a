package sim

import (
	"slices"
	"time"
)

// Frame is an independent copy of the visible state after one tick.
type Frame struct {
	Tick      int
	Timestamp time.Time
	Width     float64
	Height    float64

	Player    Player
	Bullets   []Bullet
	Asteroids []Asteroid
	Enemies   []Enemy
	PowerUps  []PowerUp
	Particles []Particle
	Boss      *Boss

	Score     int
	Level     int
	Lives     int
	EasterEgg bool
}

// EpicMoment is a noteworthy event kept for the replay screen.
type EpicMoment struct {
	Label     string
	Timestamp time.Time
	Score     int
	Level     int
}

// Recorder keeps the most recent frames of a run in a ring buffer,
// plus a short log of epic moments.
type Recorder struct {
	frames    []Frame
	head      int // Index of the oldest frame
	count     int
	recording bool

	moments    []EpicMoment
	momentsCap int
}

// NewRecorder creates a recorder holding up to capacity frames and
// momentsCap epic moments.
func NewRecorder(capacity, momentsCap int) *Recorder {
	return &Recorder{
		frames:     make([]Frame, max(capacity, 1)),
		momentsCap: max(momentsCap, 1),
	}
}

// Start clears previous data and begins recording.
func (r *Recorder) Start() {
	clear(r.frames)
	r.head = 0
	r.count = 0
	r.moments = nil
	r.recording = true
}

// Stop ends recording. Recorded data stays available.
func (r *Recorder) Stop() {
	r.recording = false
}

// Recording reports whether frames are being captured.
func (r *Recorder) Recording() bool {
	return r.recording
}

// Capacity returns the maximum number of frames kept.
func (r *Recorder) Capacity() int {
	return len(r.frames)
}

// Len returns the number of frames held.
func (r *Recorder) Len() int {
	return r.count
}

// Capture snapshots the state if recording is active.
func (r *Recorder) Capture(s *State) {
	if !r.recording {
		return
	}
	r.Append(s.Snapshot())
}

// Append adds a frame, evicting the oldest one when full.
func (r *Recorder) Append(f Frame) {
	if r.count < len(r.frames) {
		r.frames[(r.head+r.count)%len(r.frames)] = f
		r.count++
		return
	}
	r.frames[r.head] = f
	r.head = (r.head + 1) % len(r.frames)
}

// Frame returns the i-th frame, oldest first.
func (r *Recorder) Frame(i int) (Frame, bool) {
	if i < 0 || i >= r.count {
		return Frame{}, false
	}
	return r.frames[(r.head+i)%len(r.frames)], true
}

// Frames returns the held frames, oldest first.
func (r *Recorder) Frames() []Frame {
	out := make([]Frame, 0, r.count)
	for i := 0; i < r.count; i++ {
		f, _ := r.Frame(i)
		out = append(out, f)
	}
	return out
}

// Mark appends an epic moment, dropping the oldest beyond capacity.
func (r *Recorder) Mark(m EpicMoment) {
	r.moments = append(r.moments, m)
	if len(r.moments) > r.momentsCap {
		r.moments = slices.Delete(r.moments, 0, len(r.moments)-r.momentsCap)
	}
}

// Moments returns a copy of the epic moment log, oldest first.
func (r *Recorder) Moments() []EpicMoment {
	return slices.Clone(r.moments)
}

// Snapshot returns a deep copy of the state for rendering or recording.
// Later changes to the live state never reach the copy.
func (s *State) Snapshot() Frame {
	f := Frame{
		Tick:      s.Tick,
		Timestamp: s.clock(),
		Width:     s.Width,
		Height:    s.Height,
		Player:    s.Player,
		Bullets:   slices.Clone(s.Bullets),
		Asteroids: slices.Clone(s.Asteroids),
		Enemies:   slices.Clone(s.Enemies),
		PowerUps:  slices.Clone(s.PowerUps),
		Particles: slices.Clone(s.Particles),
		Score:     s.Score,
		Level:     s.Level,
		Lives:     s.Lives,
		EasterEgg: s.EasterEgg,
	}
	if s.Boss != nil {
		b := *s.Boss
		f.Boss = &b
	}
	return f
}
