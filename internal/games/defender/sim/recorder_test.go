package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-defender/internal/core"
)

func TestRecorderCapacity(t *testing.T) {
	r := NewRecorder(300, 3)
	r.Start()

	for i := 1; i <= 301; i++ {
		r.Append(Frame{Tick: i})
	}

	if r.Len() != 300 {
		t.Fatalf("Len() = %d, expected 300", r.Len())
	}
	frames := r.Frames()
	for i, f := range frames {
		if f.Tick != i+2 {
			t.Fatalf("Frames()[%d].Tick = %d, expected %d", i, f.Tick, i+2)
		}
	}
	if _, ok := r.Frame(300); ok {
		t.Error("Frame(300) should be out of range")
	}
}

func TestRecorderStartStop(t *testing.T) {
	s := newQuietState()
	s.Step(Input{})
	s.Step(Input{})
	if s.Recorder.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", s.Recorder.Len())
	}

	s.Recorder.Stop()
	s.Step(Input{})
	if s.Recorder.Len() != 2 {
		t.Errorf("Len() after Stop = %d, expected 2", s.Recorder.Len())
	}

	s.Recorder.Start()
	if s.Recorder.Len() != 0 || len(s.Recorder.Moments()) != 0 {
		t.Error("Start() should clear previous frames and moments")
	}
}

func TestEpicMomentsCapacity(t *testing.T) {
	r := NewRecorder(10, 3)
	for _, label := range []string{"a", "b", "c", "d", "e"} {
		r.Mark(EpicMoment{Label: label})
	}

	moments := r.Moments()
	if len(moments) != 3 {
		t.Fatalf("len(Moments()) = %d, expected 3", len(moments))
	}
	for i, want := range []string{"c", "d", "e"} {
		if moments[i].Label != want {
			t.Errorf("Moments()[%d] = %q, expected %q", i, moments[i].Label, want)
		}
	}

	// Returned slice is a copy
	moments[0].Label = "changed"
	if r.Moments()[0].Label != "c" {
		t.Error("Moments() exposed internal storage")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := newQuietState()
	s.Asteroids = []Asteroid{{Box: core.NewBox(10, 10, 30, 30), Health: 2}}
	s.Particles = []Particle{{X: 1, Life: 5}}
	s.spawnBoss()

	f := s.Snapshot()

	s.Asteroids[0].X = 500
	s.Asteroids[0].Health = 1
	s.Particles[0].Life = 0
	s.Boss.Health = 3
	s.Player.X = 0

	if f.Asteroids[0].X != 10 || f.Asteroids[0].Health != 2 {
		t.Errorf("frame asteroid changed: %+v", f.Asteroids[0])
	}
	if f.Particles[0].Life != 5 {
		t.Errorf("frame particle changed: %+v", f.Particles[0])
	}
	if f.Boss.Health != 25 {
		t.Errorf("frame boss health = %d, expected 25", f.Boss.Health)
	}
	if f.Player.X != 375 {
		t.Errorf("frame player X = %v, expected 375", f.Player.X)
	}
	if !f.Timestamp.Equal(testEpoch) {
		t.Errorf("frame timestamp = %v, expected %v", f.Timestamp, testEpoch)
	}
}

func TestPlaybackLoops(t *testing.T) {
	p := NewPlayback([]Frame{{Tick: 1}, {Tick: 2}, {Tick: 3}})

	for i, want := range []int{1, 2, 3, 1, 2, 3, 1} {
		f, ok := p.Next()
		if !ok || f.Tick != want {
			t.Errorf("Next() #%d = %d, %v, expected %d", i, f.Tick, ok, want)
		}
	}

	empty := NewPlayback(nil)
	if _, ok := empty.Next(); ok {
		t.Error("Next() on empty playback = ok, expected false")
	}
	if err := empty.Run(context.Background(), 30, func(Frame) {}); err != nil {
		t.Errorf("Run() on empty playback = %v, expected nil", err)
	}
}

func TestPlaybackRunStopsOnCancel(t *testing.T) {
	p := NewPlayback([]Frame{{Tick: 1}, {Tick: 2}, {Tick: 3}})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got []int
	err := p.Run(ctx, 1000, func(f Frame) {
		got = append(got, f.Tick)
		if len(got) == 5 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if len(got) < 5 {
		t.Fatalf("emitted %d frames, expected at least 5", len(got))
	}
	for i, tick := range got {
		if tick != i%3+1 {
			t.Errorf("frame %d tick = %d, expected %d", i, tick, i%3+1)
		}
	}
}
