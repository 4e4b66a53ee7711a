package sim

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-defender/internal/config"
)

func TestReplayEncoding(t *testing.T) {
	s := New(config.DefaultDefenderConfig(), Options{Seed: 5, Clock: fixedClock})
	s.ActivateEasterEgg()
	for rep := 0; rep < 400; rep++ {
		s.Step(Input{})
	}

	replay := NewReplay(s, 5)
	data, err := EncodeReplay(replay)
	if err != nil {
		t.Fatalf("EncodeReplay() error = %v", err)
	}

	decoded, err := DecodeReplay(data)
	if err != nil {
		t.Fatalf("DecodeReplay() error = %v", err)
	}

	if len(decoded.Frames) != 300 {
		t.Errorf("len(Frames) = %d, expected 300", len(decoded.Frames))
	}
	if decoded.Summary != replay.Summary {
		t.Errorf("Summary = %+v, expected %+v", decoded.Summary, replay.Summary)
	}
	last := decoded.Frames[len(decoded.Frames)-1]
	want := replay.Frames[len(replay.Frames)-1]
	if last.Tick != want.Tick || last.Score != want.Score || len(last.Asteroids) != len(want.Asteroids) {
		t.Errorf("last frame = tick %d score %d, expected tick %d score %d", last.Tick, last.Score, want.Tick, want.Score)
	}
	if len(want.Asteroids) > 0 && last.Asteroids[0].X != want.Asteroids[0].X {
		t.Errorf("asteroid X = %v, expected %v", last.Asteroids[0].X, want.Asteroids[0].X)
	}
	if !last.Timestamp.Equal(testEpoch) {
		t.Errorf("Timestamp = %v, expected %v", last.Timestamp, testEpoch)
	}
	if len(decoded.Moments) == 0 || len(decoded.Moments) != len(replay.Moments) {
		t.Fatalf("len(Moments) = %d, expected %d", len(decoded.Moments), len(replay.Moments))
	}
	for i := range replay.Moments {
		if decoded.Moments[i].Label != replay.Moments[i].Label {
			t.Errorf("Moments[%d] = %q, expected %q", i, decoded.Moments[i].Label, replay.Moments[i].Label)
		}
	}
}

func TestDecodeReplayErrors(t *testing.T) {
	if _, err := DecodeReplay([]byte{0xc1}); err == nil {
		t.Error("DecodeReplay(garbage) = nil error, expected error")
	}

	data, err := msgpack.Marshal(&Replay{Version: 99})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeReplay(data); err == nil {
		t.Error("DecodeReplay(unknown version) = nil error, expected error")
	}
}
