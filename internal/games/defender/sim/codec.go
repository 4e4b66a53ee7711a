package sim

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// replayVersion is bumped when the encoded layout changes.
const replayVersion = 1

// Replay is the persisted form of a finished run's recording.
type Replay struct {
	Version int
	Seed    int64
	Summary Summary
	Frames  []Frame
	Moments []EpicMoment
}

// NewReplay packages the recording of a run.
func NewReplay(s *State, seed int64) Replay {
	return Replay{
		Version: replayVersion,
		Seed:    seed,
		Summary: s.Summary(),
		Frames:  s.Recorder.Frames(),
		Moments: s.Recorder.Moments(),
	}
}

// EncodeReplay serializes a replay with msgpack.
func EncodeReplay(r Replay) ([]byte, error) {
	data, err := msgpack.Marshal(&r)
	if err != nil {
		return nil, fmt.Errorf("sim: cannot encode replay: %w", err)
	}
	return data, nil
}

// DecodeReplay parses a replay produced by EncodeReplay.
func DecodeReplay(data []byte) (Replay, error) {
	var r Replay
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return Replay{}, fmt.Errorf("sim: cannot decode replay: %w", err)
	}
	if r.Version != replayVersion {
		return Replay{}, fmt.Errorf("sim: unsupported replay version %d", r.Version)
	}
	return r, nil
}
