package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/gemrun/internal/application/level"
	"github.com/younwookim/gemrun/internal/application/state"
	"github.com/younwookim/gemrun/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Move:  fi.M,
		Jump:  fi.J,
		Fire:  fi.X,
		Retry: fi.R,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Run feeds every recorded frame to a level built by build, at a fixed step
// of 1/TPS seconds (1/60 when the replay carries no rate), and returns the
// last snapshot. A Retry frame on a frozen level starts a new life, or
// rebuilds the level when its time ran out, before the frame is advanced.
func (r *Replayer) Run(build func() (*level.Level, error)) (level.Snapshot, error) {
	tps := r.data.TPS
	if tps <= 0 {
		tps = 60
	}
	dt := 1.0 / float64(tps)

	l, err := build()
	if err != nil {
		return level.Snapshot{}, err
	}

	var snap level.Snapshot
	for {
		in, ok := r.GetInput()
		if !ok {
			return snap, nil
		}
		if in.Retry && l.State() == state.StateFrozen {
			if l.Clock().Expired() {
				if l, err = build(); err != nil {
					return snap, fmt.Errorf("frame %d: %w", r.frame-1, err)
				}
			} else {
				l.StartNewLife()
			}
		}
		snap = l.Advance(dt, in)
	}
}

// CreateTestReplayData creates replay data for testing (actor holding one input)
func CreateTestReplayData(frames int, in system.InputState) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		Seed:      12345,
		Level:     "test",
		TPS:       60,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F: i,
			M: in.Move,
			J: in.Jump,
			X: in.Fire,
			R: in.Retry,
		}
	}

	return data
}
