package main

import (
	"fmt"
	"io/fs"
	"math"
	"path"

	"github.com/younwookim/gemrun/assets"
	"github.com/younwookim/gemrun/internal/application/level"
	"github.com/younwookim/gemrun/internal/application/replay"
	"github.com/younwookim/gemrun/internal/application/system"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
	"github.com/younwookim/gemrun/internal/infrastructure/levelfile"
)

// runReplay plays a recording against its level without a window
func runReplay(fsys fs.FS, rules *config.Rules, replayPath string) (level.Snapshot, error) {
	data, err := replay.LoadReplay(replayPath)
	if err != nil {
		return level.Snapshot{}, err
	}
	return simulate(fsys, rules, *data)
}

// simulate rebuilds the recorded level with the recorded seed and feeds it every frame,
// applying recorded retries the way the playing scene does
func simulate(fsys fs.FS, rules *config.Rules, data replay.ReplayData) (level.Snapshot, error) {
	names, err := assets.LevelNames(fsys)
	if err != nil {
		return level.Snapshot{}, err
	}
	i, err := levelIndex(names, data.Level)
	if err != nil {
		return level.Snapshot{}, err
	}
	m, err := levelfile.Load(fsys, path.Join("levels", names[i]), rules)
	if err != nil {
		return level.Snapshot{}, err
	}

	seeded := *rules
	seeded.Level.Seed = data.Seed
	build := func() (*level.Level, error) {
		layout, err := level.BuildLayout(m.Cells, m.Mappings, &seeded)
		if err != nil {
			return nil, err
		}
		actor := system.NewRunnerActor(&seeded.Runner, layout.Grid, layout.Start)
		return level.New(layout, &seeded, actor, nil), nil
	}

	return replay.NewReplayer(data).Run(build)
}

func formatSnapshot(s level.Snapshot) string {
	return fmt.Sprintf("state=%s score=%d remaining=%ds elapsed=%.2fs",
		s.State, s.Score, int(math.Ceil(s.Remaining.Seconds())), s.Elapsed.Seconds())
}
