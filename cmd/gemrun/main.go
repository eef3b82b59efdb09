package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gemrun/assets"
	"github.com/younwookim/gemrun/internal/application/game"
	"github.com/younwookim/gemrun/internal/application/scene"
	"github.com/younwookim/gemrun/internal/application/scene/playing"
	"github.com/younwookim/gemrun/internal/application/scene/results"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
	"github.com/younwookim/gemrun/internal/infrastructure/levelfile"
	"github.com/younwookim/gemrun/internal/infrastructure/persistence"
)

const (
	screenWidth  = 640
	screenHeight = 360
	windowScale  = 2
)

func main() {
	// Parse command line flags
	assetsFlag := flag.String("assets", "", "Asset directory with rules.json and levels/ (default: embedded assets)")
	levelFlag := flag.String("level", "", "Level file to start from (e.g., -level 1.tmx)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print the result")
	tpsFlag := flag.Int("tps", ebiten.DefaultTPS, "Simulation ticks per second")
	flag.Parse()

	fsys := assets.FS()
	if *assetsFlag != "" {
		fsys = os.DirFS(*assetsFlag)
	}

	rules, err := config.NewFSLoader(fsys, *assetsFlag).LoadRules()
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}

	if *replayFlag != "" {
		snap, err := runReplay(fsys, rules, *replayFlag)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(formatSnapshot(snap))
		return
	}

	names, err := assets.LevelNames(fsys)
	if err != nil {
		log.Fatalf("Failed to list levels: %v", err)
	}
	first, err := levelIndex(names, *levelFlag)
	if err != nil {
		log.Fatal(err)
	}

	var scores playing.ScoreBoard
	if s, err := persistence.Open("gemrun"); err != nil {
		log.Printf("Warning: best scores disabled: %v", err)
	} else {
		scores = s
	}

	c := &campaign{
		fsys:       fsys,
		rules:      rules,
		names:      names,
		scores:     scores,
		recordPath: *recordFlag,
		tps:        *tpsFlag,
	}
	initial, err := c.level(first)()
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	ebiten.SetWindowSize(screenWidth*windowScale, screenHeight*windowScale)
	ebiten.SetWindowTitle("Gem Run")
	ebiten.SetTPS(*tpsFlag)

	if err := ebiten.RunGame(game.New(initial, screenWidth, screenHeight, *tpsFlag)); err != nil {
		log.Fatal(err)
	}
}

// levelIndex finds the starting level, the first one when name is empty
func levelIndex(names []string, name string) (int, error) {
	if len(names) == 0 {
		return 0, fmt.Errorf("no levels found")
	}
	if name == "" {
		return 0, nil
	}
	for i, n := range names {
		if n == name || assets.LevelStem(n) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("level %q not found", name)
}

// campaign chains level scenes through results screens
type campaign struct {
	fsys       fs.FS
	rules      *config.Rules
	names      []string
	scores     playing.ScoreBoard
	recordPath string
	tps        int
}

// level returns a factory for the playing scene of level i
func (c *campaign) level(i int) scene.Factory {
	return func() (scene.Scene, error) {
		m, err := levelfile.Load(c.fsys, path.Join("levels", c.names[i]), c.rules)
		if err != nil {
			return nil, err
		}

		var next scene.Factory
		if i+1 < len(c.names) {
			next = c.level(i + 1)
		}

		return playing.New(c.rules, m, playing.Options{
			ScreenW:    screenWidth,
			ScreenH:    screenHeight,
			TPS:        c.tps,
			Scores:     c.scores,
			RecordPath: recordPathFor(c.recordPath, m.Cells.Name),
			OnComplete: func(done playing.Completion) scene.Scene {
				return results.New(done.Level, done.Score, done.Best, done.NewBest, screenWidth, screenHeight, next)
			},
		})
	}
}

// recordPathFor gives each level its own recording file
func recordPathFor(base, level string) string {
	if base == "" {
		return ""
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_" + level + ext
}
