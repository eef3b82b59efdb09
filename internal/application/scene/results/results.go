// Package results shows the outcome of a completed level.
package results

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/gemrun/internal/application/scene"
)

var colorBG = color.RGBA{16, 16, 32, 255}

// Results displays a level score until the player continues
type Results struct {
	level   string
	score   int
	best    int
	newBest bool

	screenW, screenH int

	// next builds the following scene. Nil means the run is over.
	next scene.Factory
}

// New creates a results screen
func New(level string, score, best int, newBest bool, screenW, screenH int, next scene.Factory) *Results {
	return &Results{
		level:   level,
		score:   score,
		best:    best,
		newBest: newBest,
		screenW: screenW,
		screenH: screenH,
		next:    next,
	}
}

// Update waits for SPACE (implements scene.Scene)
func (r *Results) Update(dt float64) (scene.Scene, error) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return nil, nil
	}
	return r.Continue()
}

// Continue builds the next scene
func (r *Results) Continue() (scene.Scene, error) {
	if r.next == nil {
		return nil, nil
	}
	return r.next()
}

// Lines returns the text shown on screen
func (r *Results) Lines() []string {
	lines := []string{
		fmt.Sprintf("LEVEL %s COMPLETE", r.level),
		fmt.Sprintf("SCORE %d", r.score),
		fmt.Sprintf("BEST  %d", r.best),
	}
	if r.newBest {
		lines = append(lines, "NEW BEST!")
	}
	if r.next != nil {
		lines = append(lines, "SPACE to continue")
	} else {
		lines = append(lines, "All levels cleared")
	}
	return lines
}

// Draw renders the results
func (r *Results) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	lines := r.Lines()
	y := r.screenH/2 - len(lines)*8
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, r.screenW/2-len(line)*3, y)
		y += 16
	}
}

// OnEnter is called when entering this scene
func (r *Results) OnEnter() {}

// OnExit is called when leaving this scene
func (r *Results) OnExit() {}
