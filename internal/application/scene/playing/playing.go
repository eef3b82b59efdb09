// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/gemrun/internal/application/level"
	"github.com/younwookim/gemrun/internal/application/replay"
	"github.com/younwookim/gemrun/internal/application/scene"
	"github.com/younwookim/gemrun/internal/application/state"
	"github.com/younwookim/gemrun/internal/application/system"
	"github.com/younwookim/gemrun/internal/domain/entity"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
	"github.com/younwookim/gemrun/internal/infrastructure/eventbus"
	"github.com/younwookim/gemrun/internal/infrastructure/levelfile"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorSolid      = color.RGBA{80, 80, 100, 255}
	colorPlatform   = color.RGBA{120, 100, 70, 255}
	colorExit       = color.RGBA{90, 200, 250, 255}
	colorRunner     = color.RGBA{100, 200, 100, 255}
	colorRunnerDead = color.RGBA{120, 120, 120, 255}
	colorGem        = color.RGBA{255, 215, 0, 255}
	colorProjectile = color.RGBA{255, 255, 255, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 150}

	enemyColors = map[string]color.RGBA{
		"MonsterA": {200, 100, 100, 255},
		"MonsterB": {200, 140, 60, 255},
		"MonsterC": {160, 90, 200, 255},
		"MonsterD": {90, 160, 90, 255},
	}
)

// ScoreBoard keeps the best score per level
type ScoreBoard interface {
	Best(level string) (int, error)
	Submit(level string, score int) (bool, error)
}

// Completion is what the scene hands to the next scene once a level is complete
type Completion struct {
	Level   string
	Score   int
	Best    int
	NewBest bool
}

// Options configures a Playing scene
type Options struct {
	ScreenW int
	ScreenH int
	TPS     int

	// Scores may be nil, in which case best scores are not kept
	Scores ScoreBoard
	// RecordPath enables input recording when not empty
	RecordPath string
	// OnComplete builds the scene shown after the level is complete. May be nil.
	OnComplete func(Completion) scene.Scene
}

// Playing is the main gameplay scene
type Playing struct {
	rules *config.Rules
	m     *levelfile.Map
	opts  Options

	level  *level.Level
	actor  *system.RunnerActor
	input  *system.InputSystem
	bus    *eventbus.Bus
	paused bool
	done   bool

	// HUD feedback
	message      string
	messageTimer float64
	kills        int
	gems         int
	best         int

	recorder *replay.Recorder
}

// New creates a new Playing scene for a loaded level map
func New(rules *config.Rules, m *levelfile.Map, opts Options) (*Playing, error) {
	p := &Playing{
		rules: rules,
		m:     m,
		opts:  opts,
		input: system.NewInputSystem(&rules.Runner),
	}
	if err := p.start(); err != nil {
		return nil, err
	}

	if opts.Scores != nil {
		best, err := opts.Scores.Best(m.Cells.Name)
		if err != nil {
			log.Printf("Warning: Could not load best score: %v", err)
		}
		p.best = best
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(rules.Level.Seed, m.Cells.Name, opts.TPS)
		log.Printf("Recording enabled: %s (level: %s)", opts.RecordPath, m.Cells.Name)
	}
	return p, nil
}

// start builds a fresh level from the map
func (p *Playing) start() error {
	layout, err := level.BuildLayout(p.m.Cells, p.m.Mappings, p.rules)
	if err != nil {
		return fmt.Errorf("build level %s: %w", p.m.Cells.Name, err)
	}

	p.bus = eventbus.New()
	p.bus.OnCollected(func(e system.CollectedEvent) {
		p.gems++
		p.flash(fmt.Sprintf("+%d", e.Points))
	})
	p.bus.OnHostileKilled(func(e system.HostileKilledEvent) {
		p.kills++
		p.flash(fmt.Sprintf("%s defeated (%s)", e.Variant, e.Cause))
	})
	p.bus.OnExitReached(func(system.ExitReachedEvent) {
		p.flash("Level complete!")
	})
	p.bus.OnActorKilled(func(e system.ActorKilledEvent) {
		p.flash(fmt.Sprintf("You died (%s). Press SPACE", e.Cause))
	})

	p.actor = system.NewRunnerActor(&p.rules.Runner, layout.Grid, layout.Start)
	p.level = level.New(layout, p.rules, p.actor, p.bus)
	p.gems, p.kills = 0, 0
	p.done = false
	return nil
}

func (p *Playing) flash(msg string) {
	p.message = msg
	p.messageTimer = 2
}

// Update proceeds the level (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if p.paused {
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := p.input.GetInput()
	return p.step(dt, input)
}

// step advances the level with one input frame.
// Every frame is recorded, so replays see deaths, retries and the exit drain.
func (p *Playing) step(dt float64, input system.InputState) (scene.Scene, error) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	if input.Retry && p.level.State() == state.StateFrozen {
		if err := p.retry(); err != nil {
			return nil, err
		}
	}

	snap := p.level.Advance(dt, input)
	p.bus.Flush()

	if snap.Spawn == system.SpawnRejected {
		pos := p.actor.Position()
		log.Printf("Projectile spawn rejected at (%.0f, %.0f): outside level %s", pos.X, pos.Y, p.m.Cells.Name)
	}
	if p.messageTimer > 0 {
		p.messageTimer -= dt
	}

	if p.level.Finished() && !p.done {
		p.done = true
		return p.complete(snap.Score), nil
	}
	return nil, nil
}

// retry starts a new life, or restarts the level when the time ran out
func (p *Playing) retry() error {
	if p.level.Clock().Expired() {
		log.Printf("Time up on level %s, restarting", p.m.Cells.Name)
		return p.start()
	}
	p.level.StartNewLife()
	return nil
}

func (p *Playing) complete(score int) scene.Scene {
	c := Completion{Level: p.m.Cells.Name, Score: score, Best: max(p.best, score)}
	if p.opts.Scores != nil {
		improved, err := p.opts.Scores.Submit(c.Level, score)
		if err != nil {
			log.Printf("Warning: Could not save best score: %v", err)
		}
		c.NewBest = improved
	}
	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}

	if p.opts.OnComplete == nil {
		return nil
	}
	return p.opts.OnComplete(c)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Level returns the running level
func (p *Playing) Level() *level.Level { return p.level }

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX := p.cameraX()
	p.drawTiles(screen, camX)
	p.drawGems(screen, camX)
	p.drawEnemies(screen, camX)
	p.drawProjectiles(screen, camX)
	p.drawRunner(screen, camX)
	p.drawUI(screen)

	if p.paused {
		p.drawOverlay(screen, "PAUSED - ESC to resume")
	} else if p.level.State() == state.StateFrozen {
		if p.level.Clock().Expired() {
			p.drawOverlay(screen, "TIME UP - SPACE to restart")
		} else {
			p.drawOverlay(screen, "SPACE or R to try again")
		}
	}
}

// cameraX keeps the runner centered, clamped to the level
func (p *Playing) cameraX() float64 {
	grid := p.level.Layout().Grid
	camX := p.actor.Position().X - float64(p.opts.ScreenW)/2
	maxCamX := grid.PixelWidth() - float64(p.opts.ScreenW)
	return math.Max(0, math.Min(camX, maxCamX))
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX float64) {
	grid := p.level.Layout().Grid
	tw, th := grid.TileWidth(), grid.TileHeight()

	first := int(camX / tw)
	last := first + p.opts.ScreenW/int(tw) + 1
	for y := 0; y < grid.Height(); y++ {
		for x := first; x <= last && x < grid.Width(); x++ {
			tile := grid.Tile(x, y)
			sx, sy := float64(x)*tw-camX, float64(y)*th
			switch tile.Collision {
			case entity.Solid:
				shade := uint8(tile.Variation * 8)
				c := color.RGBA{colorSolid.R + shade, colorSolid.G + shade, colorSolid.B, 255}
				ebitenutil.DrawRect(screen, sx, sy, tw, th, c)
			case entity.Platform:
				ebitenutil.DrawRect(screen, sx, sy, tw, th/4, colorPlatform)
			}
			if tile.Visual == "Exit" {
				ebitenutil.DrawRect(screen, sx+tw/4, sy, tw/2, th, colorExit)
			}
		}
	}
}

func (p *Playing) drawGems(screen *ebiten.Image, camX float64) {
	for _, g := range p.level.Entities().Gems() {
		b := g.Circle().Bounds()
		ebitenutil.DrawRect(screen, b.X-camX, b.Y, b.W, b.H, colorGem)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX float64) {
	for _, e := range p.level.Entities().Enemies() {
		b := e.Bounds()
		c, ok := enemyColors[e.Variant]
		if !ok {
			c = enemyColors["MonsterA"]
		}
		ebitenutil.DrawRect(screen, b.X-camX, b.Y, b.W, b.H, c)
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, camX float64) {
	for _, pr := range p.level.Entities().Projectiles() {
		b := pr.Bounds()
		ebitenutil.DrawRect(screen, b.X-camX, b.Y, b.W, b.H, colorProjectile)
	}
}

func (p *Playing) drawRunner(screen *ebiten.Image, camX float64) {
	b := p.actor.BoundingBox()
	c := colorRunner
	if !p.actor.IsAlive() {
		c = colorRunnerDead
	}
	ebitenutil.DrawRect(screen, b.X-camX, b.Y, b.W, b.H, c)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	clock := p.level.Clock()
	remaining := int(math.Ceil(clock.Remaining.Seconds()))
	hud := fmt.Sprintf("LEVEL %s  SCORE %d  BEST %d  TIME %d:%02d  GEMS %d  KILLS %d",
		p.m.Cells.Name, p.level.Score(), max(p.best, p.level.Score()), remaining/60, remaining%60, p.gems, p.kills)
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	if p.messageTimer > 0 {
		ebitenutil.DebugPrintAt(screen, p.message, 10, 26)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.opts.ScreenW), float64(p.opts.ScreenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, p.opts.ScreenW/2-len(text)*3, p.opts.ScreenH/2-8)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.paused = false
}

// OnExit saves any pending recording
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
}
