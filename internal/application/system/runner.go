package system

import (
	"github.com/younwookim/gemrun/internal/domain/entity"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
)

// RunnerActor is the keyboard-driven actor used by the game and headless replays.
// It satisfies level.Actor.
type RunnerActor struct {
	Body *entity.Runner

	input        *InputSystem
	physics      *PhysicsSystem
	maxFallSpeed float64
	deathCause   DeathCause
}

// NewRunnerActor creates a runner standing at start
func NewRunnerActor(cfg *config.RunnerConfig, grid *entity.Grid, start entity.Vec2) *RunnerActor {
	return &RunnerActor{
		Body:         entity.NewRunner(start, cfg.Width, cfg.Height),
		input:        NewInputSystem(cfg),
		physics:      NewPhysicsSystem(cfg, grid),
		maxFallSpeed: cfg.MaxFallSpeed,
	}
}

// Update applies input and moves the runner
func (a *RunnerActor) Update(dt float64, in InputState) {
	a.input.UpdateRunner(a.Body, in)
	a.physics.Update(a.Body, dt)
}

// ApplyPhysics moves the runner without input
func (a *RunnerActor) ApplyPhysics(dt float64) {
	a.Body.VX = 0
	a.physics.Update(a.Body, dt)
}

// ApplyImpulse changes the vertical velocity, limited to the fall speed
// in either direction
func (a *RunnerActor) ApplyImpulse(dvy float64) {
	a.Body.VY += dvy
	if a.Body.VY < -a.maxFallSpeed*2 {
		a.Body.VY = -a.maxFallSpeed * 2
	}
	if a.Body.VY > a.maxFallSpeed {
		a.Body.VY = a.maxFallSpeed
	}
}

func (a *RunnerActor) OnKilled(cause DeathCause) {
	a.Body.Alive = false
	a.deathCause = cause
}

func (a *RunnerActor) OnReachedExit() { a.Body.ReachedExit = true }

func (a *RunnerActor) Reset(start entity.Vec2) { a.Body.Reset(start) }

func (a *RunnerActor) BoundingBox() entity.Rect { return a.Body.Bounds() }

func (a *RunnerActor) Position() entity.Vec2 { return a.Body.Position() }

func (a *RunnerActor) IsAlive() bool { return a.Body.Alive }

func (a *RunnerActor) IsOnGround() bool { return a.Body.OnGround }

func (a *RunnerActor) MovementSign() float64 { return a.Body.MovementSign() }

// DeathCause returns the cause passed to the last OnKilled
func (a *RunnerActor) DeathCause() DeathCause { return a.deathCause }
