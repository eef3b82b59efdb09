package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/gemrun/internal/domain/entity"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
)

// InputState is the per-tick input for the actor
type InputState struct {
	// Move is the horizontal intent in [-1, 1]
	Move float64
	Jump bool
	Fire bool
	// Retry asks the host to start a new life once the level is frozen
	Retry bool
}

// InputSystem handles keyboard input
type InputSystem struct {
	config *config.RunnerConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.RunnerConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	var move float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move++
	}
	return InputState{
		Move:  move,
		Jump:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Fire:  ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsKeyPressed(ebiten.KeyControl),
		Retry: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// UpdateRunner turns input into runner velocity.
// A dead runner ignores input.
func (s *InputSystem) UpdateRunner(runner *entity.Runner, input InputState) {
	if !runner.Alive {
		runner.VX = 0
		return
	}

	move := input.Move
	if move > 1 {
		move = 1
	} else if move < -1 {
		move = -1
	}
	runner.VX = move * s.config.MoveSpeed

	if input.Jump && runner.OnGround {
		runner.VY = s.config.JumpVelocity
		runner.OnGround = false
	}
}
