package level

import (
	"github.com/younwookim/gemrun/internal/application/system"
	"github.com/younwookim/gemrun/internal/domain/entity"
)

// Actor is the controllable character as seen by a level.
// The level reads its state every tick and notifies it of kills, stomps and
// the exit; locomotion is the actor's own business.
type Actor interface {
	// Update applies input and moves the actor through the grid
	Update(dt float64, in system.InputState)
	// ApplyPhysics moves the actor without input, used while the level is frozen
	ApplyPhysics(dt float64)
	// ApplyImpulse changes the vertical velocity
	ApplyImpulse(dvy float64)
	OnKilled(cause system.DeathCause)
	OnReachedExit()
	Reset(start entity.Vec2)

	BoundingBox() entity.Rect
	Position() entity.Vec2
	IsAlive() bool
	IsOnGround() bool
	MovementSign() float64
}
