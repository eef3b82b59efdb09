package entity

import "math"

// EnemyConfig holds hostile tuning values
type EnemyConfig struct {
	Width       float64 // hitbox width in pixels
	Height      float64 // hitbox height in pixels
	MoveSpeed   float64 // pixels per second
	MaxWaitTime float64 // seconds spent at a ledge or wall before turning
}

// Enemy is a hostile that patrols back and forth along a ledge.
// Its position is the bottom center of its hitbox.
type Enemy struct {
	ID      EntityID
	X, Y    float64
	Variant string

	// Direction is -1 when walking left, +1 when walking right
	Direction int

	alive    bool
	waitTime float64
	grid     *Grid
	cfg      EnemyConfig
}

// NewEnemy creates a living enemy facing left
func NewEnemy(id EntityID, grid *Grid, pos Vec2, variant string, cfg EnemyConfig) *Enemy {
	return &Enemy{
		ID:        id,
		X:         pos.X,
		Y:         pos.Y,
		Variant:   variant,
		Direction: -1,
		alive:     true,
		grid:      grid,
		cfg:       cfg,
	}
}

// Update walks the enemy, pausing then turning at walls and ledges
func (e *Enemy) Update(dt float64) {
	if !e.alive {
		return
	}

	if e.waitTime > 0 {
		e.waitTime = math.Max(0, e.waitTime-dt)
		if e.waitTime <= 0 {
			e.Direction = -e.Direction
		}
		return
	}

	// Probe the column under the leading edge: body row and floor row
	leadX := e.X + e.cfg.Width/2*float64(e.Direction)
	ahead := int(math.Floor(leadX / e.grid.TileWidth()))
	tileY := int(math.Floor(e.Y / e.grid.TileHeight()))

	if e.grid.Query(ahead, tileY-1) == Solid || e.grid.Query(ahead, tileY) == Passable {
		e.waitTime = e.cfg.MaxWaitTime
		return
	}
	e.X += float64(e.Direction) * e.cfg.MoveSpeed * dt
}

// Bounds returns the hitbox in world coordinates
func (e *Enemy) Bounds() Rect {
	return Rect{
		X: e.X - e.cfg.Width/2,
		Y: e.Y - e.cfg.Height,
		W: e.cfg.Width,
		H: e.cfg.Height,
	}
}

// Position returns the bottom center of the hitbox
func (e *Enemy) Position() Vec2 { return Vec2{e.X, e.Y} }

// Waiting reports whether the enemy is paused before turning
func (e *Enemy) Waiting() bool { return e.waitTime > 0 }

// Kill marks the enemy dead. It returns false if it was already dead.
func (e *Enemy) Kill() bool {
	if !e.alive {
		return false
	}
	e.alive = false
	return true
}

// IsAlive returns true while the enemy has not been killed
func (e *Enemy) IsAlive() bool { return e.alive }

// IsExpired returns true once the enemy is dead
func (e *Enemy) IsExpired() bool { return !e.alive }
