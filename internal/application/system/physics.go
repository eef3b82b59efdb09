package system

import (
	"github.com/younwookim/gemrun/internal/domain/entity"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
)

// landingTolerance absorbs float drift when a runner rests exactly on a tile top
const landingTolerance = 0.5

// PhysicsSystem moves a runner through the tile grid
type PhysicsSystem struct {
	config *config.RunnerConfig
	grid   *entity.Grid
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.RunnerConfig, grid *entity.Grid) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		grid:   grid,
	}
}

// Update applies gravity and velocity to the runner, then resolves collisions
func (s *PhysicsSystem) Update(runner *entity.Runner, dt float64) {
	s.applyGravity(runner, dt)

	runner.X += runner.VX * dt
	runner.Y += runner.VY * dt

	s.applyMovement(runner)
}

// applyGravity accelerates the runner downwards up to the fall speed limit
func (s *PhysicsSystem) applyGravity(runner *entity.Runner, dt float64) {
	runner.VY += s.config.Gravity * dt
	if runner.VY > s.config.MaxFallSpeed {
		runner.VY = s.config.MaxFallSpeed
	}
}

// applyMovement pushes the runner out of every blocking tile it overlaps.
// Each tile is resolved along its shallower axis. Platforms resolve only
// vertically, and only for a runner whose bottom was at or above the
// platform top before this move.
func (s *PhysicsSystem) applyMovement(runner *entity.Runner) {
	bounds := runner.Bounds()
	runner.OnGround = false

	for hit := range SweepTiles(s.grid, bounds) {
		if hit.Collision == entity.Passable {
			continue
		}
		tile := s.grid.Bounds(hit.X, hit.Y)
		dx, dy := entity.IntersectionDepth(bounds, tile)
		if dx == 0 && dy == 0 {
			continue
		}

		if ResolveAxis(dx, dy) == AxisVertical || hit.Collision == entity.Platform {
			landing := runner.PreviousBottom <= tile.Top()+landingTolerance
			if hit.Collision == entity.Platform && !landing {
				continue
			}
			if landing {
				runner.OnGround = true
			}
			runner.Y += dy
			if (dy < 0 && runner.VY > 0) || (dy > 0 && runner.VY < 0) {
				runner.VY = 0
			}
		} else if hit.Collision == entity.Solid {
			runner.X += dx
			runner.VX = 0
		}
		bounds = runner.Bounds()
	}

	runner.PreviousBottom = bounds.Bottom()
}
