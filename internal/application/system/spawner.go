package system

import (
	"time"

	"github.com/younwookim/gemrun/internal/domain/entity"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
)

// SpawnOutcome is the result of one MaybeSpawn call
type SpawnOutcome int

const (
	// SpawnIdle means no trigger was raised
	SpawnIdle SpawnOutcome = iota
	// SpawnFired means a projectile was created
	SpawnFired
	// SpawnCoolingDown means the trigger arrived before the cooldown elapsed
	SpawnCoolingDown
	// SpawnRejected means the spawn cell lies outside the grid
	SpawnRejected
)

// String returns the string representation of the outcome
func (o SpawnOutcome) String() string {
	switch o {
	case SpawnIdle:
		return "Idle"
	case SpawnFired:
		return "Fired"
	case SpawnCoolingDown:
		return "CoolingDown"
	case SpawnRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// ProjectileSpawner is where new projectiles are registered
type ProjectileSpawner interface {
	SpawnProjectile(pos, direction entity.Vec2) *entity.Projectile
}

// Spawner creates projectiles on request, at most once per cooldown.
// A spawner that has never fired is ready immediately.
type Spawner struct {
	grid      *entity.Grid
	target    ProjectileSpawner
	sink      EventSink
	cooldown  time.Duration
	colOffset int
	rowOffset int

	lastFire time.Duration
	fired    bool
}

// NewSpawner creates a spawner that registers projectiles with target
func NewSpawner(rules *config.Rules, grid *entity.Grid, target ProjectileSpawner, sink EventSink) *Spawner {
	if sink == nil {
		sink = NopSink{}
	}
	return &Spawner{
		grid:      grid,
		target:    target,
		sink:      sink,
		cooldown:  time.Duration(rules.Projectile.CooldownMs) * time.Millisecond,
		colOffset: rules.Projectile.ColOffset,
		rowOffset: rules.Projectile.RowOffset,
	}
}

// MaybeSpawn fires a projectile from the tile offset from (tileX, tileY) when
// triggered and the cooldown has elapsed since the last fire. now is the
// level's elapsed time. The projectile travels along -x when sign is negative
// and along +x otherwise.
func (s *Spawner) MaybeSpawn(now time.Duration, triggered bool, tileX, tileY int, sign float64) SpawnOutcome {
	if !triggered {
		return SpawnIdle
	}
	if s.fired && now-s.lastFire < s.cooldown {
		return SpawnCoolingDown
	}

	col, row := tileX+s.colOffset, tileY+s.rowOffset
	if !s.grid.InBounds(col, row) {
		return SpawnRejected
	}

	dir := entity.Vec2{X: 1}
	if sign < 0 {
		dir.X = -1
	}
	pos := s.grid.Bounds(col, row).Center()
	s.target.SpawnProjectile(pos, dir)
	s.lastFire = now
	s.fired = true
	s.sink.ProjectileFired(ProjectileFiredEvent{Position: pos, Direction: dir})
	return SpawnFired
}

// Ready reports whether a trigger at now would pass the cooldown
func (s *Spawner) Ready(now time.Duration) bool {
	return !s.fired || now-s.lastFire >= s.cooldown
}

// Reset forgets the last fire time
func (s *Spawner) Reset() {
	s.lastFire = 0
	s.fired = false
}
