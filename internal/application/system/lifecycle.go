package system

import (
	"math"
	"slices"

	"github.com/younwookim/gemrun/internal/domain/entity"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
)

// ActorContact is what the entity manager needs to know about the actor for one tick
type ActorContact struct {
	Box      entity.Rect
	Alive    bool
	Grounded bool

	// Kick changes the actor's vertical velocity after a stomp. May be nil.
	Kick func(dvy float64)
}

// TickResult summarizes one EntityManager tick
type TickResult struct {
	ScoreGained      int
	Collected        int
	Killed           int
	ProjectilesSpent int

	// HostileContact is set when a live hostile touched the actor without being stomped
	HostileContact bool
}

// EntityManager owns the dynamic entities of a level.
// Expired entities are removed at the end of the tick that expired them;
// survivors keep their relative order.
type EntityManager struct {
	grid        *entity.Grid
	sink        EventSink
	gems        []*entity.Gem
	enemies     []*entity.Enemy
	projectiles []*entity.Projectile
	nextID      entity.EntityID

	gemCfg        entity.GemConfig
	enemyCfg      entity.EnemyConfig
	projectileCfg entity.ProjectileConfig

	stompThreshold float64
	stompImpulse   float64
}

// NewEntityManager creates an empty manager for the given grid
func NewEntityManager(rules *config.Rules, grid *entity.Grid, sink EventSink) *EntityManager {
	if sink == nil {
		sink = NopSink{}
	}
	return &EntityManager{
		grid:        grid,
		sink:        sink,
		gems:        make([]*entity.Gem, 0, 32),
		enemies:     make([]*entity.Enemy, 0, 16),
		projectiles: make([]*entity.Projectile, 0, 16),
		gemCfg: entity.GemConfig{
			PointValue:   rules.Collectible.PointValue,
			Radius:       grid.TileWidth() * rules.Collectible.RadiusFactor,
			BounceHeight: grid.TileHeight() * rules.Collectible.BounceHeight,
			BounceRate:   rules.Collectible.BounceRate,
			BounceSync:   rules.Collectible.BounceSync,
		},
		enemyCfg: entity.EnemyConfig{
			Width:       rules.Hostile.Width,
			Height:      rules.Hostile.Height,
			MoveSpeed:   rules.Hostile.MoveSpeed,
			MaxWaitTime: rules.Hostile.MaxWaitTime,
		},
		projectileCfg: entity.ProjectileConfig{
			Step:   rules.Projectile.Step,
			Radius: grid.TileWidth() * rules.Projectile.RadiusFactor,
		},
		stompThreshold: rules.Hostile.StompThreshold,
		stompImpulse:   rules.Hostile.StompImpulse,
	}
}

// Populate spawns the collectibles and hostiles listed in a layout
func (m *EntityManager) Populate(layout *Layout) {
	for _, pos := range layout.Collectibles {
		m.AddGem(entity.NewGem(pos, m.gemCfg))
	}
	for _, h := range layout.Hostiles {
		m.SpawnEnemy(h.Position, h.Variant)
	}
}

// AddGem registers a collectible
func (m *EntityManager) AddGem(g *entity.Gem) {
	m.gems = append(m.gems, g)
}

// SpawnEnemy creates and registers a hostile standing at pos
func (m *EntityManager) SpawnEnemy(pos entity.Vec2, variant string) *entity.Enemy {
	m.nextID++
	e := entity.NewEnemy(m.nextID, m.grid, pos, variant, m.enemyCfg)
	m.enemies = append(m.enemies, e)
	return e
}

// AddEnemy registers an already constructed hostile
func (m *EntityManager) AddEnemy(e *entity.Enemy) {
	m.enemies = append(m.enemies, e)
}

// SpawnProjectile creates and registers a projectile centered on pos
func (m *EntityManager) SpawnProjectile(pos, direction entity.Vec2) *entity.Projectile {
	p := entity.NewProjectile(pos, direction, m.projectileCfg)
	m.projectiles = append(m.projectiles, p)
	return p
}

// AddProjectile registers an already constructed projectile
func (m *EntityManager) AddProjectile(p *entity.Projectile) {
	m.projectiles = append(m.projectiles, p)
}

// Gems returns the live collectibles. The slice must not be modified.
func (m *EntityManager) Gems() []*entity.Gem { return m.gems }

// Enemies returns the live hostiles. The slice must not be modified.
func (m *EntityManager) Enemies() []*entity.Enemy { return m.enemies }

// Projectiles returns the active projectiles. The slice must not be modified.
func (m *EntityManager) Projectiles() []*entity.Projectile { return m.projectiles }

// Tick updates every entity once and resolves its interactions.
// Collectibles run first, then hostiles (each checked against the actor and
// then against live projectiles), then projectiles against terrain.
// Every projectile touching a hostile is spent, even one already stomped;
// the hostile dies once.
// An entity expired earlier in the tick takes no further part in it.
func (m *EntityManager) Tick(dt float64, actor ActorContact) TickResult {
	var res TickResult

	for _, g := range m.gems {
		if g.IsExpired() {
			continue
		}
		g.Update(dt)
		if actor.Alive && g.Circle().IntersectsRect(actor.Box) && g.Collect() {
			res.ScoreGained += g.PointValue()
			res.Collected++
			m.sink.Collected(CollectedEvent{Position: g.Position(), Points: g.PointValue()})
		}
	}

	for _, e := range m.enemies {
		if !e.IsAlive() {
			continue
		}
		e.Update(dt)
		bounds := e.Bounds()

		if actor.Alive && bounds.Overlaps(actor.Box) {
			_, dy := entity.IntersectionDepth(bounds, actor.Box)
			if math.Abs(dy) < m.stompThreshold {
				m.killEnemy(e, KilledByStomp, &res)
				if actor.Kick != nil {
					actor.Kick(m.stompImpulse)
				}
			} else {
				res.HostileContact = true
			}
		}

		for _, p := range m.projectiles {
			if p.IsExpired() || !p.Circle().IntersectsRect(bounds) {
				continue
			}
			p.Deactivate()
			res.ProjectilesSpent++
			m.killEnemy(e, KilledByProjectile, &res)
		}
	}

	for _, p := range m.projectiles {
		if p.IsExpired() {
			continue
		}
		p.Update(dt)
		if m.hitsTerrain(p) {
			p.Deactivate()
			res.ProjectilesSpent++
		}
	}

	m.gems = prune(m.gems)
	m.enemies = prune(m.enemies)
	m.projectiles = prune(m.projectiles)
	return res
}

func (m *EntityManager) killEnemy(e *entity.Enemy, cause KillCause, res *TickResult) {
	if !e.Kill() {
		return
	}
	res.Killed++
	m.sink.HostileKilled(HostileKilledEvent{
		ID:       e.ID,
		Variant:  e.Variant,
		Position: e.Position(),
		Cause:    cause,
	})
}

// hitsTerrain reports whether the projectile touches any non-passable tile
// overlapped by its bounding box
func (m *EntityManager) hitsTerrain(p *entity.Projectile) bool {
	circle := p.Circle()
	for hit := range SweepTiles(m.grid, p.Bounds()) {
		if hit.Collision == entity.Passable {
			continue
		}
		if circle.IntersectsRect(m.grid.Bounds(hit.X, hit.Y)) {
			return true
		}
	}
	return false
}

func prune[T entity.Dynamic](items []T) []T {
	return slices.DeleteFunc(items, func(item T) bool { return item.IsExpired() })
}
