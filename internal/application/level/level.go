package level

import (
	"math"
	"math/rand"
	"time"

	"github.com/younwookim/gemrun/internal/application/state"
	"github.com/younwookim/gemrun/internal/application/system"
	"github.com/younwookim/gemrun/internal/domain/entity"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
)

// Snapshot is the observable state of a level after a tick
type Snapshot struct {
	State     state.LevelState
	Score     int
	Remaining time.Duration
	Elapsed   time.Duration

	// Spawn is the spawner outcome of the tick, SpawnIdle when it did not run
	Spawn system.SpawnOutcome
	// Entities is the entity pass result of the tick, zero when it did not run
	Entities system.TickResult
}

// Level runs one level: the clock, the score, the dynamic entities and the
// Running/ExitReached/Frozen state machine
type Level struct {
	layout   *system.Layout
	actor    Actor
	entities *system.EntityManager
	spawner  *system.Spawner
	sink     system.EventSink

	clock Clock
	score int
	state state.LevelState

	pointsPerSecond    int
	exitTimeMultiplier float64
	lethalContact      bool
}

// New creates a running level from a built layout.
// The actor is reset at the start anchor.
func New(layout *system.Layout, rules *config.Rules, actor Actor, sink system.EventSink) *Level {
	if sink == nil {
		sink = system.NopSink{}
	}
	entities := system.NewEntityManager(rules, layout.Grid, sink)
	entities.Populate(layout)
	actor.Reset(layout.Start)

	return &Level{
		layout:             layout,
		actor:              actor,
		entities:           entities,
		spawner:            system.NewSpawner(rules, layout.Grid, entities, sink),
		sink:               sink,
		clock:              NewClock(time.Duration(rules.Level.TimeLimitSec * float64(time.Second))),
		state:              state.StateRunning,
		pointsPerSecond:    rules.Level.PointsPerSecond,
		exitTimeMultiplier: rules.Level.ExitTimeMultiplier,
		lethalContact:      rules.Hostile.LethalContact,
	}
}

// BuildLayout classifies a cell map with mappings and builds its layout.
// Decorative variations are drawn from a generator seeded with rules.Level.Seed.
func BuildLayout(m *entity.CellMap, mappings map[string]config.TileMappingConfig, rules *config.Rules) (*system.Layout, error) {
	classifier, err := system.NewClassifier(mappings)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(rules.Level.Seed))
	return system.BuildLevel(m, classifier, rules.Tile.Width, rules.Tile.Height, rng)
}

// Load builds a layout from a cell map and creates a level for it
func Load(m *entity.CellMap, mappings map[string]config.TileMappingConfig, rules *config.Rules, actor Actor, sink system.EventSink) (*Level, error) {
	layout, err := BuildLayout(m, mappings, rules)
	if err != nil {
		return nil, err
	}
	return New(layout, rules, actor, sink), nil
}

// Advance runs one tick of dt seconds
func (l *Level) Advance(dt float64, in system.InputState) Snapshot {
	d := time.Duration(dt * float64(time.Second))
	l.freezeIfStopped()

	var snap Snapshot
	switch l.state {
	case state.StateRunning:
		snap.Entities, snap.Spawn = l.run(dt, d, in)
	case state.StateExitReached:
		l.clock.Pass(d)
		l.drainTime(dt)
	case state.StateFrozen:
		l.clock.Pass(d)
		l.actor.ApplyPhysics(dt)
	}

	l.freezeIfStopped()
	snap.State = l.state
	snap.Score = l.score
	snap.Remaining = l.clock.Remaining
	snap.Elapsed = l.clock.Elapsed
	return snap
}

func (l *Level) run(dt float64, d time.Duration, in system.InputState) (system.TickResult, system.SpawnOutcome) {
	l.clock.Pass(d)
	l.clock.Consume(d)

	l.actor.Update(dt, in)

	res := l.entities.Tick(dt, system.ActorContact{
		Box:      l.actor.BoundingBox(),
		Alive:    l.actor.IsAlive(),
		Grounded: l.actor.IsOnGround(),
		Kick:     l.actor.ApplyImpulse,
	})
	l.score += res.ScoreGained
	if l.lethalContact && res.HostileContact && l.actor.IsAlive() {
		l.kill(system.DeathHostile)
	}

	tileX, tileY := l.layout.Grid.TileAt(l.actor.Position())
	spawn := l.spawner.MaybeSpawn(l.clock.Elapsed, in.Fire && l.actor.IsAlive(), tileX, tileY, l.actor.MovementSign())

	if l.actor.IsAlive() && l.actor.BoundingBox().Top() >= l.layout.Grid.PixelHeight() {
		l.kill(system.DeathFell)
	}
	if l.actor.IsAlive() && l.actor.IsOnGround() && l.actor.BoundingBox().Contains(l.layout.Exit) {
		l.state = state.StateExitReached
		l.actor.OnReachedExit()
		l.sink.ExitReached(system.ExitReachedEvent{Exit: l.layout.Exit, Remaining: l.clock.Remaining})
	}
	return res, spawn
}

// drainTime converts remaining time into score at the exit multiplier.
// Whole seconds only; the deduction is capped to what remains.
func (l *Level) drainTime(dt float64) {
	seconds := int(math.Round(dt * l.exitTimeMultiplier))
	seconds = min(seconds, int(math.Ceil(l.clock.Remaining.Seconds())))
	if seconds <= 0 {
		return
	}
	l.clock.Consume(time.Duration(seconds) * time.Second)
	l.score += seconds * l.pointsPerSecond
}

func (l *Level) kill(cause system.DeathCause) {
	l.actor.OnKilled(cause)
	l.sink.ActorKilled(system.ActorKilledEvent{Cause: cause})
}

func (l *Level) freezeIfStopped() {
	if l.state == state.StateRunning && (!l.actor.IsAlive() || l.clock.Expired()) {
		l.state = state.StateFrozen
	}
}

// StartNewLife puts the actor back at the start anchor.
// A frozen level with time left resumes running.
func (l *Level) StartNewLife() {
	l.actor.Reset(l.layout.Start)
	l.spawner.Reset()
	if l.state == state.StateFrozen && !l.clock.Expired() {
		l.state = state.StateRunning
	}
}

// State returns the current level state
func (l *Level) State() state.LevelState { return l.state }

// Score returns the accumulated score
func (l *Level) Score() int { return l.score }

// Clock returns a copy of the level clock
func (l *Level) Clock() Clock { return l.clock }

// Finished reports whether the exit was reached and the remaining time fully scored
func (l *Level) Finished() bool {
	return l.state == state.StateExitReached && l.clock.Expired()
}

// Layout returns the static level description
func (l *Level) Layout() *system.Layout { return l.layout }

// Entities returns the entity manager for renderers
func (l *Level) Entities() *system.EntityManager { return l.entities }

// Actor returns the controllable actor
func (l *Level) Actor() Actor { return l.actor }
