package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/gemrun/internal/domain/entity"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
)

const frame = 1.0 / 60

func newTestRunner(grid *entity.Grid, pos entity.Vec2) *RunnerActor {
	cfg := config.DefaultRules().Runner
	return NewRunnerActor(&cfg, grid, pos)
}

func TestPhysicsLanding(t *testing.T) {
	t.Run("falls onto solid ground", func(t *testing.T) {
		grid := buildGrid(
			".....",
			".....",
			".....",
			".....",
			"#####",
		)
		r := newTestRunner(grid, entity.Vec2{X: 100, Y: 60})

		for i := 0; i < 60; i++ {
			r.Update(frame, InputState{})
		}

		assert.True(t, r.IsOnGround())
		assert.InDelta(t, 128, r.BoundingBox().Bottom(), 1e-6)
		assert.InDelta(t, 100, r.Position().X, 1e-9)
	})

	t.Run("falls out of a grid with no floor", func(t *testing.T) {
		grid := buildGrid(
			".....",
			".....",
		)
		r := newTestRunner(grid, entity.Vec2{X: 100, Y: 60})

		for i := 0; i < 60; i++ {
			r.Update(frame, InputState{})
		}

		assert.False(t, r.IsOnGround())
		assert.Greater(t, r.BoundingBox().Top(), grid.PixelHeight())
	})
}

func TestPhysicsPlatforms(t *testing.T) {
	grid := buildGrid(
		".....",
		".....",
		"-----",
		".....",
		"#####",
	)

	t.Run("lands on a platform from above", func(t *testing.T) {
		r := newTestRunner(grid, entity.Vec2{X: 100, Y: 40})

		for i := 0; i < 60; i++ {
			r.Update(frame, InputState{})
		}

		assert.True(t, r.IsOnGround())
		assert.InDelta(t, 64, r.BoundingBox().Bottom(), 1e-6)
	})

	t.Run("passes through from below", func(t *testing.T) {
		r := newTestRunner(grid, entity.Vec2{X: 100, Y: 128})
		r.Body.VY = -400

		r.ApplyPhysics(frame)

		assert.Less(t, r.Position().Y, 128.0)
		assert.False(t, r.IsOnGround())
	})

	t.Run("jumps from the floor onto the platform", func(t *testing.T) {
		r := newTestRunner(grid, entity.Vec2{X: 100, Y: 128})
		r.Update(frame, InputState{})
		assert.True(t, r.IsOnGround())

		r.Update(frame, InputState{Jump: true})
		for i := 0; i < 90; i++ {
			r.Update(frame, InputState{})
		}

		assert.True(t, r.IsOnGround())
		assert.InDelta(t, 64, r.BoundingBox().Bottom(), 1e-6)
	})
}

func TestPhysicsWalls(t *testing.T) {
	grid := buildGrid(
		".....",
		"...#.",
		"...#.",
		"...#.",
		"#####",
	)
	r := newTestRunner(grid, entity.Vec2{X: 100, Y: 128})

	for i := 0; i < 30; i++ {
		r.Update(frame, InputState{Move: 1})
	}

	assert.InDelta(t, 120, r.BoundingBox().Right(), 1e-6)
	assert.True(t, r.IsOnGround())
}

func TestRunnerActorInput(t *testing.T) {
	grid := buildGrid(
		".....",
		".....",
		".....",
		".....",
		"#####",
	)

	t.Run("jumps only from the ground", func(t *testing.T) {
		r := newTestRunner(grid, entity.Vec2{X: 100, Y: 20})

		r.Update(frame, InputState{Jump: true})

		assert.Greater(t, r.Body.VY, 0.0, "airborne jump is ignored")
	})

	t.Run("movement sign follows input", func(t *testing.T) {
		r := newTestRunner(grid, entity.Vec2{X: 100, Y: 128})

		r.Update(frame, InputState{Move: -1})
		assert.Equal(t, -1.0, r.MovementSign())

		r.Update(frame, InputState{})
		assert.Equal(t, 0.0, r.MovementSign())
	})

	t.Run("dead runner ignores input", func(t *testing.T) {
		r := newTestRunner(grid, entity.Vec2{X: 100, Y: 128})
		r.OnKilled(DeathFell)

		r.Update(frame, InputState{Move: 1, Jump: true})

		assert.False(t, r.IsAlive())
		assert.Equal(t, DeathFell, r.DeathCause())
		assert.InDelta(t, 100, r.Position().X, 1e-9)
	})

	t.Run("impulse is limited", func(t *testing.T) {
		r := newTestRunner(grid, entity.Vec2{X: 100, Y: 128})

		r.ApplyImpulse(-5000)

		assert.Equal(t, -1100.0, r.Body.VY)
	})

	t.Run("reset revives at the start", func(t *testing.T) {
		r := newTestRunner(grid, entity.Vec2{X: 100, Y: 128})
		r.OnKilled(DeathHostile)
		r.OnReachedExit()

		r.Reset(entity.Vec2{X: 60, Y: 128})

		assert.True(t, r.IsAlive())
		assert.False(t, r.Body.ReachedExit)
		assert.Equal(t, entity.Vec2{X: 60, Y: 128}, r.Position())
	})
}
