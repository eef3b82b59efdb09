package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnemyConfig() EnemyConfig {
	return EnemyConfig{Width: 20, Height: 40, MoveSpeed: 64, MaxWaitTime: 0.5}
}

// ledgeGrid is 6 columns wide with a floor on row 2 spanning columns 1..4
func ledgeGrid() *Grid {
	g := NewGrid(6, 3, 40, 32)
	for x := 1; x <= 4; x++ {
		g.Set(x, 2, Tile{Collision: Solid})
	}
	return g
}

func TestNewEnemy(t *testing.T) {
	grid := ledgeGrid()
	enemy := NewEnemy(7, grid, Vec2{100, 64}, "MonsterA", testEnemyConfig())

	require.NotNil(t, enemy)
	assert.Equal(t, EntityID(7), enemy.ID)
	assert.Equal(t, "MonsterA", enemy.Variant)
	assert.Equal(t, -1, enemy.Direction)
	assert.True(t, enemy.IsAlive())
	assert.False(t, enemy.IsExpired())
}

func TestEnemy_Bounds(t *testing.T) {
	enemy := NewEnemy(1, ledgeGrid(), Vec2{100, 64}, "MonsterA", testEnemyConfig())

	assert.Equal(t, Rect{X: 90, Y: 24, W: 20, H: 40}, enemy.Bounds())
}

func TestEnemy_Update_Walks(t *testing.T) {
	enemy := NewEnemy(1, ledgeGrid(), Vec2{100, 64}, "MonsterA", testEnemyConfig())

	enemy.Update(0.5)

	assert.InDelta(t, 68.0, enemy.X, 0.001)
	assert.False(t, enemy.Waiting())
}

func TestEnemy_Update_TurnsAtLedge(t *testing.T) {
	// The leading edge starts at x=45 over column 1 (floor); one step later it
	// is at x=29 over column 0, which has no floor.
	enemy := NewEnemy(1, ledgeGrid(), Vec2{55, 64}, "MonsterA", testEnemyConfig())

	// First update: edge over column 1, floor present, walks
	enemy.Update(0.25)
	assert.InDelta(t, 39.0, enemy.X, 0.001)

	// Edge now over column 0: stop and wait
	enemy.Update(0.25)
	assert.InDelta(t, 39.0, enemy.X, 0.001)
	assert.True(t, enemy.Waiting())

	// Waiting runs out, direction flips
	enemy.Update(0.5)
	assert.False(t, enemy.Waiting())
	assert.Equal(t, 1, enemy.Direction)

	enemy.Update(0.25)
	assert.InDelta(t, 55.0, enemy.X, 0.001)
}

func TestEnemy_Update_TurnsAtWall(t *testing.T) {
	grid := ledgeGrid()
	grid.Set(4, 1, Tile{Collision: Solid}) // wall on the right
	enemy := NewEnemy(1, grid, Vec2{145, 64}, "MonsterA", testEnemyConfig())
	enemy.Direction = 1

	enemy.Update(0.1)
	enemy.Update(0.1)

	require.True(t, enemy.Waiting())
	x := enemy.X

	enemy.Update(0.1)
	assert.True(t, enemy.Waiting())
	assert.Equal(t, x, enemy.X, "no movement while waiting")
}

func TestEnemy_Kill(t *testing.T) {
	enemy := NewEnemy(1, ledgeGrid(), Vec2{100, 64}, "MonsterA", testEnemyConfig())

	assert.True(t, enemy.Kill())
	assert.False(t, enemy.Kill(), "second kill reports nothing new")
	assert.False(t, enemy.IsAlive())
	assert.True(t, enemy.IsExpired())

	x := enemy.X
	enemy.Update(1)
	assert.Equal(t, x, enemy.X, "dead enemies do not move")
}
