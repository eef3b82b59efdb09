package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadRules(t *testing.T) {
	loader := NewLoader("../../../assets")

	cfg, err := loader.LoadRules()
	require.NoError(t, err)

	assert.Equal(t, 40.0, cfg.Tile.Width)
	assert.Equal(t, 32.0, cfg.Tile.Height)
	assert.Equal(t, 120.0, cfg.Level.TimeLimitSec)
	assert.Equal(t, 5, cfg.Level.PointsPerSecond)
	assert.Equal(t, 30, cfg.Collectible.PointValue)
	assert.Equal(t, 200, cfg.Projectile.CooldownMs)
	assert.Equal(t, -2, cfg.Projectile.RowOffset)

	wall, ok := cfg.TileMappings.Text["#"]
	require.True(t, ok)
	assert.Equal(t, ActionSolid, wall.Action)
	assert.Equal(t, 7, wall.Variations)

	start, ok := cfg.TileMappings.TMX["41"]
	require.True(t, ok)
	assert.Equal(t, ActionStart, start.Action)
}

func TestLoader_LoadRules_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"rules.json": {Data: []byte(`{"level": {"timeLimitSec": 30}}`)},
	}
	loader := NewFSLoader(fsys, ".")

	cfg, err := loader.LoadRules()
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Level.TimeLimitSec)
	assert.Equal(t, 5, cfg.Level.PointsPerSecond, "unset fields keep their defaults")
	assert.Equal(t, 40.0, cfg.Tile.Width)
}

func TestLoader_LoadRules_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing file", fstest.MapFS{}},
		{"bad json", fstest.MapFS{"rules.json": {Data: []byte(`{`)}}},
		{"zero tile size", fstest.MapFS{"rules.json": {Data: []byte(`{"tile": {"width": 0}}`)}}},
		{"unknown action", fstest.MapFS{"rules.json": {Data: []byte(`{"tileMappings": {"text": {"?": {"action": "teleport"}}}}`)}}},
		{"negative cooldown", fstest.MapFS{"rules.json": {Data: []byte(`{"projectile": {"cooldownMs": -1}}`)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, ".").LoadRules()
			assert.Error(t, err)
		})
	}
}

func TestDefaultRules_Valid(t *testing.T) {
	require.NoError(t, DefaultRules().Validate())
}
