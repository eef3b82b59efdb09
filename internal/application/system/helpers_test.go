package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/gemrun/internal/domain/entity"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
)

const (
	testTileW = 40.0
	testTileH = 32.0
)

// testRules returns default rules with exact radii and no gem bounce
func testRules() *config.Rules {
	rules := config.DefaultRules()
	rules.Collectible.RadiusFactor = 0.25
	rules.Collectible.BounceHeight = 0
	rules.Projectile.RadiusFactor = 0.25
	return rules
}

// buildGrid creates a grid from rows: '#' solid, '-' platform, anything else passable
func buildGrid(rows ...string) *entity.Grid {
	g := entity.NewGrid(len(rows[0]), len(rows), testTileW, testTileH)
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '#':
				g.Set(x, y, entity.Tile{Collision: entity.Solid})
			case '-':
				g.Set(x, y, entity.Tile{Collision: entity.Platform})
			}
		}
	}
	return g
}

// cellMap turns rows of single-character identifiers into a cell map
func cellMap(name string, rows ...string) *entity.CellMap {
	m := &entity.CellMap{Name: name, Width: len(rows[0]), Height: len(rows)}
	for y, row := range rows {
		for x, ch := range row {
			m.Cells = append(m.Cells, entity.Cell{Col: x, Row: y, ID: string(ch)})
		}
	}
	return m
}

func textClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(config.DefaultRules().TileMappings.Text)
	require.NoError(t, err)
	return c
}
