package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/gemrun/internal/domain/entity"
	"github.com/younwookim/gemrun/internal/infrastructure/config"
)

var (
	// ErrConfiguration is matched by every level configuration error
	ErrConfiguration = errors.New("invalid level configuration")

	ErrMissingStart    = fmt.Errorf("%w: a level must have a starting point", ErrConfiguration)
	ErrMissingExit     = fmt.Errorf("%w: a level must have an exit", ErrConfiguration)
	ErrDuplicateStart  = fmt.Errorf("%w: a level may only have one starting point", ErrConfiguration)
	ErrDuplicateExit   = fmt.Errorf("%w: a level may only have one exit", ErrConfiguration)
	ErrCellOutOfBounds = fmt.Errorf("%w: cell outside the grid", ErrConfiguration)
	ErrEmptyGrid       = fmt.Errorf("%w: grid has no tiles", ErrConfiguration)
)

// ConfigurationError reports a level that cannot be built.
// Col and Row are set when a specific cell caused the failure.
type ConfigurationError struct {
	Level   string
	Col     int
	Row     int
	HasCell bool
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.HasCell {
		return fmt.Sprintf("level %q: cell (%d, %d): %v", e.Level, e.Col, e.Row, e.Err)
	}
	return fmt.Sprintf("level %q: %v", e.Level, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ActionKind is what the builder does with a tile identifier
type ActionKind int

const (
	ActionPassable ActionKind = iota
	ActionSolid
	ActionPlatform
	ActionStart
	ActionExit
	ActionCollectible
	ActionHostile
)

// TileAction is the classification of one tile identifier
type TileAction struct {
	Kind       ActionKind
	Variant    string
	Variations int
}

// Classifier maps tile identifiers to actions.
// Unknown identifiers classify as passable.
type Classifier struct {
	actions map[string]TileAction
}

// NewClassifier builds a classifier from a tile mapping table
func NewClassifier(mappings map[string]config.TileMappingConfig) (*Classifier, error) {
	actions := make(map[string]TileAction, len(mappings))
	for id, m := range mappings {
		kind, err := parseAction(m.Action)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", id, err)
		}
		actions[id] = TileAction{Kind: kind, Variant: m.Variant, Variations: m.Variations}
	}
	return &Classifier{actions: actions}, nil
}

// Classify returns the action for a tile identifier
func (c *Classifier) Classify(id string) TileAction {
	if a, ok := c.actions[id]; ok {
		return a
	}
	return TileAction{Kind: ActionPassable}
}

func parseAction(s string) (ActionKind, error) {
	switch s {
	case config.ActionPassable, "":
		return ActionPassable, nil
	case config.ActionSolid:
		return ActionSolid, nil
	case config.ActionPlatform:
		return ActionPlatform, nil
	case config.ActionStart:
		return ActionStart, nil
	case config.ActionExit:
		return ActionExit, nil
	case config.ActionCollectible:
		return ActionCollectible, nil
	case config.ActionHostile:
		return ActionHostile, nil
	default:
		return 0, fmt.Errorf("unknown tile action %q", s)
	}
}

// HostileSpawn is where a hostile starts, anchored at the bottom center of its cell
type HostileSpawn struct {
	Position entity.Vec2
	Variant  string
}

// Layout is a built level: the static grid plus the spawn points found in it
type Layout struct {
	Name         string
	Grid         *entity.Grid
	Start        entity.Vec2
	Exit         entity.Vec2
	Collectibles []entity.Vec2
	Hostiles     []HostileSpawn
}

// BuildLevel converts a parsed cell map into a Layout.
// Cells are applied in order, so a later cell overrides an earlier one at the
// same coordinates. Tile sizes from the map win over the given defaults.
// rng picks decorative variations; nil disables them.
func BuildLevel(m *entity.CellMap, classifier *Classifier, tileW, tileH float64, rng *rand.Rand) (*Layout, error) {
	if m.TileWidth > 0 && m.TileHeight > 0 {
		tileW, tileH = m.TileWidth, m.TileHeight
	}
	if m.Width <= 0 || m.Height <= 0 || tileW <= 0 || tileH <= 0 {
		return nil, &ConfigurationError{Level: m.Name, Err: ErrEmptyGrid}
	}

	grid := entity.NewGrid(m.Width, m.Height, tileW, tileH)
	layout := &Layout{Name: m.Name, Grid: grid}
	var hasStart, hasExit bool

	for _, c := range m.Cells {
		if !grid.InBounds(c.Col, c.Row) {
			return nil, &ConfigurationError{Level: m.Name, Col: c.Col, Row: c.Row, HasCell: true, Err: ErrCellOutOfBounds}
		}
		cell := grid.Bounds(c.Col, c.Row)
		action := classifier.Classify(c.ID)

		switch action.Kind {
		case ActionStart:
			if hasStart {
				return nil, &ConfigurationError{Level: m.Name, Col: c.Col, Row: c.Row, HasCell: true, Err: ErrDuplicateStart}
			}
			hasStart = true
			layout.Start = cell.BottomCenter()
			grid.Set(c.Col, c.Row, entity.Tile{Collision: entity.Passable})
		case ActionExit:
			if hasExit {
				return nil, &ConfigurationError{Level: m.Name, Col: c.Col, Row: c.Row, HasCell: true, Err: ErrDuplicateExit}
			}
			hasExit = true
			layout.Exit = cell.Center()
			grid.Set(c.Col, c.Row, entity.Tile{Collision: entity.Passable, Visual: "Exit"})
		case ActionCollectible:
			layout.Collectibles = append(layout.Collectibles, cell.Center())
			grid.Set(c.Col, c.Row, entity.Tile{Collision: entity.Passable})
		case ActionHostile:
			layout.Hostiles = append(layout.Hostiles, HostileSpawn{Position: cell.BottomCenter(), Variant: action.Variant})
			grid.Set(c.Col, c.Row, entity.Tile{Collision: entity.Passable})
		default:
			grid.Set(c.Col, c.Row, entity.Tile{
				Collision: action.collision(),
				Visual:    action.Variant,
				Variation: pickVariation(rng, action.Variations),
			})
		}
	}

	if !hasStart {
		return nil, &ConfigurationError{Level: m.Name, Err: ErrMissingStart}
	}
	if !hasExit {
		return nil, &ConfigurationError{Level: m.Name, Err: ErrMissingExit}
	}
	return layout, nil
}

func (a TileAction) collision() entity.TileCollision {
	switch a.Kind {
	case ActionSolid:
		return entity.Solid
	case ActionPlatform:
		return entity.Platform
	default:
		return entity.Passable
	}
}

func pickVariation(rng *rand.Rand, variations int) int {
	if rng == nil || variations <= 1 {
		return 0
	}
	return rng.Intn(variations)
}
