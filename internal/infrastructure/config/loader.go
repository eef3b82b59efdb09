package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads level rules from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadRules loads rules.json on top of DefaultRules
func (l *Loader) LoadRules() (*Rules, error) {
	data, err := fs.ReadFile(l.fsys, "rules.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read rules.json: %w", err)
	}

	cfg, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules.json: %w", err)
	}

	return cfg, nil
}

// ParseRules decodes rules JSON on top of DefaultRules and validates the result
func ParseRules(data []byte) (*Rules, error) {
	cfg := DefaultRules()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the simulation cannot run without
func (r *Rules) Validate() error {
	if r.Tile.Width <= 0 || r.Tile.Height <= 0 {
		return fmt.Errorf("tile size must be positive, got %vx%v", r.Tile.Width, r.Tile.Height)
	}
	if r.Level.TimeLimitSec <= 0 {
		return fmt.Errorf("level.timeLimitSec must be positive, got %v", r.Level.TimeLimitSec)
	}
	if r.Projectile.CooldownMs < 0 {
		return fmt.Errorf("projectile.cooldownMs must not be negative, got %d", r.Projectile.CooldownMs)
	}
	if r.Hostile.StompThreshold < 0 {
		return fmt.Errorf("hostile.stompThreshold must not be negative, got %v", r.Hostile.StompThreshold)
	}
	for format, mappings := range map[string]map[string]TileMappingConfig{
		"tmx":  r.TileMappings.TMX,
		"text": r.TileMappings.Text,
	} {
		for id, m := range mappings {
			if !validAction(m.Action) {
				return fmt.Errorf("tileMappings.%s[%q]: unknown action %q", format, id, m.Action)
			}
		}
	}
	return nil
}

func validAction(a string) bool {
	switch a {
	case ActionStart, ActionExit, ActionCollectible, ActionHostile,
		ActionSolid, ActionPlatform, ActionPassable:
		return true
	}
	return false
}
