package config

// Tile actions understood by the level builder
const (
	ActionStart       = "start"
	ActionExit        = "exit"
	ActionCollectible = "collectible"
	ActionHostile     = "hostile"
	ActionSolid       = "solid"
	ActionPlatform    = "platform"
	ActionPassable    = "passable"
)

// TileMappingsConfig maps tile identifiers to actions, per map format
type TileMappingsConfig struct {
	TMX  map[string]TileMappingConfig `json:"tmx"`
	Text map[string]TileMappingConfig `json:"text"`
}

type TileMappingConfig struct {
	Action     string `json:"action"`
	Variant    string `json:"variant,omitempty"`    // hostile variant or tile visual name
	Variations int    `json:"variations,omitempty"` // decorative variants to pick from
}
