package config

// Rules is the root config for rules.json
type Rules struct {
	Tile         TileConfig         `json:"tile"`
	Level        LevelConfig        `json:"level"`
	Collectible  CollectibleConfig  `json:"collectible"`
	Hostile      HostileConfig      `json:"hostile"`
	Projectile   ProjectileConfig   `json:"projectile"`
	Runner       RunnerConfig       `json:"runner"`
	TileMappings TileMappingsConfig `json:"tileMappings"`
}

// TileConfig is the tile size used when a map format carries none
type TileConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type LevelConfig struct {
	TimeLimitSec       float64 `json:"timeLimitSec"`
	PointsPerSecond    int     `json:"pointsPerSecond"`
	ExitTimeMultiplier float64 `json:"exitTimeMultiplier"` // simulated seconds drained per real second after the exit
	Seed               int64   `json:"seed"`               // decorative tile variation
}
