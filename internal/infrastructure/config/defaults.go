package config

// DefaultRules returns the built-in rules.
// Values match assets/rules.json; a rules file only needs to list overrides.
func DefaultRules() *Rules {
	return &Rules{
		Tile: TileConfig{Width: 40, Height: 32},
		Level: LevelConfig{
			TimeLimitSec:       120,
			PointsPerSecond:    5,
			ExitTimeMultiplier: 100,
			Seed:               354668,
		},
		Collectible: CollectibleConfig{
			PointValue:   30,
			RadiusFactor: 1.0 / 3,
			BounceHeight: 0.18,
			BounceRate:   3,
			BounceSync:   -0.75,
		},
		Hostile: HostileConfig{
			Width:          22,
			Height:         45,
			MoveSpeed:      64,
			MaxWaitTime:    0.5,
			StompThreshold: 10,
			StompImpulse:   -700,
		},
		Projectile: ProjectileConfig{
			Step:         5,
			RadiusFactor: 1.0 / 3,
			CooldownMs:   200,
			ColOffset:    0,
			RowOffset:    -2,
		},
		Runner: RunnerConfig{
			Width:        26,
			Height:       51,
			MoveSpeed:    160,
			Gravity:      1800,
			MaxFallSpeed: 550,
			JumpVelocity: -640,
		},
		TileMappings: TileMappingsConfig{
			TMX:  defaultTMXMappings(),
			Text: defaultTextMappings(),
		},
	}
}

func defaultTMXMappings() map[string]TileMappingConfig {
	m := map[string]TileMappingConfig{
		"41": {Action: ActionStart},
		"42": {Action: ActionExit},
		"11": {Action: ActionCollectible},
		"12": {Action: ActionCollectible},
		"16": {Action: ActionPlatform, Variant: "Platform"},
		"43": {Action: ActionHostile, Variant: "MonsterA"},
	}
	for _, gid := range []string{"14", "15", "21", "22", "27", "28", "40"} {
		m[gid] = TileMappingConfig{Action: ActionSolid, Variant: "Block"}
	}
	return m
}

func defaultTextMappings() map[string]TileMappingConfig {
	return map[string]TileMappingConfig{
		".": {Action: ActionPassable},
		"X": {Action: ActionExit},
		"G": {Action: ActionCollectible},
		"-": {Action: ActionPlatform, Variant: "Platform"},
		"A": {Action: ActionHostile, Variant: "MonsterA"},
		"B": {Action: ActionHostile, Variant: "MonsterB"},
		"C": {Action: ActionHostile, Variant: "MonsterC"},
		"D": {Action: ActionHostile, Variant: "MonsterD"},
		"~": {Action: ActionPlatform, Variant: "BlockB", Variations: 2},
		":": {Action: ActionPassable, Variant: "BlockB", Variations: 2},
		"1": {Action: ActionStart},
		"#": {Action: ActionSolid, Variant: "BlockA", Variations: 7},
	}
}
