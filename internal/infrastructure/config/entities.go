package config

type CollectibleConfig struct {
	PointValue   int     `json:"pointValue"`
	RadiusFactor float64 `json:"radiusFactor"` // fraction of tile width
	BounceHeight float64 `json:"bounceHeight"` // fraction of tile height
	BounceRate   float64 `json:"bounceRate"`
	BounceSync   float64 `json:"bounceSync"`
}

type HostileConfig struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	MoveSpeed      float64 `json:"moveSpeed"`
	MaxWaitTime    float64 `json:"maxWaitTime"`
	StompThreshold float64 `json:"stompThreshold"` // max vertical depth (pixels) that still counts as a stomp
	StompImpulse   float64 `json:"stompImpulse"`   // vertical velocity change applied to the actor
	LethalContact  bool    `json:"lethalContact"`  // side contact kills the actor
}

type ProjectileConfig struct {
	Step         float64 `json:"step"`         // pixels per update
	RadiusFactor float64 `json:"radiusFactor"` // fraction of tile width
	CooldownMs   int     `json:"cooldownMs"`
	ColOffset    int     `json:"colOffset"` // spawn tile relative to the actor's tile
	RowOffset    int     `json:"rowOffset"`
}

type RunnerConfig struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	MoveSpeed    float64 `json:"moveSpeed"`
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
	JumpVelocity float64 `json:"jumpVelocity"`
}
