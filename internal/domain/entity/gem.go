package entity

import "math"

// GemConfig holds gem tuning values
type GemConfig struct {
	PointValue   int
	Radius       float64 // pixels
	BounceHeight float64 // pixels, 0 disables bouncing
	BounceRate   float64 // radians per second
	BounceSync   float64 // radians per pixel of X, staggers neighbouring gems
}

// Gem is a collectible worth a fixed number of points
type Gem struct {
	base      Vec2
	bounce    float64
	elapsed   float64
	cfg       GemConfig
	collected bool
}

// NewGem creates a gem centered on pos
func NewGem(pos Vec2, cfg GemConfig) *Gem {
	return &Gem{base: pos, cfg: cfg}
}

// Update advances the bounce animation
func (g *Gem) Update(dt float64) {
	if g.collected {
		return
	}
	g.elapsed += dt
	if g.cfg.BounceHeight == 0 {
		return
	}
	t := g.elapsed*g.cfg.BounceRate + g.base.X*g.cfg.BounceSync
	g.bounce = math.Sin(t) * g.cfg.BounceHeight
}

// Position returns the current (bounced) center
func (g *Gem) Position() Vec2 {
	return Vec2{g.base.X, g.base.Y + g.bounce}
}

// Circle returns the bounding circle at the bounced position
func (g *Gem) Circle() Circle {
	return Circle{Center: g.Position(), Radius: g.cfg.Radius}
}

// PointValue returns the score awarded on collection
func (g *Gem) PointValue() int { return g.cfg.PointValue }

// Collect marks the gem as taken. It returns false if it was already taken.
func (g *Gem) Collect() bool {
	if g.collected {
		return false
	}
	g.collected = true
	return true
}

// IsExpired returns true once the gem has been collected
func (g *Gem) IsExpired() bool { return g.collected }
