package entity

// ProjectileConfig holds projectile tuning values
type ProjectileConfig struct {
	Step   float64 // pixels moved per Update
	Radius float64 // pixels
}

// Projectile flies in a straight line until it touches terrain or a hostile
type Projectile struct {
	X, Y      float64 // center
	Direction Vec2
	Active    bool

	cfg ProjectileConfig
}

// NewProjectile creates an active projectile centered on pos
func NewProjectile(pos, direction Vec2, cfg ProjectileConfig) *Projectile {
	return &Projectile{
		X:         pos.X,
		Y:         pos.Y,
		Direction: direction,
		Active:    true,
		cfg:       cfg,
	}
}

// Update advances the projectile one fixed step along its direction.
// The step does not depend on dt.
func (p *Projectile) Update(dt float64) {
	if !p.Active {
		return
	}
	p.X += p.Direction.X * p.cfg.Step
	p.Y += p.Direction.Y * p.cfg.Step
}

// Position returns the center
func (p *Projectile) Position() Vec2 { return Vec2{p.X, p.Y} }

// Circle returns the bounding circle
func (p *Projectile) Circle() Circle {
	return Circle{Center: p.Position(), Radius: p.cfg.Radius}
}

// Bounds returns the box enclosing the bounding circle
func (p *Projectile) Bounds() Rect {
	return p.Circle().Bounds()
}

// Deactivate marks the projectile as spent
func (p *Projectile) Deactivate() {
	p.Active = false
}

// IsExpired returns true once the projectile is spent
func (p *Projectile) IsExpired() bool { return !p.Active }
