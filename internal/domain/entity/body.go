package entity

// Runner is the body of the controllable actor.
// Position is the bottom center of the hitbox, velocity is in pixels per second.
type Runner struct {
	X, Y   float64
	VX, VY float64

	Width  float64
	Height float64

	OnGround    bool
	Alive       bool
	ReachedExit bool

	// PreviousBottom is the hitbox bottom after the last collision pass.
	// One-way platforms only block a body that was at or above their top.
	PreviousBottom float64
}

// NewRunner creates a living runner standing at pos
func NewRunner(pos Vec2, width, height float64) *Runner {
	r := &Runner{Width: width, Height: height}
	r.Reset(pos)
	return r
}

// Reset revives the runner at pos with no velocity
func (r *Runner) Reset(pos Vec2) {
	r.X, r.Y = pos.X, pos.Y
	r.VX, r.VY = 0, 0
	r.OnGround = false
	r.Alive = true
	r.ReachedExit = false
	r.PreviousBottom = pos.Y
}

// Bounds returns the hitbox in world coordinates
func (r *Runner) Bounds() Rect {
	return Rect{
		X: r.X - r.Width/2,
		Y: r.Y - r.Height,
		W: r.Width,
		H: r.Height,
	}
}

// Position returns the bottom center of the hitbox
func (r *Runner) Position() Vec2 { return Vec2{r.X, r.Y} }

// MovementSign returns -1, 0 or +1 following the horizontal velocity
func (r *Runner) MovementSign() float64 {
	switch {
	case r.VX > 0:
		return 1
	case r.VX < 0:
		return -1
	default:
		return 0
	}
}
