package level

import "time"

// Clock tracks elapsed level time and the countdown.
// Remaining never goes below zero.
type Clock struct {
	Elapsed   time.Duration
	Remaining time.Duration
}

// NewClock creates a clock with the full time limit remaining
func NewClock(limit time.Duration) Clock {
	return Clock{Remaining: max(limit, 0)}
}

// Pass adds d to the elapsed time
func (c *Clock) Pass(d time.Duration) {
	c.Elapsed += d
}

// Consume removes up to d from the remaining time and returns the amount removed
func (c *Clock) Consume(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	d = min(d, c.Remaining)
	c.Remaining -= d
	return d
}

// Expired reports whether the countdown has reached zero
func (c Clock) Expired() bool {
	return c.Remaining <= 0
}
