package state

// LevelState is the phase of a level in progress
type LevelState int

const (
	// StateRunning simulates input, entities and the clock
	StateRunning LevelState = iota
	// StateExitReached drains the remaining time into the score
	StateExitReached
	// StateFrozen waits for a new life after death or time out
	StateFrozen
)

// String returns the string representation of the level state
func (s LevelState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateExitReached:
		return "ExitReached"
	case StateFrozen:
		return "Frozen"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no transition leaves the state
func (s LevelState) Terminal() bool {
	return s == StateExitReached
}
