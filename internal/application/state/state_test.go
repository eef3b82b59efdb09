package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelState_String(t *testing.T) {
	tests := []struct {
		state    LevelState
		expected string
	}{
		{StateRunning, "Running"},
		{StateExitReached, "ExitReached"},
		{StateFrozen, "Frozen"},
		{LevelState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestLevelStateConstants(t *testing.T) {
	// A zero LevelState is a running level
	assert.Equal(t, LevelState(0), StateRunning)
	assert.Equal(t, LevelState(1), StateExitReached)
	assert.Equal(t, LevelState(2), StateFrozen)
}

func TestLevelState_Terminal(t *testing.T) {
	assert.False(t, StateRunning.Terminal())
	assert.True(t, StateExitReached.Terminal())
	assert.False(t, StateFrozen.Terminal())
}
