package breakout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameStateCounters(t *testing.T) {
	st := NewGameState(3, 40, 10)

	assert.Equal(t, StateServing, st.State)
	assert.Equal(t, 2, st.TurnsLeft)
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, 40, st.BricksRemaining)
}

func TestGameStateLaunch(t *testing.T) {
	st := NewGameState(3, 40, 10)
	require.NoError(t, st.Launch())
	assert.Equal(t, StateInPlay, st.State)

	err := st.Launch()
	var te *TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, StateInPlay, te.From)
	assert.Equal(t, "launch", te.Event)
	assert.Contains(t, err.Error(), "in-play")
}

func TestGameStateLoseTurns(t *testing.T) {
	st := NewGameState(3, 40, 10)

	for _, expected := range []int{1, 0} {
		require.NoError(t, st.Launch())
		assert.Equal(t, StateServing, st.LoseTurn())
		assert.Equal(t, expected, st.TurnsLeft)
	}

	require.NoError(t, st.Launch())
	assert.Equal(t, StateLost, st.LoseTurn())
	assert.Equal(t, -1, st.TurnsLeft)
	assert.True(t, st.State.Terminal())

	// Terminal state absorbs further events.
	assert.Equal(t, StateLost, st.LoseTurn())
	assert.Equal(t, -1, st.TurnsLeft)
	assert.Error(t, st.Launch())
}

func TestGameStateLoseTurnOnlyInPlay(t *testing.T) {
	st := NewGameState(3, 40, 10)
	assert.Equal(t, StateServing, st.LoseTurn())
	assert.Equal(t, 2, st.TurnsLeft)
}

func TestGameStateScoringAndWin(t *testing.T) {
	st := NewGameState(1, 2, 10)
	require.NoError(t, st.Launch())

	st.BrickDestroyed()
	assert.Equal(t, 10, st.Score)
	assert.Equal(t, 1, st.BricksRemaining)
	assert.False(t, st.CheckWin())

	st.BrickDestroyed()
	assert.Equal(t, 20, st.Score)
	assert.True(t, st.CheckWin())
	assert.Equal(t, StateWon, st.State)
	assert.Equal(t, 0, st.TurnsLeft)

	// Counters never go below zero.
	st.BrickDestroyed()
	assert.Equal(t, 0, st.BricksRemaining)
	assert.Equal(t, 20, st.Score)
	assert.False(t, st.CheckWin())
}

func TestStateStrings(t *testing.T) {
	tests := []struct {
		state    State
		expected string
		terminal bool
	}{
		{StateServing, "serving", false},
		{StateInPlay, "in-play", false},
		{StateTurnLost, "turn-lost", false},
		{StateWon, "won", true},
		{StateLost, "lost", true},
		{State(99), "unknown", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.state.String())
		assert.Equal(t, tc.terminal, tc.state.Terminal(), tc.expected)
	}
}
