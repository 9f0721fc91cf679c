package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Set(t *testing.T) {
	t.Run("Places a mark on an empty cell", func(t *testing.T) {
		board := NewBoard()

		require.NoError(t, board.Set(3, PlayerO))

		mark, err := board.Get(3)
		require.NoError(t, err)
		assert.Equal(t, PlayerO, mark)
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		board := NewBoard()
		require.NoError(t, board.Set(3, PlayerO))

		err := board.Set(3, PlayerX)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, PlayerO, board[3])
	})

	t.Run("Rejects an index outside the board", func(t *testing.T) {
		board := NewBoard()

		assert.ErrorIs(t, board.Set(-1, PlayerX), apperror.ErrInvalidIndex)
		assert.ErrorIs(t, board.Set(9, PlayerX), apperror.ErrInvalidIndex)
		assert.Equal(t, NewBoard(), board)

		_, err := board.Get(9)
		assert.ErrorIs(t, err, apperror.ErrInvalidIndex)
	})
}

func TestBoard_Snapshot(t *testing.T) {
	// Given: a board with one mark
	board := NewBoard()
	require.NoError(t, board.Set(0, PlayerX))

	// When: the snapshot is modified
	snapshot := board.Snapshot()
	snapshot[1] = PlayerO

	// Then: the original is untouched and equality still works on values
	assert.Equal(t, EmptyCell, board[1])
	assert.NotEqual(t, board, snapshot)
	assert.True(t, board == board.Snapshot())
}

func TestBoard_EmptyCells(t *testing.T) {
	board := Board{
		PlayerX, EmptyCell, PlayerO,
		EmptyCell, PlayerX, EmptyCell,
		PlayerO, EmptyCell, PlayerX,
	}

	assert.Equal(t, []int{1, 3, 5, 7}, board.EmptyCells())
	assert.False(t, board.IsFull())

	full := Board{
		PlayerX, PlayerO, PlayerX,
		PlayerX, PlayerO, PlayerO,
		PlayerO, PlayerX, PlayerX,
	}

	assert.Empty(t, full.EmptyCells())
	assert.True(t, full.IsFull())
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"human":     ModeHuman,
		"random":    ModeRandom,
		"easy":      ModeRandom,
		"heuristic": ModeHeuristic,
		"Medium":    ModeHeuristic,
		"optimal":   ModeOptimal,
		" hard ":    ModeOptimal,
	}

	for input, expected := range cases {
		mode, err := ParseMode(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, mode, input)
	}

	_, err := ParseMode("impossible")
	assert.ErrorIs(t, err, apperror.ErrUnknownMode)

	assert.False(t, ModeHuman.IsAI())
	assert.True(t, ModeOptimal.IsAI())
}
