package bot

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

type fixedSource struct {
	value int
}

func (that fixedSource) IntN(n int) int {
	return that.value % n
}

type recordingStrategy struct {
	calls int
	cell  int
}

func (that *recordingStrategy) SelectMove(_ entity.Board, _ entity.Mark) (int, error) {
	that.calls++
	return that.cell, nil
}

var fullBoard = entity.Board{
	x, o, x,
	x, o, o,
	o, x, x,
}

func TestRandom_SelectMove(t *testing.T) {
	t.Run("Always picks an empty cell", func(t *testing.T) {
		// Given: a board with five empty cells
		board := entity.Board{
			x, e, o,
			e, x, e,
			o, e, e,
		}
		empty := board.EmptyCells()

		for seed := uint64(0); seed < 50; seed++ {
			random := NewRandom(NewSeededSource(seed))

			// When: the random tier picks a cell
			cell, err := random.SelectMove(board, o)

			// Then: the cell is one of the empty ones
			require.NoError(t, err)
			assert.Contains(t, empty, cell)
		}
	})

	t.Run("Chooses by position among empty cells in ascending order", func(t *testing.T) {
		board := entity.Board{
			x, e, o,
			e, x, e,
			o, e, e,
		}

		cell, err := NewRandom(fixedSource{value: 2}).SelectMove(board, o)

		require.NoError(t, err)
		assert.Equal(t, 5, cell)
	})

	t.Run("Varies across sources", func(t *testing.T) {
		seen := make(map[int]struct{})
		for seed := uint64(0); seed < 50; seed++ {
			cell, err := NewRandom(NewSeededSource(seed)).SelectMove(entity.NewBoard(), o)
			require.NoError(t, err)
			seen[cell] = struct{}{}
		}

		assert.Greater(t, len(seen), 1)
	})

	t.Run("Full board has no moves", func(t *testing.T) {
		_, err := NewRandom(nil).SelectMove(fullBoard, o)

		assert.ErrorIs(t, err, apperror.ErrNoMovesAvailable)
	})
}

func TestHeuristic_SelectMove(t *testing.T) {
	t.Run("Blocks the opponent's open line", func(t *testing.T) {
		// Given: X holds 3 and 4, O holds 0
		board := entity.Board{
			o, e, e,
			x, x, e,
			e, e, e,
		}
		fallback := &recordingStrategy{cell: 8}

		// When: the heuristic tier picks for O
		cell, err := NewHeuristic(fallback).SelectMove(board, o)

		// Then: it blocks at 5 without consulting the fallback
		require.NoError(t, err)
		assert.Equal(t, 5, cell)
		assert.Zero(t, fallback.calls)
	})

	t.Run("Prefers winning over blocking", func(t *testing.T) {
		// Given: O can win at 2 and X threatens 5
		board := entity.Board{
			o, o, e,
			x, x, e,
			e, e, x,
		}

		// When: the heuristic tier picks for O
		cell, err := NewHeuristic(&recordingStrategy{cell: 7}).SelectMove(board, o)

		// Then: it takes the win
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Takes the lowest of several winning cells", func(t *testing.T) {
		board := entity.Board{
			o, e, o,
			e, x, x,
			o, x, e,
		}

		cell, err := NewHeuristic(&recordingStrategy{cell: 8}).SelectMove(board, o)

		require.NoError(t, err)
		assert.Equal(t, 1, cell)
	})

	t.Run("Falls back when nothing is urgent", func(t *testing.T) {
		// Given: a board with no open lines
		board := entity.Board{
			x, e, e,
			e, e, e,
			e, e, e,
		}
		fallback := &recordingStrategy{cell: 4}

		// When: the heuristic tier picks for O
		cell, err := NewHeuristic(fallback).SelectMove(board, o)

		// Then: the fallback decides
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Equal(t, 1, fallback.calls)
	})

	t.Run("Is deterministic", func(t *testing.T) {
		board := entity.Board{
			x, e, e,
			o, x, e,
			e, e, e,
		}
		heuristic := NewHeuristic(&recordingStrategy{cell: 1})

		first, err := heuristic.SelectMove(board, o)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			cell, err := heuristic.SelectMove(board, o)
			require.NoError(t, err)
			assert.Equal(t, first, cell)
		}
		assert.Equal(t, 8, first)
	})

	t.Run("Full board has no moves", func(t *testing.T) {
		_, err := NewHeuristic(NewRandom(nil)).SelectMove(fullBoard, o)

		assert.ErrorIs(t, err, apperror.ErrNoMovesAvailable)
	})
}

func TestOptimal_SelectMove(t *testing.T) {
	optimal := NewOptimal()

	t.Run("Answers a center opening with a corner", func(t *testing.T) {
		// Given: X opened in the center
		board := entity.NewBoard()
		board[4] = x

		// When: the optimal tier picks for O
		cell, err := optimal.SelectMove(board, o)

		// Then: it takes the first corner, never an edge
		require.NoError(t, err)
		assert.Contains(t, []int{0, 2, 6, 8}, cell)
		assert.Equal(t, 0, cell)
	})

	t.Run("Takes an immediate win", func(t *testing.T) {
		board := entity.Board{
			o, o, e,
			x, x, e,
			e, e, x,
		}

		cell, err := optimal.SelectMove(board, o)

		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks a forced loss", func(t *testing.T) {
		board := entity.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}

		cell, err := optimal.SelectMove(board, o)

		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Does not modify the board", func(t *testing.T) {
		board := entity.Board{
			x, e, e,
			e, e, e,
			e, e, e,
		}
		before := board

		_, err := optimal.SelectMove(board, o)

		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Is deterministic", func(t *testing.T) {
		board := entity.Board{
			x, e, e,
			e, o, e,
			e, e, x,
		}

		first, err := optimal.SelectMove(board, o)
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			cell, err := optimal.SelectMove(board, o)
			require.NoError(t, err)
			assert.Equal(t, first, cell)
		}
	})

	t.Run("Decided board has no moves", func(t *testing.T) {
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		_, err := optimal.SelectMove(board, o)
		assert.ErrorIs(t, err, apperror.ErrNoMovesAvailable)

		_, err = optimal.SelectMove(fullBoard, o)
		assert.ErrorIs(t, err, apperror.ErrNoMovesAvailable)
	})
}

func TestOptimal_NeverLoses(t *testing.T) {
	optimal := NewOptimal()

	var play func(board entity.Board)
	play = func(board entity.Board) {
		for _, cell := range board.EmptyCells() {
			afterX := board
			afterX[cell] = x

			outcome := entity.WinnerOrDraw(afterX)
			require.False(t, outcome.IsWinFor(x), "X won on %v", afterX)
			if !outcome.IsInProgress() {
				continue
			}

			reply, err := optimal.SelectMove(afterX, o)
			require.NoError(t, err)

			afterO := afterX
			require.NoError(t, afterO.Set(reply, o))

			if entity.WinnerOrDraw(afterO).IsInProgress() {
				play(afterO)
			}
		}
	}

	// every legal sequence of X moves against the optimal O
	play(entity.NewBoard())
}

func TestOptimal_SelfPlayDraws(t *testing.T) {
	optimal := NewOptimal()
	session := entity.NewSession("self-play", entity.ModeOptimal)

	for !session.IsFinished() {
		cell, err := optimal.SelectMove(session.Board, session.Turn)
		require.NoError(t, err)

		_, err = session.ApplyMove(cell)
		require.NoError(t, err)
	}

	assert.True(t, session.Outcome.IsDraw())
}

func TestPicker_SelectAIMove(t *testing.T) {
	picker := NewPicker(fixedSource{value: 0})

	t.Run("Uses the strategy of the session's mode", func(t *testing.T) {
		session := entity.NewSession("1", entity.ModeHeuristic)
		session.Board = entity.Board{
			o, e, e,
			x, x, e,
			e, e, e,
		}
		session.Turn = o

		cell, err := picker.SelectAIMove(session)

		require.NoError(t, err)
		assert.Equal(t, 5, cell)
	})

	t.Run("Random mode picks through the source", func(t *testing.T) {
		session := entity.NewSession("1", entity.ModeRandom)
		_, err := session.ApplyMove(0)
		require.NoError(t, err)

		cell, err := picker.SelectAIMove(session)

		require.NoError(t, err)
		assert.Equal(t, 1, cell)
	})

	t.Run("Does not touch the session", func(t *testing.T) {
		session := entity.NewSession("1", entity.ModeOptimal)
		_, err := session.ApplyMove(4)
		require.NoError(t, err)
		before := *session

		_, err = picker.SelectAIMove(session)

		require.NoError(t, err)
		assert.Equal(t, before, *session)
	})

	t.Run("Human mode has no AI", func(t *testing.T) {
		_, err := picker.SelectAIMove(entity.NewSession("1", entity.ModeHuman))

		assert.ErrorIs(t, err, apperror.ErrHumanMode)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		_, err := picker.SelectAIMove(entity.NewSession("1", entity.Mode("chess")))

		assert.ErrorIs(t, err, apperror.ErrUnknownMode)
	})

	t.Run("Finished session has no moves", func(t *testing.T) {
		session := entity.NewSession("1", entity.ModeOptimal)
		session.Board = entity.Board{x, x, e, o, o, e, e, e, e}
		_, err := session.ApplyMove(2)
		require.NoError(t, err)

		_, err = picker.SelectAIMove(session)

		assert.ErrorIs(t, err, apperror.ErrNoMovesAvailable)
	})
}
