package bot

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Strategy picks a cell for player on a board it may freely explore. Implementations never
// modify the caller's board.
type Strategy interface {
	SelectMove(board entity.Board, player entity.Mark) (int, error)
}

// Picker resolves a session's opponent mode to a strategy.
type Picker struct {
	strategies map[entity.Mode]Strategy
}

func NewPicker(source Source) *Picker {
	random := NewRandom(source)

	return &Picker{
		strategies: map[entity.Mode]Strategy{
			entity.ModeRandom:    random,
			entity.ModeHeuristic: NewHeuristic(random),
			entity.ModeOptimal:   NewOptimal(),
		},
	}
}

func (that *Picker) Strategy(mode entity.Mode) (Strategy, error) {
	if mode == entity.ModeHuman {
		return nil, apperror.ErrHumanMode
	}

	strategy, ok := that.strategies[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}

	return strategy, nil
}

// SelectAIMove returns the cell the session's AI opponent wants to play.
func (that *Picker) SelectAIMove(session *entity.Session) (int, error) {
	strategy, err := that.Strategy(session.Mode)
	if err != nil {
		return -1, err
	}

	if session.IsFinished() {
		return -1, apperror.ErrNoMovesAvailable
	}

	cell, err := strategy.SelectMove(session.Board.Snapshot(), entity.AIPlayer)
	if err != nil {
		return -1, fmt.Errorf("failed to select %s move: %w", session.Mode, err)
	}

	return cell, nil
}

// availableCells returns the empty cells of a board that is still being played.
func availableCells(board entity.Board) ([]int, error) {
	if !entity.WinnerOrDraw(board).IsInProgress() {
		return nil, apperror.ErrNoMovesAvailable
	}

	cells := board.EmptyCells()
	if len(cells) == 0 {
		return nil, apperror.ErrNoMovesAvailable
	}

	return cells, nil
}
