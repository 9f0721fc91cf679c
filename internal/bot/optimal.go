package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Terminal scores, always from O's point of view. Search depth is not weighed in:
// a slow win scores the same as a fast one.
const (
	scoreWinO = 10
	scoreWinX = -10
	scoreDraw = 0
)

// Optimal runs a full minimax search. O maximises, X minimises; among equal scores the lowest
// cell wins.
type Optimal struct{}

func NewOptimal() *Optimal {
	return &Optimal{}
}

func (that *Optimal) SelectMove(board entity.Board, player entity.Mark) (int, error) {
	if _, err := availableCells(board); err != nil {
		return -1, err
	}

	_, cell := minimax(board, player)

	return cell, nil
}

func minimax(board entity.Board, toMove entity.Mark) (int, int) {
	switch outcome := entity.WinnerOrDraw(board); {
	case outcome.IsWinFor(entity.PlayerO):
		return scoreWinO, -1
	case outcome.IsWinFor(entity.PlayerX):
		return scoreWinX, -1
	case outcome.IsDraw():
		return scoreDraw, -1
	}

	maximizing := toMove == entity.PlayerO

	bestScore, bestCell := math.MaxInt, -1
	if maximizing {
		bestScore = math.MinInt
	}

	for _, cell := range board.EmptyCells() {
		child := board
		child[cell] = toMove

		score, _ := minimax(child, toMove.Opponent())
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore, bestCell = score, cell
		}
	}

	return bestScore, bestCell
}
