package bot

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Heuristic wins if it can, blocks if it must, and otherwise defers to its fallback.
// Both scans run in ascending cell order and stop at the first hit.
type Heuristic struct {
	fallback Strategy
}

func NewHeuristic(fallback Strategy) *Heuristic {
	return &Heuristic{fallback: fallback}
}

func (that *Heuristic) SelectMove(board entity.Board, player entity.Mark) (int, error) {
	cells, err := availableCells(board)
	if err != nil {
		return -1, err
	}

	if cell, ok := findWinningCell(board, cells, player); ok {
		return cell, nil
	}

	if cell, ok := findWinningCell(board, cells, player.Opponent()); ok {
		return cell, nil
	}

	return that.fallback.SelectMove(board, player)
}

func findWinningCell(board entity.Board, cells []int, mark entity.Mark) (int, bool) {
	for _, cell := range cells {
		probe := board
		probe[cell] = mark

		if _, won := entity.Evaluate(probe, mark); won {
			return cell, true
		}
	}

	return -1, false
}
