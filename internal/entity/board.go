package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 9

// Board is a 3x3 grid stored in row-major order. Cells only leave EmptyCell through Set
// and only return to it through a reset of the owning session.
type Board [BoardSize]Mark

func NewBoard() Board {
	return Board{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// Set places mark on an empty cell.
func (that *Board) Set(cell int, mark Mark) error {
	if !IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidIndex, cell)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

func (that *Board) Get(cell int) (Mark, error) {
	if !IsValidCell(cell) {
		return EmptyCell, fmt.Errorf("%w: cell %d", apperror.ErrInvalidIndex, cell)
	}

	return that[cell], nil
}

// Snapshot returns an independent copy that can be explored without touching the original.
func (that *Board) Snapshot() Board {
	return *that
}

// EmptyCells lists the free cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, mark := range that {
		if mark == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	for _, mark := range that {
		if mark == EmptyCell {
			return false
		}
	}

	return true
}
