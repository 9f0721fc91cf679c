package apperror

import "errors"

var (
	ErrInvalidIndex        = errors.New("invalid cell index")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrGameAlreadyFinished = errors.New("game is already finished")
	ErrNoMovesAvailable    = errors.New("no moves available")

	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownMode     = errors.New("unknown opponent mode")
	ErrHumanMode       = errors.New("session has no AI opponent")
)
