package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

var errBadRequest = errors.New("malformed request body")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidIndex),
		errors.Is(err, apperror.ErrUnknownMode),
		errors.Is(err, errBadRequest),
		errors.Is(err, errMissingCell):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameAlreadyFinished),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNoMovesAvailable),
		errors.Is(err, apperror.ErrHumanMode):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
