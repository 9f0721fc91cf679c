package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var errMissingCell = errors.New("cell is required")

type uGame interface {
	NewSession(ctx context.Context, mode string) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	MakeMove(ctx context.Context, id string, cell int) (*entity.Session, error)
	SelectAIMove(ctx context.Context, id string) (int, error)
	PlayAIMove(ctx context.Context, id string) (*entity.Session, int, error)
	ResetSession(ctx context.Context, id, mode string) (*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type cellResponse struct {
	Cell int `json:"cell"`
}

type aiMoveResponse struct {
	entity.State
	Cell int `json:"cell"`
}

type SessionHandler struct {
	logger *slog.Logger
	uGame  uGame
}

func NewSessionHandler(logger *slog.Logger, uGame uGame) *SessionHandler {
	return &SessionHandler{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

func (that *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	session, err := that.uGame.NewSession(r.Context(), req.Mode)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, session.State())
}

func (that *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := that.uGame.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session.State())
}

func (that *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *SessionHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	if req.Cell == nil {
		that.writeError(w, r, errMissingCell)
		return
	}

	session, err := that.uGame.MakeMove(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session.State())
}

func (that *SessionHandler) SelectAIMove(w http.ResponseWriter, r *http.Request) {
	cell, err := that.uGame.SelectAIMove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cellResponse{Cell: cell})
}

func (that *SessionHandler) PlayAIMove(w http.ResponseWriter, r *http.Request) {
	session, cell, err := that.uGame.PlayAIMove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, aiMoveResponse{State: session.State(), Cell: cell})
}

func (that *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	session, err := that.uGame.ResetSession(r.Context(), chi.URLParam(r, "id"), req.Mode)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, session.State())
}

func (that *SessionHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	that.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeBody reads an optional JSON body; an empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}
