package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

var clientErrors = []error{
	apperror.ErrInvalidIndex,
	apperror.ErrCellOccupied,
	apperror.ErrGameAlreadyFinished,
	apperror.ErrNoMovesAvailable,
	apperror.ErrNotYourTurn,
	apperror.ErrSessionNotFound,
	apperror.ErrUnknownMode,
	apperror.ErrHumanMode,
	errUnknownAction,
	errMalformedMessage,
	errMissingSession,
	errMissingCell,
}

func (that *Server) handleNewSession(ctx context.Context, req *Request) (Payload, error) {
	session, err := that.uGame.NewSession(ctx, req.Mode)
	if err != nil {
		return Payload{}, err
	}

	return sessionPayload(session), nil
}

func (that *Server) handleGetSession(ctx context.Context, req *Request) (Payload, error) {
	if err := req.requireSession(); err != nil {
		return Payload{}, err
	}

	session, err := that.uGame.GetSession(ctx, req.SessionID)
	if err != nil {
		return Payload{}, err
	}

	return sessionPayload(session), nil
}

func (that *Server) handleMove(ctx context.Context, req *Request) (Payload, error) {
	if err := req.requireSession(); err != nil {
		return Payload{}, err
	}

	if req.Cell == nil {
		return Payload{}, errMissingCell
	}

	session, err := that.uGame.MakeMove(ctx, req.SessionID, *req.Cell)
	if err != nil {
		return Payload{}, err
	}

	return sessionPayload(session), nil
}

func (that *Server) handleAIMove(ctx context.Context, req *Request) (Payload, error) {
	if err := req.requireSession(); err != nil {
		return Payload{}, err
	}

	session, cell, err := that.uGame.PlayAIMove(ctx, req.SessionID)
	if err != nil {
		return Payload{}, err
	}

	payload := sessionPayload(session)
	payload.Cell = &cell

	return payload, nil
}

func (that *Server) handleReset(ctx context.Context, req *Request) (Payload, error) {
	if err := req.requireSession(); err != nil {
		return Payload{}, err
	}

	session, err := that.uGame.ResetSession(ctx, req.SessionID, req.Mode)
	if err != nil {
		return Payload{}, err
	}

	return sessionPayload(session), nil
}

// errorResponse hides anything that is not the client's fault behind a generic message.
func (that *Server) errorResponse(action string, err error) Response {
	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr) {
			that.logger.Debug("request rejected", "action", action, "error", err)
			return Response{Action: action, Payload: Payload{Error: err.Error()}}
		}
	}

	that.logger.Error("request failed", "action", action, "error", err)

	return Response{Action: action, Payload: Payload{Error: "internal error"}}
}
