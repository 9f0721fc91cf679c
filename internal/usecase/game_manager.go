package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type aiPicker interface {
	SelectAIMove(session *entity.Session) (int, error)
}

// GameManager runs stored sessions on behalf of a presentation layer.
type GameManager struct {
	logger *slog.Logger

	// serialises load-modify-store of sessions
	mu sync.Mutex

	sessionRepo sessionRepo
	picker      aiPicker
	defaultMode entity.Mode
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, picker aiPicker, defaultMode entity.Mode) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
		picker:      picker,
		defaultMode: defaultMode,
	}
}

// NewSession starts a game against the given mode; an empty mode means the default one.
func (that *GameManager) NewSession(ctx context.Context, mode string) (*entity.Session, error) {
	opponent, err := that.resolveMode(mode)
	if err != nil {
		return nil, err
	}

	session := entity.NewSession(uuid.NewString(), opponent)
	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "sessionID", session.ID, "mode", session.Mode)

	return session, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// MakeMove applies a human move. While the AI opponent is due to move, human input is refused.
func (that *GameManager) MakeMove(ctx context.Context, id string, cell int) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.IsAIDue() {
		return session, apperror.ErrNotYourTurn
	}

	if err = that.applyMove(ctx, session, cell); err != nil {
		return session, err
	}

	return session, nil
}

// SelectAIMove returns the AI opponent's choice without playing it.
func (that *GameManager) SelectAIMove(ctx context.Context, id string) (int, error) {
	session, err := that.GetSession(ctx, id)
	if err != nil {
		return -1, err
	}

	cell, err := that.picker.SelectAIMove(session)
	if err != nil {
		return -1, fmt.Errorf("failed to select AI move: %w", err)
	}

	return cell, nil
}

// PlayAIMove selects the AI opponent's move and applies it.
func (that *GameManager) PlayAIMove(ctx context.Context, id string) (*entity.Session, int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, -1, err
	}

	if !session.IsFinished() && session.Mode.IsAI() && !session.IsAIDue() {
		return session, -1, apperror.ErrNotYourTurn
	}

	cell, err := that.picker.SelectAIMove(session)
	if err != nil {
		return session, -1, fmt.Errorf("failed to select AI move: %w", err)
	}

	if err = that.applyMove(ctx, session, cell); err != nil {
		return session, cell, err
	}

	return session, cell, nil
}

// ResetSession clears the board and switches to mode; an empty mode keeps the current one.
func (that *GameManager) ResetSession(ctx context.Context, id, mode string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	opponent := session.Mode
	if mode != "" {
		if opponent, err = entity.ParseMode(mode); err != nil {
			return nil, err
		}
	}

	session.Reset(opponent)
	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	that.logger.Info("session reset", "sessionID", session.ID, "mode", session.Mode)

	return session, nil
}

func (that *GameManager) DeleteSession(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session deleted", "sessionID", id)

	return nil
}

func (that *GameManager) applyMove(ctx context.Context, session *entity.Session, cell int) error {
	log := that.logger.With("method", "applyMove", "sessionID", session.ID)

	player := session.Turn
	if _, err := session.ApplyMove(cell); err != nil {
		log.Debug("move rejected", "cell", cell, "error", err)
		return fmt.Errorf("failed to make move: %w", err)
	}

	if err := that.updateSession(ctx, session); err != nil {
		return err
	}

	log.Debug("move applied", "player", player, "cell", cell)

	if session.IsFinished() {
		log.Info("game finished", "winner", session.Outcome.Winner, "line", session.Outcome.Line)
	}

	return nil
}

func (that *GameManager) updateSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}

func (that *GameManager) resolveMode(mode string) (entity.Mode, error) {
	if mode == "" {
		return that.defaultMode, nil
	}

	return entity.ParseMode(mode)
}
