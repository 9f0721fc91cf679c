package entity

import "github.com/rocketscienceinc/tictactoe-engine/internal/apperror"

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Session is a single game: the board, whose turn it is, how it ended and who plays O.
type Session struct {
	ID      string  `json:"id"`
	Board   Board   `json:"board"`
	Turn    Mark    `json:"turn"`
	Status  string  `json:"status"`
	Outcome Outcome `json:"outcome"`
	Mode    Mode    `json:"mode"`
}

// State is what a caller gets back after every operation on a session.
type State struct {
	ID     string `json:"id,omitempty"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"turn,omitempty"`
	Status string `json:"status"`
	Outcome
	Mode  Mode `json:"mode"`
	AIDue bool `json:"ai_due"`
}

func NewSession(id string, mode Mode) *Session {
	session := &Session{ID: id}
	session.Reset(mode)

	return session
}

// Reset clears the board, gives the first turn to X and records the opponent mode.
func (that *Session) Reset(mode Mode) {
	that.Board = NewBoard()
	that.Turn = FirstPlayer
	that.Status = StatusOngoing
	that.Outcome = Outcome{}
	that.Mode = mode
}

// ApplyMove marks cell for the player to move. A rejected move leaves the session untouched.
func (that *Session) ApplyMove(cell int) (State, error) {
	if that.IsFinished() {
		return that.State(), apperror.ErrGameAlreadyFinished
	}

	player := that.Turn
	if err := that.Board.Set(cell, player); err != nil {
		return that.State(), err
	}

	that.updateGameState(player)

	return that.State(), nil
}

func (that *Session) updateGameState(player Mark) {
	if line, won := Evaluate(that.Board, player); won {
		that.finish(Win(player, line))
		return
	}

	if IsDraw(that.Board) {
		that.finish(Draw())
		return
	}

	that.Turn = player.Opponent()
}

func (that *Session) finish(outcome Outcome) {
	that.Outcome = outcome
	that.Status = StatusFinished
	that.Turn = EmptyCell
}

func (that *Session) IsFinished() bool {
	return that.Status == StatusFinished
}

// IsAIDue reports that the next move belongs to the configured AI opponent.
func (that *Session) IsAIDue() bool {
	return !that.IsFinished() && that.Mode.IsAI() && that.Turn == AIPlayer
}

func (that *Session) State() State {
	outcome := that.Outcome
	if outcome.Line != nil {
		outcome.Line = append([]int(nil), outcome.Line...)
	}

	return State{
		ID:      that.ID,
		Board:   that.Board.Snapshot(),
		Turn:    that.Turn,
		Status:  that.Status,
		Outcome: outcome,
		Mode:    that.Mode,
		AIDue:   that.IsAIDue(),
	}
}
