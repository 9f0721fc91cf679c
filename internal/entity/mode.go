package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mode selects who plays O.
type Mode string

const (
	ModeHuman     Mode = "human"
	ModeRandom    Mode = "random"
	ModeHeuristic Mode = "heuristic"
	ModeOptimal   Mode = "optimal"
)

var modeAliases = map[string]Mode{
	"human":     ModeHuman,
	"random":    ModeRandom,
	"easy":      ModeRandom,
	"heuristic": ModeHeuristic,
	"medium":    ModeHeuristic,
	"optimal":   ModeOptimal,
	"hard":      ModeOptimal,
}

// ParseMode accepts the canonical names and the easy/medium/hard difficulty labels.
func ParseMode(value string) (Mode, error) {
	mode, ok := modeAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}

	return mode, nil
}

func (that Mode) IsAI() bool {
	return that == ModeRandom || that == ModeHeuristic || that == ModeOptimal
}
