package entity

// Mark is the content of a board cell and doubles as the player identity.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"

	// PlayerTie is reported as the winner of a drawn game.
	PlayerTie Mark = "-"
)

// X always opens; when an AI opponent is configured it plays O.
const (
	FirstPlayer = PlayerX
	AIPlayer    = PlayerO
)

func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}
