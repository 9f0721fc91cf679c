package entity

// WinCombos lists every line that wins the game: rows, columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome describes how a board stands. The zero value means the game is still in progress.
type Outcome struct {
	Winner Mark  `json:"winner,omitempty"`
	Line   []int `json:"line,omitempty"`
}

func Win(player Mark, line [3]int) Outcome {
	return Outcome{Winner: player, Line: []int{line[0], line[1], line[2]}}
}

func Draw() Outcome {
	return Outcome{Winner: PlayerTie}
}

func (that Outcome) IsInProgress() bool {
	return that.Winner == EmptyCell
}

func (that Outcome) IsDraw() bool {
	return that.Winner == PlayerTie
}

func (that Outcome) IsWin() bool {
	return that.Winner.IsPlayer()
}

func (that Outcome) IsWinFor(player Mark) bool {
	return that.IsWin() && that.Winner == player
}

// Evaluate returns the first winning line fully held by player.
func Evaluate(board Board, player Mark) ([3]int, bool) {
	if !player.IsPlayer() {
		return [3]int{}, false
	}

	for _, combo := range WinCombos {
		if board[combo[0]] == player && board[combo[1]] == player && board[combo[2]] == player {
			return combo, true
		}
	}

	return [3]int{}, false
}

// IsDraw reports a full board on which neither player holds a line.
func IsDraw(board Board) bool {
	if !board.IsFull() {
		return false
	}

	if _, won := Evaluate(board, PlayerX); won {
		return false
	}

	_, won := Evaluate(board, PlayerO)

	return !won
}

// WinnerOrDraw checks X, then O, then the draw condition.
func WinnerOrDraw(board Board) Outcome {
	if line, won := Evaluate(board, PlayerX); won {
		return Win(PlayerX, line)
	}

	if line, won := Evaluate(board, PlayerO); won {
		return Win(PlayerO, line)
	}

	if IsDraw(board) {
		return Draw()
	}

	return Outcome{}
}
