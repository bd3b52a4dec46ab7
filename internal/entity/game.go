package entity

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""

	BoardSize = 3
)

// Mark - is a symbol a player puts on the board. EmptyCell marks a free cell.
type Mark string

// Opponent - returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) String() string {
	if that == EmptyCell {
		return " "
	}
	return string(that)
}

// Board - is indexed as Board[row][col].
type Board [BoardSize][BoardSize]Mark

// Game - is one immutable snapshot of the game: board contents and whose turn it is.
// Methods never modify the receiver, a move produces a new Game value.
type Game struct {
	Board Board
	Turn  Mark
}

func NewGame() Game {
	return Game{
		Turn: PlayerX,
	}
}

func inBounds(col, row int) bool {
	return col >= 0 && col < BoardSize && row >= 0 && row < BoardSize
}

// At - returns the mark at (col, row), false for coordinates outside the board.
func (that Game) At(col, row int) (Mark, bool) {
	if !inBounds(col, row) {
		return EmptyCell, false
	}
	return that.Board[row][col], true
}

// IsEmpty - out of range coordinates are never empty.
func (that Game) IsEmpty(col, row int) bool {
	mark, ok := that.At(col, row)
	return ok && mark == EmptyCell
}

// ApplyMove - places the active mark at (col, row) and passes the turn.
// An out of range or occupied target returns the receiver unchanged.
func (that Game) ApplyMove(col, row int) Game {
	if !that.IsEmpty(col, row) {
		return that
	}

	next := Game{
		Board: that.Board,
		Turn:  that.Turn.Opponent(),
	}
	next.Board[row][col] = that.Turn

	return next
}

// IsDraw - reports a full board. It does not look at the winner, check Winner first.
func (that Game) IsDraw() bool {
	for _, row := range that.Board {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Winner - only the first row decides the game.
func (that Game) Winner() (Mark, bool) {
	return FirstRowRule(that.Board)
}

func (that Game) WinnerBy(rule WinRule) (Mark, bool) {
	return rule(that.Board)
}

// Terminal - the game is over once it has a winner or the board is full.
func (that Game) Terminal() bool {
	if _, ok := that.Winner(); ok {
		return true
	}
	return that.IsDraw()
}

// MovesMade - number of occupied cells.
func (that Game) MovesMade() int {
	count := 0
	for _, row := range that.Board {
		for _, cell := range row {
			if cell != EmptyCell {
				count++
			}
		}
	}
	return count
}
