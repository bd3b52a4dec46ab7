package usecase

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// Outcome - result of a finished game. Winner is EmptyCell for a draw.
type Outcome struct {
	Winner entity.Mark
	Draw   bool
}

func (that Outcome) Message() string {
	if that.Draw {
		return "It's a draw!"
	}
	return that.Winner.String() + " has won!"
}

// GameManager - holds the current snapshot of a single game session.
type GameManager struct {
	logger *slog.Logger
	rule   entity.WinRule

	game entity.Game
}

func NewGameManager(logger *slog.Logger, rule entity.WinRule) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		rule:   rule,
		game:   entity.NewGame(),
	}
}

func (that *GameManager) Game() entity.Game {
	return that.game
}

// MakeTurn - applies a move for the active player and reports whether it was accepted.
// Moves after the game is over are rejected.
func (that *GameManager) MakeTurn(col, row int) bool {
	log := that.logger.With("method", "MakeTurn", "col", col, "row", row, "player", that.game.Turn)

	if _, finished := that.Outcome(); finished {
		log.Debug("move rejected, game is already finished")
		return false
	}

	next := that.game.ApplyMove(col, row)
	if next == that.game {
		log.Debug("move rejected, cell is out of range or occupied")
		return false
	}

	that.game = next
	log.Debug("move accepted", "moves_made", next.MovesMade())

	return true
}

// Outcome - the winner is checked before the draw, a full board with a winning line is a win.
func (that *GameManager) Outcome() (Outcome, bool) {
	if winner, ok := that.game.WinnerBy(that.rule); ok {
		return Outcome{Winner: winner}, true
	}

	if that.game.IsDraw() {
		return Outcome{Draw: true}, true
	}

	return Outcome{}, false
}
