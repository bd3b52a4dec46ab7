package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
)

type gameManager interface {
	Game() entity.Game
	MakeTurn(col, row int) bool
	Outcome() (usecase.Outcome, bool)
}

type terminal interface {
	Clear() error
	Println(text string) error
	ReadLine(ctx context.Context) (string, error)
}

// GameController - runs one game: render, read a move, apply it, check the end of the game.
type GameController struct {
	logger   *slog.Logger
	manager  gameManager
	terminal terminal
}

func NewGameController(logger *slog.Logger, manager gameManager, terminal terminal) *GameController {
	return &GameController{
		logger:   logger.With("component", "game_controller"),
		manager:  manager,
		terminal: terminal,
	}
}

// Run - plays until the game is won or drawn. Input that does not parse is skipped.
func (that *GameController) Run(ctx context.Context) (usecase.Outcome, error) {
	log := that.logger.With("method", "Run")

	for {
		if outcome, finished := that.manager.Outcome(); finished {
			if err := that.showResult(outcome); err != nil {
				return outcome, err
			}

			log.Info("game finished", "result", outcome.Message())

			return outcome, nil
		}

		if err := ctx.Err(); err != nil {
			return usecase.Outcome{}, fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.prompt(); err != nil {
			return usecase.Outcome{}, err
		}

		input, err := that.terminal.ReadLine(ctx)
		if err != nil {
			return usecase.Outcome{}, fmt.Errorf("failed to read move: %w", err)
		}

		log.Debug("input received", "input", input)

		col, row, err := console.ParseMove(input)
		if err != nil {
			log.Debug("input ignored", "error", err)
			continue
		}

		that.manager.MakeTurn(col, row)
	}
}

func (that *GameController) prompt() error {
	game := that.manager.Game()

	if err := that.terminal.Clear(); err != nil {
		return err
	}

	if err := that.terminal.Println(console.RenderBoard(game)); err != nil {
		return err
	}

	return that.terminal.Println("Please make a move, " + game.Turn.String())
}

func (that *GameController) showResult(outcome usecase.Outcome) error {
	if err := that.terminal.Println(console.RenderBoard(that.manager.Game())); err != nil {
		return err
	}

	return that.terminal.Println(outcome.Message())
}
