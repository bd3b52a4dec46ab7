package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
)

// RunApp - runs one game on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.Info("Received signal, shutting down", "component", "app", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	clearScreen := !conf.NoClear && console.IsTerminal(os.Stdout)

	return Run(ctx, logger, conf, os.Stdin, os.Stdout, clearScreen)
}

// Run - plays a game reading moves from in and drawing to out.
// An interrupted game is not an error.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer, clearScreen bool) error {
	logger = logger.With("session", uuid.NewString())
	log := logger.With("component", "app")

	rule, err := entity.ParseWinRule(conf.WinRule)
	if err != nil {
		return fmt.Errorf("could not select win rule: %w", err)
	}

	manager := usecase.NewGameManager(logger, rule)
	controller := tictactoe.NewGameController(logger, manager, console.New(in, out, clearScreen))

	log.Info("game started", "win_rule", conf.WinRule)

	outcome, err := controller.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("game interrupted")
		return nil
	}

	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("session closed", "winner", outcome.Winner, "draw", outcome.Draw)

	return nil
}
