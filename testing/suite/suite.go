package suite

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/console"
)

const maxWaitDuration = 10 * time.Second

// Suite - a scripted terminal session. Console reads the given input lines,
// everything written to it ends up in Output, log records in Logs.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Console *console.Console
	Output  *bytes.Buffer
	Logs    *bytes.Buffer
}

func New(t *testing.T, input ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var script string
	if len(input) > 0 {
		script = strings.Join(input, "\n") + "\n"
	}

	output := &bytes.Buffer{}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Console: console.New(strings.NewReader(script), output, false),
		Output:  output,
		Logs:    logs,
	}
}
