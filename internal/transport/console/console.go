package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

// clearSequence - erases the screen and moves the cursor to the top left corner.
const clearSequence = "\x1b[2J\x1b[1;1H"

type Console struct {
	reader *bufio.Reader
	writer io.Writer
	clear  bool
}

type readResult struct {
	line string
	err  error
}

func New(in io.Reader, out io.Writer, clear bool) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		writer: out,
		clear:  clear,
	}
}

// IsTerminal - reports whether the file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Clear - does nothing unless clearing was enabled.
func (that *Console) Clear() error {
	if !that.clear {
		return nil
	}

	if _, err := io.WriteString(that.writer, clearSequence); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}

	return nil
}

func (that *Console) Println(text string) error {
	if _, err := fmt.Fprintln(that.writer, text); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}

	return nil
}

// ReadLine - blocks until a line is available or ctx is done.
// The console must not be used again after a context error.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	resultCh := make(chan readResult, 1)

	go func() {
		line, err := that.reader.ReadString('\n')
		resultCh <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read interrupted: %w", ctx.Err())
	case result := <-resultCh:
		return handleRead(result)
	}
}

func handleRead(result readResult) (string, error) {
	line := strings.TrimRight(result.line, "\r\n")

	switch {
	case result.err == nil:
		return line, nil
	case errors.Is(result.err, io.EOF):
		// the last line may come without a newline
		if line != "" {
			return line, nil
		}
		return "", apperror.ErrInputClosed
	default:
		return "", fmt.Errorf("failed to read line: %w", result.err)
	}
}
