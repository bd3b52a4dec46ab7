package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

const moveSeparator = ","

// ParseMove - parses "<col>,<row>". Only whitespace around the whole line is ignored.
func ParseMove(input string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(input), moveSeparator)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected <col>,<row>, got %q", apperror.ErrInvalidInput, input)
	}

	col, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q", apperror.ErrInvalidInput, parts[0])
	}

	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", apperror.ErrInvalidInput, parts[1])
	}

	return col, row, nil
}
