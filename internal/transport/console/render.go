package console

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	columnRule = " ┃ "
	rowRule    = "\n━━╋━━━╋━━\n"
)

// RenderBoard - draws the board, one text line per row.
func RenderBoard(game entity.Game) string {
	rows := make([]string, 0, entity.BoardSize)

	for _, row := range game.Board {
		cells := make([]string, 0, entity.BoardSize)
		for _, mark := range row {
			cells = append(cells, mark.String())
		}
		rows = append(rows, strings.Join(cells, columnRule))
	}

	return strings.Join(rows, rowRule)
}
