package entity

import (
	"errors"
	"fmt"
)

const (
	WinRuleFirstRow = "first-row"
	WinRuleClassic  = "classic"
)

var (
	ErrUnknownWinRule = errors.New("unknown win rule")

	// WinCombos - cell indexes of every line, cell i sits at row i/3, col i%3.
	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// WinRule - reports the mark that owns a winning line, if any.
type WinRule func(board Board) (Mark, bool)

// FirstRowRule - a player wins by filling row 0. No other line counts.
func FirstRowRule(board Board) (Mark, bool) {
	return checkCombo(board, WinCombos[0])
}

// ClassicRule - any row, column or diagonal wins.
func ClassicRule(board Board) (Mark, bool) {
	for _, combo := range WinCombos {
		if mark, ok := checkCombo(board, combo); ok {
			return mark, true
		}
	}
	return EmptyCell, false
}

func ParseWinRule(name string) (WinRule, error) {
	switch name {
	case WinRuleFirstRow:
		return FirstRowRule, nil
	case WinRuleClassic:
		return ClassicRule, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWinRule, name)
	}
}

func checkCombo(board Board, combo [3]int) (Mark, bool) {
	a, b, c := cellAt(board, combo[0]), cellAt(board, combo[1]), cellAt(board, combo[2])
	if a != EmptyCell && a == b && b == c {
		return a, true
	}
	return EmptyCell, false
}

func cellAt(board Board, index int) Mark {
	return board[index/BoardSize][index%BoardSize]
}
