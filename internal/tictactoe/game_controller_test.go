package tictactoe

import (
	"context"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-terminal/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(st *suite.Suite, rule entity.WinRule) (*GameController, *usecase.GameManager) {
	manager := usecase.NewGameManager(st.Logger, rule)
	return NewGameController(st.Logger, manager, st.Console), manager
}

func TestGameController_Run(t *testing.T) {
	t.Run("X wins on the first row", func(t *testing.T) {
		// Given: moves where X fills row 0 and O plays elsewhere
		ctx, st := suite.New(t, "0,0", "1,1", "1,0", "2,2", "2,0")
		controller, _ := newController(st, entity.FirstRowRule)

		// When: the game is played
		outcome, err := controller.Run(ctx)

		// Then: X has won and the result is printed after the final board
		require.NoError(t, err)
		assert.Equal(t, usecase.Outcome{Winner: entity.PlayerX}, outcome)

		expectedEnd := "X ┃ X ┃ X\n" +
			"━━╋━━━╋━━\n" +
			"  ┃ O ┃  \n" +
			"━━╋━━━╋━━\n" +
			"  ┃   ┃ O\n" +
			"X has won!\n"
		assert.True(t, strings.HasSuffix(st.Output.String(), expectedEnd), st.Output.String())
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: nine moves that fill the board without a first-row line
		ctx, st := suite.New(t, "0,0", "1,0", "2,0", "1,1", "0,1", "2,1", "1,2", "0,2", "2,2")
		controller, manager := newController(st, entity.FirstRowRule)

		// When: the game is played
		outcome, err := controller.Run(ctx)

		// Then: the game is a draw
		require.NoError(t, err)
		assert.True(t, outcome.Draw)
		assert.True(t, manager.Game().IsDraw())
		assert.True(t, strings.HasSuffix(st.Output.String(), "It's a draw!\n"))
	})

	t.Run("Bad input and illegal moves are skipped", func(t *testing.T) {
		// Given: garbage, an occupied cell and out of range cells between legal moves
		ctx, st := suite.New(t,
			"0,0", "hello", "0,0", "1,2,3", "-1,0", "3,3", "1,1",
			"1,0", "", "2,2", "2,0",
		)
		controller, _ := newController(st, entity.FirstRowRule)

		// When: the game is played
		outcome, err := controller.Run(ctx)

		// Then: only legal moves counted and X still wins
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, outcome.Winner)

		// Then: O kept being asked until a legal move came in
		assert.Equal(t, 8, strings.Count(st.Output.String(), "Please make a move, O\n"))
		assert.Equal(t, 3, strings.Count(st.Output.String(), "Please make a move, X\n"))
		assert.Contains(t, st.Logs.String(), "input ignored")
		assert.Contains(t, st.Logs.String(), "move rejected")
	})

	t.Run("Prompt names the player to move", func(t *testing.T) {
		// Given: a single move and then the end of input
		ctx, st := suite.New(t, "1,1")
		controller, _ := newController(st, entity.FirstRowRule)

		// When: the game is played
		_, err := controller.Run(ctx)

		// Then: input runs out
		require.ErrorIs(t, err, apperror.ErrInputClosed)

		// Then: X was asked first, then O
		output := st.Output.String()
		require.Contains(t, output, "Please make a move, X\n")
		require.Contains(t, output, "Please make a move, O\n")
		assert.Less(t, strings.Index(output, "Please make a move, X"), strings.Index(output, "Please make a move, O"))
	})

	t.Run("Classic rule ends the game on a column", func(t *testing.T) {
		// Given: X fills column 0
		ctx, st := suite.New(t, "0,0", "1,0", "0,1", "1,1", "0,2")
		controller, _ := newController(st, entity.ClassicRule)

		// When: the game is played
		outcome, err := controller.Run(ctx)

		// Then: X has won
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, outcome.Winner)
	})

	t.Run("Canceled context stops the game", func(t *testing.T) {
		// Given: a canceled context
		ctx, st := suite.New(t, "0,0")
		controller, _ := newController(st, entity.FirstRowRule)

		ctx, cancel := context.WithCancel(ctx)
		cancel()

		// When: the game is played
		_, err := controller.Run(ctx)

		// Then: the context error is returned and nothing was drawn
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, st.Output.String())
	})
}
