package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestBot_MakeTurn(t *testing.T) {
	t.Run("Picks among the empty cells only", func(t *testing.T) {
		// Given: a board with two empty cells and a picker that takes the last one
		board := entity.Board{
			{x, o, x},
			{e, x, o},
			{o, x, e},
		}
		bot := NewBot(func(n int) int { return n - 1 })

		// When: the bot makes its turn
		pos := bot.MakeTurn(&board)

		// Then: the last empty cell holds a Circle
		assert.Equal(t, entity.Position{Row: 2, Col: 2}, pos)
		assert.Equal(t, o, board.Get(2, 2))
		assert.Equal(t, e, board.Get(1, 0))
	})

	t.Run("Random picker always lands on an empty cell", func(t *testing.T) {
		bot := NewBot(nil)

		for i := 0; i < 100; i++ {
			board := entity.NewBoard()
			board.Set(1, 1, x)

			pos := bot.MakeTurn(&board)

			assert.NotEqual(t, entity.Position{Row: 1, Col: 1}, pos)
			assert.Equal(t, o, board.Get(pos.Row, pos.Col))
			assert.Equal(t, 1, board.Count(o))
		}
	})

	t.Run("Full board panics", func(t *testing.T) {
		board := entity.Board{
			{x, o, o},
			{o, x, x},
			{x, x, o},
		}
		bot := NewBot(nil)

		assert.Panics(t, func() { bot.MakeTurn(&board) })
	})
}
