package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("All cells are empty", func(t *testing.T) {
		// When: a new board is created
		board := NewBoard()

		// Then: every cell should be Empty
		assert.Equal(t, Size*Size, board.Count(Empty))
		assert.False(t, board.IsFull())
	})

	t.Run("Mutating one board never affects a fresh one", func(t *testing.T) {
		// Given: a board that has been played on
		played := NewBoard()
		played.Set(0, 1, Cross)
		played.Set(2, 2, Circle)
		played.Set(1, 0, Cross)

		// When: another board is created
		fresh := NewBoard()

		// Then: it should still be empty
		assert.Equal(t, Board{}, fresh)
		assert.Equal(t, Cross, played.Get(0, 1))
	})

	t.Run("Reset clears a board without touching copies", func(t *testing.T) {
		// Given: a board and a copy of it
		board := NewBoard()
		board.Set(1, 1, Cross)
		snapshot := board

		// When: the board is reset
		board.Reset()

		// Then: the board is empty and the copy kept its move
		assert.Equal(t, NewBoard(), board)
		assert.Equal(t, Cross, snapshot.Get(1, 1))
	})
}

func TestBoard_GetSet(t *testing.T) {
	t.Run("Set writes the addressed cell only", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: a Cross is written at row 0, column 2
		board.Set(0, 2, Cross)

		// Then: only that cell changed
		assert.Equal(t, Cross, board.Get(0, 2))
		assert.Equal(t, Empty, board.Get(2, 0))
		assert.Equal(t, 1, board.Count(Cross))
	})

	t.Run("Out of range coordinates panic", func(t *testing.T) {
		board := NewBoard()

		assert.PanicsWithError(t, apperror.ErrInvalidCell.Error()+": (3, 0)", func() { board.Get(3, 0) })
		assert.Panics(t, func() { board.Get(0, -1) })
		assert.Panics(t, func() { board.Set(-1, 1, Cross) })
	})

	t.Run("Unknown cell values panic", func(t *testing.T) {
		board := NewBoard()

		assert.Panics(t, func() { board.Set(1, 1, Cell(7)) })
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a board with one free cell
	board := Board{
		{Cross, Circle, Cross},
		{Circle, Cross, Circle},
		{Circle, Cross, Empty},
	}

	// Then: it is not full
	assert.False(t, board.IsFull())
	assert.Equal(t, []Position{{Row: 2, Col: 2}}, board.EmptyCells())

	// When: the last cell is filled
	board.Set(2, 2, Circle)

	// Then: it is full
	assert.True(t, board.IsFull())
	assert.Empty(t, board.EmptyCells())
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Encodes rows of symbols", func(t *testing.T) {
		board := NewBoard()
		board.Set(0, 0, Cross)
		board.Set(0, 2, Circle)

		data, err := json.Marshal(board)

		require.NoError(t, err)
		assert.JSONEq(t, `["X.O","...","..."]`, string(data))
	})

	t.Run("Decodes rows of symbols", func(t *testing.T) {
		var board Board

		err := json.Unmarshal([]byte(`["X.O","...","..O"]`), &board)

		require.NoError(t, err)
		assert.Equal(t, Cross, board.Get(0, 0))
		assert.Equal(t, Circle, board.Get(2, 2))
		assert.Equal(t, 6, board.Count(Empty))
	})

	t.Run("Rejects malformed rows", func(t *testing.T) {
		var board Board

		require.Error(t, json.Unmarshal([]byte(`["X.O","..."]`), &board))
		require.Error(t, json.Unmarshal([]byte(`["X.O","...","..Z"]`), &board))
		require.Error(t, json.Unmarshal([]byte(`["X.O","....","..."]`), &board))
	})
}

func TestBoard_String(t *testing.T) {
	board := Board{
		{Cross, Empty, Empty},
		{Empty, Circle, Empty},
		{Empty, Empty, Cross},
	}

	assert.Equal(t, "X..\n.O.\n..X", board.String())
}
