package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

// Size is the length of a board side.
const Size = 3

// Board is a 3x3 grid stored row-major. It is a value type, so every copy
// owns its own cells.
type Board [Size][Size]Cell

// NewBoard returns a board with all cells Empty.
func NewBoard() Board {
	return Board{}
}

// Reset sets all cells to Empty.
func (that *Board) Reset() {
	*that = NewBoard()
}

// Get returns the cell at (row, col). Coordinates outside [0,2] panic.
func (that *Board) Get(row, col int) Cell {
	mustBeOnBoard(row, col)

	return that[row][col]
}

// Set writes the cell at (row, col) without any game rule checks.
func (that *Board) Set(row, col int, value Cell) {
	mustBeOnBoard(row, col)

	if !value.IsValid() {
		panic(fmt.Errorf("invalid cell value %d", value))
	}

	that[row][col] = value
}

func (that *Board) IsFull() bool {
	return that.Count(Empty) == 0
}

// Count returns how many cells hold the given value.
func (that *Board) Count(value Cell) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == value {
				count++
			}
		}
	}

	return count
}

// EmptyCells lists the free squares in row-major order.
func (that *Board) EmptyCells() []Position {
	cells := make([]Position, 0, Size*Size)
	for r, row := range that {
		for c, cell := range row {
			if cell == Empty {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}

	return cells
}

// Symbols returns the board as display symbols.
func (that *Board) Symbols() [Size][Size]string {
	var symbols [Size][Size]string
	for r, row := range that {
		for c, cell := range row {
			symbols[r][c] = cell.Symbol()
		}
	}

	return symbols
}

func (that Board) String() string {
	rows := that.rows()
	return strings.Join(rows[:], "\n")
}

// MarshalJSON encodes the board as three strings of symbols, e.g. ["X.O","...","..."].
func (that Board) MarshalJSON() ([]byte, error) {
	rows := that.rows()
	return json.Marshal(rows)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal board rows: %w", err)
	}

	if len(rows) != Size {
		return fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrInvalidCell, Size, len(rows))
	}

	var board Board
	for r, row := range rows {
		if len(row) != Size {
			return fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidCell, r, len(row))
		}

		for c := 0; c < Size; c++ {
			cell, err := ParseSymbol(row[c : c+1])
			if err != nil {
				return fmt.Errorf("failed to parse cell %d%d: %w", r, c, err)
			}
			board[r][c] = cell
		}
	}

	*that = board

	return nil
}

func (that Board) rows() [Size]string {
	var rows [Size]string
	for r, row := range that {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(cell.Symbol())
		}
		rows[r] = sb.String()
	}

	return rows
}

func mustBeOnBoard(row, col int) {
	if !(Position{Row: row, Col: col}).IsOnBoard() {
		panic(fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col))
	}
}
