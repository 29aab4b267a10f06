package tictactoe

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// Picker returns an index in [0, n).
type Picker func(n int) int

// Bot plays Circles by picking a uniformly random empty cell.
type Bot struct {
	pick Picker
}

func NewBot(pick Picker) *Bot {
	if pick == nil {
		pick = rand.Intn //nolint: gosec // it's ok
	}

	return &Bot{pick: pick}
}

// MakeTurn puts a Circle on a random empty cell. Callers must make sure an
// empty cell exists; a full board is a contract violation and panics.
func (that *Bot) MakeTurn(board *entity.Board) entity.Position {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		panic(fmt.Errorf("bot turn requested: %w", apperror.ErrNoEmptyCell))
	}

	chosen := availableCells[that.pick(len(availableCells))]
	board.Set(chosen.Row, chosen.Col, entity.Circle)

	return chosen
}
