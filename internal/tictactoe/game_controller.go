package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// TurnResult describes one human move and the automated reply to it.
type TurnResult struct {
	HumanMove  entity.Position
	AfterHuman entity.Board

	// BotMove is nil when the human move already ended the game.
	BotMove *entity.Position
	Board   entity.Board
	Outcome entity.Outcome
}

type GameController struct {
	bot *Bot
}

func NewGameController(bot *Bot) *GameController {
	if bot == nil {
		bot = NewBot(nil)
	}

	return &GameController{bot: bot}
}

// MakeTurn applies the human Cross at (row, col) and, if the game goes on,
// the automated Circle. Rejections leave the game untouched.
func (that *GameController) MakeTurn(game *entity.Game, row, col int) (*TurnResult, error) {
	if err := game.ConfirmInProgress(); err != nil {
		return nil, fmt.Errorf("invalid turn: %w", err)
	}

	if game.Board.Get(row, col) != entity.Empty {
		return nil, apperror.ErrCellOccupied
	}

	game.Board.Set(row, col, entity.Cross)

	result := &TurnResult{
		HumanMove:  entity.Position{Row: row, Col: col},
		AfterHuman: game.Board,
	}

	outcome := Evaluate(game.Board)
	if outcome.IsContinue() {
		botMove := that.bot.MakeTurn(&game.Board)
		result.BotMove = &botMove

		outcome = Evaluate(game.Board)
	}

	if !outcome.IsContinue() {
		game.Finish()
	}

	result.Board = game.Board
	result.Outcome = outcome

	return result, nil
}
