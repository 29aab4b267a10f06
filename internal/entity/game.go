package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseFinished   Phase = "finished"
)

// Game is the state of one chat session: the board and the phase flag.
type Game struct {
	ID    string `json:"id"`
	Board Board  `json:"board"`
	Phase Phase  `json:"phase"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:    id,
		Board: NewBoard(),
		Phase: PhaseInProgress,
	}
}

func (that *Game) IsFinished() bool {
	return that.Phase == PhaseFinished
}

func (that *Game) IsInProgress() bool {
	return that.Phase == PhaseInProgress
}

func (that *Game) Finish() {
	that.Phase = PhaseFinished
}

// Reset clears the board and puts the game back in progress.
func (that *Game) Reset() {
	that.Board.Reset()
	that.Phase = PhaseInProgress
}

func (that *Game) ConfirmInProgress() error {
	switch that.Phase {
	case PhaseInProgress:
		return nil
	case PhaseFinished:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("unknown game phase: %q", that.Phase)
	}
}
