package entity

import "fmt"

type OutcomeKind uint8

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeWinner
	OutcomeTie
)

const TieMessage = "It is a TIE :( No one wins"

// Outcome is the result of evaluating a board. It is never stored, only
// recomputed from the board after each move.
type Outcome struct {
	Kind   OutcomeKind
	Winner Cell
}

func Continued() Outcome {
	return Outcome{Kind: OutcomeContinue}
}

func WonBy(player Cell) Outcome {
	return Outcome{Kind: OutcomeWinner, Winner: player}
}

func Tied() Outcome {
	return Outcome{Kind: OutcomeTie}
}

func (that Outcome) IsContinue() bool {
	return that.Kind == OutcomeContinue
}

// Message returns the terminal text shown to the user, empty while the game goes on.
func (that Outcome) Message() string {
	switch that.Kind {
	case OutcomeWinner:
		return fmt.Sprintf("WOW! %s is winner!", that.Winner.Symbol())
	case OutcomeTie:
		return TieMessage
	default:
		return ""
	}
}
