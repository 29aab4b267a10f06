package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	CommandStart = "/start"
	CommandReset = "/reset"
)

// TokenShape classifies an incoming chat event.
type TokenShape int

const (
	ShapeStart TokenShape = iota
	ShapeCell
	ShapeReset
)

// phaseNone is the phase of a session without a game.
const phaseNone entity.Phase = ""

type handlerFunc func(ctx context.Context, sessionID, token string, presenter Presenter) error

// ShapeOf tells a command from a "{row}{col}" cell token.
func ShapeOf(token string) (TokenShape, error) {
	switch {
	case token == CommandStart:
		return ShapeStart, nil
	case token == CommandReset:
		return ShapeReset, nil
	case entity.IsToken(token):
		return ShapeCell, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, token)
	}
}

func (that *GameManager) registerHandlers() {
	that.handlers = map[entity.Phase]map[TokenShape]handlerFunc{
		phaseNone: {
			ShapeStart: that.startGame,
			ShapeCell:  that.noGame,
			ShapeReset: that.resetGame,
		},
		entity.PhaseInProgress: {
			ShapeStart: that.startGame,
			ShapeCell:  that.selectCell,
			ShapeReset: that.resetGame,
		},
		entity.PhaseFinished: {
			ShapeStart: that.startGame,
			ShapeCell:  that.endGame,
			ShapeReset: that.resetGame,
		},
	}
}

// Handle routes a chat event by the session phase and the token shape.
func (that *GameManager) Handle(ctx context.Context, sessionID, token string, presenter Presenter) error {
	shape, err := ShapeOf(token)
	if err != nil {
		return err
	}

	unlock := that.locks.lock(sessionID)
	defer unlock()

	phase := phaseNone

	game, err := that.sessionRepo.GetByID(ctx, sessionID)
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
	case err != nil:
		return fmt.Errorf("failed to get game: %w", err)
	default:
		phase = game.Phase
	}

	handler, ok := that.handlers[phase][shape]
	if !ok {
		return fmt.Errorf("no handler for phase %q", phase)
	}

	return handler(ctx, sessionID, token, presenter)
}
