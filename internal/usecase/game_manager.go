package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

const (
	TextStart        = "X (your) turn! Please, put X to the free place"
	TextHumanTurn    = "X (your) turn resulted at:"
	TextBotTurn      = "O (AI) turn resulted at:"
	TextCellOccupied = "You cannot place markers on occupied cells"
	TextGameOver     = "Game is over. Send /start to play again"
	TextReset        = "Game reset. Send /start to play again"
	TextNoGame       = "No game in progress. Send /start to play"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, sessionID string, game *entity.Game) error
	GetByID(ctx context.Context, sessionID string) (*entity.Game, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type gameController interface {
	MakeTurn(game *entity.Game, row, col int) (*tictactoe.TurnResult, error)
}

// Presenter receives render instructions for a session, in order.
type Presenter interface {
	Present(ctx context.Context, view *entity.View) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(ctx context.Context, view *entity.View) error

func (that PresenterFunc) Present(ctx context.Context, view *entity.View) error {
	return that(ctx, view)
}

type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	controller  gameController

	// pause separates the render of the human move from the bot reply.
	pause time.Duration
	locks *sessionLocks

	handlers map[entity.Phase]map[TokenShape]handlerFunc
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, controller gameController, pause time.Duration) *GameManager {
	manager := &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,
		controller:  controller,
		pause:       pause,
		locks:       newSessionLocks(),
	}

	manager.registerHandlers()

	return manager
}

// StartGame creates a fresh game for the session, replacing any previous one.
func (that *GameManager) StartGame(ctx context.Context, sessionID string, presenter Presenter) error {
	unlock := that.locks.lock(sessionID)
	defer unlock()

	return that.startGame(ctx, sessionID, "", presenter)
}

// SelectCell plays the human move encoded by token and the bot reply.
func (that *GameManager) SelectCell(ctx context.Context, sessionID, token string, presenter Presenter) error {
	unlock := that.locks.lock(sessionID)
	defer unlock()

	return that.selectCell(ctx, sessionID, token, presenter)
}

// ResetGame drops the session game. A missing session is not an error.
func (that *GameManager) ResetGame(ctx context.Context, sessionID string, presenter Presenter) error {
	unlock := that.locks.lock(sessionID)
	defer unlock()

	return that.resetGame(ctx, sessionID, "", presenter)
}

// GetGame returns the current view of the session game.
func (that *GameManager) GetGame(ctx context.Context, sessionID string) (*entity.View, error) {
	unlock := that.locks.lock(sessionID)
	defer unlock()

	game, err := that.getGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if game.IsFinished() {
		message := tictactoe.Evaluate(game.Board).Message()
		return entity.NewView(game.Board, game.Phase, message, message), nil
	}

	return entity.NewView(game.Board, game.Phase, TextStart, ""), nil
}

func (that *GameManager) startGame(ctx context.Context, sessionID, _ string, presenter Presenter) error {
	log := that.logger.With("method", "startGame", "sessionID", sessionID)

	game := entity.NewGame(uuid.NewString())
	if err := that.updateGame(ctx, sessionID, game); err != nil {
		return err
	}

	log.Info("game started", "gameID", game.ID)

	return presenter.Present(ctx, entity.NewView(game.Board, game.Phase, TextStart, ""))
}

func (that *GameManager) selectCell(ctx context.Context, sessionID, token string, presenter Presenter) error {
	log := that.logger.With("method", "selectCell", "sessionID", sessionID, "token", token)

	pos, err := entity.ParseToken(token)
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}

	game, err := that.getGame(ctx, sessionID)
	if err != nil {
		return err
	}

	result, err := that.controller.MakeTurn(game, pos.Row, pos.Col)

	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		log.Debug("cell is occupied")
		return presenter.Present(ctx, entity.NewView(game.Board, game.Phase, TextCellOccupied, ""))
	case errors.Is(err, apperror.ErrGameFinished):
		log.Debug("move after the game finished")
		message := tictactoe.Evaluate(game.Board).Message()
		return presenter.Present(ctx, entity.NewView(game.Board, game.Phase, TextGameOver, message))
	case err != nil:
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.updateGame(ctx, sessionID, game); err != nil {
		return err
	}

	log.Info("turn played", "gameID", game.ID, "board", result.Board.String())

	return that.presentTurn(ctx, result, presenter)
}

// presentTurn renders the human move, waits, then renders the bot reply and
// the terminal message when the game is over.
func (that *GameManager) presentTurn(ctx context.Context, result *tictactoe.TurnResult, presenter Presenter) error {
	err := presenter.Present(ctx, entity.NewView(result.AfterHuman, entity.PhaseInProgress, TextHumanTurn, ""))
	if err != nil {
		return fmt.Errorf("failed to present human turn: %w", err)
	}

	if err = that.wait(ctx); err != nil {
		return err
	}

	if result.BotMove != nil {
		phase := entity.PhaseInProgress
		if !result.Outcome.IsContinue() {
			phase = entity.PhaseFinished
		}

		err = presenter.Present(ctx, entity.NewView(result.Board, phase, TextBotTurn, ""))
		if err != nil {
			return fmt.Errorf("failed to present bot turn: %w", err)
		}
	}

	if result.Outcome.IsContinue() {
		return nil
	}

	message := result.Outcome.Message()
	if err = presenter.Present(ctx, entity.NewView(result.Board, entity.PhaseFinished, message, message)); err != nil {
		return fmt.Errorf("failed to present outcome: %w", err)
	}

	return nil
}

// endGame closes a finished session, so the next game needs a fresh /start.
func (that *GameManager) endGame(ctx context.Context, sessionID, _ string, presenter Presenter) error {
	game, err := that.getGame(ctx, sessionID)
	if err != nil {
		return err
	}

	if err = that.deleteGame(ctx, sessionID); err != nil {
		return err
	}

	message := tictactoe.Evaluate(game.Board).Message()

	return presenter.Present(ctx, entity.NewView(game.Board, entity.PhaseFinished, TextGameOver, message))
}

// noGame answers a move in a session without a game. Nothing is stored, so
// only /start opens a new game.
func (that *GameManager) noGame(ctx context.Context, sessionID, token string, presenter Presenter) error {
	that.logger.Debug("move without a game", "method", "noGame", "sessionID", sessionID, "token", token)

	return presenter.Present(ctx, entity.NewView(entity.NewBoard(), phaseNone, TextNoGame, ""))
}

func (that *GameManager) resetGame(ctx context.Context, sessionID, _ string, presenter Presenter) error {
	log := that.logger.With("method", "resetGame", "sessionID", sessionID)

	err := that.deleteGame(ctx, sessionID)
	if err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		return err
	}

	log.Info("session reset")

	return presenter.Present(ctx, entity.NewView(entity.NewBoard(), "", TextReset, ""))
}

func (that *GameManager) wait(ctx context.Context) error {
	if that.pause <= 0 {
		return nil
	}

	timer := time.NewTimer(that.pause)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("pause interrupted: %w", ctx.Err())
	}
}

func (that *GameManager) getGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, sessionID string, game *entity.Game) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, sessionID, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, sessionID string) error {
	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
