package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
)

func TestShapeOf(t *testing.T) {
	tests := map[string]TokenShape{
		"/start": ShapeStart,
		"/reset": ShapeReset,
		"00":     ShapeCell,
		"21":     ShapeCell,
	}

	for token, expected := range tests {
		shape, err := ShapeOf(token)

		require.NoError(t, err, token)
		assert.Equal(t, expected, shape, token)
	}

	_, err := ShapeOf("hello")
	require.ErrorIs(t, err, apperror.ErrUnknownCommand)

	_, err = ShapeOf("39")
	require.ErrorIs(t, err, apperror.ErrUnknownCommand)
}

func TestGameManager_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("Start without a session", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		manager := newTestManager(repo)
		presenter := &recorder{}

		err := manager.Handle(ctx, sessionID, CommandStart, presenter)

		require.NoError(t, err)
		assert.Equal(t, []string{TextStart}, presenter.texts())
	})

	t.Run("Cell without a session asks for /start", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		manager := newTestManager(repo)
		presenter := &recorder{}

		err := manager.Handle(ctx, sessionID, "11", presenter)

		require.NoError(t, err)
		assert.Equal(t, []string{TextNoGame}, presenter.texts())
		empty := entity.NewBoard()
		assert.Equal(t, empty.Symbols(), presenter.views[0].Grid())

		_, err = repo.GetByID(ctx, sessionID)
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("Cell in progress plays a turn", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		storeGame(t, repo, entity.NewBoard(), entity.PhaseInProgress)
		manager := newTestManager(repo)
		presenter := &recorder{}

		err := manager.Handle(ctx, sessionID, "11", presenter)

		require.NoError(t, err)
		assert.Equal(t, []string{TextHumanTurn, TextBotTurn}, presenter.texts())
	})

	t.Run("Cell after the game finished ends the session", func(t *testing.T) {
		// Given: a finished game
		repo := repository.NewMemoryRepository()
		storeGame(t, repo, entity.Board{{entity.Cross, entity.Cross, entity.Cross}, {entity.Circle, entity.Circle}}, entity.PhaseFinished)
		manager := newTestManager(repo)
		presenter := &recorder{}

		// When: another cell is selected
		err := manager.Handle(ctx, sessionID, "22", presenter)

		// Then: the game-over text is rendered and the session is closed
		require.NoError(t, err)
		require.Len(t, presenter.views, 1)
		assert.Equal(t, TextGameOver, presenter.views[0].Text)
		assert.Equal(t, "WOW! X is winner!", presenter.views[0].Result)

		_, err = repo.GetByID(ctx, sessionID)
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("Cells after the game finished wait for /start", func(t *testing.T) {
		// Given: a finished game
		repo := repository.NewMemoryRepository()
		storeGame(t, repo, entity.Board{{entity.Cross, entity.Cross, entity.Cross}, {entity.Circle, entity.Circle}}, entity.PhaseFinished)
		manager := newTestManager(repo)
		first, second, third := &recorder{}, &recorder{}, &recorder{}

		// When: two more cells are selected
		require.NoError(t, manager.Handle(ctx, sessionID, "22", first))
		require.NoError(t, manager.Handle(ctx, sessionID, "22", second))

		// Then: no game is started by the clicks
		assert.Equal(t, []string{TextGameOver}, first.texts())
		assert.Equal(t, []string{TextNoGame}, second.texts())

		_, err := repo.GetByID(ctx, sessionID)
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)

		// When: the user restarts explicitly
		require.NoError(t, manager.Handle(ctx, sessionID, CommandStart, third))

		// Then: a fresh game is stored
		assert.Equal(t, []string{TextStart}, third.texts())

		game, err := repo.GetByID(ctx, sessionID)
		require.NoError(t, err)
		assert.True(t, game.IsInProgress())
	})

	t.Run("Reset in any phase", func(t *testing.T) {
		repo := repository.NewMemoryRepository()
		storeGame(t, repo, entity.NewBoard(), entity.PhaseInProgress)
		manager := newTestManager(repo)
		presenter := &recorder{}

		err := manager.Handle(ctx, sessionID, CommandReset, presenter)

		require.NoError(t, err)
		assert.Equal(t, []string{TextReset}, presenter.texts())
	})

	t.Run("Unknown command", func(t *testing.T) {
		manager := newTestManager(repository.NewMemoryRepository())

		err := manager.Handle(ctx, sessionID, "hello", &recorder{})

		require.ErrorIs(t, err, apperror.ErrUnknownCommand)
	})
}
