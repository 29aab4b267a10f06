package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stored games are independent of the caller", func(t *testing.T) {
		// Given: a stored game
		sessionRepo := NewMemoryRepository()
		game := entity.NewGame("123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, "chat-1", game))

		// When: the caller keeps mutating its own game
		game.Board.Set(0, 0, entity.Cross)

		// Then: the stored board is unchanged
		stored, err := sessionRepo.GetByID(ctx, "chat-1")
		require.NoError(t, err)
		assert.Equal(t, entity.NewBoard(), stored.Board)

		// And: mutating the loaded copy does not leak back either
		stored.Board.Set(2, 2, entity.Circle)
		again, err := sessionRepo.GetByID(ctx, "chat-1")
		require.NoError(t, err)
		assert.Equal(t, entity.NewBoard(), again.Board)
	})

	t.Run("Sessions do not share boards", func(t *testing.T) {
		sessionRepo := NewMemoryRepository()
		first := entity.NewGame("1")
		first.Board.Set(1, 1, entity.Cross)
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, "chat-1", first))
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, "chat-2", entity.NewGame("2")))

		second, err := sessionRepo.GetByID(ctx, "chat-2")

		require.NoError(t, err)
		assert.Equal(t, entity.NewBoard(), second.Board)
	})

	t.Run("Missing sessions", func(t *testing.T) {
		sessionRepo := NewMemoryRepository()

		_, err := sessionRepo.GetByID(ctx, "nope")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)

		err = sessionRepo.DeleteByID(ctx, "nope")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("Delete removes the session", func(t *testing.T) {
		sessionRepo := NewMemoryRepository()
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, "chat-1", entity.NewGame("1")))

		require.NoError(t, sessionRepo.DeleteByID(ctx, "chat-1"))

		_, err := sessionRepo.GetByID(ctx, "chat-1")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
