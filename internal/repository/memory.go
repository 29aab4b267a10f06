package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type memorySession struct {
	mu    sync.RWMutex
	games map[string]entity.Game
}

// NewMemoryRepository keeps sessions in process memory. Games are stored by
// value, so callers never share a board with the store.
func NewMemoryRepository() SessionRepository {
	return &memorySession{
		games: make(map[string]entity.Game),
	}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, sessionID string, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[sessionID] = *game

	return nil
}

func (that *memorySession) GetByID(_ context.Context, sessionID string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[sessionID]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	return &game, nil
}

func (that *memorySession) DeleteByID(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[sessionID]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.games, sessionID)

	return nil
}
