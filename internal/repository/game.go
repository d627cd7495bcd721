package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// GameRepository keeps live sessions in process memory. Games are never written
// to external storage and disappear when deleted or when the process exits.
type GameRepository interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
}

type memGame struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

func NewGameRepository() GameRepository {
	return &memGame{
		sessions: make(map[string]*entity.Session),
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = session

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return session, nil
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.sessions, id)

	return nil
}

// DeleteIdle drops every session last used before the cutoff and reports how many went.
func (that *memGame) DeleteIdle(_ context.Context, before time.Time) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	deleted := 0
	for id, session := range that.sessions {
		if session.LastActive().Before(before) {
			delete(that.sessions, id)
			deleted++
		}
	}

	return deleted, nil
}
