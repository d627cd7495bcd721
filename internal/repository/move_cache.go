package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// MoveCache memoizes engine decisions. The engine is a pure function of the
// position, so a cached answer is always valid.
type MoveCache interface {
	Get(ctx context.Context, position tictactoe.Position) (tictactoe.Move, error)
	Set(ctx context.Context, position tictactoe.Position, move tictactoe.Move) error
}

type redisMoveCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMoveCache - ttl of zero keeps entries forever.
func NewRedisMoveCache(client *redis.Client, ttl time.Duration) MoveCache {
	return &redisMoveCache{
		client: client,
		ttl:    ttl,
	}
}

func (that *redisMoveCache) Get(ctx context.Context, position tictactoe.Position) (tictactoe.Move, error) {
	response, err := that.client.Get(ctx, position.Key()).Result()

	if errors.Is(err, redis.Nil) {
		return tictactoe.Move{}, apperror.ErrMoveNotCached
	}

	if err != nil {
		return tictactoe.Move{}, fmt.Errorf("failed to get move: %w", err)
	}

	var move tictactoe.Move
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return tictactoe.Move{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return move, nil
}

func (that *redisMoveCache) Set(ctx context.Context, position tictactoe.Position, move tictactoe.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	if err = that.client.Set(ctx, position.Key(), moveJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

type memMoveCache struct {
	mu    sync.RWMutex
	moves map[string]tictactoe.Move
}

func NewMemoryMoveCache() MoveCache {
	return &memMoveCache{
		moves: make(map[string]tictactoe.Move),
	}
}

func (that *memMoveCache) Get(_ context.Context, position tictactoe.Position) (tictactoe.Move, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	move, ok := that.moves[position.Key()]
	if !ok {
		return tictactoe.Move{}, apperror.ErrMoveNotCached
	}

	return move, nil
}

func (that *memMoveCache) Set(_ context.Context, position tictactoe.Position, move tictactoe.Move) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves[position.Key()] = move

	return nil
}
