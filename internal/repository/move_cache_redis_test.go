package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func TestRedisMoveCache_Set(t *testing.T) {
	ctx, st := suite.New(t)

	moveCache := NewRedisMoveCache(st.Storage, 0)

	// Given: a position and the engine's answer
	position := testPosition()

	// When: Set is called
	err := moveCache.Set(ctx, position, tictactoe.Move{Row: 0, Column: 0})

	// Then: no error should be returned, and the move is stored as JSON
	require.NoError(t, err)

	raw, err := st.Storage.Get(ctx, position.Key()).Result()
	require.NoError(t, err)
	assert.JSONEq(t, `{"row":0,"column":0}`, raw)
}

func TestRedisMoveCache_Get(t *testing.T) {
	t.Run("Get_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveCache := NewRedisMoveCache(st.Storage, time.Minute)

		// Given: a cached move
		require.NoError(t, moveCache.Set(ctx, testPosition(), tictactoe.Move{Row: 2, Column: 1}))

		// When: Get is called for the same position
		move, err := moveCache.Get(ctx, testPosition())

		// Then: the cached move is returned and expires later
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Move{Row: 2, Column: 1}, move)

		ttl, err := st.Storage.TTL(ctx, testPosition().Key()).Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("Get_NotCached", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveCache := NewRedisMoveCache(st.Storage, 0)

		// When: Get is called for an unknown position
		_, err := moveCache.Get(ctx, testPosition())

		// Then: apperror.ErrMoveNotCached is returned
		require.ErrorIs(t, err, apperror.ErrMoveNotCached)
	})

	t.Run("Get_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveCache := NewRedisMoveCache(st.Storage, 0)

		// Given: a value that is not a move
		require.NoError(t, st.Storage.Set(ctx, testPosition().Key(), "not-json", 0).Err())

		// When: Get is called
		_, err := moveCache.Get(ctx, testPosition())

		// Then: an unmarshal error is returned
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrMoveNotCached)
	})
}
