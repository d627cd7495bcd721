package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx := context.Background()
	gameRepo := NewGameRepository()

	// Given: a new session
	session := entity.NewSession("123", entity.PlayerX)

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, session)

	// Then: no error should be returned, and the same session is stored
	require.NoError(t, err)

	stored, err := gameRepo.GetByID(ctx, "123")
	require.NoError(t, err)
	assert.Same(t, session, stored)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx := context.Background()
		gameRepo := NewGameRepository()

		// When: GetByID is called with non-existent ID
		session, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, session)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx := context.Background()
		gameRepo := NewGameRepository()

		// Given: a stored session
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewSession("123", entity.PlayerO)))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, "123")

		// Then: no error should be returned and the session is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx := context.Background()
		gameRepo := NewGameRepository()

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameRepository_DeleteIdle(t *testing.T) {
	ctx := context.Background()
	gameRepo := NewGameRepository()
	now := time.Now()

	// Given: one session idle for an hour and one used just now
	idle := entity.NewSession("idle", entity.PlayerX)
	idle.Touch(now.Add(-time.Hour))
	active := entity.NewSession("active", entity.PlayerX)
	active.Touch(now)

	require.NoError(t, gameRepo.CreateOrUpdate(ctx, idle))
	require.NoError(t, gameRepo.CreateOrUpdate(ctx, active))

	// When: sessions idle for more than 30 minutes are deleted
	deleted, err := gameRepo.DeleteIdle(ctx, now.Add(-30*time.Minute))

	// Then: only the idle one is gone
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = gameRepo.GetByID(ctx, "idle")
	require.ErrorIs(t, err, apperror.ErrGameNotFound)

	_, err = gameRepo.GetByID(ctx, "active")
	require.NoError(t, err)
}
