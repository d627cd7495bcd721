package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func testPosition() tictactoe.Position {
	var board entity.Board
	board.Set(1, 1, entity.PlayerX)

	return tictactoe.Position{Board: board, TurnsPassed: 1, Mark: entity.PlayerO}
}

func TestMemoryMoveCache(t *testing.T) {
	ctx := context.Background()
	moveCache := NewMemoryMoveCache()

	t.Run("Get_NotCached", func(t *testing.T) {
		// When: nothing was stored for the position
		_, err := moveCache.Get(ctx, testPosition())

		// Then: apperror.ErrMoveNotCached is returned
		require.ErrorIs(t, err, apperror.ErrMoveNotCached)
	})

	t.Run("Set_Then_Get", func(t *testing.T) {
		// Given: a move stored for the position
		require.NoError(t, moveCache.Set(ctx, testPosition(), tictactoe.Move{Row: 0, Column: 0}))

		// When: the position is looked up
		move, err := moveCache.Get(ctx, testPosition())

		// Then: the stored move is returned
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Move{Row: 0, Column: 0}, move)
	})
}
