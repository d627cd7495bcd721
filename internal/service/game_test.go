package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-engine/mocks/service"
)

var errStorageIsFull = errors.New("storage is full")

func TestGameService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a session for the human mark", func(t *testing.T) {
		// Given: a repository that accepts the session
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)

		mockRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Session")).
			Return(nil).
			Once()

		// When: a game is created for O
		session, err := gameService.CreateGame(ctx, o)

		// Then: the computer plays X and the id is set
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, o, session.HumanMark)
		assert.Equal(t, x, session.ComputerMark)
		assert.True(t, session.ComputerToMove())
	})

	t.Run("Rejects the empty mark", func(t *testing.T) {
		// Given: a repository that must not be called
		gameService := NewGameService(mockedService.NewMockgameRepo(t))

		// When: a game is created without a mark
		_, err := gameService.CreateGame(ctx, e)

		// Then: ErrInvalidMark is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Returns error if storage fails", func(t *testing.T) {
		// Given: a repository that fails to save
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)

		mockRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.Anything).
			Return(errStorageIsFull).
			Once()

		// When: a game is created
		session, err := gameService.CreateGame(ctx, x)

		// Then: the storage error is wrapped
		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, session)
	})
}

func TestGameService_GetGameByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)

		expected := entity.NewSession("game123", x)
		mockRepo.EXPECT().
			GetByID(mock.Anything, "game123").
			Return(expected, nil).
			Once()

		session, err := gameService.GetGameByID(ctx, "game123")

		require.NoError(t, err)
		assert.Same(t, expected, session)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)

		mockRepo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return(nil, apperror.ErrGameNotFound).
			Once()

		_, err := gameService.GetGameByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameService_DeleteGame(t *testing.T) {
	ctx := context.Background()

	mockRepo := mockedService.NewMockgameRepo(t)
	gameService := NewGameService(mockRepo)

	mockRepo.EXPECT().
		DeleteByID(mock.Anything, "game123").
		Return(nil).
		Once()
	mockRepo.EXPECT().
		DeleteByID(mock.Anything, "missing").
		Return(apperror.ErrGameNotFound).
		Once()

	require.NoError(t, gameService.DeleteGame(ctx, "game123"))
	require.ErrorIs(t, gameService.DeleteGame(ctx, "missing"), apperror.ErrGameNotFound)
}

func TestGameService_DeleteIdleGames(t *testing.T) {
	ctx := context.Background()
	before := time.Now()

	t.Run("Reports the count", func(t *testing.T) {
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)

		mockRepo.EXPECT().
			DeleteIdle(mock.Anything, before).
			Return(2, nil).
			Once()

		deleted, err := gameService.DeleteIdleGames(ctx, before)

		require.NoError(t, err)
		assert.Equal(t, 2, deleted)
	})

	t.Run("Wraps storage errors", func(t *testing.T) {
		mockRepo := mockedService.NewMockgameRepo(t)
		gameService := NewGameService(mockRepo)

		mockRepo.EXPECT().
			DeleteIdle(mock.Anything, before).
			Return(0, errStorageIsFull).
			Once()

		_, err := gameService.DeleteIdleGames(ctx, before)

		require.ErrorIs(t, err, errStorageIsFull)
	})
}
