package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
)

type GameService interface {
	CreateGame(ctx context.Context, humanMark entity.Mark) (*entity.Session, error)
	DeleteGame(ctx context.Context, gameID string) error
	DeleteIdleGames(ctx context.Context, before time.Time) (int, error)

	GetGameByID(ctx context.Context, id string) (*entity.Session, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
}

type gameService struct {
	gameRepo gameRepo
}

func NewGameService(gameRepo gameRepo) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

func (that *gameService) CreateGame(ctx context.Context, humanMark entity.Mark) (*entity.Session, error) {
	if !humanMark.IsPlayer() {
		return nil, apperror.ErrInvalidMark
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	session := entity.NewSession(gameID, humanMark)
	if err = that.gameRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save game to storage: %w", err)
	}

	return session, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return session, nil
}

func (that *gameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *gameService) DeleteIdleGames(ctx context.Context, before time.Time) (int, error) {
	deleted, err := that.gameRepo.DeleteIdle(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete idle games: %w", err)
	}

	return deleted, nil
}
