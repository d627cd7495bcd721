package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	SelectMove(ctx context.Context, position tictactoe.Position) (tictactoe.Move, error)
	MakeTurn(ctx context.Context, session *entity.Session) (tictactoe.Move, entity.MoveOutcome, error)
}

type moveCache interface {
	Get(ctx context.Context, position tictactoe.Position) (tictactoe.Move, error)
	Set(ctx context.Context, position tictactoe.Position, move tictactoe.Move) error
}

type botService struct {
	logger    *slog.Logger
	moveCache moveCache
}

func NewBotService(logger *slog.Logger, moveCache moveCache) BotService {
	return &botService{
		logger:    logger.With("component", "bot"),
		moveCache: moveCache,
	}
}

// SelectMove asks the cache first and falls back to the search. Cache errors
// are only logged: a turn never fails because the cache is down.
func (that *botService) SelectMove(ctx context.Context, position tictactoe.Position) (tictactoe.Move, error) {
	log := that.logger.With("method", "SelectMove", "position", position.Key())

	if !position.Mark.IsPlayer() {
		return tictactoe.Move{}, apperror.ErrInvalidMark
	}

	cached, err := that.moveCache.Get(ctx, position)
	switch {
	case err == nil && entity.InBounds(cached.Row, cached.Column) && position.Board.At(cached.Row, cached.Column) == entity.Empty:
		log.Debug("move cache hit", "row", cached.Row, "column", cached.Column)
		return cached, nil
	case err == nil:
		log.Warn("cached move is not playable, ignoring it", "row", cached.Row, "column", cached.Column)
	case !errors.Is(err, apperror.ErrMoveNotCached):
		log.Warn("failed to read move cache", "error", err)
	}

	move, ok := tictactoe.SelectMoveFor(position.Board, position.TurnsPassed, position.Mark)
	if !ok {
		return tictactoe.Move{}, apperror.ErrNoAvailableMoves
	}

	if err = that.moveCache.Set(ctx, position, move); err != nil {
		log.Warn("failed to write move cache", "error", err)
	}

	return move, nil
}

// MakeTurn plays the computer's mark in the session. The caller must hold the session lock.
func (that *botService) MakeTurn(ctx context.Context, session *entity.Session) (tictactoe.Move, entity.MoveOutcome, error) {
	if !session.ComputerToMove() {
		return tictactoe.Move{}, entity.MoveOutcome{}, apperror.ErrNotYourTurn
	}

	game := session.Game

	move, err := that.SelectMove(ctx, tictactoe.Position{
		Board:       game.Board(),
		TurnsPassed: game.TurnsPassed(),
		Mark:        session.ComputerMark,
	})
	if err != nil {
		return tictactoe.Move{}, entity.MoveOutcome{}, fmt.Errorf("bot failed to select move: %w", err)
	}

	outcome := game.AttemptMove(move.Row, move.Column, session.ComputerMark)
	if !outcome.Accepted {
		return move, outcome, fmt.Errorf("bot failed to make turn: %w", outcome.Reason)
	}

	return move, outcome, nil
}
