package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameService interface {
	CreateGame(ctx context.Context, humanMark entity.Mark) (*entity.Session, error)
	DeleteGame(ctx context.Context, gameID string) error
	DeleteIdleGames(ctx context.Context, before time.Time) (int, error)
	GetGameByID(ctx context.Context, id string) (*entity.Session, error)
}

type botService interface {
	MakeTurn(ctx context.Context, session *entity.Session) (tictactoe.Move, entity.MoveOutcome, error)
	SelectMove(ctx context.Context, position tictactoe.Position) (tictactoe.Move, error)
}

// TurnReport is what the front ends render after every operation.
type TurnReport struct {
	ID           string       `json:"id"`
	HumanMark    entity.Mark  `json:"human_mark"`
	ComputerMark entity.Mark  `json:"computer_mark"`
	State        entity.State `json:"state"`

	Human        *entity.MoveOutcome `json:"human,omitempty"`
	ComputerMove *tictactoe.Move     `json:"computer_move,omitempty"`
	Computer     *entity.MoveOutcome `json:"computer,omitempty"`
}

type GameManager struct {
	logger *slog.Logger

	// used when a new game does not name the human's mark
	defaultHumanMark entity.Mark

	gameService gameService
	botService  botService
}

func NewGameManager(logger *slog.Logger, gameService gameService, botService botService, computerMark entity.Mark) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		defaultHumanMark: computerMark.Opponent(),

		gameService: gameService,
		botService:  botService,
	}
}

// NewGame starts a session. When the computer holds X it opens immediately.
// An empty humanMark falls back to the configured default.
func (that *GameManager) NewGame(ctx context.Context, humanMark entity.Mark) (*TurnReport, error) {
	log := that.logger.With("method", "NewGame")

	if humanMark == entity.Empty {
		humanMark = that.defaultHumanMark
	}

	session, err := that.gameService.CreateGame(ctx, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	report := &TurnReport{}
	if err = that.computerTurn(ctx, session, report); err != nil {
		that.deleteGame(ctx, session.ID)

		return nil, err
	}

	log.Info("game created", "game_id", session.ID, "human_mark", humanMark.String())

	return that.fill(report, session), nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*TurnReport, error) {
	session, err := that.gameService.GetGameByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	return that.fill(&TurnReport{}, session), nil
}

// MakeTurn applies the human move and, if the game goes on, answers it.
// A rejected move leaves the session untouched and wraps apperror.ErrMoveRejected.
func (that *GameManager) MakeTurn(ctx context.Context, id string, row, column int) (*TurnReport, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", id)

	session, err := that.gameService.GetGameByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	human := session.Game.AttemptMove(row, column, session.HumanMark)
	if !human.Accepted {
		log.Debug("move rejected", "row", row, "column", column, "reason", human.Reason)

		return nil, fmt.Errorf("%w: %w", apperror.ErrMoveRejected, human.Reason)
	}

	report := &TurnReport{Human: &human}
	if err = that.computerTurn(ctx, session, report); err != nil {
		return nil, err
	}

	if session.Game.IsOver() {
		result := session.Game.Result()
		log.Info("game finished", "winner", result.Winner.String(), "turns", session.Game.TurnsPassed())
	}

	return that.fill(report, session), nil
}

// ResetGame clears the board and keeps the marks.
func (that *GameManager) ResetGame(ctx context.Context, id string) (*TurnReport, error) {
	session, err := that.gameService.GetGameByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	session.Game.Reset()

	report := &TurnReport{}
	if err = that.computerTurn(ctx, session, report); err != nil {
		return nil, err
	}

	return that.fill(report, session), nil
}

func (that *GameManager) EndGame(ctx context.Context, id string) error {
	if err := that.gameService.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	return nil
}

// EvictIdleGames ends sessions nobody used since before. Front ends that never
// send DELETE would otherwise keep their games for the life of the process.
func (that *GameManager) EvictIdleGames(ctx context.Context, before time.Time) (int, error) {
	deleted, err := that.gameService.DeleteIdleGames(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("failed to evict idle games: %w", err)
	}

	if deleted > 0 {
		that.logger.Info("idle games evicted", "count", deleted)
	}

	return deleted, nil
}

// SelectMove answers a bare position without a session.
func (that *GameManager) SelectMove(ctx context.Context, position tictactoe.Position) (tictactoe.Move, error) {
	move, err := that.botService.SelectMove(ctx, position)
	if err != nil {
		return tictactoe.Move{}, fmt.Errorf("failed to select move: %w", err)
	}

	return move, nil
}

func (that *GameManager) computerTurn(ctx context.Context, session *entity.Session, report *TurnReport) error {
	if !session.ComputerToMove() {
		return nil
	}

	move, outcome, err := that.botService.MakeTurn(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to make computer turn: %w", err)
	}

	report.ComputerMove = &move
	report.Computer = &outcome

	return nil
}

func (that *GameManager) fill(report *TurnReport, session *entity.Session) *TurnReport {
	report.ID = session.ID
	report.HumanMark = session.HumanMark
	report.ComputerMark = session.ComputerMark
	report.State = session.Game.Snapshot()

	session.Touch(time.Now())

	return report
}

func (that *GameManager) deleteGame(ctx context.Context, id string) {
	log := that.logger.With("method", "deleteGame")

	if err := that.gameService.DeleteGame(ctx, id); err != nil {
		log.Error("failed to delete game", "error", err)
	}
}
