package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var (
	errMalformedMessage = errors.New("malformed message")
	errUnknownAction    = errors.New("unknown action")
	errNoActiveGame     = errors.New("no active game, send game:new first")
	errMissingCell      = errors.New("row and column are required")
)

// handleNewGame replaces the connection's game, if any, with a fresh one.
func (that *Server) handleNewGame(ctx context.Context, c *client, payload *RequestPayload) ResponsePayload {
	log := that.logger.With("method", "handleNewGame")

	if c.gameID != "" {
		that.endGame(ctx, c)
	}

	report, err := that.manager.NewGame(ctx, payload.Mark)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return errorPayload(err)
	}

	c.gameID = report.ID

	log.Info("game started", "gameID", report.ID)

	return reportPayload(report)
}

func (that *Server) handleState(ctx context.Context, c *client, _ *RequestPayload) ResponsePayload {
	return that.withGame(c, func(gameID string) (*usecase.TurnReport, error) {
		return that.manager.GetGame(ctx, gameID)
	})
}

func (that *Server) handleTurn(ctx context.Context, c *client, payload *RequestPayload) ResponsePayload {
	if payload.Row == nil || payload.Column == nil {
		return errorPayload(errMissingCell)
	}

	return that.withGame(c, func(gameID string) (*usecase.TurnReport, error) {
		return that.manager.MakeTurn(ctx, gameID, *payload.Row, *payload.Column)
	})
}

func (that *Server) handleReset(ctx context.Context, c *client, _ *RequestPayload) ResponsePayload {
	return that.withGame(c, func(gameID string) (*usecase.TurnReport, error) {
		return that.manager.ResetGame(ctx, gameID)
	})
}

// handleDisconnect drops the game of a closed connection.
func (that *Server) handleDisconnect(ctx context.Context, c *client) {
	if c.gameID == "" {
		return
	}

	that.endGame(ctx, c)
	that.logger.Info("player disconnected, game ended")
}

func (that *Server) withGame(c *client, call func(gameID string) (*usecase.TurnReport, error)) ResponsePayload {
	if c.gameID == "" {
		return errorPayload(errNoActiveGame)
	}

	report, err := call(c.gameID)
	if err != nil {
		return errorPayload(err)
	}

	return reportPayload(report)
}

func (that *Server) endGame(ctx context.Context, c *client) {
	if err := that.manager.EndGame(ctx, c.gameID); err != nil {
		that.logger.Error("failed to end game", "gameID", c.gameID, "error", err)
	}

	c.gameID = ""
}
