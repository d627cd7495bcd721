package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type newGameRequest struct {
	Mark entity.Mark `json:"mark"`
}

type moveRequest struct {
	Row    *int `json:"row"`
	Column *int `json:"column"`
}

type engineMoveRequest struct {
	Board       []entity.Mark `json:"board"`
	TurnsPassed *int          `json:"turns_passed"`
	Mark        entity.Mark   `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := that.manager.NewGame(r.Context(), req.Mark)
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, report)
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	report, err := that.manager.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, report)
}

func (that *Server) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Row == nil || req.Column == nil {
		that.writeError(w, http.StatusBadRequest, errMissingCell)
		return
	}

	report, err := that.manager.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Row, *req.Column)
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, report)
}

func (that *Server) resetGame(w http.ResponseWriter, r *http.Request) {
	report, err := that.manager.ResetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, report)
}

func (that *Server) endGame(w http.ResponseWriter, r *http.Request) {
	if err := that.manager.EndGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeFailure(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// selectMove answers a bare position. Without turns_passed the filled cells are counted.
func (that *Server) selectMove(w http.ResponseWriter, r *http.Request) {
	var req engineMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	if len(req.Board) != entity.Cells {
		that.writeError(w, http.StatusBadRequest, errBoardSize)
		return
	}

	var board entity.Board
	copy(board[:], req.Board)

	position := tictactoe.Position{
		Board:       board,
		TurnsPassed: board.Filled(),
		Mark:        req.Mark,
	}

	if req.TurnsPassed != nil {
		if *req.TurnsPassed < 0 || *req.TurnsPassed > entity.Cells {
			that.writeError(w, http.StatusBadRequest, errTurnsOutOfRange)
			return
		}

		position.TurnsPassed = *req.TurnsPassed
	}

	move, err := that.manager.SelectMove(r.Context(), position)
	if errors.Is(err, apperror.ErrNoAvailableMoves) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err != nil {
		that.writeFailure(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, move)
}
