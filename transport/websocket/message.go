package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	actionNewGame = "game:new"
	actionState   = "game:state"
	actionTurn    = "game:turn"
	actionReset   = "game:reset"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Mark   entity.Mark `json:"mark,omitempty"`
	Row    *int        `json:"row,omitempty"`
	Column *int        `json:"column,omitempty"`
}

type ResponsePayload struct {
	Game         *usecase.TurnReport `json:"game,omitempty"`
	ComputerMove *tictactoe.Move     `json:"computer_move,omitempty"`
	Error        string              `json:"error,omitempty"`
}

type Response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}

func errorPayload(err error) ResponsePayload {
	return ResponsePayload{Error: err.Error()}
}

func reportPayload(report *usecase.TurnReport) ResponsePayload {
	return ResponsePayload{
		Game:         report,
		ComputerMove: report.ComputerMove,
	}
}
