package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// Game is the turn sequencing state machine of a single 3x3 game.
// The zero value is not ready for use, create games with NewGame.
type Game struct {
	board         Board
	currentPlayer Mark
	turnsPassed   int
	over          bool
	result        *GameResult
}

// State is a read-only copy of the game, suitable for rendering and JSON.
type State struct {
	Board         Board       `json:"board"`
	CurrentPlayer Mark        `json:"current_player"`
	TurnsPassed   int         `json:"turns_passed"`
	Status        string      `json:"status"`
	GameOver      bool        `json:"game_over"`
	Result        *GameResult `json:"result,omitempty"`
}

func NewGame() *Game {
	return &Game{
		currentPlayer: FirstPlayer,
	}
}

// Reset replaces the whole state with a fresh game.
func (that *Game) Reset() {
	*that = Game{
		currentPlayer: FirstPlayer,
	}
}

// AttemptMove places mark at (row, column). Illegal moves are not errors: the
// outcome is rejected with a reason and nothing changes.
func (that *Game) AttemptMove(row, column int, mark Mark) MoveOutcome {
	if err := that.validateMove(row, column, mark); err != nil {
		return MoveOutcome{Reason: err}
	}

	that.board.Set(row, column, mark)
	that.turnsPassed++

	if result := that.evaluateMove(row, column, mark); result != nil {
		that.over = true
		that.result = result

		return MoveOutcome{
			Accepted:  true,
			GameEnded: true,
			Result:    result.clone(),
		}
	}

	that.currentPlayer = mark.Opponent()

	return MoveOutcome{Accepted: true}
}

// CanMove reports whether the current player may play (row, column) right now.
func (that *Game) CanMove(row, column int) bool {
	return that.validateMove(row, column, that.currentPlayer) == nil
}

func (that *Game) Board() Board {
	return that.board
}

func (that *Game) CurrentPlayer() Mark {
	return that.currentPlayer
}

func (that *Game) TurnsPassed() int {
	return that.turnsPassed
}

func (that *Game) IsOver() bool {
	return that.over
}

// Result is nil while the game is in progress.
func (that *Game) Result() *GameResult {
	return that.result.clone()
}

func (that *Game) Status() string {
	if that.over {
		return StatusFinished
	}

	return StatusInProgress
}

func (that *Game) Snapshot() State {
	return State{
		Board:         that.board,
		CurrentPlayer: that.currentPlayer,
		TurnsPassed:   that.turnsPassed,
		Status:        that.Status(),
		GameOver:      that.over,
		Result:        that.result.clone(),
	}
}

// validateMove - checks preconditions in order: game in progress, coordinates
// on the board, target cell empty, mark is the player to move.
func (that *Game) validateMove(row, column int, mark Mark) error {
	if that.over {
		return apperror.ErrGameFinished
	}

	if !InBounds(row, column) {
		return fmt.Errorf("%w: row %d column %d", apperror.ErrInvalidCell, row, column)
	}

	if that.board.At(row, column) != Empty {
		return apperror.ErrCellOccupied
	}

	if mark != that.currentPlayer {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// evaluateMove - returns the result if the move just played ended the game.
func (that *Game) evaluateMove(row, column int, mark Mark) *GameResult {
	if win := that.board.WinThrough(row, column, mark); win != nil {
		return &GameResult{Winner: mark, Win: win}
	}

	if that.turnsPassed == Cells {
		return &GameResult{Winner: Empty}
	}

	return nil
}
