// Package tictactoe selects the computer's move with an exhaustive minimax search.
//
// The search never touches the caller's board: it receives a copy and every
// hypothetical placement is undone before the next one is tried.
package tictactoe

import (
	"math"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0
)

// Move is a cell coordinate on the board.
type Move struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Position is everything the engine's answer depends on.
type Position struct {
	Board       entity.Board
	TurnsPassed int
	Mark        entity.Mark
}

// Key identifies the position in a move cache, e.g. "move:----X----:1:O".
func (that Position) Key() string {
	return "move:" + that.Board.Key() + ":" + strconv.Itoa(that.TurnsPassed) + ":" + that.Mark.String()
}

// SelectMove returns the best move for FirstPlayer, or false when the board is full.
// Cells are scanned row-major and the first cell with the highest evaluation wins.
func SelectMove(board entity.Board, turnsPassed int) (Move, bool) {
	return selectMove(board, turnsPassed, entity.FirstPlayer)
}

// SelectMoveFor returns the best move for mark. FirstPlayer maximizes the evaluation,
// SecondPlayer picks the cell with the lowest one.
func SelectMoveFor(board entity.Board, turnsPassed int, mark entity.Mark) (Move, bool) {
	if !mark.IsPlayer() {
		return Move{}, false
	}

	return selectMove(board, turnsPassed, mark)
}

func selectMove(board entity.Board, turnsPassed int, mark entity.Mark) (Move, bool) {
	if turnsPassed >= entity.Cells {
		return Move{}, false
	}

	sign := 1
	if mark == entity.SecondPlayer {
		sign = -1
	}

	var (
		best           Move
		bestEvaluation = math.MinInt
		found          bool
	)

	for row := range entity.Size {
		for column := range entity.Size {
			if board.At(row, column) != entity.Empty {
				continue
			}

			board.Set(row, column, mark)
			evaluation := sign * minimax(&board, turnsPassed+1, mark == entity.SecondPlayer, math.MinInt, math.MaxInt, 0)
			board.Set(row, column, entity.Empty)

			if !found || evaluation > bestEvaluation {
				best = Move{Row: row, Column: column}
				bestEvaluation = evaluation
				found = true
			}
		}
	}

	return best, found
}
