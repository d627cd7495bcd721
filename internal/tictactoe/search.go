package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// minimax scores the position for FirstPlayer. Non-terminal nodes subtract their
// depth from the best child value.
//
// The minimizing side narrows alpha instead of beta, so with the root window
// (-inf, +inf) the cutoff condition never holds and the whole tree is visited.
func minimax(board *entity.Board, turnsPassed int, maximizing bool, alpha, beta, depth int) int {
	winner := board.Winner()
	if turnsPassed >= entity.Cells || winner != entity.Empty {
		return score(winner)
	}

	mark := entity.SecondPlayer
	if maximizing {
		mark = entity.FirstPlayer
	}

	var (
		best  int
		moved bool
	)

	for cell := range board {
		if board[cell] != entity.Empty {
			continue
		}

		board[cell] = mark
		evaluation := minimax(board, turnsPassed+1, !maximizing, alpha, beta, depth+1)
		board[cell] = entity.Empty

		switch {
		case !moved:
			best = evaluation
		case maximizing:
			best = max(best, evaluation)
		default:
			best = min(best, evaluation)
		}
		moved = true

		if maximizing {
			alpha = max(alpha, evaluation)
		} else {
			alpha = min(alpha, evaluation)
		}

		if beta <= alpha {
			break
		}
	}

	// turnsPassed disagreed with the board and no cell was left
	if !moved {
		return drawScore
	}

	return best - depth
}

func score(winner entity.Mark) int {
	switch winner {
	case entity.FirstPlayer:
		return winScore
	case entity.SecondPlayer:
		return lossScore
	default:
		return drawScore
	}
}
