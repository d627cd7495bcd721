package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	x = entity.FirstPlayer
	o = entity.SecondPlayer
	e = entity.Empty
)

func TestSelectMove(t *testing.T) {
	t.Run("No move on a full board", func(t *testing.T) {
		// Given: a full board
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		// When: the engine is asked for a move
		_, ok := SelectMove(board, entity.Cells)

		// Then: no move is available
		assert.False(t, ok)
	})

	t.Run("Last empty cell", func(t *testing.T) {
		// Given: one empty cell and no winner
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, e,
		}

		// When: the engine is asked for a move
		move, ok := SelectMove(board, 8)

		// Then: exactly that cell is returned
		require.True(t, ok)
		assert.Equal(t, Move{Row: 2, Column: 2}, move)
	})

	t.Run("Takes the immediate win", func(t *testing.T) {
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		move, ok := SelectMove(board, 4)

		require.True(t, ok)
		assert.Equal(t, Move{Row: 0, Column: 2}, move)
	})

	t.Run("Prefers the faster win over an earlier cell", func(t *testing.T) {
		// Given: (1,2) still wins later, (2,0) completes the reverse diagonal now
		board := entity.Board{
			x, o, x,
			o, x, e,
			e, o, e,
		}

		// When: the engine is asked for a move
		move, ok := SelectMove(board, 6)

		// Then: the depth penalty picks the immediate win
		require.True(t, ok)
		assert.Equal(t, Move{Row: 2, Column: 0}, move)
	})

	t.Run("Minimizing side narrows alpha", func(t *testing.T) {
		// Given: X in the centre and O in the bottom-right corner
		board := entity.Board{
			e, e, e,
			e, x, e,
			e, e, o,
		}

		// When: the engine is asked for a move
		move, ok := SelectMove(board, 2)

		// Then: the single alpha window answers (0,0), a separate beta would answer (0,1)
		require.True(t, ok)
		assert.Equal(t, Move{Row: 0, Column: 0}, move)
	})

	t.Run("Empty board is deterministic", func(t *testing.T) {
		// When: the engine is asked twice on an empty board
		first, ok := SelectMove(entity.Board{}, 0)
		require.True(t, ok)

		second, ok := SelectMove(entity.Board{}, 0)
		require.True(t, ok)

		// Then: the same corner comes back
		assert.Equal(t, first, second)
		assert.Equal(t, Move{Row: 0, Column: 0}, first)
	})

	t.Run("Board is left untouched", func(t *testing.T) {
		board := entity.Board{
			x, e, e,
			e, o, e,
			e, e, e,
		}
		before := board

		_, ok := SelectMove(board, 2)

		require.True(t, ok)
		assert.Equal(t, before, board)
	})
}

func TestSelectMoveFor(t *testing.T) {
	t.Run("Second player blocks", func(t *testing.T) {
		// Given: X threatens the top row
		board := entity.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}

		// When: O asks for a move
		move, ok := SelectMoveFor(board, 3, o)

		// Then: O blocks at (0,2)
		require.True(t, ok)
		assert.Equal(t, Move{Row: 0, Column: 2}, move)
	})

	t.Run("Second player wins", func(t *testing.T) {
		board := entity.Board{
			o, o, e,
			x, x, e,
			x, e, e,
		}

		move, ok := SelectMoveFor(board, 5, o)

		require.True(t, ok)
		assert.Equal(t, Move{Row: 0, Column: 2}, move)
	})

	t.Run("Second player forks instead of winning at once", func(t *testing.T) {
		// Given: O could complete the diagonal at (0,0) right away
		board := entity.Board{
			e, e, e,
			x, o, x,
			e, x, o,
		}

		// When: O asks for a move
		move, ok := SelectMoveFor(board, 5, o)

		// Then: the depth penalty rewards the longer line, O forks at (0,2)
		require.True(t, ok)
		assert.Equal(t, Move{Row: 0, Column: 2}, move)

		// And: O still wins whatever X answers
		board.Set(0, 2, o)
		for _, reply := range []Move{{0, 0}, {0, 1}, {2, 0}} {
			next := board
			next.Set(reply.Row, reply.Column, x)

			finish, ok := SelectMoveFor(next, 7, o)
			require.True(t, ok)

			next.Set(finish.Row, finish.Column, o)
			assert.Equal(t, o, next.Winner(), "reply %v", reply)
		}
	})

	t.Run("Second player answers the opening", func(t *testing.T) {
		center := entity.Board{}
		center.Set(1, 1, x)

		corner := entity.Board{}
		corner.Set(0, 0, x)

		move, ok := SelectMoveFor(center, 1, o)
		require.True(t, ok)
		assert.Equal(t, Move{Row: 0, Column: 0}, move)

		move, ok = SelectMoveFor(corner, 1, o)
		require.True(t, ok)
		assert.Equal(t, Move{Row: 1, Column: 1}, move)
	})

	t.Run("Second player last empty cell", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			x, o, o,
			e, x, x,
		}

		move, ok := SelectMoveFor(board, 8, o)

		require.True(t, ok)
		assert.Equal(t, Move{Row: 2, Column: 0}, move)
	})

	t.Run("First player matches SelectMove", func(t *testing.T) {
		board := entity.Board{
			e, e, e,
			e, o, e,
			x, e, e,
		}

		want, _ := SelectMove(board, 2)
		got, ok := SelectMoveFor(board, 2, x)

		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("Empty mark has no move", func(t *testing.T) {
		_, ok := SelectMoveFor(entity.Board{}, 0, e)

		assert.False(t, ok)
	})
}

func TestSelectMove_NeverOccupied(t *testing.T) {
	rnd := rand.New(rand.NewSource(7)) //nolint: gosec // deterministic test data

	for round := 0; round < 100; round++ {
		game := entity.NewGame()

		// random opening of 2 to 7 moves
		for plies := 2 + rnd.Intn(6); plies > 0 && !game.IsOver(); {
			if game.AttemptMove(rnd.Intn(entity.Size), rnd.Intn(entity.Size), game.CurrentPlayer()).Accepted {
				plies--
			}
		}

		if game.IsOver() {
			continue
		}

		board := game.Board()
		move, ok := SelectMoveFor(board, game.TurnsPassed(), game.CurrentPlayer())

		require.True(t, ok)
		require.Equal(t, entity.Empty, board.At(move.Row, move.Column), "board:\n%s", board.String())
	}
}

// worstOutcome plays the engine as engineMark against every possible opponent
// reply and returns the worst result for the engine: -1 loss, 0 draw, 1 win.
func worstOutcome(t *testing.T, game *entity.Game, engineMark entity.Mark) int {
	t.Helper()

	if game.IsOver() {
		switch game.Result().Winner {
		case engineMark:
			return 1
		case entity.Empty:
			return 0
		default:
			return -1
		}
	}

	if game.CurrentPlayer() == engineMark {
		move, ok := SelectMoveFor(game.Board(), game.TurnsPassed(), engineMark)
		require.True(t, ok)

		next := *game
		require.True(t, next.AttemptMove(move.Row, move.Column, engineMark).Accepted)

		return worstOutcome(t, &next, engineMark)
	}

	worst := 1
	for row := range entity.Size {
		for column := range entity.Size {
			next := *game
			if !next.AttemptMove(row, column, next.CurrentPlayer()).Accepted {
				continue
			}

			worst = min(worst, worstOutcome(t, &next, engineMark))
		}
	}

	return worst
}

func TestSelectMove_NeverLoses(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive game tree")
	}

	t.Run("As first player", func(t *testing.T) {
		assert.GreaterOrEqual(t, worstOutcome(t, entity.NewGame(), x), 0)
	})

	t.Run("As second player", func(t *testing.T) {
		assert.GreaterOrEqual(t, worstOutcome(t, entity.NewGame(), o), 0)
	})
}

func TestPosition_Key(t *testing.T) {
	position := Position{
		Board:       entity.Board{e, e, e, e, x, e, e, e, e},
		TurnsPassed: 1,
		Mark:        o,
	}

	assert.Equal(t, "move:----X----:1:O", position.Key())
}
