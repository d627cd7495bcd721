package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mark is the occupancy of a single cell, and also identifies a player.
type Mark uint8

const (
	Empty Mark = iota
	FirstPlayer
	SecondPlayer
)

const (
	PlayerX = FirstPlayer
	PlayerO = SecondPlayer
)

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case FirstPlayer:
		return SecondPlayer
	case SecondPlayer:
		return FirstPlayer
	default:
		return Empty
	}
}

// IsPlayer reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == FirstPlayer || that == SecondPlayer
}

func (that Mark) String() string {
	switch that {
	case FirstPlayer:
		return "X"
	case SecondPlayer:
		return "O"
	default:
		return ""
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// ParseMark accepts "X", "O" and "" (empty cell).
func ParseMark(value string) (Mark, error) {
	switch value {
	case "X", "x":
		return FirstPlayer, nil
	case "O", "o":
		return SecondPlayer, nil
	case "":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, value)
	}
}
