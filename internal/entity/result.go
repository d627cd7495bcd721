package entity

import "fmt"

// WinType names the family of the winning line.
type WinType uint8

const (
	WinRow WinType = iota
	WinColumn
	WinDiagonal
	WinReverseDiagonal
)

func (that WinType) String() string {
	switch that {
	case WinRow:
		return "row"
	case WinColumn:
		return "column"
	case WinDiagonal:
		return "diagonal"
	case WinReverseDiagonal:
		return "reverse_diagonal"
	default:
		return fmt.Sprintf("wintype(%d)", uint8(that))
	}
}

func (that WinType) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *WinType) UnmarshalText(text []byte) error {
	for _, winType := range []WinType{WinRow, WinColumn, WinDiagonal, WinReverseDiagonal} {
		if winType.String() == string(text) {
			*that = winType
			return nil
		}
	}

	return fmt.Errorf("unknown win type %q", text)
}

// WinInfo describes the winning line. Index is the row or column number and is
// always zero for the diagonals.
type WinInfo struct {
	Type  WinType `json:"type"`
	Index int     `json:"index"`
}

// GameResult is the terminal outcome. Winner is Empty and Win is nil for a draw.
type GameResult struct {
	Winner Mark     `json:"winner"`
	Win    *WinInfo `json:"win,omitempty"`
}

func (that *GameResult) IsDraw() bool {
	return that.Winner == Empty
}

func (that *GameResult) clone() *GameResult {
	if that == nil {
		return nil
	}

	result := &GameResult{Winner: that.Winner}
	if that.Win != nil {
		win := *that.Win
		result.Win = &win
	}

	return result
}

// MoveOutcome is what AttemptMove reports. A rejected move carries the reason
// and leaves the game untouched.
type MoveOutcome struct {
	Accepted  bool        `json:"accepted"`
	GameEnded bool        `json:"game_ended"`
	Result    *GameResult `json:"result,omitempty"`
	Reason    error       `json:"-"`
}
