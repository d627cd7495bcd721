package entity

import "strings"

const (
	Size  = 3
	Cells = Size * Size
)

// Board is the 3x3 grid stored row-major.
type Board [Cells]Mark

// InBounds reports whether (row, column) addresses a cell of the board.
func InBounds(row, column int) bool {
	return row >= 0 && row < Size && column >= 0 && column < Size
}

// At returns the mark at (row, column). Coordinates outside the board read as Empty.
func (that Board) At(row, column int) Mark {
	if !InBounds(row, column) {
		return Empty
	}

	return that[row*Size+column]
}

// Set places mark at (row, column). Coordinates outside the board are ignored.
func (that *Board) Set(row, column int, mark Mark) {
	if !InBounds(row, column) {
		return
	}

	that[row*Size+column] = mark
}

// Filled counts non-empty cells.
func (that Board) Filled() int {
	filled := 0
	for _, cell := range that {
		if cell != Empty {
			filled++
		}
	}

	return filled
}

// WinThrough checks only the lines passing through (row, column), in the order
// row, column, diagonal, reverse diagonal, and returns the first one fully owned by mark.
func (that Board) WinThrough(row, column int, mark Mark) *WinInfo {
	if !mark.IsPlayer() || !InBounds(row, column) {
		return nil
	}

	if that.lineOwnedBy(rowLine(row), mark) {
		return &WinInfo{Type: WinRow, Index: row}
	}

	if that.lineOwnedBy(columnLine(column), mark) {
		return &WinInfo{Type: WinColumn, Index: column}
	}

	if row == column && that.lineOwnedBy(diagonalLine, mark) {
		return &WinInfo{Type: WinDiagonal}
	}

	if row+column == Size-1 && that.lineOwnedBy(reverseDiagonalLine, mark) {
		return &WinInfo{Type: WinReverseDiagonal}
	}

	return nil
}

// Winner scans the whole board: rows top to bottom, columns left to right,
// then the diagonal and the reverse diagonal. The first completed line wins.
func (that Board) Winner() Mark {
	for _, cells := range winLines {
		if owner := that.lineOwner(cells); owner != Empty {
			return owner
		}
	}

	return Empty
}

// Key encodes the board as nine characters, "-" for empty cells.
func (that Board) Key() string {
	var sb strings.Builder
	sb.Grow(Cells)

	for _, cell := range that {
		if cell == Empty {
			sb.WriteByte('-')
			continue
		}
		sb.WriteString(cell.String())
	}

	return sb.String()
}

func (that Board) String() string {
	var sb strings.Builder

	for row := range Size {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for column := range Size {
			cell := that.At(row, column)
			if cell == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}

type line [Size]int

var (
	diagonalLine        = line{0, 4, 8}
	reverseDiagonalLine = line{2, 4, 6}

	winLines = [...]line{
		rowLine(0), rowLine(1), rowLine(2),
		columnLine(0), columnLine(1), columnLine(2),
		diagonalLine, reverseDiagonalLine,
	}
)

func rowLine(row int) line {
	return line{row * Size, row*Size + 1, row*Size + 2}
}

func columnLine(column int) line {
	return line{column, column + Size, column + 2*Size}
}

func (that Board) lineOwnedBy(cells line, mark Mark) bool {
	for _, i := range cells {
		if that[i] != mark {
			return false
		}
	}

	return true
}

func (that Board) lineOwner(cells line) Mark {
	first := that[cells[0]]
	if first == Empty {
		return Empty
	}

	if that.lineOwnedBy(cells, first) {
		return first
	}

	return Empty
}
