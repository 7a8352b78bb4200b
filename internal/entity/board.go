package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	Columns = 7
	Rows    = 6

	Empty Mark = ""
)

// Mark identifies which player occupies a cell.
type Mark string

func (that Mark) String() string {
	return string(that)
}

// Board is a 7x6 grid addressed as [column][row], row 0 is the bottom.
// Occupied cells in a column always form a contiguous run from row 0.
type Board struct {
	Cells [Columns][Rows]Mark `json:"cells"`
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// AvailableColumns returns the 1-based numbers of the columns whose top cell is empty.
func (that *Board) AvailableColumns() []string {
	columns := make([]string, 0, Columns)

	for col := range that.Cells {
		if that.Cells[col][Rows-1] == Empty {
			columns = append(columns, strconv.Itoa(col+1))
		}
	}

	return columns
}

// Drop places mark in the lowest empty row of column and returns that row.
// A full or unknown column leaves the board untouched and returns false.
func (that *Board) Drop(mark Mark, column int) (int, bool) {
	if column < 0 || column >= Columns {
		return -1, false
	}

	for row := 0; row < Rows; row++ {
		if that.Cells[column][row] == Empty {
			that.Cells[column][row] = mark
			return row, true
		}
	}

	return -1, false
}

func (that *Board) CellAt(col, row int) (Mark, error) {
	if !InBounds(col, row) {
		return Empty, fmt.Errorf("%w: column %d, row %d", apperror.ErrOutOfRange, col, row)
	}

	return that.Cells[col][row], nil
}

func (that *Board) IsFull() bool {
	return len(that.AvailableColumns()) == 0
}

// MarksPlaced counts the occupied cells.
func (that *Board) MarksPlaced() int {
	count := 0

	for col := range that.Cells {
		for row := range that.Cells[col] {
			if that.Cells[col][row] != Empty {
				count++
			}
		}
	}

	return count
}

func InBounds(col, row int) bool {
	return col >= 0 && col < Columns && row >= 0 && row < Rows
}
