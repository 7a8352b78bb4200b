package connectfour

import "github.com/rocketscienceinc/connectfour/internal/entity"

const lineLength = 4

// Direction is a (column, row) step used to walk a line across the board.
type Direction struct {
	Col int
	Row int
}

// Directions lists all eight compass steps. Every line is walked from both
// of its ends, so only four of them are independent.
var Directions = [8]Direction{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CheckForWinner scans the board column by column, bottom row first, and
// returns the mark of the first cell that starts four in a row.
func CheckForWinner(board *entity.Board) entity.Outcome {
	for col := range board.Cells {
		for row := range board.Cells[col] {
			if board.Cells[col][row] == entity.Empty {
				continue
			}

			if checkCell(board, col, row) {
				return entity.Winner(board.Cells[col][row])
			}
		}
	}

	return entity.NoWinner()
}

// EvaluateBoard is CheckForWinner plus the draw rule: a full board without
// a line is a draw.
func EvaluateBoard(board *entity.Board) entity.Outcome {
	if outcome := CheckForWinner(board); outcome.HasWinner() {
		return outcome
	}

	if board.IsFull() {
		return entity.Draw()
	}

	return entity.NoWinner()
}

func checkCell(board *entity.Board, col, row int) bool {
	for _, dir := range Directions {
		if walkLine(board, col, row, dir) {
			return true
		}
	}

	return false
}

// walkLine reports whether the three cells after (col, row) along dir hold
// the same mark as the origin. Each step must be in bounds before it is
// compared, and the walk stops at the first step that fails.
func walkLine(board *entity.Board, col, row int, dir Direction) bool {
	mark := board.Cells[col][row]

	for step := 1; step < lineLength; step++ {
		nextCol := col + dir.Col*step
		nextRow := row + dir.Row*step

		if !entity.InBounds(nextCol, nextRow) {
			return false
		}

		if board.Cells[nextCol][nextRow] != mark {
			return false
		}
	}

	return true
}
