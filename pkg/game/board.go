// Copyright © 2025 The tictactoe Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package game implements the 3x3 tic-tac-toe board: cell states, legal
// move enumeration, move application, and terminal state classification.
package game

import "errors"

// Cell represents the contents of a single square of the board.
type Cell byte

const (
	Empty Cell = iota
	X          // the first-moving mark
	O          // the second-moving mark
)

// String returns the display character for the given Cell.
func (cell Cell) String() string {
	switch cell {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing mark. Other(Empty) is Empty.
func (cell Cell) Other() Cell {
	switch cell {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Move is a square of the board addressed by its row and column, both in
// the range [0, 2].
type Move struct {
	Row, Col int
}

// NoMove is the sentinel returned when no move can be produced, for
// example when move selection is queried on a terminal board.
var NoMove = Move{Row: -1, Col: -1}

// IsNone reports whether the given Move is the NoMove sentinel.
func (move Move) IsNone() bool {
	return move == NoMove
}

// ErrOutOfRange is returned when a move's coordinates lie outside the
// board. Coordinates are never clamped.
var ErrOutOfRange = errors.New("game: move coordinates out of range")

// Board is a 3x3 tic-tac-toe board, stored row-major.
//
// Board is shared by reference between its owner and any search running
// on it: the search mutates the Board in place with paired Apply/Clear
// calls and leaves it unchanged once it returns. Nothing may read or
// write the Board while a search on it is in flight.
type Board struct {
	cells [3][3]Cell
}

// NewBoard returns an empty Board.
func NewBoard() *Board {
	return &Board{}
}

// Cell returns the contents of the addressed square. Out-of-range
// coordinates return Empty.
func (board *Board) Cell(row, col int) Cell {
	if !inRange(row, col) {
		return Empty
	}
	return board.cells[row][col]
}

// LegalMoves returns every Empty square in row-major order. The ordering
// is a contract: it decides which move wins ties when several moves score
// equally during search.
func (board *Board) LegalMoves() []Move {
	moves := make([]Move, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if board.cells[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Apply writes the given mark to the addressed square. The square is
// overwritten unconditionally: callers must only ever pass squares
// obtained from LegalMoves. Returns ErrOutOfRange for coordinates
// outside [0, 2].
func (board *Board) Apply(row, col int, mark Cell) error {
	if !inRange(row, col) {
		return ErrOutOfRange
	}
	board.cells[row][col] = mark
	return nil
}

// Clear resets the addressed square to Empty. It is the undo half of an
// Apply/Clear pair: a search must pair every Apply with exactly one Clear
// so the board is bit-for-bit identical once the search returns.
func (board *Board) Clear(row, col int) error {
	if !inRange(row, col) {
		return ErrOutOfRange
	}
	board.cells[row][col] = Empty
	return nil
}

func inRange(row, col int) bool {
	return row >= 0 && row <= 2 && col >= 0 && col <= 2
}

// Result classifies the current state of the board. It is recomputed on
// demand by scanning the 3 rows, the 3 columns and both diagonals; under
// alternating play at most one mark can hold a completed line.
func (board *Board) Result() Result {
	cells := &board.cells

	for row := 0; row < 3; row++ {
		if cells[row][0] != Empty && cells[row][0] == cells[row][1] &&
			cells[row][1] == cells[row][2] {
			return winnerOf(cells[row][0])
		}
	}

	for col := 0; col < 3; col++ {
		if cells[0][col] != Empty && cells[0][col] == cells[1][col] &&
			cells[1][col] == cells[2][col] {
			return winnerOf(cells[0][col])
		}
	}

	if cells[0][0] != Empty && cells[0][0] == cells[1][1] &&
		cells[1][1] == cells[2][2] {
		return winnerOf(cells[0][0])
	}

	if cells[0][2] != Empty && cells[0][2] == cells[1][1] &&
		cells[1][1] == cells[2][0] {
		return winnerOf(cells[0][2])
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if cells[row][col] == Empty {
				return Ongoing
			}
		}
	}

	return Draw
}

func winnerOf(mark Cell) Result {
	if mark == X {
		return WinX
	}
	return WinO
}
