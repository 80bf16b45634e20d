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

package game

import (
	"errors"
	"testing"
)

// boardFrom builds a board from nine squares given row by row, with '/'
// separating rows for readability.
func boardFrom(t *testing.T, position string) *Board {
	t.Helper()

	board := NewBoard()
	i := 0
	for _, r := range position {
		var mark Cell

		switch r {
		case '/':
			continue
		case 'X':
			mark = X
		case 'O':
			mark = O
		case '.':
			i++
			continue
		default:
			t.Fatalf("bad square %q in position %q", r, position)
		}

		if err := board.Apply(i/3, i%3, mark); err != nil {
			t.Fatalf("Apply(%d, %d): %v", i/3, i%3, err)
		}
		i++
	}

	if i != 9 {
		t.Fatalf("position %q has %d squares, want 9", position, i)
	}
	return board
}

func TestResultClassification(t *testing.T) {
	tests := []struct {
		position string
		want     Result
	}{
		{"........./", Ongoing},
		{"XO./.X./..O", Ongoing},
		{"XXX/OO./...", WinX},
		{".../XXX/OO.", WinX},
		{"OO./.../XXX", WinX},
		{"X.O/X.O/..O", WinO},
		{"OX./OX./O..", WinO},
		{"O../XO./XXO", WinO},
		{"..O/XOX/O..", WinO},
		{"X.O/.X./O.X", WinX},
		{"XOX/XXO/OXO", Draw},
		{"XOX/OOX/XXO", Draw},
	}

	for _, test := range tests {
		board := boardFrom(t, test.position)
		if got := board.Result(); got != test.want {
			t.Errorf("Result(%q) = %v, want %v", test.position, got, test.want)
		}
	}
}

func TestLegalMovesOrder(t *testing.T) {
	board := boardFrom(t, "X.O/.X./O..")

	want := []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}
	got := board.LegalMoves()

	if len(got) != len(want) {
		t.Fatalf("LegalMoves() returned %d moves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LegalMoves()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLegalMovesEmptyAndFull(t *testing.T) {
	if got := len(NewBoard().LegalMoves()); got != 9 {
		t.Errorf("empty board has %d legal moves, want 9", got)
	}

	full := boardFrom(t, "XOX/XXO/OXO")
	if got := len(full.LegalMoves()); got != 0 {
		t.Errorf("full board has %d legal moves, want 0", got)
	}
}

func TestApplyOutOfRange(t *testing.T) {
	board := NewBoard()

	for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {9, 9}} {
		if err := board.Apply(move.Row, move.Col, X); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Apply(%d, %d) = %v, want ErrOutOfRange", move.Row, move.Col, err)
		}
		if err := board.Clear(move.Row, move.Col); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Clear(%d, %d) = %v, want ErrOutOfRange", move.Row, move.Col, err)
		}
	}

	// The board must be untouched after rejected writes.
	if *board != (Board{}) {
		t.Error("board changed by out-of-range writes")
	}
}

func TestApplyClearSymmetry(t *testing.T) {
	board := boardFrom(t, "XO./.X./..O")
	before := *board

	for _, move := range board.LegalMoves() {
		if err := board.Apply(move.Row, move.Col, O); err != nil {
			t.Fatalf("Apply(%v): %v", move, err)
		}
		if err := board.Clear(move.Row, move.Col); err != nil {
			t.Fatalf("Clear(%v): %v", move, err)
		}
	}

	if *board != before {
		t.Error("apply/clear pairs did not restore the board")
	}
}

func TestCellAccessor(t *testing.T) {
	board := boardFrom(t, "X.O/.../...")

	if got := board.Cell(0, 0); got != X {
		t.Errorf("Cell(0,0) = %v, want X", got)
	}
	if got := board.Cell(0, 2); got != O {
		t.Errorf("Cell(0,2) = %v, want O", got)
	}
	if got := board.Cell(1, 1); got != Empty {
		t.Errorf("Cell(1,1) = %v, want Empty", got)
	}
	if got := board.Cell(5, 5); got != Empty {
		t.Errorf("Cell(5,5) = %v, want Empty", got)
	}
}

func TestMoveSentinel(t *testing.T) {
	if !NoMove.IsNone() {
		t.Error("NoMove.IsNone() = false")
	}
	if (Move{0, 0}).IsNone() {
		t.Error("Move{0,0}.IsNone() = true")
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		result Result
		want   string
	}{
		{WinX, "1-0"},
		{WinO, "0-1"},
		{Draw, "1/2-1/2"},
		{Ongoing, "*"},
	}

	for _, test := range tests {
		if got := test.result.String(); got != test.want {
			t.Errorf("%d.String() = %q, want %q", test.result, got, test.want)
		}
	}
}
