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

package ai

import (
	"testing"

	"github.com/namanyt/tictactoe/pkg/game"
)

func boardFrom(t *testing.T, position string) *game.Board {
	t.Helper()

	board := game.NewBoard()
	i := 0
	for _, r := range position {
		var mark game.Cell

		switch r {
		case '/':
			continue
		case 'X':
			mark = game.X
		case 'O':
			mark = game.O
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

func TestDepthBias(t *testing.T) {
	// O completes the top row with its next move: the win lands one ply
	// into the search and must score 10-1 = 9, not 10.
	board := boardFrom(t, "OO./XX./X..")
	engine := NewEngine(board, Optimal, 0)

	if got := engine.minimax(0, true); got != 9 {
		t.Errorf("minimax(maximizing) = %d, want 9", got)
	}

	// X completes the top row with its next move: the loss one ply in
	// must score -10+1 = -9, the least bad outcome for the maximizer.
	board = boardFrom(t, "XX./OO./O..")
	engine = NewEngine(board, Optimal, 0)

	if got := engine.minimax(0, false); got != -9 {
		t.Errorf("minimax(minimizing) = %d, want -9", got)
	}
}

func TestOptimalDeterminism(t *testing.T) {
	board := boardFrom(t, "X.O/.X./...")
	engine := NewEngine(board, Optimal, 0)

	first := engine.BestMove()
	for i := 0; i < 5; i++ {
		if got := engine.BestMove(); got != first {
			t.Fatalf("BestMove() = %v on call %d, was %v before", got, i+2, first)
		}
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	board := boardFrom(t, "XO./.X./O..")
	snapshot := *board

	engine := NewEngine(board, Optimal, 0)
	engine.BestMove()
	engine.Predict()
	engine.Explain(-1)

	if *board != snapshot {
		t.Error("search left the board in a different state")
	}
}

func TestCompletesWinningLine(t *testing.T) {
	// O holds (0,0) and (0,1); (0,2) completes the top row at once and
	// must be picked over any slower win.
	board := boardFrom(t, "OO./X../X..")
	engine := NewEngine(board, Optimal, 0)

	if got := engine.BestMove(); got != (game.Move{Row: 0, Col: 2}) {
		t.Fatalf("BestMove() = %v, want (0,2)", got)
	}

	// An immediate win is found at ply zero of the candidate's subtree,
	// so its recorded score carries no depth penalty.
	for _, candidate := range engine.Explain(-1) {
		if candidate.Move == (game.Move{Row: 0, Col: 2}) && candidate.Score != 10 {
			t.Errorf("winning move scored %d, want 10", candidate.Score)
		}
	}
}

func TestBlocksImmediateThreat(t *testing.T) {
	// X threatens the left column; O's only non-losing reply is (2,0).
	board := boardFrom(t, "X.O/X../...")
	engine := NewEngine(board, Optimal, 0)

	if got := engine.BestMove(); got != (game.Move{Row: 2, Col: 0}) {
		t.Errorf("BestMove() = %v, want (2,0)", got)
	}
}

func TestOptimalSelfPlayDraws(t *testing.T) {
	board := game.NewBoard()
	engines := [2]*Engine{
		NewEngine(board, Optimal, 0),
		NewEngine(board, Optimal, 0),
	}
	marks := [2]game.Cell{game.X, game.O}

	turn := 0
	for !board.Result().Terminal() {
		move := engines[turn].BestMove()
		if move.IsNone() {
			t.Fatal("BestMove() = NoMove on a non-terminal board")
		}
		if err := board.Apply(move.Row, move.Col, marks[turn]); err != nil {
			t.Fatalf("Apply(%v): %v", move, err)
		}
		turn ^= 1
	}

	if got := board.Result(); got != game.Draw {
		t.Errorf("optimal self-play ended %v, want a draw", got)
	}
}

func TestBoundedRespectsTolerance(t *testing.T) {
	positions := []string{
		"X../.../...",
		"X.O/.X./...",
		"XO./OX./X..",
		"OO./XX./...",
	}

	for _, position := range positions {
		board := boardFrom(t, position)

		reference := NewEngine(board, Optimal, 0)
		scores := make(map[game.Move]int)
		best := -maxScore * 2
		for _, candidate := range reference.Explain(-1) {
			scores[candidate.Move] = candidate.Score
			if candidate.Score > best {
				best = candidate.Score
			}
		}

		threshold := best - boundedTolerance
		if threshold < -maxScore {
			threshold = -maxScore
		}

		engine := NewEngine(board, Bounded, 0)
		for seed := int64(1); seed <= 25; seed++ {
			engine.SetSeed(seed)

			move := engine.BestMove()
			if score := scores[move]; score < threshold {
				t.Errorf("position %q seed %d: Bounded played %v scoring %d, threshold %d",
					position, seed, move, score, threshold)
			}
		}
	}
}

func TestRandomIsSeedDeterministic(t *testing.T) {
	board := boardFrom(t, "X.O/.../...")

	pick := func(seed int64) game.Move {
		engine := NewEngine(board, Random, 0)
		engine.SetSeed(seed)
		return engine.BestMove()
	}

	for seed := int64(1); seed <= 10; seed++ {
		if first, second := pick(seed), pick(seed); first != second {
			t.Fatalf("seed %d: BestMove() = %v, then %v", seed, first, second)
		}
	}
}

func TestExplainCompleteness(t *testing.T) {
	board := boardFrom(t, "X.O/.X./O..")
	engine := NewEngine(board, Optimal, 0)

	legal := board.LegalMoves()
	candidates := engine.Explain(-1)

	if len(candidates) != len(legal) {
		t.Fatalf("Explain(-1) returned %d candidates, want %d", len(candidates), len(legal))
	}
	for i, candidate := range candidates {
		// Scan order matches legal-move order exactly.
		if candidate.Move != legal[i] {
			t.Errorf("Explain(-1)[%d].Move = %v, want %v", i, candidate.Move, legal[i])
		}
	}

	if capped := engine.Explain(2); len(capped) != 2 {
		t.Errorf("Explain(2) returned %d candidates, want 2", len(capped))
	}
	if none := engine.Explain(0); len(none) != 0 {
		t.Errorf("Explain(0) returned %d candidates, want 0", len(none))
	}
}

func TestPredict(t *testing.T) {
	tests := []struct {
		position string
		want     Prediction
	}{
		// Optimal play from the empty board is a draw.
		{".../.../...", Drawn},
		// O completes the top row at once.
		{"OO./XX./X..", OWins},
		// X holds a double threat on the top row and left column; O can
		// only block one of them.
		{"X.X/.O./X.O", XWins},
	}

	for _, test := range tests {
		engine := NewEngine(boardFrom(t, test.position), Optimal, 0)
		if got := engine.Predict(); got != test.want {
			t.Errorf("Predict(%q) = %v, want %v", test.position, got, test.want)
		}
	}
}

func TestPredictIgnoresDifficulty(t *testing.T) {
	for _, difficulty := range []Difficulty{Random, Bounded, Optimal} {
		engine := NewEngine(boardFrom(t, "OO./XX./X.."), difficulty, 0)
		engine.SetSeed(7)

		if got := engine.Predict(); got != OWins {
			t.Errorf("Predict() with difficulty %v = %v, want OWins", difficulty, got)
		}
	}
}

func TestNoMoveOnTerminalBoard(t *testing.T) {
	engine := NewEngine(boardFrom(t, "XOX/XXO/OXO"), Optimal, 0)

	if got := engine.BestMove(); !got.IsNone() {
		t.Errorf("BestMove() on a full board = %v, want NoMove", got)
	}
	if got := engine.Predict(); got != Drawn {
		t.Errorf("Predict() on a full board = %v, want Drawn", got)
	}
	if got := engine.Explain(-1); len(got) != 0 {
		t.Errorf("Explain(-1) on a full board returned %d candidates, want 0", len(got))
	}
}

func TestStatsFollowLastCall(t *testing.T) {
	engine := NewEngine(game.NewBoard(), Optimal, 0)

	engine.BestMove()
	wideNodes, wideDepth := engine.Stats()
	if wideNodes == 0 || wideDepth == 0 {
		t.Fatalf("Stats() after a full-board search = (%d, %d)", wideNodes, wideDepth)
	}

	engine = NewEngine(boardFrom(t, "XOX/XXO/O.."), Optimal, 0)
	engine.BestMove()
	narrowNodes, _ := engine.Stats()

	if narrowNodes >= wideNodes {
		t.Errorf("near-final position visited %d nodes, empty board %d", narrowNodes, wideNodes)
	}

	engine.ResetStats()
	if nodes, maxDepth := engine.Stats(); nodes != 0 || maxDepth != 0 {
		t.Errorf("Stats() after reset = (%d, %d), want (0, 0)", nodes, maxDepth)
	}
}

func TestClamping(t *testing.T) {
	engine := NewEngine(game.NewBoard(), Difficulty(99), -3)
	if got := engine.Difficulty(); got != Optimal {
		t.Errorf("difficulty clamped to %v, want Optimal", got)
	}

	engine.SetDifficulty(Difficulty(-5))
	if got := engine.Difficulty(); got != Random {
		t.Errorf("difficulty clamped to %v, want Random", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
		ok    bool
	}{
		{"easy", Random, true},
		{"MEDIUM", Bounded, true},
		{"hard", Optimal, true},
		{"0", Random, true},
		{"1", Bounded, true},
		{"2", Optimal, true},
		{"impossible", Optimal, false},
	}

	for _, test := range tests {
		got, err := ParseDifficulty(test.input)
		if (err == nil) != test.ok {
			t.Errorf("ParseDifficulty(%q) error = %v", test.input, err)
			continue
		}
		if err == nil && got != test.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}
