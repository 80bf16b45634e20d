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

package cmd

import (
	"testing"

	"github.com/namanyt/tictactoe/pkg/game"
)

func TestParsePosition(t *testing.T) {
	board, err := parsePosition("XO-/-x-/--o")
	if err != nil {
		t.Fatalf("parsePosition: %v", err)
	}

	wants := []struct {
		row, col int
		mark     game.Cell
	}{
		{0, 0, game.X},
		{0, 1, game.O},
		{0, 2, game.Empty},
		{1, 1, game.X},
		{2, 2, game.O},
	}
	for _, want := range wants {
		if got := board.Cell(want.row, want.col); got != want.mark {
			t.Errorf("cell (%d,%d) = %v, want %v", want.row, want.col, got, want.mark)
		}
	}
}

func TestParsePositionSeparators(t *testing.T) {
	plain, err := parsePosition("X.O.X.O._")
	if err != nil {
		t.Fatalf("parsePosition: %v", err)
	}

	spaced, err := parsePosition("X.O / .X. / O._")
	if err != nil {
		t.Fatalf("parsePosition with separators: %v", err)
	}

	if *plain != *spaced {
		t.Error("separators changed the parsed position")
	}
}

func TestParsePositionErrors(t *testing.T) {
	for _, position := range []string{
		"",
		"X.O",
		"X.O/.X./..OX",
		"X.Q/.X./..O",
		"123/456/789",
	} {
		if _, err := parsePosition(position); err == nil {
			t.Errorf("parsePosition(%q) accepted a bad position", position)
		}
	}
}
