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
	"fmt"
	"strings"
)

// Difficulty selects the engine's move-selection policy. All three tiers
// run the same full-width search; they differ only in which of the scored
// candidates is played.
type Difficulty int

const (
	Random  Difficulty = iota // uniform pick over all legal moves
	Bounded                   // uniform pick over near-optimal moves
	Optimal                   // deterministic perfect play
)

// String returns the user-facing name of the given Difficulty.
func (difficulty Difficulty) String() string {
	switch difficulty {
	case Random:
		return "easy"
	case Bounded:
		return "medium"
	case Optimal:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a user-supplied difficulty name or level
// number into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "0":
		return Random, nil
	case "medium", "1":
		return Bounded, nil
	case "hard", "2":
		return Optimal, nil
	default:
		return Optimal, fmt.Errorf("ai: unknown difficulty %q", s)
	}
}

func clampDifficulty(difficulty Difficulty) Difficulty {
	if difficulty < Random {
		return Random
	}
	if difficulty > Optimal {
		return Optimal
	}
	return difficulty
}

func clampVerbosity(verbosity int) int {
	if verbosity < 0 {
		return 0
	}
	if verbosity > 2 {
		return 2
	}
	return verbosity
}
