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

// Package ai implements the tic-tac-toe engine: an exhaustive minimax
// search with depth-biased scoring and three difficulty tiers layered on
// top of the same search.
package ai

import (
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/namanyt/tictactoe/pkg/game"
)

// The engine searches from the perspective of O, the second-moving mark:
// a completed O line scores +maxScore and a completed X line -maxScore.
// Terminal scores are biased by the ply they occur at, so the search
// prefers the fastest forced win and the slowest forced loss.
const (
	maxScore = 10

	// A Bounded engine may play any move scoring within this many points
	// of the best candidate, which at this scale tolerates roughly one
	// ply of suboptimality.
	boundedTolerance = 2
)

// Candidate is a legal move paired with its minimax score.
type Candidate struct {
	Move  game.Move
	Score int
}

// Engine selects moves for a single Board. It holds a non-owning
// reference to the board and mutates it in place during search, restoring
// it before every call returns; the search never copies the board.
//
// The instrumentation counters reflect only the most recently completed
// top-level call. An Engine must not run more than one search at a time.
type Engine struct {
	board *game.Board

	difficulty Difficulty
	verbosity  int

	rng *rand.Rand

	nodes    int
	maxDepth int
}

// NewEngine returns an Engine playing on the given board. The random
// source used by the Random and Bounded tiers is seeded from the clock;
// use SetSeed for reproducible selection.
func NewEngine(board *game.Board, difficulty Difficulty, verbosity int) *Engine {
	return &Engine{
		board:      board,
		difficulty: clampDifficulty(difficulty),
		verbosity:  clampVerbosity(verbosity),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed replaces the engine's random source with one producing a fixed
// sequence, making Random and Bounded selection deterministic.
func (engine *Engine) SetSeed(seed int64) {
	engine.rng = rand.New(rand.NewSource(seed))
}

// SetDifficulty changes the engine's move-selection tier, clamping the
// value to the valid range.
func (engine *Engine) SetDifficulty(difficulty Difficulty) {
	engine.difficulty = clampDifficulty(difficulty)
}

// Difficulty returns the engine's current move-selection tier.
func (engine *Engine) Difficulty() Difficulty {
	return engine.difficulty
}

// SetVerbosity changes how much of the engine's reasoning is logged,
// clamping the value to [0, 2].
func (engine *Engine) SetVerbosity(verbosity int) {
	engine.verbosity = clampVerbosity(verbosity)
}

// Stats returns the number of nodes visited and the maximum depth reached
// by the most recent top-level call.
func (engine *Engine) Stats() (nodes, maxDepth int) {
	return engine.nodes, engine.maxDepth
}

// ResetStats clears the instrumentation counters. Every top-level call
// resets them itself before searching.
func (engine *Engine) ResetStats() {
	engine.nodes = 0
	engine.maxDepth = 0
}

// evaluate scores the board's terminal state from the engine's
// perspective. Recomputing the full line scan at every node is cheap at
// this board size.
func (engine *Engine) evaluate() int {
	switch engine.board.Result() {
	case game.WinO:
		return maxScore
	case game.WinX:
		return -maxScore
	default:
		return 0
	}
}

// minimax returns the best score achievable from the current position
// with depth-biased terminal scores: a win found at a shallower ply
// scores higher, a loss found at a deeper ply scores higher. Ties keep
// the first move in row-major order since the extremum only updates on
// strict inequality.
func (engine *Engine) minimax(depth int, maximizing bool) int {
	engine.nodes++
	if depth > engine.maxDepth {
		engine.maxDepth = depth
	}

	score := engine.evaluate()
	if score == maxScore {
		return score - depth
	}
	if score == -maxScore {
		return score + depth
	}

	moves := engine.board.LegalMoves()
	if len(moves) == 0 {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, move := range moves {
			_ = engine.board.Apply(move.Row, move.Col, game.O)
			value := engine.minimax(depth+1, false)
			_ = engine.board.Clear(move.Row, move.Col)

			if value > best {
				best = value
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range moves {
		_ = engine.board.Apply(move.Row, move.Col, game.X)
		value := engine.minimax(depth+1, true)
		_ = engine.board.Clear(move.Row, move.Col)

		if value < best {
			best = value
		}
	}
	return best
}

// scoreCandidates searches every currently legal move and returns all of
// them with their scores, in board scan order. Every tier needs the full
// candidate set, not just the best move, since Bounded and Random sample
// from it.
func (engine *Engine) scoreCandidates() []Candidate {
	engine.ResetStats()

	moves := engine.board.LegalMoves()
	candidates := make([]Candidate, 0, len(moves))

	for _, move := range moves {
		_ = engine.board.Apply(move.Row, move.Col, game.O)
		score := engine.minimax(0, false)
		_ = engine.board.Clear(move.Row, move.Col)

		candidates = append(candidates, Candidate{Move: move, Score: score})

		if engine.verbosity >= 2 {
			logrus.Debugf("engine: score for move (%d,%d) = %d", move.Row, move.Col, score)
		}
	}

	return candidates
}

// BestMove selects a move for the current position according to the
// engine's difficulty tier. It returns game.NoMove when no legal move
// exists, which is reachable only by querying a terminal board.
func (engine *Engine) BestMove() game.Move {
	candidates := engine.scoreCandidates()
	if len(candidates) == 0 {
		return game.NoMove
	}

	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	chosen := best
	switch engine.difficulty {
	case Optimal:
		// Always the first best move in row-major order.

	case Bounded:
		threshold := best.Score - boundedTolerance
		if threshold < -maxScore {
			threshold = -maxScore
		}

		pool := make([]Candidate, 0, len(candidates))
		for _, candidate := range candidates {
			if candidate.Score >= threshold {
				pool = append(pool, candidate)
			}
		}
		chosen = pool[engine.rng.Intn(len(pool))]

	default: // Random
		chosen = candidates[engine.rng.Intn(len(candidates))]
	}

	if engine.verbosity >= 1 {
		logrus.Debugf("engine: playing (%d,%d), expecting %s",
			chosen.Move.Row, chosen.Move.Col, predictionOf(chosen.Score))
	}

	return chosen.Move
}

// Explain searches every legal move and returns the full candidate list
// in board scan order, truncated to max entries when max is
// non-negative. The list is not sorted by score.
func (engine *Engine) Explain(max int) []Candidate {
	candidates := engine.scoreCandidates()
	if max >= 0 && len(candidates) > max {
		candidates = candidates[:max]
	}
	return candidates
}
