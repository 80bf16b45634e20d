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

// Prediction is the engine's verdict on the current position assuming
// optimal play from both sides.
type Prediction int

const (
	OWins Prediction = +1 // the maximizing mark wins
	Drawn Prediction = 0
	XWins Prediction = -1 // the minimizing mark wins
)

// String returns a string representation of the given Prediction.
func (prediction Prediction) String() string {
	switch prediction {
	case OWins:
		return "O wins"
	case XWins:
		return "X wins"
	default:
		return "draw"
	}
}

func predictionOf(score int) Prediction {
	switch {
	case score > 0:
		return OWins
	case score < 0:
		return XWins
	default:
		return Drawn
	}
}

// Predict reports what optimal play yields from the current position. The
// verdict comes from the sign of the best candidate score and is
// independent of the engine's difficulty tier; no randomness is applied.
// A terminal board predicts a draw.
func (engine *Engine) Predict() Prediction {
	candidates := engine.scoreCandidates()
	if len(candidates) == 0 {
		return Drawn
	}

	best := candidates[0].Score
	for _, candidate := range candidates[1:] {
		if candidate.Score > best {
			best = candidate.Score
		}
	}

	return predictionOf(best)
}
