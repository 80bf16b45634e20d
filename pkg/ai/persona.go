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

// Occasion selects which of a persona's lines to deliver.
type Occasion int

const (
	Intro Occasion = iota
	Win            // the engine won
	Lose           // the engine lost
	Tie
	Thinking
)

// Persona returns the name of the opponent character attached to the
// given difficulty tier.
func Persona(difficulty Difficulty) string {
	switch difficulty {
	case Random:
		return "Kitty"
	case Bounded:
		return "Cop"
	case Optimal:
		return "Sera"
	default:
		return "Unknown"
	}
}

var kittyQuotes = [5]string{
	"Meow~ Let's play! I'm still learning...",
	"Yay! I won! *purrs happily*",
	"Aww... you beat me! Good game~",
	"A tie? That's paw-some!",
	"Hmm... let me think... *paw on chin*",
}

var copQuotes = [5]string{
	"You have the right to make a move. I'll make mine.",
	"Justice served. Better luck next time, citizen.",
	"Hmph. Not bad. You win this round.",
	"A draw. I respect that. Fair play.",
	"Analyzing the situation... *adjusts sunglasses*",
}

var seraQuotes = [5]string{
	"Prepare yourself. I don't make mistakes.",
	"Predictable. Victory was inevitable.",
	"Impossible... You actually defeated me?",
	"A draw. Acceptable, but barely.",
	"Calculating optimal move... Child's play.",
}

// Quote returns the persona's line for the given occasion. Out-of-range
// occasions fall back to the introduction line.
func Quote(difficulty Difficulty, occasion Occasion) string {
	if occasion < Intro || occasion > Thinking {
		occasion = Intro
	}

	switch difficulty {
	case Random:
		return kittyQuotes[occasion]
	case Bounded:
		return copQuotes[occasion]
	case Optimal:
		return seraQuotes[occasion]
	default:
		return "..."
	}
}
