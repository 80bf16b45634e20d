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
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/namanyt/tictactoe/pkg/ai"
	"github.com/namanyt/tictactoe/pkg/game"
)

// tictactoe analyze position
func Analyze() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze position",
		Short: "Score every move of a position with the engine",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`analyze runs the full search on a given position and prints
			the minimax score of every legal move, together with the
			engine's verdict on the game and its search statistics.

			The position is given row by row, with X and O for the marks
			and a dot or dash for an empty square. Rows may be separated
			by slashes for readability:

			    tictactoe analyze XO-/-X-/--O

			Scores are from O's point of view: positive means O wins with
			the move, negative means X wins against it, zero is a draw.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := parsePosition(args[0])
			if err != nil {
				return err
			}

			max, _ := cmd.Flags().GetInt("max")
			engine := ai.NewEngine(board, ai.Optimal, 0)

			candidates := engine.Explain(max)
			nodes, maxDepth := engine.Stats()
			prediction := engine.Predict()

			header := color.New(color.FgGreen, color.Bold)
			header.Println("Candidate Moves:")

			if len(candidates) == 0 {
				fmt.Println("  (none - the position is terminal)")
			}
			for _, candidate := range candidates {
				fmt.Printf("  (%d,%d) score: %+d\n",
					candidate.Move.Row, candidate.Move.Col, candidate.Score)
			}

			fmt.Println()
			fmt.Printf("Prediction: %s\n", color.YellowString(prediction.String()))
			fmt.Printf("Nodes: %d, Max Depth: %d\n", nodes, maxDepth)

			return nil
		},
	}

	cmd.Flags().Int("max", -1, "Maximum number of candidates to print (-1 for all)")

	return cmd
}

// parsePosition builds a board from its row-by-row text form. Slashes
// and whitespace are ignored; the remaining runes must be exactly nine
// marks or empties.
func parsePosition(position string) (*game.Board, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', ' ', '\t':
			return -1
		default:
			return r
		}
	}, position)

	if len(cleaned) != 9 {
		return nil, fmt.Errorf("position %q has %d squares, want 9", position, len(cleaned))
	}

	board := game.NewBoard()
	for i, r := range cleaned {
		var mark game.Cell

		switch r {
		case 'X', 'x':
			mark = game.X
		case 'O', 'o':
			mark = game.O
		case '.', '-', '_':
			continue
		default:
			return nil, fmt.Errorf("position has invalid square %q", r)
		}

		if err := board.Apply(i/3, i%3, mark); err != nil {
			return nil, err
		}
	}

	return board, nil
}
