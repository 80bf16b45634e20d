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

	"github.com/spf13/cobra"

	"github.com/namanyt/tictactoe/pkg/ai"
	"github.com/namanyt/tictactoe/pkg/game"
	"github.com/namanyt/tictactoe/pkg/match"
	"github.com/namanyt/tictactoe/pkg/ui"
)

// tictactoe pvp [player1 [player2]]
func PvP() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pvp [player1 [player2]]",
		Short: "Two players on one terminal, with engine analysis",
		Args:  cobra.MaximumNArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			screen := ui.NewScreen()

			names := [2]string{"Player 1", "Player 2"}
			for i := range names {
				if len(args) > i {
					names[i] = args[i]
					continue
				}

				name, err := screen.ReadLine(fmt.Sprintf("Player %d username: ", i+1))
				if err != nil {
					return err
				}
				if name != "" {
					names[i] = name
				}
			}

			difficulty, err := difficultyFlag(cmd, "analysis")
			if err != nil {
				return err
			}

			fmt.Printf("\n%s will analyze each move...\n\n", ai.Persona(difficulty))

			board := game.NewBoard()
			analyst := ai.NewEngine(board, difficulty, 2)

			_, err = match.Run(&match.Config{
				Board: board,
				Players: [2]match.Player{
					match.NewHuman(names[0], game.X, screen),
					match.NewHuman(names[1], game.O, screen),
				},
				Analyst: analyst,
				Screen:  screen,
				Mode:    match.PvP,
				Title:   fmt.Sprintf("%s vs %s", names[0], names[1]),
				Persona: difficulty,

				Interactive: true,
			})
			return err
		},
	}

	cmd.Flags().StringP("analysis", "a", "hard", "Difficulty of the analysis engine (easy, medium, hard)")

	return cmd
}
