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
	"time"

	"github.com/spf13/cobra"

	"github.com/namanyt/tictactoe/pkg/ai"
	"github.com/namanyt/tictactoe/pkg/game"
	"github.com/namanyt/tictactoe/pkg/match"
	"github.com/namanyt/tictactoe/pkg/ui"
)

// tictactoe watch
func Watch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch two computer opponents play each other",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := difficultyFlag(cmd, "first")
			if err != nil {
				return err
			}

			second, err := difficultyFlag(cmd, "second")
			if err != nil {
				return err
			}

			delay, _ := cmd.Flags().GetDuration("delay")
			seed, _ := cmd.Flags().GetInt64("seed")

			board := game.NewBoard()

			engine1 := ai.NewEngine(board, first, 2)
			engine2 := ai.NewEngine(board, second, 2)
			if seed != 0 {
				engine1.SetSeed(seed)
				engine2.SetSeed(seed + 1)
			}

			name1 := ai.Persona(first) + " (X)"
			name2 := ai.Persona(second) + " (O)"
			fmt.Printf("\n%s vs %s - Starting...\n\n", name1, name2)
			time.Sleep(time.Second)

			_, err = match.Run(&match.Config{
				Board: board,
				Players: [2]match.Player{
					match.NewComputer(name1, game.X, engine1),
					match.NewComputer(name2, game.O, engine2),
				},
				Screen:  ui.NewScreen(),
				Mode:    match.Exhibition,
				Title:   fmt.Sprintf("%s vs %s", name1, name2),
				Persona: second,

				Delay:       delay,
				Interactive: true,
			})
			return err
		},
	}

	cmd.Flags().StringP("first", "1", "hard", "Difficulty of the first engine, playing X")
	cmd.Flags().StringP("second", "2", "hard", "Difficulty of the second engine, playing O")
	cmd.Flags().Duration("delay", 2*time.Second, "Pause between moves")
	cmd.Flags().Int64("seed", 0, "Random seed for the engines (0 seeds from the clock)")

	return cmd
}
