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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/namanyt/tictactoe/pkg/ai"
	"github.com/namanyt/tictactoe/pkg/game"
	"github.com/namanyt/tictactoe/pkg/match"
	"github.com/namanyt/tictactoe/pkg/records"
	"github.com/namanyt/tictactoe/pkg/ui"
)

// tictactoe play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the computer",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`play starts an interactive game against one of the three
			computer opponents: Kitty (easy) plays randomly, Cop (medium)
			plays well but can be beaten, and Sera (hard) never loses.

			You play X and the computer plays O. Moves are entered as a
			row and a column in the range 0-2, separated by a space.

			Your results are recorded on the leaderboard under the name
			given with --name, which is prompted for when missing.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen := ui.NewScreen()

			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				var err error
				if name, err = screen.ReadLine("Enter your username: "); err != nil {
					return err
				}
			}
			if name == "" {
				name = "Player"
			}

			difficulty, err := difficultyFlag(cmd, "difficulty")
			if err != nil {
				return err
			}

			leaderboard := records.LoadLeaderboard()
			if record, found := leaderboard[name]; found {
				fmt.Printf("\nWelcome back, %s!\n", name)
				fmt.Printf("Your record: %d Wins, %d Losses, %d Draws (%d total games)\n",
					record.Wins, record.Losses, record.Draws, record.TotalGames)
			} else {
				fmt.Printf("\nWelcome, %s! This is your first game.\n", name)
			}

			persona := ai.Persona(difficulty)
			fmt.Printf("\n%s says: %q\n", persona, ai.Quote(difficulty, ai.Intro))

			engineStarts, _ := cmd.Flags().GetBool("engine-starts")
			if !cmd.Flags().Changed("engine-starts") {
				choice, err := screen.ReadLine("\nChoose who starts: (1) You (X)  (2) AI (O): ")
				if err != nil {
					return err
				}
				engineStarts = choice == "2"
			}

			verbosity, _ := cmd.Flags().GetInt("verbosity")

			board := game.NewBoard()
			engine := ai.NewEngine(board, difficulty, verbosity)
			if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
				engine.SetSeed(seed)
			}

			human := match.NewHuman(name, game.X, screen)
			computer := match.NewComputer(persona, game.O, engine)

			players := [2]match.Player{human, computer}
			if engineStarts {
				players = [2]match.Player{computer, human}
			}

			_, err = match.Run(&match.Config{
				Board:   board,
				Players: players,
				Analyst: engine,
				Screen:  screen,
				Mode:    match.VsEngine,
				Title:   fmt.Sprintf("%s vs %s", name, persona),
				Persona: difficulty,

				Spin:           true,
				Interactive:    true,
				LeaderboardFor: name,
			})
			return err
		},
	}

	cmd.Flags().StringP("name", "n", "", "Username to record the game under")
	cmd.Flags().StringP("difficulty", "d", "hard", "Opponent difficulty (easy, medium, hard)")
	cmd.Flags().Int("verbosity", 2, "Engine verbosity (0=silent, 1=brief, 2=detailed)")
	cmd.Flags().Bool("engine-starts", false, "Let the computer make the first move")
	cmd.Flags().Int64("seed", 0, "Random seed for the engine (0 seeds from the clock)")

	return cmd
}

func difficultyFlag(cmd *cobra.Command, name string) (ai.Difficulty, error) {
	value, _ := cmd.Flags().GetString(name)
	return ai.ParseDifficulty(value)
}
