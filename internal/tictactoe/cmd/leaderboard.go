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

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/namanyt/tictactoe/pkg/records"
)

// tictactoe leaderboard
func Leaderboard() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show every player ranked by wins",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			entries := records.LoadLeaderboard().Sorted()
			if len(entries) == 0 {
				color.Red("No games played yet!")
				return nil
			}

			color.New(color.FgGreen, color.Bold).Println("LEADERBOARD")
			fmt.Println()

			fmt.Printf("%-20s | %5s | %6s | %5s | %6s | Win Rate\n",
				"Player", "Games", "Wins", "Loss", "Draws")
			fmt.Println("---------------------+-------+--------+-------+--------+---------")

			for _, entry := range entries {
				fmt.Printf("%-20s | %5d | %6d | %5d | %6d | %.1f%%\n",
					entry.Name, entry.TotalGames, entry.Wins, entry.Losses,
					entry.Draws, entry.WinRate())
			}

			return nil
		},
	}
}
