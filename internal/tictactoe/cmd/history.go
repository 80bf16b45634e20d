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

// tictactoe history
func History() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the log of finished games",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			player, _ := cmd.Flags().GetString("player")

			var lines []string
			if player != "" {
				lines = records.PlayerHistory(player)
			} else {
				lines = records.History()
			}

			if len(lines) == 0 {
				if player != "" {
					color.Red("No games found for player: %s", player)
				} else {
					color.Red("No game statistics available yet!")
				}
				return nil
			}

			title := "GAME STATISTICS"
			if player != "" {
				title = "STATISTICS FOR " + player
			}
			color.New(color.FgGreen, color.Bold).Println(title)
			fmt.Println()

			for i, line := range lines {
				fmt.Printf("Game %d: %s\n", i+1, line)
			}

			return nil
		},
	}

	cmd.Flags().StringP("player", "p", "", "Only show games this player took part in")

	return cmd
}
