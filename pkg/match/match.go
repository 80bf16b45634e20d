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

// Package match orchestrates full games between two players, humans or
// engines, rendering each turn and recording the outcome.
package match

import (
	"errors"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"

	"github.com/namanyt/tictactoe/pkg/ai"
	"github.com/namanyt/tictactoe/pkg/game"
	"github.com/namanyt/tictactoe/pkg/records"
	"github.com/namanyt/tictactoe/pkg/ui"
)

const spin = 31

// Mode selects a match's flavor, which decides the result banners and
// whose persona comments on the outcome.
type Mode int

const (
	VsEngine Mode = iota // human (X) against the engine (O)
	PvP                  // two humans, engine analysis on the side
	Exhibition           // engine against engine
)

// Config describes one match.
type Config struct {
	// Board is the board the match is played on. Any engine players and
	// the analyst must be bound to this same board: they mutate it in
	// place during search and restore it before the loop looks again.
	Board *game.Board

	// Players[0] moves first. Marks are fixed per player, not per slot:
	// who starts and who plays X are independent choices.
	Players [2]Player

	// Analyst scores every legal move between turns for the analysis
	// column. Nil disables analysis.
	Analyst *ai.Engine

	Screen *ui.Screen
	Mode   Mode
	Title  string

	// Persona is the difficulty tier whose character fronts the match's
	// engine (or, for PvP, its analyst).
	Persona ai.Difficulty

	Delay       time.Duration // pause after each engine move
	Spin        bool          // show a spinner while an engine thinks
	Interactive bool          // wait for Enter on the game-over screen

	// LeaderboardFor names the player whose record the result updates.
	// Empty skips the leaderboard.
	LeaderboardFor string
}

// Run plays the configured match to completion and returns its history
// entry. The result is also appended to the history log, and the
// leaderboard is updated when configured.
func Run(config *Config) (records.GameEntry, error) {
	board := config.Board
	players := config.Players

	entry := records.GameEntry{
		Player1: players[0].Name(),
		Player2: players[1].Name(),
		Winner:  'D',
	}

	state := ui.State{
		Title:       config.Title,
		PersonaName: ai.Persona(config.Persona),
		Difficulty:  config.Persona,
		Thought:     ai.Quote(config.Persona, ai.Thinking),
	}

	turn := 0
	var result game.Result

	for {
		if entry.TotalMoves > 0 && config.Analyst != nil {
			state.Candidates = config.Analyst.Explain(9)
			state.Nodes, state.MaxDepth = config.Analyst.Stats()
		}

		human, isHuman := players[turn].(*Human)
		if isHuman {
			state.Prompt = fmt.Sprintf("%s's turn (%s) - Enter move (row col): ",
				human.Name(), human.Mark())
		}

		config.Screen.Draw(board, &state, isHuman)
		state.Status = ""

		result = board.Result()
		if result.Terminal() {
			break
		}

		move, err := config.nextMove(players[turn], board)
		switch {
		case err == nil:

		case errors.Is(err, ui.ErrBadInput):
			state.Status = "Invalid input."
			continue

		default:
			var invalid *InvalidMoveError
			if errors.As(err, &invalid) {
				state.Status = invalid.Error()
				continue
			}
			return entry, err
		}

		if err := board.Apply(move.Row, move.Col, players[turn].Mark()); err != nil {
			return entry, err
		}

		if turn == 0 {
			entry.Player1Moves++
		} else {
			entry.Player2Moves++
		}
		entry.TotalMoves++

		if computer, ok := players[turn].(*Computer); ok {
			state.Comment = fmt.Sprintf("Placed at (%d, %d)", move.Row, move.Col)
			entry.Nodes, entry.MaxDepth = computer.Engine().Stats()

			if config.Delay > 0 {
				time.Sleep(config.Delay)
			}
		}

		turn ^= 1
	}

	entry.Winner = result.Letter()
	config.finish(board, &state, result)

	if err := records.Append(entry); err != nil {
		logrus.Errorf("could not save game history: %s", err)
	}

	if config.LeaderboardFor != "" {
		leaderboard := records.LoadLeaderboard()
		leaderboard.Update(config.LeaderboardFor, result)
		if err := leaderboard.Dump(); err != nil {
			logrus.Errorf("could not save leaderboard: %s", err)
		}
	}

	return entry, nil
}

// nextMove asks the player for a move, spinning while an engine thinks.
func (config *Config) nextMove(player Player, board *game.Board) (game.Move, error) {
	_, isComputer := player.(*Computer)
	if !isComputer || !config.Spin {
		return player.NextMove(board)
	}

	s := spinner.New(spinner.CharSets[spin], 100*time.Millisecond)
	s.Start()
	move, err := player.NextMove(board)
	s.Stop()

	return move, err
}

// finish draws the game-over screen with the banner and persona comment
// appropriate for the match's mode.
func (config *Config) finish(board *game.Board, state *ui.State, result game.Result) {
	var banner string

	switch config.Mode {
	case VsEngine:
		switch result {
		case game.WinX:
			banner = "YOU WIN!"
			state.Comment = ai.Quote(config.Persona, ai.Lose)
		case game.WinO:
			banner = "AI WINS!"
			state.Comment = ai.Quote(config.Persona, ai.Win)
		default:
			banner = "IT'S A DRAW!"
			state.Comment = ai.Quote(config.Persona, ai.Tie)
		}

	case PvP:
		switch result {
		case game.WinX:
			banner = "PLAYER X WINS!"
		case game.WinO:
			banner = "PLAYER O WINS!"
		default:
			banner = "IT'S A DRAW!"
		}
		state.Comment = ""

	default: // Exhibition
		switch result {
		case game.WinX:
			banner = "AI X WINS!"
		case game.WinO:
			banner = "AI O WINS!"
		default:
			banner = "IT'S A DRAW!"
		}
		state.Comment = ""
	}

	config.Screen.DrawGameOver(board, state, banner)

	if config.Interactive {
		config.Screen.WaitForEnter()
	}
}
