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

package match

import (
	"fmt"

	"github.com/namanyt/tictactoe/pkg/ai"
	"github.com/namanyt/tictactoe/pkg/game"
	"github.com/namanyt/tictactoe/pkg/ui"
)

// Player produces moves for one side of a match.
type Player interface {
	Name() string
	Mark() game.Cell
	NextMove(board *game.Board) (game.Move, error)
}

// InvalidMoveError is returned by a Human whose input addressed an
// occupied or out-of-range square. The match loop re-prompts on it
// instead of aborting.
type InvalidMoveError struct {
	Move game.Move
}

func (err *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move (row: %d, col: %d), try again", err.Move.Row, err.Move.Col)
}

// Human reads moves from the terminal.
type Human struct {
	name   string
	mark   game.Cell
	screen *ui.Screen
}

// NewHuman returns a Player that reads its moves from the given screen.
func NewHuman(name string, mark game.Cell, screen *ui.Screen) *Human {
	return &Human{name: name, mark: mark, screen: screen}
}

func (human *Human) Name() string    { return human.name }
func (human *Human) Mark() game.Cell { return human.mark }

// NextMove reads one move and validates it against the board. Occupancy
// is checked here since Board.Apply overwrites unconditionally.
func (human *Human) NextMove(board *game.Board) (game.Move, error) {
	move, err := human.screen.ReadMove()
	if err != nil {
		return game.NoMove, err
	}

	if move.Row < 0 || move.Row > 2 || move.Col < 0 || move.Col > 2 ||
		board.Cell(move.Row, move.Col) != game.Empty {
		return game.NoMove, &InvalidMoveError{Move: move}
	}

	return move, nil
}

// Computer plays moves chosen by a search engine.
type Computer struct {
	name   string
	mark   game.Cell
	engine *ai.Engine
}

// NewComputer returns a Player backed by the given engine. The engine
// must be bound to the board the match is played on.
func NewComputer(name string, mark game.Cell, engine *ai.Engine) *Computer {
	return &Computer{name: name, mark: mark, engine: engine}
}

func (computer *Computer) Name() string       { return computer.name }
func (computer *Computer) Mark() game.Cell    { return computer.mark }
func (computer *Computer) Engine() *ai.Engine { return computer.engine }

func (computer *Computer) NextMove(board *game.Board) (game.Move, error) {
	move := computer.engine.BestMove()
	if move.IsNone() {
		// Selection on a terminal board; the match loop checks the
		// result before every turn, so reaching this is a bug.
		return game.NoMove, fmt.Errorf("match: %s has no legal moves", computer.name)
	}
	return move, nil
}
