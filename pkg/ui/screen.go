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

// Package ui renders the interactive game screen. The layout is two
// columns: the board and a position guide on the left, the engine's
// analysis on the right, with the input prompt on the bottom line.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/namanyt/tictactoe/pkg/ai"
	"github.com/namanyt/tictactoe/pkg/game"
)

// State carries everything the analysis column displays alongside the
// board.
type State struct {
	Title string

	PersonaName string
	Difficulty  ai.Difficulty

	Thought string // what the engine is "thinking" right now
	Comment string // the engine's last remark
	Status  string // transient message, e.g. after an invalid move
	Prompt  string // input prompt override for the current turn

	Candidates []ai.Candidate
	Nodes      int
	MaxDepth   int
}

// Screen draws game states to a terminal and reads player input from it.
type Screen struct {
	output *termenv.Output
	reader *bufio.Reader

	width, height int
}

// NewScreen returns a Screen attached to the process's terminal.
func NewScreen() *Screen {
	screen := New(os.Stdout, os.Stdin)

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		screen.width, screen.height = width, height
	}

	return screen
}

// New returns a Screen drawing to w and reading from r, with the default
// 80x24 geometry. Used directly by tests.
func New(w io.Writer, r io.Reader) *Screen {
	return &Screen{
		output: termenv.NewOutput(w),
		reader: bufio.NewReader(r),
		width:  80,
		height: 24,
	}
}

// Clear wipes the screen and homes the cursor.
func (screen *Screen) Clear() {
	screen.output.ClearScreen()
}

// Draw renders the full game screen: header, board column, analysis
// column, and the bottom prompt line.
func (screen *Screen) Draw(board *game.Board, state *State, playerTurn bool) {
	screen.Clear()

	screen.at(1, 1)
	fmt.Fprint(screen.output, screen.output.String("TIC-TAC-TOE: "+state.Title).Bold())

	screen.drawBoardColumn(board, 2)
	screen.drawAnalysisColumn(state, screen.width/2+2)

	screen.at(screen.height-2, 1)
	if state.Status != "" {
		fmt.Fprint(screen.output, screen.output.String(state.Status).Foreground(termenv.ANSIRed))
		screen.at(screen.height-1, 1)
	}
	if playerTurn {
		prompt := state.Prompt
		if prompt == "" {
			prompt = "YOUR TURN - Enter move (row col): "
		}
		fmt.Fprint(screen.output, prompt)
	} else {
		fmt.Fprint(screen.output, state.PersonaName+" is thinking...")
	}
}

// DrawGameOver renders the final board together with the result banner
// and the engine's parting remark.
func (screen *Screen) DrawGameOver(board *game.Board, state *State, banner string) {
	screen.Clear()

	screen.at(1, 1)
	fmt.Fprint(screen.output, screen.output.String("GAME OVER").Bold())

	row := 3
	for boardRow := 0; boardRow < 3; boardRow++ {
		screen.at(row, 2)
		screen.drawBoardRow(board, boardRow)
		row++

		if boardRow < 2 {
			screen.at(row, 2)
			fmt.Fprint(screen.output, "--+---+--")
			row++
		}
	}

	row += 2
	screen.at(row, 2)
	fmt.Fprint(screen.output, screen.output.String(banner).Bold().Foreground(termenv.ANSIYellow))

	if state.Comment != "" {
		row += 2
		screen.at(row, 2)
		fmt.Fprintf(screen.output, "%s says: %q", state.PersonaName, state.Comment)
	}

	screen.at(screen.height-2, 1)
	fmt.Fprint(screen.output, "Press Enter to continue...")
}

func (screen *Screen) drawBoardColumn(board *game.Board, startCol int) {
	row := 2

	screen.at(row, startCol)
	fmt.Fprint(screen.output, "GAME BOARD")
	row += 2

	for boardRow := 0; boardRow < 3; boardRow++ {
		screen.at(row, startCol)
		screen.drawBoardRow(board, boardRow)
		row++

		if boardRow < 2 {
			screen.at(row, startCol)
			fmt.Fprint(screen.output, "--+---+--")
			row++
		}
	}

	row++
	screen.at(row, startCol)
	fmt.Fprint(screen.output, "Positions:")
	for boardRow := 0; boardRow < 3; boardRow++ {
		row++
		screen.at(row, startCol)
		fmt.Fprintf(screen.output, "(%d,0) (%d,1) (%d,2)", boardRow, boardRow, boardRow)
	}
}

func (screen *Screen) drawBoardRow(board *game.Board, boardRow int) {
	for col := 0; col < 3; col++ {
		if col > 0 {
			fmt.Fprint(screen.output, " | ")
		}
		fmt.Fprint(screen.output, screen.markStyle(board.Cell(boardRow, col)))
	}
}

func (screen *Screen) markStyle(cell game.Cell) termenv.Style {
	style := screen.output.String(cell.String())
	switch cell {
	case game.X:
		style = style.Foreground(termenv.ANSICyan)
	case game.O:
		style = style.Foreground(termenv.ANSIMagenta)
	}
	return style
}

func (screen *Screen) drawAnalysisColumn(state *State, startCol int) {
	row := 2

	screen.at(row, startCol)
	fmt.Fprintf(screen.output, "%s (%s)", state.PersonaName, state.Difficulty)
	row += 2

	if state.Thought != "" {
		screen.at(row, startCol)
		fmt.Fprintf(screen.output, "Thinking: %.50s", state.Thought)
		row++
	}

	row++
	screen.at(row, startCol)
	fmt.Fprint(screen.output, "Top Moves:")
	row++
	for i, candidate := range state.Candidates {
		if i >= 4 {
			break
		}
		screen.at(row, startCol)
		fmt.Fprintf(screen.output, "  (%d,%d) score:%d",
			candidate.Move.Row, candidate.Move.Col, candidate.Score)
		row++
	}

	row++
	if state.Comment != "" {
		screen.at(row, startCol)
		fmt.Fprintf(screen.output, "Comment: %.50s", state.Comment)
		row++
	}

	row++
	screen.at(row, startCol)
	fmt.Fprintf(screen.output, "Nodes: %d", state.Nodes)
	row++
	screen.at(row, startCol)
	fmt.Fprintf(screen.output, "Depth: %d", state.MaxDepth)
}

func (screen *Screen) at(row, col int) {
	screen.output.MoveCursor(row, col)
}
