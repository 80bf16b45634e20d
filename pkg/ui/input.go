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

package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/namanyt/tictactoe/pkg/game"
)

// ErrBadInput is returned when a line cannot be parsed as a move. The
// caller re-prompts; only read failures abort the game.
var ErrBadInput = errors.New("ui: expected move as \"row col\"")

// ReadMove reads one line of input and parses it as a board coordinate
// pair. The coordinates are not range-checked here.
func (screen *Screen) ReadMove() (game.Move, error) {
	line, err := screen.reader.ReadString('\n')
	if err != nil {
		return game.NoMove, err
	}

	var move game.Move
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "%d %d", &move.Row, &move.Col); err != nil {
		return game.NoMove, ErrBadInput
	}

	return move, nil
}

// ReadLine prints the given prompt and reads one trimmed line of input.
func (screen *Screen) ReadLine(prompt string) (string, error) {
	fmt.Fprint(screen.output, prompt)

	line, err := screen.reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// WaitForEnter blocks until the player presses Enter.
func (screen *Screen) WaitForEnter() {
	_, _ = screen.reader.ReadString('\n')
}
