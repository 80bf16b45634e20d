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

package records

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// GameEntry is one finished match, as recorded in the history log.
type GameEntry struct {
	Player1, Player2           string
	TotalMoves                 int
	Player1Moves, Player2Moves int
	Nodes, MaxDepth            int

	// Winner is X, O, or D for a draw.
	Winner byte
}

func (entry GameEntry) line(when time.Time) string {
	return fmt.Sprintf(
		"%s | Match: %s vs %s | Moves: %d (%s: %d, %s: %d) | AI Nodes: %d | Depth: %d | Winner: %c\n",
		when.Format(time.ANSIC),
		entry.Player1, entry.Player2, entry.TotalMoves,
		entry.Player1, entry.Player1Moves, entry.Player2, entry.Player2Moves,
		entry.Nodes, entry.MaxDepth, entry.Winner,
	)
}

// Append adds the given match to the end of the history log.
func Append(entry GameEntry) error {
	TryMkdir(Directory)

	file, err := os.OpenFile(HistoryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, FilePermissions)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(entry.line(time.Now()))
	return err
}

// History returns every line of the history log, oldest first. A missing
// file yields an empty history.
func History() []string {
	file, err := os.ReadFile(HistoryFile)
	if err != nil {
		return nil
	}

	lines := strings.Split(strings.TrimRight(string(file), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

// PlayerHistory returns the history lines for matches the given player
// took part in, on either side of the board.
func PlayerHistory(name string) []string {
	asFirst := fmt.Sprintf("Match: %s vs", name)
	asSecond := fmt.Sprintf("vs %s |", name)

	var lines []string
	for _, line := range History() {
		if strings.Contains(line, asFirst) || strings.Contains(line, asSecond) {
			lines = append(lines, line)
		}
	}
	return lines
}
