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
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/namanyt/tictactoe/pkg/game"
)

// PlayerRecord is one player's lifetime score against the engine.
type PlayerRecord struct {
	Wins       int `yaml:"wins"`
	Losses     int `yaml:"losses"`
	Draws      int `yaml:"draws"`
	TotalGames int `yaml:"total-games"`
}

// WinRate returns the player's win percentage over all recorded games.
func (record PlayerRecord) WinRate() float64 {
	if record.TotalGames == 0 {
		return 0
	}
	return float64(record.Wins) * 100 / float64(record.TotalGames)
}

// Leaderboard maps usernames to their records.
type Leaderboard map[string]PlayerRecord

// LoadLeaderboard reads the leaderboard file. A missing or unreadable
// file yields an empty leaderboard, matching first-run behavior.
func LoadLeaderboard() Leaderboard {
	leaderboard := Leaderboard{}

	file, err := os.ReadFile(LeaderboardFile)
	if err != nil {
		return leaderboard
	}

	_ = yaml.Unmarshal(file, &leaderboard)
	return leaderboard
}

// Update applies a finished match's result to the given player's record.
// The result is from the board's perspective: WinX means the player won,
// WinO means the engine did.
func (leaderboard Leaderboard) Update(name string, result game.Result) {
	record := leaderboard[name]
	record.TotalGames++

	switch result {
	case game.WinX:
		record.Wins++
	case game.WinO:
		record.Losses++
	default:
		record.Draws++
	}

	leaderboard[name] = record
}

// Dump writes the leaderboard back to its file.
func (leaderboard Leaderboard) Dump() error {
	TryMkdir(Directory)

	file, err := yaml.Marshal(leaderboard)
	if err != nil {
		return err
	}

	return os.WriteFile(LeaderboardFile, file, FilePermissions)
}

// Entry is a named leaderboard record, used for display.
type Entry struct {
	Name string
	PlayerRecord
}

// Sorted returns the leaderboard's entries ordered by wins, descending,
// with ties broken by name so the table is stable.
func (leaderboard Leaderboard) Sorted() []Entry {
	entries := make([]Entry, 0, len(leaderboard))
	for name, record := range leaderboard {
		entries = append(entries, Entry{Name: name, PlayerRecord: record})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}
