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

// Package records persists player leaderboard entries and the match
// history log under the user's data directory.
package records

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0644

var (
	// Directory is where all game data lives. Tests point it at a
	// temporary directory.
	Directory = filepath.Join(xdg.DataHome, "tictactoe")

	// LeaderboardFile tracks per-player win/loss/draw records.
	LeaderboardFile = filepath.Join(Directory, "leaderboard.yaml")

	// HistoryFile is the append-only log of finished matches.
	HistoryFile = filepath.Join(Directory, "games.log")
)

// TryMkdir creates the given directory if it does not exist yet.
func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.MkdirAll(dir, 0755)
	}
}
