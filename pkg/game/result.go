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

package game

// Result represents the terminal classification of a Board. It is always
// derived from the board's squares and never stored.
type Result int

const (
	Ongoing Result = iota
	WinX
	WinO
	Draw
)

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case WinX:
		return "1-0"
	case WinO:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Terminal reports whether the game is over.
func (result Result) Terminal() bool {
	return result != Ongoing
}

// Letter returns the single-letter code used by the game history log:
// X, O, or D for a draw.
func (result Result) Letter() byte {
	switch result {
	case WinX:
		return 'X'
	case WinO:
		return 'O'
	default:
		return 'D'
	}
}
