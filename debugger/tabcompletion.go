// This file is part of Wren32.
//
// Wren32 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wren32 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wren32.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"sort"
	"strings"
)

// tabCompletion implements the terminal.TabCompletion interface for the
// debugger's command set. repeated completion of the same input cycles
// through the possible matches.
type tabCompletion struct {
	options []string

	matches []string
	match   int

	// the string we last returned. used to detect a repeated completion
	// request.
	lastGuess string
}

func newTabCompletion() *tabCompletion {
	tc := &tabCompletion{
		options: make([]string, 0, len(commandHelp)),
	}
	for c := range commandHelp {
		tc.options = append(tc.options, c)
	}
	sort.Strings(tc.options)
	return tc
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	if input == tc.lastGuess && len(tc.matches) > 0 {
		// cycle through the match list
		tc.match++
		if tc.match >= len(tc.matches) {
			tc.match = 0
		}
	} else {
		tc.Reset()

		// the word being completed is the final word of the input
		p := strings.Fields(input)
		if len(p) == 0 {
			return input
		}
		w := strings.ToUpper(p[len(p)-1])

		for _, opt := range tc.options {
			if strings.HasPrefix(opt, w) {
				tc.matches = append(tc.matches, opt)
			}
		}
		if len(tc.matches) == 0 {
			return input
		}
	}

	p := strings.Fields(input)
	p[len(p)-1] = tc.matches[tc.match]
	tc.lastGuess = strings.Join(p, " ") + " "

	return tc.lastGuess
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.lastGuess = ""
}
