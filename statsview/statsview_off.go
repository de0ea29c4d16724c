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

//go:build !statsview
// +build !statsview

// Package statsview serves runtime statistics over HTTP while a long
// simulation runs. The server is only compiled in when the statsview
// build constraint is given; without it Launch is a stub and Available
// returns false.
package statsview

import (
	"io"
)

// DefaultAddress is the listen address used when none is given on the
// command line.
const DefaultAddress = ""

// Launch is a stub. The binary was not built with the statsview build
// constraint.
func Launch(output io.Writer, addr string) {
	output.Write([]byte("no stats server in this build (rebuild with the statsview constraint)\n"))
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
