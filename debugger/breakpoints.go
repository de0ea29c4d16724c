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

// support for breakpoints on program addresses. a breakpoint stops the
// RUN command when the program counter reaches the watched address.

import (
	"github.com/wrenmcu/wren32/curated"
	"github.com/wrenmcu/wren32/debugger/terminal"
)

// BreakpointError is returned for misuse of the BREAK and DROP commands.
const BreakpointError = "breakpoint: %v"

type breakpoints struct {
	dbg    *Debugger
	breaks []uint32
}

func newBreakpoints(dbg *Debugger) *breakpoints {
	return &breakpoints{
		dbg:    dbg,
		breaks: make([]uint32, 0, 10),
	}
}

// add a breakpoint on the given address. adding an address twice is an
// error.
func (bp *breakpoints) add(addr uint32) error {
	for _, b := range bp.breaks {
		if b == addr {
			return curated.Errorf(BreakpointError,
				curated.Errorf("already exists (%08x)", addr))
		}
	}
	bp.breaks = append(bp.breaks, addr)
	return nil
}

// drop the breakpoint on the given address.
func (bp *breakpoints) drop(addr uint32) error {
	for i, b := range bp.breaks {
		if b == addr {
			bp.breaks = append(bp.breaks[:i], bp.breaks[i+1:]...)
			return nil
		}
	}
	return curated.Errorf(BreakpointError,
		curated.Errorf("not found (%08x)", addr))
}

// clear all breakpoints.
func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
}

// check returns true if the address is being watched.
func (bp *breakpoints) check(addr uint32) bool {
	for _, b := range bp.breaks {
		if b == addr {
			return true
		}
	}
	return false
}

// list the current breakpoints to the terminal.
func (bp *breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
		return
	}
	for i, b := range bp.breaks {
		bp.dbg.printLine(terminal.StyleFeedback, "%2d: %08x", i, b)
	}
}
