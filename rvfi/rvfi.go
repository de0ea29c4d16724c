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

// Package rvfi collects retirement records and checks the trace level
// invariants an external conformance checker would: order is strictly
// monotonic, the PC chain is unbroken except across traps, x0 is never
// a recorded write destination, and nothing retires after a halt.
package rvfi

import (
	"github.com/wrenmcu/wren32/curated"
	"github.com/wrenmcu/wren32/hardware/cpu"
)

// TraceError is returned when a retirement record violates a trace
// invariant.
const TraceError = "rvfi: %v"

// Trace accumulates retirement records.
type Trace struct {
	Records []cpu.Result

	// Limit is the maximum number of records retained. zero means no
	// limit.
	Limit int
}

// Collect validates and appends a retirement record. Suitable for use as
// a CPU OnRetire callback.
func (t *Trace) Collect(r cpu.Result) error {
	if len(t.Records) > 0 {
		prev := t.Records[len(t.Records)-1]

		if prev.Halt {
			return curated.Errorf(TraceError,
				curated.Errorf("order %d follows a halt", r.Order))
		}

		if r.Order != prev.Order+1 {
			return curated.Errorf(TraceError,
				curated.Errorf("order %d follows %d", r.Order, prev.Order))
		}

		// a trap breaks the PC chain; anything else must continue it
		if !prev.Trap && prev.NextPC != r.PC {
			return curated.Errorf(TraceError,
				curated.Errorf("pc %08x follows next-pc %08x", r.PC, prev.NextPC))
		}
	}

	if r.RdWritten && r.Rd == 0 {
		return curated.Errorf(TraceError, "write to x0 recorded")
	}

	t.Records = append(t.Records, r)
	if t.Limit > 0 && len(t.Records) > t.Limit {
		t.Records = t.Records[len(t.Records)-t.Limit:]
	}

	return nil
}

// Last returns the most recent record and false when the trace is empty.
func (t *Trace) Last() (cpu.Result, bool) {
	if len(t.Records) == 0 {
		return cpu.Result{}, false
	}
	return t.Records[len(t.Records)-1], true
}
