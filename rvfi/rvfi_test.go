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

package rvfi_test

import (
	"testing"

	"github.com/wrenmcu/wren32/hardware/cpu"
	"github.com/wrenmcu/wren32/rvfi"
	"github.com/wrenmcu/wren32/test"
)

func TestCollect(t *testing.T) {
	tr := &rvfi.Trace{}

	err := tr.Collect(cpu.Result{Order: 0, PC: 0x00, NextPC: 0x04})
	test.ExpectSuccess(t, err)

	err = tr.Collect(cpu.Result{Order: 1, PC: 0x04, NextPC: 0x08})
	test.ExpectSuccess(t, err)
	test.Equate(t, len(tr.Records), 2)

	last, ok := tr.Last()
	test.ExpectSuccess(t, ok)
	test.Equate(t, last.Order, 1)
}

func TestOrderGap(t *testing.T) {
	tr := &rvfi.Trace{}

	err := tr.Collect(cpu.Result{Order: 0, PC: 0x00, NextPC: 0x04})
	test.ExpectSuccess(t, err)

	// order 2 follows order 0
	err = tr.Collect(cpu.Result{Order: 2, PC: 0x04, NextPC: 0x08})
	test.ExpectFailure(t, err)
}

func TestBrokenPCChain(t *testing.T) {
	tr := &rvfi.Trace{}

	err := tr.Collect(cpu.Result{Order: 0, PC: 0x00, NextPC: 0x04})
	test.ExpectSuccess(t, err)

	err = tr.Collect(cpu.Result{Order: 1, PC: 0x10, NextPC: 0x14})
	test.ExpectFailure(t, err)
}

func TestTrapBreaksPCChain(t *testing.T) {
	tr := &rvfi.Trace{}

	err := tr.Collect(cpu.Result{Order: 0, PC: 0x00, NextPC: 0x04, Trap: true})
	test.ExpectSuccess(t, err)

	// a discontinuity is allowed immediately after a trap
	err = tr.Collect(cpu.Result{Order: 1, PC: 0xf0, NextPC: 0xf4})
	test.ExpectSuccess(t, err)
}

func TestWriteToX0(t *testing.T) {
	tr := &rvfi.Trace{}

	err := tr.Collect(cpu.Result{Order: 0, PC: 0x00, NextPC: 0x04, Rd: 0, RdWritten: true})
	test.ExpectFailure(t, err)
	test.Equate(t, len(tr.Records), 0)
}

func TestLimit(t *testing.T) {
	tr := &rvfi.Trace{Limit: 4}

	pc := uint32(0)
	for i := 0; i < 10; i++ {
		err := tr.Collect(cpu.Result{Order: uint64(i), PC: pc, NextPC: pc + 4})
		test.ExpectSuccess(t, err)
		pc += 4
	}

	test.Equate(t, len(tr.Records), 4)
	test.Equate(t, tr.Records[0].Order, 6)

	last, ok := tr.Last()
	test.ExpectSuccess(t, ok)
	test.Equate(t, last.Order, 9)
}

func TestNothingFollowsHalt(t *testing.T) {
	tr := &rvfi.Trace{}

	err := tr.Collect(cpu.Result{Order: 0, PC: 0x00, NextPC: 0x04, Halt: true})
	test.ExpectSuccess(t, err)

	err = tr.Collect(cpu.Result{Order: 1, PC: 0x04, NextPC: 0x08})
	test.ExpectFailure(t, err)
}

func TestEmptyTrace(t *testing.T) {
	tr := &rvfi.Trace{}

	_, ok := tr.Last()
	test.Equate(t, ok, false)
}
