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

package cpu

import (
	"fmt"
)

// Result describes one retired instruction. A trapping instruction
// retires when the trap routine completes; an instruction displaced by an
// external interrupt retires without having executed, with Intr set.
type Result struct {
	// Order increases by one for every retirement
	Order uint64

	// Insn is the raw instruction word
	Insn uint32

	// PC of the instruction and PC of its successor
	PC     uint32
	NextPC uint32

	// source register numbers and the values read for them
	Rs1     uint32
	Rs2     uint32
	Rs1Data uint32
	Rs2Data uint32

	// destination register write, when one happened. writes to x0 are
	// not recorded.
	Rd        uint32
	RdData    uint32
	RdWritten bool

	// bus transfer made by the instruction, when one happened. the
	// masks are byte lane selects; data is in raw bus lane positions.
	MemAddr  uint32
	MemRMask uint8
	MemWMask uint8
	MemRData uint32
	MemWData uint32

	// CSRs touched by the instruction, in first-touch order. trap entry
	// and mret traffic is included because it completes inside the
	// retirement.
	CSRs []CSRAccess

	// Trap is set when the instruction entered the trap routine. Intr
	// additionally marks a trap taken for an external interrupt.
	Trap bool
	Intr bool

	// Halt is set when the core parked after this instruction instead of
	// fetching a successor.
	Halt bool

	// Ticks the instruction occupied, fetch included
	Ticks int
}

// CSRAccess records the traffic to a single CSR during one retirement.
// The masks are full-word; the core always reads and writes whole CSRs.
type CSRAccess struct {
	Num   uint32
	RMask uint32
	WMask uint32
	RData uint32
	WData uint32
}

func (r *Result) csrAccess(num uint32) *CSRAccess {
	for i := range r.CSRs {
		if r.CSRs[i].Num == num {
			return &r.CSRs[i]
		}
	}
	r.CSRs = append(r.CSRs, CSRAccess{Num: num})
	return &r.CSRs[len(r.CSRs)-1]
}

func (r *Result) recordCSRRead(num uint32, value uint32) {
	c := r.csrAccess(num)
	c.RMask = 0xffffffff
	c.RData = value
}

func (r *Result) recordCSRWrite(num uint32, value uint32) {
	c := r.csrAccess(num)
	c.WMask = 0xffffffff
	c.WData = value
}

// Mode is the privilege mode of every retirement. The core is machine
// mode only.
func (r Result) Mode() int {
	return 3
}

// IXL is the XLEN encoding of every retirement.
func (r Result) IXL() int {
	return 1
}

func (r Result) String() string {
	s := fmt.Sprintf("#%d pc=%08x insn=%08x", r.Order, r.PC, r.Insn)
	if r.RdWritten {
		s += fmt.Sprintf(" x%d=%08x", r.Rd, r.RdData)
	}
	if r.Trap {
		if r.Intr {
			s += " (interrupt)"
		} else {
			s += " (trap)"
		}
	}
	return s
}
