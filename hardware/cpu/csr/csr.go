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

// Package csr implements the machine mode CSR store. Only the subset
// needed for a single hart machine mode core is physically backed; the
// read-as-zero numbers are handled here, the legality of an access is the
// decoder's business.
package csr

import (
	"fmt"

	"github.com/wrenmcu/wren32/hardware/cpu/microcode"
)

// numbers of the physically backed CSRs
const (
	NumMStatus  = 0x300
	NumMIE      = 0x304
	NumMTvec    = 0x305
	NumMScratch = 0x340
	NumMEpc     = 0x341
	NumMCause   = 0x342
	NumMIP      = 0x344
)

// Store is the physical CSR state. The exported fields are the registers
// themselves; the accessors apply the per-register read and write rules.
type Store struct {
	// mstatus. MPP is constant machine mode and is not stored.
	MIE  bool
	MPIE bool

	// mie. only the external interrupt enable exists.
	MEIE bool

	MTvec    uint32
	MScratch uint32
	MEpc     uint32
	MCause   uint32

	// mip.MEIP mirror of the external IRQ line
	meip bool

	// read port register. a CSR read latches here and the value holds
	// until the next read.
	readData uint32
}

// Reset the store to its architectural reset state.
func (s *Store) Reset() {
	*s = Store{}
}

// SetIRQ presents the external IRQ line level for the tick.
func (s *Store) SetIRQ(level bool) {
	s.meip = level
}

// IRQ is the current mip.MEIP value.
func (s *Store) IRQ() bool {
	return s.meip
}

// InterruptPending is true when an external interrupt is both pending and
// enabled.
func (s *Store) InterruptPending() bool {
	return s.meip && s.MIE && s.MEIE
}

// ReadData is the value currently held by the read port register.
func (s *Store) ReadData() uint32 {
	return s.readData
}

// Read latches the addressed CSR into the read port register.
func (s *Store) Read(num uint32) {
	s.readData = s.peek(num)
}

func (s *Store) peek(num uint32) uint32 {
	switch num {
	case NumMStatus:
		v := uint32(0x1800)
		if s.MIE {
			v |= 1 << 3
		}
		if s.MPIE {
			v |= 1 << 7
		}
		return v

	case NumMIE:
		if s.MEIE {
			return 1 << 11
		}
		return 0

	case NumMTvec:
		return s.MTvec

	case NumMScratch:
		return s.MScratch

	case NumMEpc:
		return s.MEpc

	case NumMCause:
		return s.MCause

	case NumMIP:
		if s.meip {
			return 1 << 11
		}
		return 0
	}

	return 0
}

// Write the addressed CSR. Constant fields are preserved and writes to
// read-as-zero numbers are dropped.
func (s *Store) Write(num uint32, value uint32) {
	switch num {
	case NumMStatus:
		s.MIE = value&(1<<3) != 0
		s.MPIE = value&(1<<7) != 0

	case NumMIE:
		s.MEIE = value&(1<<11) != 0

	case NumMTvec:
		// direct mode only
		s.MTvec = value &^ 0x3

	case NumMScratch:
		s.MScratch = value

	case NumMEpc:
		s.MEpc = value &^ 0x3

	case NumMCause:
		s.MCause = value

	case NumMIP:
		// MEIP mirrors the external line and nothing else exists
	}
}

// TargetNum translates a microcode CSR target into a CSR number.
func TargetNum(t microcode.CSRTarget) uint32 {
	switch t {
	case microcode.CSRTargetMCause:
		return NumMCause
	case microcode.CSRTargetMTvec:
		return NumMTvec
	case microcode.CSRTargetMEpc:
		return NumMEpc
	}
	return 0
}

// EnterTrap performs the atomic status update on trap entry.
func (s *Store) EnterTrap() {
	s.MPIE = s.MIE
	s.MIE = false
}

// LeaveTrap performs the atomic status update on trap exit.
func (s *Store) LeaveTrap() {
	s.MIE = s.MPIE
	s.MPIE = true
}

func (s *Store) String() string {
	return fmt.Sprintf("mstatus=%08x mie=%08x mtvec=%08x mscratch=%08x mepc=%08x mcause=%08x mip=%08x",
		s.peek(NumMStatus), s.peek(NumMIE), s.MTvec, s.MScratch, s.MEpc, s.MCause, s.peek(NumMIP))
}
