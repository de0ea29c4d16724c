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

package csr_test

import (
	"testing"

	"github.com/wrenmcu/wren32/hardware/cpu/csr"
	"github.com/wrenmcu/wren32/test"
)

func TestMStatus(t *testing.T) {
	s := csr.Store{}

	// constant MPP reads back even after reset
	s.Read(csr.NumMStatus)
	test.Equate(t, s.ReadData(), 0x1800)

	s.Write(csr.NumMStatus, 0xffffffff)
	s.Read(csr.NumMStatus)
	test.Equate(t, s.ReadData(), 0x1888)
	test.Equate(t, s.MIE, true)
	test.Equate(t, s.MPIE, true)

	s.Write(csr.NumMStatus, 0)
	s.Read(csr.NumMStatus)
	test.Equate(t, s.ReadData(), 0x1800)
}

func TestMTvecMode(t *testing.T) {
	s := csr.Store{}
	s.Write(csr.NumMTvec, 0x00000103)
	test.Equate(t, s.MTvec, 0x00000100)
}

func TestMEpcAlignment(t *testing.T) {
	s := csr.Store{}
	s.Write(csr.NumMEpc, 0x00001003)
	test.Equate(t, s.MEpc, 0x00001000)
}

func TestMIPMirror(t *testing.T) {
	s := csr.Store{}
	s.Read(csr.NumMIP)
	test.Equate(t, s.ReadData(), 0)

	s.SetIRQ(true)
	s.Read(csr.NumMIP)
	test.Equate(t, s.ReadData(), 0x800)

	// writes have no effect
	s.Write(csr.NumMIP, 0)
	s.Read(csr.NumMIP)
	test.Equate(t, s.ReadData(), 0x800)
}

func TestInterruptPending(t *testing.T) {
	s := csr.Store{}
	s.SetIRQ(true)
	test.Equate(t, s.InterruptPending(), false)

	s.Write(csr.NumMIE, 0x800)
	test.Equate(t, s.InterruptPending(), false)

	s.Write(csr.NumMStatus, 1<<3)
	test.Equate(t, s.InterruptPending(), true)

	s.SetIRQ(false)
	test.Equate(t, s.InterruptPending(), false)
}

func TestTrapRoundTrip(t *testing.T) {
	s := csr.Store{}
	s.Write(csr.NumMStatus, 1<<3)

	s.EnterTrap()
	test.Equate(t, s.MIE, false)
	test.Equate(t, s.MPIE, true)

	s.LeaveTrap()
	test.Equate(t, s.MIE, true)
	test.Equate(t, s.MPIE, true)
}

func TestReadDataHolds(t *testing.T) {
	s := csr.Store{}
	s.Write(csr.NumMScratch, 0xcafe0000)
	s.Read(csr.NumMScratch)

	// the read port register holds its value across unrelated writes
	s.Write(csr.NumMScratch, 0)
	test.Equate(t, s.ReadData(), 0xcafe0000)
}
