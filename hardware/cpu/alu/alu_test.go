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

package alu_test

import (
	"testing"

	"github.com/wrenmcu/wren32/hardware/cpu/alu"
	"github.com/wrenmcu/wren32/hardware/cpu/microcode"
	"github.com/wrenmcu/wren32/test"
)

func TestArithmetic(t *testing.T) {
	a := alu.ALU{A: 5, B: 3}

	test.Equate(t, a.Compute(microcode.ALUAdd, microcode.IModNone, microcode.OModNone), 8)
	test.Equate(t, a.Compute(microcode.ALUSub, microcode.IModNone, microcode.OModNone), 2)
	test.Equate(t, a.Compute(microcode.ALUAnd, microcode.IModNone, microcode.OModNone), 1)
	test.Equate(t, a.Compute(microcode.ALUOr, microcode.IModNone, microcode.OModNone), 7)
	test.Equate(t, a.Compute(microcode.ALUXor, microcode.IModNone, microcode.OModNone), 6)

	a.A = 0
	a.B = 1
	test.Equate(t, a.Compute(microcode.ALUSub, microcode.IModNone, microcode.OModNone), 0xffffffff)
}

func TestShiftSingleBit(t *testing.T) {
	a := alu.ALU{A: 0x80000001}

	test.Equate(t, a.Compute(microcode.ALUSLL1, microcode.IModNone, microcode.OModNone), 0x00000002)
	test.Equate(t, a.Compute(microcode.ALUSRL1, microcode.IModNone, microcode.OModNone), 0x40000000)
	test.Equate(t, a.Compute(microcode.ALUSRA1, microcode.IModNone, microcode.OModNone), 0xc0000000)
}

func TestComparisons(t *testing.T) {
	// unsigned
	a := alu.ALU{A: 1, B: 2}
	test.Equate(t, a.Compute(microcode.ALULTU, microcode.IModNone, microcode.OModNone), 1)

	a.A = 2
	a.B = 1
	test.Equate(t, a.Compute(microcode.ALULTU, microcode.IModNone, microcode.OModNone), 0)

	// -1 unsigned is the largest value; signed it is less than 1
	a.A = 0xffffffff
	a.B = 1
	test.Equate(t, a.Compute(microcode.ALULTU, microcode.IModNone, microcode.OModNone), 0)
	test.Equate(t, a.Compute(microcode.ALULTU, microcode.IModInvMSB, microcode.OModNone), 1)

	// inverting the result turns less-than into greater-or-equal
	test.Equate(t, a.Compute(microcode.ALULTU, microcode.IModInvMSB, microcode.OModInvLSB), 0)
}

func TestClearLSB(t *testing.T) {
	a := alu.ALU{A: 4, B: 3}
	test.Equate(t, a.Compute(microcode.ALUAdd, microcode.IModNone, microcode.OModClearLSB), 6)
}

func TestFlags(t *testing.T) {
	a := alu.ALU{O: 0}
	test.Equate(t, a.Zero(), true)
	test.Equate(t, a.Low5Zero(), true)

	a.O = 0x20
	test.Equate(t, a.Zero(), false)
	test.Equate(t, a.Low5Zero(), true)

	a.O = 0x21
	test.Equate(t, a.Low5Zero(), false)
}
