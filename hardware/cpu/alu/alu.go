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

// Package alu implements the single shared arithmetic unit. The unit has
// two operand latches, an output register and no other state. The output
// register recomputes on every tick from whatever the latches hold, so a
// routine that wants a stable output must keep the operands and operation
// stable.
package alu

import (
	"fmt"

	"github.com/wrenmcu/wren32/hardware/cpu/microcode"
)

// ALU is the operand latches and the output register.
type ALU struct {
	A uint32
	B uint32
	O uint32
}

// Compute the output value for the given operation and modifiers, from the
// current operand latches. The caller commits the result to O at the end
// of the tick.
func (a *ALU) Compute(op microcode.ALUOp, imod microcode.ALUIMod, omod microcode.ALUOMod) uint32 {
	x := a.A
	y := a.B

	if imod == microcode.IModInvMSB {
		x ^= 0x80000000
		y ^= 0x80000000
	}

	var o uint32
	switch op {
	case microcode.ALUAdd:
		o = x + y
	case microcode.ALUSub:
		o = x - y
	case microcode.ALUAnd:
		o = x & y
	case microcode.ALUOr:
		o = x | y
	case microcode.ALUXor:
		o = x ^ y
	case microcode.ALUSLL1:
		o = x << 1
	case microcode.ALUSRL1:
		o = x >> 1
	case microcode.ALUSRA1:
		o = uint32(int32(x) >> 1)
	case microcode.ALULTU:
		if x < y {
			o = 1
		}
	}

	switch omod {
	case microcode.OModInvLSB:
		o ^= 1
	case microcode.OModClearLSB:
		o &^= 1
	}

	return o
}

// Zero is true when the output register holds zero.
func (a *ALU) Zero() bool {
	return a.O == 0
}

// Low5Zero is true when the low five bits of the output register are zero.
func (a *ALU) Low5Zero() bool {
	return a.O&0x1f == 0
}

func (a *ALU) String() string {
	return fmt.Sprintf("A=%08x B=%08x O=%08x", a.A, a.B, a.O)
}
