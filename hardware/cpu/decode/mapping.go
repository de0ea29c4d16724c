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

package decode

import (
	"github.com/wrenmcu/wren32/hardware/cpu/microcode"
)

// Entry gives the control store address the mapping table supplies at the
// first dispatch. The minor opcode bits select within a window; CSR
// instructions all route to the second dispatch word.
func (in Insn) Entry() uint8 {
	if in.Illegal || in.ECall || in.EBreak {
		// the dispatch word diverts to the trap routine before the
		// mapping result is used. the panic address catches a
		// sequencer that disagrees.
		return microcode.AddrPanic
	}

	switch in.Opcode {
	case OpLoad:
		return microcode.WindowLoad + uint8(in.Funct3)

	case OpMiscMem:
		return microcode.WindowMiscMem

	case OpOpImm:
		e := microcode.WindowOpImm + uint8(in.Funct3)
		if in.Funct3 == 5 && in.Funct7 == 0x20 {
			e += 8
		}
		return e

	case OpAUIPC:
		return microcode.WindowAUIPC

	case OpStore:
		return microcode.WindowStore + uint8(in.Funct3)

	case OpOp:
		e := microcode.WindowOp + uint8(in.Funct3)
		if in.Funct7 == 0x20 {
			e += 8
		}
		return e

	case OpLUI:
		return microcode.WindowLUI

	case OpBranch:
		return microcode.WindowBranch + uint8(in.Funct3)

	case OpJALR:
		return microcode.WindowJALR

	case OpJAL:
		return microcode.WindowJAL

	case OpSystem:
		switch {
		case in.MRet:
			return microcode.AddrMRet
		case in.WFI:
			return microcode.WindowMiscMem
		default:
			return microcode.AddrCSRDispatch
		}
	}

	return microcode.AddrPanic
}

// CSREntry gives the control store address the mapping table supplies at
// the second dispatch, once the CSR number has been examined.
func (in Insn) CSREntry() uint8 {
	if in.CSRIllegal {
		return microcode.AddrPanic
	}

	if csrKind(in.CSR) == csrRo0 {
		return microcode.AddrCSRRo0
	}

	switch in.Funct3 {
	case 1: // csrrw
		if in.Rd == 0 {
			return microcode.AddrCSRW
		}
		return microcode.AddrCSRRW

	case 2: // csrrs
		if in.Rs1 == 0 {
			return microcode.AddrCSRR
		}
		return microcode.AddrCSRRS

	case 3: // csrrc
		if in.Rs1 == 0 {
			return microcode.AddrCSRR
		}
		return microcode.AddrCSRRC

	case 5: // csrrwi
		if in.Rd == 0 {
			return microcode.AddrCSRWI
		}
		return microcode.AddrCSRRWI

	case 6: // csrrsi
		if in.ZImm == 0 {
			return microcode.AddrCSRR
		}
		return microcode.AddrCSRRSI

	case 7: // csrrci
		if in.ZImm == 0 {
			return microcode.AddrCSRR
		}
		return microcode.AddrCSRRCI
	}

	return microcode.AddrPanic
}
