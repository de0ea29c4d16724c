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

// Package decode turns a raw RV32I_Zicsr instruction word into the register
// numbers, immediate and routing information the rest of the processor
// works with. Decoding is total: any 32 bit value produces an Insn, with
// the Illegal flag raised for encodings outside the implemented set.
package decode

// major opcodes of the implemented base and Zicsr extension
const (
	OpLoad    = 0x03
	OpMiscMem = 0x0f
	OpOpImm   = 0x13
	OpAUIPC   = 0x17
	OpStore   = 0x23
	OpOp      = 0x33
	OpLUI     = 0x37
	OpBranch  = 0x63
	OpJALR    = 0x67
	OpJAL     = 0x6f
	OpSystem  = 0x73
)

// Insn is a decoded instruction. Every field is computed up front so that
// the processor can treat the decoder as a purely combinational block.
type Insn struct {
	Raw uint32

	Opcode uint32
	Rd     uint32
	Rs1    uint32
	Rs2    uint32
	Funct3 uint32
	Funct7 uint32

	// Imm is the immediate in the format implied by the opcode, sign
	// extended where the format calls for it
	Imm uint32

	// ZImm is the zero extended rs1 field, used by the immediate forms
	// of the CSR instructions
	ZImm uint32

	// CSR number field. only meaningful for the CSR instructions.
	CSR uint32

	// Illegal marks encodings outside the implemented set. CSR number
	// legality is kept separate because it is resolved a tick later
	// than the rest of the instruction.
	Illegal bool

	// CSRIllegal marks a CSR instruction whose number or operation is
	// not permitted. meaningless when the instruction is not a CSR
	// instruction.
	CSRIllegal bool

	ECall  bool
	EBreak bool
	MRet   bool
	WFI    bool
}

// Decode a raw instruction word.
func Decode(raw uint32) Insn {
	in := Insn{
		Raw:    raw,
		Opcode: raw & 0x7f,
		Rd:     (raw >> 7) & 0x1f,
		Rs1:    (raw >> 15) & 0x1f,
		Rs2:    (raw >> 20) & 0x1f,
		Funct3: (raw >> 12) & 0x07,
		Funct7: (raw >> 25) & 0x7f,
	}
	in.ZImm = in.Rs1
	in.CSR = (raw >> 20) & 0xfff
	in.Imm = immediate(raw, in.Opcode)
	classify(&in)
	return in
}

func immediate(raw uint32, opcode uint32) uint32 {
	switch opcode {
	case OpLoad, OpOpImm, OpJALR, OpSystem, OpMiscMem:
		// I format
		return uint32(int32(raw) >> 20)

	case OpStore:
		// S format
		return uint32(int32(raw)>>25)<<5 | (raw>>7)&0x1f

	case OpBranch:
		// B format
		return uint32(int32(raw)>>31)<<12 |
			(raw>>7&0x01)<<11 |
			(raw>>25&0x3f)<<5 |
			(raw >> 8 & 0x0f << 1)

	case OpLUI, OpAUIPC:
		// U format
		return raw & 0xfffff000

	case OpJAL:
		// J format
		return uint32(int32(raw)>>31)<<20 |
			(raw >> 12 & 0xff << 12) |
			(raw>>20&0x01)<<11 |
			(raw >> 21 & 0x3ff << 1)
	}

	return 0
}

func classify(in *Insn) {
	if in.Raw&0x03 != 0x03 {
		// compressed encodings are not implemented
		in.Illegal = true
		return
	}

	switch in.Opcode {
	case OpLUI, OpAUIPC, OpJAL:
		// always legal

	case OpJALR:
		in.Illegal = in.Funct3 != 0

	case OpBranch:
		in.Illegal = in.Funct3 == 2 || in.Funct3 == 3

	case OpLoad:
		switch in.Funct3 {
		case 0, 1, 2, 4, 5:
		default:
			in.Illegal = true
		}

	case OpStore:
		in.Illegal = in.Funct3 > 2

	case OpMiscMem:
		// FENCE only. the core has no caches and no write buffer so
		// the instruction is a nop.
		in.Illegal = in.Funct3 != 0

	case OpOpImm:
		switch in.Funct3 {
		case 1:
			in.Illegal = in.Funct7 != 0
		case 5:
			in.Illegal = in.Funct7 != 0 && in.Funct7 != 0x20
		}

	case OpOp:
		switch {
		case in.Funct7 == 0:
		case in.Funct7 == 0x20:
			in.Illegal = in.Funct3 != 0 && in.Funct3 != 5
		default:
			in.Illegal = true
		}

	case OpSystem:
		classifySystem(in)

	default:
		in.Illegal = true
	}
}

func classifySystem(in *Insn) {
	if in.Funct3 == 0 {
		if in.Rs1 != 0 || in.Rd != 0 {
			in.Illegal = true
			return
		}
		switch in.CSR {
		case 0x000:
			in.ECall = true
		case 0x001:
			in.EBreak = true
		case 0x302:
			in.MRet = true
		case 0x105:
			in.WFI = true
		default:
			in.Illegal = true
		}
		return
	}

	if in.Funct3 == 4 {
		in.Illegal = true
		return
	}

	in.CSRIllegal = csrIllegal(in)
}

// csrWriteIntent is true for CSR instructions that perform a write to the
// addressed CSR. The set and clear forms drop the write when the mask is
// the zero register or the zero immediate.
func csrWriteIntent(in *Insn) bool {
	switch in.Funct3 {
	case 1, 5:
		return true
	case 2, 3:
		return in.Rs1 != 0
	case 6, 7:
		return in.ZImm != 0
	}
	return false
}

func csrIllegal(in *Insn) bool {
	// only machine level CSRs exist. bits 9:8 of the number give the
	// lowest privilege level allowed access.
	if (in.CSR>>8)&0x03 != 0x03 {
		return true
	}

	// bits 11:10 set means the read-only space
	if (in.CSR>>10)&0x03 == 0x03 && csrWriteIntent(in) {
		return true
	}

	return csrKind(in.CSR) == csrUnimpl
}

// kinds of implemented CSR, from the point of view of instruction routing
type kind int

const (
	csrUnimpl kind = iota

	// backed by a real register
	csrReal

	// reads as zero; writes are silently dropped
	csrRo0
)

func csrKind(num uint32) kind {
	switch num {
	case 0x300, 0x304, 0x305, 0x340, 0x341, 0x342, 0x344:
		// mstatus, mie, mtvec, mscratch, mepc, mcause, mip
		return csrReal

	case 0x301, 0x310, 0x320, 0x343:
		// misa, mstatush, mcountinhibit, mtval
		return csrRo0

	case 0xb00, 0xb02, 0xb80, 0xb82:
		// mcycle, minstret and their high halves
		return csrRo0

	case 0xf11, 0xf12, 0xf13, 0xf14, 0xf15:
		// machine information registers, all reading zero
		return csrRo0
	}

	// performance counters and their event selectors
	if num >= 0xb03 && num <= 0xb1f {
		return csrRo0
	}
	if num >= 0xb83 && num <= 0xb9f {
		return csrRo0
	}
	if num >= 0x323 && num <= 0x33f {
		return csrRo0
	}

	return csrUnimpl
}
