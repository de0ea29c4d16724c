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

package decode_test

import (
	"testing"

	"github.com/wrenmcu/wren32/hardware/cpu/decode"
	"github.com/wrenmcu/wren32/hardware/cpu/microcode"
	"github.com/wrenmcu/wren32/test"
)

func TestFields(t *testing.T) {
	// addi x3, x1, -1
	in := decode.Decode(0xfff08193)
	test.Equate(t, in.Illegal, false)
	test.Equate(t, in.Rd, 3)
	test.Equate(t, in.Rs1, 1)
	test.Equate(t, in.Funct3, 0)
	test.Equate(t, in.Imm, 0xffffffff)

	// sw x2, 8(x1)
	in = decode.Decode(0x0020a423)
	test.Equate(t, in.Illegal, false)
	test.Equate(t, in.Rs1, 1)
	test.Equate(t, in.Rs2, 2)
	test.Equate(t, in.Imm, 8)

	// lui x5, 0xdead0
	in = decode.Decode(0xdead02b7)
	test.Equate(t, in.Illegal, false)
	test.Equate(t, in.Rd, 5)
	test.Equate(t, in.Imm, 0xdead0000)
}

func TestBranchImmediate(t *testing.T) {
	// beq x1, x2, -8
	in := decode.Decode(0xfe208ce3)
	test.Equate(t, in.Illegal, false)
	test.Equate(t, in.Imm, 0xfffffff8)

	// bne x1, x2, +16
	in = decode.Decode(0x00209863)
	test.Equate(t, in.Illegal, false)
	test.Equate(t, in.Imm, 16)
}

func TestJALImmediate(t *testing.T) {
	// jal x1, +2048
	in := decode.Decode(0x001000ef)
	test.Equate(t, in.Illegal, false)
	test.Equate(t, in.Rd, 1)
	test.Equate(t, in.Imm, 2048)

	// jal x0, -4
	in = decode.Decode(0xffdff06f)
	test.Equate(t, in.Illegal, false)
	test.Equate(t, in.Imm, 0xfffffffc)
}

func TestSystemForms(t *testing.T) {
	in := decode.Decode(0x00000073) // ecall
	test.Equate(t, in.ECall, true)
	test.Equate(t, in.Illegal, false)

	in = decode.Decode(0x00100073) // ebreak
	test.Equate(t, in.EBreak, true)

	in = decode.Decode(0x30200073) // mret
	test.Equate(t, in.MRet, true)
	test.Equate(t, in.Entry(), uint8(microcode.AddrMRet))

	in = decode.Decode(0x10500073) // wfi
	test.Equate(t, in.WFI, true)
	test.Equate(t, in.Entry(), uint8(microcode.WindowMiscMem))

	// sret is not implemented
	in = decode.Decode(0x10200073)
	test.Equate(t, in.Illegal, true)
}

func TestIllegalEncodings(t *testing.T) {
	test.Equate(t, decode.Decode(0x00000000).Illegal, true) // all zeros
	test.Equate(t, decode.Decode(0xffffffff).Illegal, true) // all ones
	test.Equate(t, decode.Decode(0x0000a001).Illegal, true) // compressed

	// branch funct3 2 and 3 have no meaning
	test.Equate(t, decode.Decode(0x0020a063).Illegal, true)
	test.Equate(t, decode.Decode(0x0020b063).Illegal, true)

	// lw with a bad funct3
	test.Equate(t, decode.Decode(0x0000b003).Illegal, true)

	// slli with a nonzero funct7
	test.Equate(t, decode.Decode(0x40009093).Illegal, true)

	// sub encoding applied to xor
	test.Equate(t, decode.Decode(0x4020c1b3).Illegal, true)
}

func TestEntryWindows(t *testing.T) {
	// lw x3, 0(x1)
	in := decode.Decode(0x0000a183)
	test.Equate(t, in.Entry(), uint8(microcode.WindowLoad+2))

	// lbu x3, 0(x1)
	in = decode.Decode(0x0000c183)
	test.Equate(t, in.Entry(), uint8(microcode.WindowLoad+4))

	// srai x3, x1, 1
	in = decode.Decode(0x4010d193)
	test.Equate(t, in.Entry(), uint8(microcode.WindowOpImm+13))

	// srli x3, x1, 1
	in = decode.Decode(0x0010d193)
	test.Equate(t, in.Entry(), uint8(microcode.WindowOpImm+5))

	// sub x3, x1, x2
	in = decode.Decode(0x402081b3)
	test.Equate(t, in.Entry(), uint8(microcode.WindowOp+8))

	// sra x3, x1, x2
	in = decode.Decode(0x4020d1b3)
	test.Equate(t, in.Entry(), uint8(microcode.WindowOp+13))

	// bgeu x1, x2, +8
	in = decode.Decode(0x0020f463)
	test.Equate(t, in.Entry(), uint8(microcode.WindowBranch+7))
}

func TestCSRRouting(t *testing.T) {
	// csrrw x0, mscratch, x1 is a pure write
	in := decode.Decode(0x34009073)
	test.Equate(t, in.Entry(), uint8(microcode.AddrCSRDispatch))
	test.Equate(t, in.CSRIllegal, false)
	test.Equate(t, in.CSREntry(), uint8(microcode.AddrCSRW))

	// csrrw x2, mscratch, x1 reads and writes
	in = decode.Decode(0x34009173)
	test.Equate(t, in.CSREntry(), uint8(microcode.AddrCSRRW))

	// csrrs x2, mscratch, x0 is a pure read
	in = decode.Decode(0x34002173)
	test.Equate(t, in.CSREntry(), uint8(microcode.AddrCSRR))

	// csrrs x2, mscratch, x1 sets bits
	in = decode.Decode(0x3400a173)
	test.Equate(t, in.CSREntry(), uint8(microcode.AddrCSRRS))

	// csrrc x2, mscratch, x1 clears bits
	in = decode.Decode(0x3400b173)
	test.Equate(t, in.CSREntry(), uint8(microcode.AddrCSRRC))

	// csrrwi x2, mscratch, 5
	in = decode.Decode(0x3402d173)
	test.Equate(t, in.CSREntry(), uint8(microcode.AddrCSRRWI))

	// csrrsi x2, mscratch, 0 is a pure read
	in = decode.Decode(0x34006173)
	test.Equate(t, in.CSREntry(), uint8(microcode.AddrCSRR))

	// csrrci x2, mscratch, 5
	in = decode.Decode(0x3402f173)
	test.Equate(t, in.CSREntry(), uint8(microcode.AddrCSRRCI))
}

func TestCSRLegality(t *testing.T) {
	// reading misa is legal and routes to the read-as-zero body
	in := decode.Decode(0x30102173) // csrrs x2, misa, x0
	test.Equate(t, in.CSRIllegal, false)
	test.Equate(t, in.CSREntry(), uint8(microcode.AddrCSRRo0))

	// writing misa is silently dropped, not a fault
	in = decode.Decode(0x30109173) // csrrw x2, misa, x1
	test.Equate(t, in.CSRIllegal, false)
	test.Equate(t, in.CSREntry(), uint8(microcode.AddrCSRRo0))

	// reading mvendorid is legal
	in = decode.Decode(0xf1102173) // csrrs x2, mvendorid, x0
	test.Equate(t, in.CSRIllegal, false)

	// writing mvendorid faults: it lives in the read-only space
	in = decode.Decode(0xf1109173) // csrrw x2, mvendorid, x1
	test.Equate(t, in.CSRIllegal, true)

	// set with a zero mask is not a write, even in the read-only space
	in = decode.Decode(0xf1102173) // csrrs x2, mvendorid, x0
	test.Equate(t, in.CSRIllegal, false)

	// an unimplemented number faults
	in = decode.Decode(0x7b002173) // csrrs x2, dcsr, x0
	test.Equate(t, in.CSRIllegal, true)

	// supervisor quadrant faults
	in = decode.Decode(0x10002173) // csrrs x2, sstatus, x0
	test.Equate(t, in.CSRIllegal, true)
}
