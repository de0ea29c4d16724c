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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/wrenmcu/wren32/disassembly"
	"github.com/wrenmcu/wren32/hardware/cpu/decode"
	"github.com/wrenmcu/wren32/test"
)

func fmtRaw(t *testing.T, raw uint32, addr uint32) (string, string) {
	t.Helper()
	e := disassembly.FormatInsn(decode.Decode(raw), addr)
	return e.Mnemonic, e.Operands
}

func TestBaseInstructions(t *testing.T) {
	m, o := fmtRaw(t, 0x00100093, 0) // addi x1,x0,1
	test.Equate(t, m, "addi")
	test.Equate(t, o, "ra,zero,1")

	m, o = fmtRaw(t, 0xfff08193, 0) // addi x3,x1,-1
	test.Equate(t, m, "addi")
	test.Equate(t, o, "gp,ra,-1")

	m, o = fmtRaw(t, 0x00000013, 0)
	test.Equate(t, m, "nop")
	test.Equate(t, o, "")

	m, o = fmtRaw(t, 0x002081b3, 0) // add x3,x1,x2
	test.Equate(t, m, "add")
	test.Equate(t, o, "gp,ra,sp")

	m, o = fmtRaw(t, 0x402081b3, 0) // sub x3,x1,x2
	test.Equate(t, m, "sub")
	test.Equate(t, o, "gp,ra,sp")

	m, o = fmtRaw(t, 0x4010d193, 0) // srai x3,x1,1
	test.Equate(t, m, "srai")
	test.Equate(t, o, "gp,ra,0x1")
}

func TestMemoryAndControl(t *testing.T) {
	m, o := fmtRaw(t, 0x0040a103, 0) // lw x2,4(x1)
	test.Equate(t, m, "lw")
	test.Equate(t, o, "sp,4(ra)")

	m, o = fmtRaw(t, 0x0020a223, 0) // sw x2,4(x1)
	test.Equate(t, m, "sw")
	test.Equate(t, o, "sp,4(ra)")

	// beq x1,x2,-8 at address 0x10 targets 0x8
	m, o = fmtRaw(t, 0xfe208ce3, 0x10)
	test.Equate(t, m, "beq")
	test.Equate(t, o, "ra,sp,0x8")

	// jal x1,+16 at address 0x20 targets 0x30
	m, o = fmtRaw(t, 0x010000ef, 0x20)
	test.Equate(t, m, "jal")
	test.Equate(t, o, "ra,0x30")

	m, o = fmtRaw(t, 0x000080e7, 0) // jalr x1,0(x1)
	test.Equate(t, m, "jalr")
	test.Equate(t, o, "ra,0(ra)")
}

func TestSystemInstructions(t *testing.T) {
	m, _ := fmtRaw(t, 0x00000073, 0)
	test.Equate(t, m, "ecall")

	m, _ = fmtRaw(t, 0x00100073, 0)
	test.Equate(t, m, "ebreak")

	m, _ = fmtRaw(t, 0x30200073, 0)
	test.Equate(t, m, "mret")

	m, o := fmtRaw(t, 0x34009073, 0) // csrrw x0,mscratch,x1
	test.Equate(t, m, "csrrw")
	test.Equate(t, o, "zero,mscratch,ra")

	m, o = fmtRaw(t, 0x30046073, 0) // csrrsi x0,mstatus,8
	test.Equate(t, m, "csrrsi")
	test.Equate(t, o, "zero,mstatus,8")
}

func TestIllegal(t *testing.T) {
	m, _ := fmtRaw(t, 0xffffffff, 0)
	test.Equate(t, m, "illegal")

	m, _ = fmtRaw(t, 0x00000000, 0)
	test.Equate(t, m, "illegal")
}

func TestFromImage(t *testing.T) {
	image := []byte{
		0x93, 0x00, 0x10, 0x00, // addi x1,x0,1
		0x33, 0x81, 0x20, 0x00, // add x2,x1,x2
	}

	dsm := disassembly.FromImage(image)
	test.Equate(t, len(dsm.Entries), 2)
	test.Equate(t, dsm.Entries[1].Addr, uint32(4))

	s := strings.Builder{}
	test.ExpectSuccess(t, dsm.Write(&s))
	test.ExpectSuccess(t, strings.Contains(s.String(), "addi"))
}
