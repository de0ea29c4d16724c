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

package disassembly

import "fmt"

// register symbols in the standard ABI naming.
var regName = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// csr symbols for the registers the processor implements. other numbers are
// rendered numerically.
var csrName = map[uint32]string{
	0x300: "mstatus",
	0x301: "misa",
	0x304: "mie",
	0x305: "mtvec",
	0x340: "mscratch",
	0x341: "mepc",
	0x342: "mcause",
	0x343: "mtval",
	0x344: "mip",
	0xf11: "mvendorid",
	0xf12: "marchid",
	0xf13: "mimpid",
	0xf14: "mhartid",
	0xf15: "mconfigptr",
}

func csrSymbol(num uint32) string {
	if s, ok := csrName[num]; ok {
		return s
	}
	return fmt.Sprintf("0x%03x", num)
}
