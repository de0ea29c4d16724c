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

import (
	"fmt"

	"github.com/wrenmcu/wren32/hardware/cpu/decode"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Addr     uint32
	Raw      uint32
	Mnemonic string
	Operands string
}

func (e Entry) String() string {
	if e.Operands == "" {
		return fmt.Sprintf("%08x  %08x  %s", e.Addr, e.Raw, e.Mnemonic)
	}
	return fmt.Sprintf("%08x  %08x  %-8s %s", e.Addr, e.Raw, e.Mnemonic, e.Operands)
}

// FormatInsn disassembles a single decoded instruction. The address is
// required to render the absolute target of branches and jumps.
func FormatInsn(in decode.Insn, addr uint32) Entry {
	e := Entry{Addr: addr, Raw: in.Raw}
	e.Mnemonic, e.Operands = format(in, addr)
	return e
}

func format(in decode.Insn, addr uint32) (string, string) {
	if in.Illegal {
		return "illegal", ""
	}

	rd := regName[in.Rd]
	rs1 := regName[in.Rs1]
	rs2 := regName[in.Rs2]
	imm := int32(in.Imm)

	switch in.Opcode {
	case decode.OpLUI:
		return "lui", fmt.Sprintf("%s,0x%x", rd, in.Imm>>12)

	case decode.OpAUIPC:
		return "auipc", fmt.Sprintf("%s,0x%x", rd, in.Imm>>12)

	case decode.OpJAL:
		return "jal", fmt.Sprintf("%s,0x%x", rd, addr+in.Imm)

	case decode.OpJALR:
		return "jalr", fmt.Sprintf("%s,%d(%s)", rd, imm, rs1)

	case decode.OpBranch:
		mnemonic := [8]string{"beq", "bne", "", "", "blt", "bge", "bltu", "bgeu"}[in.Funct3]
		if mnemonic == "" {
			break
		}
		return mnemonic, fmt.Sprintf("%s,%s,0x%x", rs1, rs2, addr+in.Imm)

	case decode.OpLoad:
		mnemonic := [8]string{"lb", "lh", "lw", "", "lbu", "lhu", "", ""}[in.Funct3]
		if mnemonic == "" {
			break
		}
		return mnemonic, fmt.Sprintf("%s,%d(%s)", rd, imm, rs1)

	case decode.OpStore:
		mnemonic := [8]string{"sb", "sh", "sw", "", "", "", "", ""}[in.Funct3]
		if mnemonic == "" {
			break
		}
		return mnemonic, fmt.Sprintf("%s,%d(%s)", rs2, imm, rs1)

	case decode.OpOpImm:
		return formatOpImm(in, rd, rs1, imm)

	case decode.OpOp:
		return formatOp(in, rd, rs1, rs2)

	case decode.OpMiscMem:
		return "fence", ""

	case decode.OpSystem:
		return formatSystem(in, rd, rs1)
	}

	return "illegal", ""
}

func formatOpImm(in decode.Insn, rd, rs1 string, imm int32) (string, string) {
	switch in.Funct3 {
	case 0x0:
		if in.Raw == 0x00000013 {
			return "nop", ""
		}
		return "addi", fmt.Sprintf("%s,%s,%d", rd, rs1, imm)
	case 0x1:
		return "slli", fmt.Sprintf("%s,%s,0x%x", rd, rs1, in.Rs2)
	case 0x2:
		return "slti", fmt.Sprintf("%s,%s,%d", rd, rs1, imm)
	case 0x3:
		return "sltiu", fmt.Sprintf("%s,%s,%d", rd, rs1, imm)
	case 0x4:
		return "xori", fmt.Sprintf("%s,%s,%d", rd, rs1, imm)
	case 0x5:
		if in.Funct7 == 0x20 {
			return "srai", fmt.Sprintf("%s,%s,0x%x", rd, rs1, in.Rs2)
		}
		return "srli", fmt.Sprintf("%s,%s,0x%x", rd, rs1, in.Rs2)
	case 0x6:
		return "ori", fmt.Sprintf("%s,%s,%d", rd, rs1, imm)
	case 0x7:
		return "andi", fmt.Sprintf("%s,%s,%d", rd, rs1, imm)
	}
	return "illegal", ""
}

func formatOp(in decode.Insn, rd, rs1, rs2 string) (string, string) {
	var mnemonic string
	if in.Funct7 == 0x20 {
		mnemonic = [8]string{"sub", "", "", "", "", "sra", "", ""}[in.Funct3]
	} else {
		mnemonic = [8]string{"add", "sll", "slt", "sltu", "xor", "srl", "or", "and"}[in.Funct3]
	}
	if mnemonic == "" {
		return "illegal", ""
	}
	return mnemonic, fmt.Sprintf("%s,%s,%s", rd, rs1, rs2)
}

func formatSystem(in decode.Insn, rd, rs1 string) (string, string) {
	switch {
	case in.ECall:
		return "ecall", ""
	case in.EBreak:
		return "ebreak", ""
	case in.MRet:
		return "mret", ""
	case in.WFI:
		return "wfi", ""
	}

	csr := csrSymbol(in.CSR)

	switch in.Funct3 {
	case 0x1:
		return "csrrw", fmt.Sprintf("%s,%s,%s", rd, csr, rs1)
	case 0x2:
		return "csrrs", fmt.Sprintf("%s,%s,%s", rd, csr, rs1)
	case 0x3:
		return "csrrc", fmt.Sprintf("%s,%s,%s", rd, csr, rs1)
	case 0x5:
		return "csrrwi", fmt.Sprintf("%s,%s,%d", rd, csr, in.ZImm)
	case 0x6:
		return "csrrsi", fmt.Sprintf("%s,%s,%d", rd, csr, in.ZImm)
	case 0x7:
		return "csrrci", fmt.Sprintf("%s,%s,%d", rd, csr, in.ZImm)
	}

	return "illegal", ""
}
