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

// Package registers implements the general purpose register file and the
// program counter.
package registers

import (
	"fmt"
	"strings"
)

// File is the 32 entry general purpose register file. It has a single read
// port whose address is a register in its own right: the value presented
// at the port tracks the stored data for whatever address was last set.
type File struct {
	regs [32]uint32

	readAddr uint32
}

// SetReadAddr updates the read port address register.
func (f *File) SetReadAddr(addr uint32) {
	f.readAddr = addr & 0x1f
}

// ReadData is the value currently presented at the read port.
func (f *File) ReadData() uint32 {
	return f.regs[f.readAddr]
}

// Write the addressed register. Writes to x0 are discarded.
func (f *File) Write(addr uint32, value uint32) {
	addr &= 0x1f
	if addr == 0 {
		return
	}
	f.regs[addr] = value
}

// Reg returns the value of the addressed register.
func (f *File) Reg(addr uint32) uint32 {
	return f.regs[addr&0x1f]
}

func (f *File) String() string {
	s := strings.Builder{}
	for i := 0; i < 32; i += 4 {
		s.WriteString(fmt.Sprintf("x%02d=%08x x%02d=%08x x%02d=%08x x%02d=%08x\n",
			i, f.regs[i], i+1, f.regs[i+1], i+2, f.regs[i+2], i+3, f.regs[i+3]))
	}
	return s.String()
}
