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

// Package disassembly renders RV32I machine words in a human readable
// format. Registers are shown with their ABI names.
package disassembly

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/wrenmcu/wren32/curated"
	"github.com/wrenmcu/wren32/hardware/cpu/decode"
)

// Disassembly is the result of a linear sweep over a program image.
type Disassembly struct {
	Entries []Entry
}

// FromImage disassembles the byte image as a sequence of 32 bit words
// loaded at address zero. A trailing partial word is ignored.
func FromImage(image []byte) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]Entry, 0, len(image)/4),
	}

	for addr := uint32(0); addr+4 <= uint32(len(image)); addr += 4 {
		raw := binary.LittleEndian.Uint32(image[addr:])
		dsm.Entries = append(dsm.Entries, FormatInsn(decode.Decode(raw), addr))
	}

	return dsm
}

// FromFile disassembles the program image in the named file.
func FromFile(path string) (*Disassembly, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}
	return FromImage(image), nil
}

// Write the disassembly, one entry per line.
func (dsm *Disassembly) Write(output io.Writer) error {
	for i := range dsm.Entries {
		if _, err := output.Write([]byte(dsm.Entries[i].String())); err != nil {
			return err
		}
		if _, err := output.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
