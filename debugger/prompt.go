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

package debugger

import (
	"fmt"
	"strings"

	"github.com/wrenmcu/wren32/debugger/terminal"
	"github.com/wrenmcu/wren32/hardware/cpu/microcode"
)

// disasmEntry finds the disassembly entry for the given address, if the
// address falls inside the attached program image.
func (dbg *Debugger) disasmEntry(addr uint32) (int, bool) {
	if dbg.dsm == nil || addr&0x3 != 0 {
		return 0, false
	}
	i := int(addr >> 2)
	if i >= len(dbg.dsm.Entries) {
		return 0, false
	}
	return i, true
}

func (dbg *Debugger) buildPrompt() terminal.Prompt {
	prompt := strings.Builder{}

	pc := dbg.m.CPU.PC.Value

	if dbg.m.CPU.Halted() {
		prompt.WriteString("halted")
	} else if i, ok := dbg.disasmEntry(pc); ok {
		e := dbg.dsm.Entries[i]
		prompt.WriteString(fmt.Sprintf("%08x %s", pc, e.Mnemonic))
		if e.Operands != "" {
			prompt.WriteString(fmt.Sprintf(" %s", e.Operands))
		}
	} else {
		// incomplete disassembly, prepare "no disasm" prompt
		prompt.WriteString(fmt.Sprintf("%08x no disasm", pc))
	}

	// the tick prompt is shown when the control store is part way through
	// an instruction routine
	upc := dbg.m.CPU.MicroPC()
	if upc != microcode.AddrFetch && upc != microcode.AddrReset && !dbg.m.CPU.Halted() {
		return terminal.Prompt{Type: terminal.PromptTypeTick, Content: prompt.String()}
	}

	return terminal.Prompt{Type: terminal.PromptTypeStep, Content: prompt.String()}
}
