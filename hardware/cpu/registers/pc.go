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

package registers

import (
	"fmt"

	"github.com/wrenmcu/wren32/hardware/cpu/microcode"
)

// PC is the program counter register.
type PC struct {
	Value uint32
}

// Apply the PC action for the tick. The load value is the ALU output.
func (pc *PC) Apply(action microcode.PCAction, aluOut uint32) {
	switch action {
	case microcode.PCHold:
	case microcode.PCInc:
		pc.Value += 4
	case microcode.PCLoadALU:
		pc.Value = aluOut
	}
}

func (pc *PC) String() string {
	return fmt.Sprintf("PC=%08x", pc.Value)
}
