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

package colorterm

import (
	"fmt"

	"github.com/wrenmcu/wren32/debugger/terminal"
	"github.com/wrenmcu/wren32/debugger/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string, a ...interface{}) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// input is echoed by the TermRead() loop for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")

	switch style {
	case terminal.StyleInstrument:
		ct.EasyTerm.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleMachineInfo:
		ct.EasyTerm.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleFeedback:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StyleHelp:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
		ct.EasyTerm.TermPrint("  ")
	case terminal.StyleLog:
		ct.EasyTerm.TermPrint(ansi.Pens["magenta"])
	case terminal.StyleError:
		ct.EasyTerm.TermPrint(ansi.Pens["red"])
		ct.EasyTerm.TermPrint("* ")
	}

	if len(a) > 0 {
		ct.EasyTerm.TermPrint(fmt.Sprintf(s, a...))
	} else {
		ct.EasyTerm.TermPrint(s)
	}
	ct.EasyTerm.TermPrint(ansi.NormalPen)
	ct.EasyTerm.TermPrint("\n")
}
