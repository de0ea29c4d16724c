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
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/wrenmcu/wren32/curated"
	"github.com/wrenmcu/wren32/debugger/terminal"
	"github.com/wrenmcu/wren32/logger"
)

// CommandError is returned when a command cannot be parsed or performed.
const CommandError = "command: %v"

// debugger commands.
const (
	cmdBreak  = "BREAK"
	cmdClear  = "CLEAR"
	cmdCSR    = "CSR"
	cmdDisasm = "DISASM"
	cmdDrop   = "DROP"
	cmdHelp   = "HELP"
	cmdLast   = "LAST"
	cmdList   = "LIST"
	cmdLog    = "LOG"
	cmdMem    = "MEM"
	cmdQuit   = "QUIT"
	cmdRegs   = "REGS"
	cmdReset  = "RESET"
	cmdRun    = "RUN"
	cmdStep   = "STEP"
	cmdTick   = "TICK"
	cmdTrace  = "TRACE"
	cmdViz    = "VIZ"
)

var commandHelp = map[string]string{
	cmdBreak:  "BREAK <address>: stop the RUN command when the PC reaches the address",
	cmdClear:  "CLEAR: remove all breakpoints",
	cmdCSR:    "CSR: display the control and status registers",
	cmdDisasm: "DISASM: display the disassembly of the attached program",
	cmdDrop:   "DROP <address>: remove the breakpoint on the address",
	cmdHelp:   "HELP [command]: list commands or display help for a single command",
	cmdLast:   "LAST: display the most recently retired instruction",
	cmdList:   "LIST: list the current breakpoints",
	cmdLog:    "LOG [n]: display the last n entries of the machine log",
	cmdMem:    "MEM <address> [words]: display memory as 32 bit words",
	cmdQuit:   "QUIT: end the debugging session",
	cmdRegs:   "REGS: display the general purpose registers and the PC",
	cmdReset:  "RESET: wind the machine back to its power on state",
	cmdRun:    "RUN: run until a breakpoint, an interrupt or the machine halts",
	cmdStep:   "STEP [n]: retire the next n instructions (default 1)",
	cmdTick:   "TICK: advance the machine by a single clock tick",
	cmdTrace:  "TRACE [n]: display the last n retirement records (default 10)",
	cmdViz:    "VIZ [file]: write a graphviz visualisation of the machine state",
}

// parseInput splits the input into commands and despatches each one in
// turn. despatching ends on the first error.
func (dbg *Debugger) parseInput(input string) error {
	for _, cmd := range strings.Split(input, ";") {
		if err := dbg.parseCommand(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (dbg *Debugger) parseCommand(input string) error {
	tk := tokeniseInput(input)

	cmd, ok := tk.get()
	if !ok {
		return nil
	}
	cmd = strings.ToUpper(cmd)

	switch cmd {
	case cmdHelp:
		dbg.help(tk)

	case cmdQuit, "EXIT":
		dbg.quit = true

	case cmdReset:
		dbg.resetMachine()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRun:
		return dbg.run()

	case cmdStep:
		n := 1
		if tok, ok := tk.get(); ok {
			v, err := strconv.ParseUint(tok, 0, 32)
			if err != nil {
				return curated.Errorf(CommandError,
					curated.Errorf("not a valid step count (%s)", tok))
			}
			n = int(v)
		}
		for i := 0; i < n; i++ {
			if err := dbg.m.Step(); err != nil {
				return err
			}
			if dbg.m.CPU.Halted() {
				dbg.printLine(terminal.StyleFeedback, "machine halted")
				break
			}
		}
		dbg.printInstrument()

	case cmdTick:
		if err := dbg.m.Tick(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.m.CPU.String())

	case cmdBreak:
		addr, err := dbg.parseAddress(tk)
		if err != nil {
			return err
		}
		return dbg.brk.add(addr)

	case cmdDrop:
		addr, err := dbg.parseAddress(tk)
		if err != nil {
			return err
		}
		return dbg.brk.drop(addr)

	case cmdClear:
		dbg.brk.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case cmdList:
		dbg.brk.list()

	case cmdRegs:
		dbg.printLine(terminal.StyleMachineInfo, "%s", dbg.m.CPU.PC.String())
		dbg.printLine(terminal.StyleMachineInfo, "%s", dbg.m.CPU.Regs.String())

	case cmdCSR:
		dbg.printLine(terminal.StyleMachineInfo, "%s", dbg.m.CPU.CSR.String())

	case cmdMem:
		return dbg.memDump(tk)

	case cmdDisasm:
		if dbg.dsm == nil {
			return curated.Errorf(CommandError, "no program attached")
		}
		return dbg.dsm.Write(dbg.printStyle(terminal.StyleFeedback))

	case cmdLast:
		dbg.printInstrument()

	case cmdTrace:
		n := 10
		if tok, ok := tk.get(); ok {
			v, err := strconv.ParseUint(tok, 0, 32)
			if err != nil {
				return curated.Errorf(CommandError,
					curated.Errorf("not a valid trace length (%s)", tok))
			}
			n = int(v)
		}
		if n > len(dbg.trace.Records) {
			n = len(dbg.trace.Records)
		}
		for _, r := range dbg.trace.Records[len(dbg.trace.Records)-n:] {
			dbg.printLine(terminal.StyleInstrument, "%s", r.String())
		}

	case cmdLog:
		n := 10
		if tok, ok := tk.get(); ok {
			v, err := strconv.ParseUint(tok, 0, 32)
			if err != nil {
				return curated.Errorf(CommandError,
					curated.Errorf("not a valid log length (%s)", tok))
			}
			n = int(v)
		}
		logger.Tail(dbg.printStyle(terminal.StyleLog), n)

	case cmdViz:
		path := "wren32_memviz.dot"
		if tok, ok := tk.get(); ok {
			path = tok
		}
		return dbg.vizDump(path)

	default:
		return curated.Errorf(CommandError,
			curated.Errorf("unrecognised command (%s)", cmd))
	}

	return nil
}

// run the machine until a breakpoint, an interrupt from the terminal or
// a halt.
func (dbg *Debugger) run() error {
	err := dbg.m.Run(func() (bool, error) {
		select {
		case <-dbg.events.IntEvents:
			dbg.printLine(terminal.StyleFeedback, "interrupted")
			return false, nil
		default:
		}

		if dbg.brk.check(dbg.m.CPU.PC.Value) {
			dbg.printLine(terminal.StyleFeedback, "break at %08x", dbg.m.CPU.PC.Value)
			return false, nil
		}

		return true, nil
	})
	if err != nil {
		return err
	}

	if dbg.m.CPU.Halted() {
		dbg.printLine(terminal.StyleFeedback, "machine halted")
	}
	dbg.printInstrument()

	return nil
}

// printInstrument displays the most recently retired instruction along
// with its disassembly.
func (dbg *Debugger) printInstrument() {
	r := dbg.m.CPU.LastResult
	if r.Order == 0 && r.Insn == 0 {
		return
	}
	if i, ok := dbg.disasmEntry(r.PC); ok {
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.dsm.Entries[i].String())
	}
	dbg.printLine(terminal.StyleInstrument, "%s", r.String())
}

func (dbg *Debugger) parseAddress(tk *tokens) (uint32, error) {
	tok, ok := tk.get()
	if !ok {
		return 0, curated.Errorf(CommandError, "address required")
	}
	v, err := strconv.ParseUint(tok, 0, 32)
	if err != nil {
		return 0, curated.Errorf(CommandError,
			curated.Errorf("not a valid address (%s)", tok))
	}
	return uint32(v), nil
}

// memDump displays memory as rows of four 32 bit words.
func (dbg *Debugger) memDump(tk *tokens) error {
	addr, err := dbg.parseAddress(tk)
	if err != nil {
		return err
	}
	addr &^= 0x3

	words := 16
	if tok, ok := tk.get(); ok {
		v, err := strconv.ParseUint(tok, 0, 32)
		if err != nil {
			return curated.Errorf(CommandError,
				curated.Errorf("not a valid word count (%s)", tok))
		}
		words = int(v)
	}

	s := strings.Builder{}
	for i := 0; i < words; i++ {
		if i%4 == 0 {
			if i > 0 {
				dbg.printLine(terminal.StyleMachineInfo, s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%08x:", addr))
		}
		s.WriteString(fmt.Sprintf(" %08x", dbg.m.RAM.Peek(addr)))
		addr += 4
	}
	if s.Len() > 0 {
		dbg.printLine(terminal.StyleMachineInfo, s.String())
	}

	return nil
}

// vizDump writes a graphviz digraph of the machine state to the named
// file.
func (dbg *Debugger) vizDump(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(CommandError, err)
	}
	defer f.Close()

	memviz.Map(f, dbg.m)
	dbg.printLine(terminal.StyleFeedback, "machine state written to %s", path)

	return nil
}

func (dbg *Debugger) help(tk *tokens) {
	if tok, ok := tk.get(); ok {
		if h, ok := commandHelp[strings.ToUpper(tok)]; ok {
			dbg.printLine(terminal.StyleHelp, h)
		} else {
			dbg.printLine(terminal.StyleHelp, "no help for %s", strings.ToUpper(tok))
		}
		return
	}

	cmds := make([]string, 0, len(commandHelp))
	for c := range commandHelp {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	dbg.printLine(terminal.StyleHelp, strings.Join(cmds, " "))
}
