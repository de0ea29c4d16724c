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
	"io"
	"os"
	"os/signal"

	"github.com/wrenmcu/wren32/curated"
	"github.com/wrenmcu/wren32/debugger/terminal"
	"github.com/wrenmcu/wren32/disassembly"
	"github.com/wrenmcu/wren32/hardware"
	"github.com/wrenmcu/wren32/logger"
	"github.com/wrenmcu/wren32/rvfi"
)

// DebuggerError is returned for failures at the debugger level.
const DebuggerError = "debugger: %v"

// the number of retirement records kept for the TRACE command.
const traceLimit = 256

// Debugger is the command line debugger for a Wren32 machine.
type Debugger struct {
	m    *hardware.Machine
	term terminal.Terminal
	dsm  *disassembly.Disassembly

	trace *rvfi.Trace
	brk   *breakpoints

	events *terminal.ReadEvents

	programFile string

	// buffer for user input
	input []byte

	// when quit is true the input loop will end at the next iteration
	quit bool
}

// NewDebugger creates a machine and connects it to the given terminal.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		term:  term,
		trace: &rvfi.Trace{Limit: traceLimit},
		input: make([]byte, 255),
	}

	var err error
	dbg.m, err = hardware.NewMachine(hardware.DefaultRAMSize)
	if err != nil {
		return nil, curated.Errorf(DebuggerError, err)
	}

	dbg.m.CPU.OnRetire = dbg.trace.Collect
	dbg.brk = newBreakpoints(dbg)

	return dbg, nil
}

// Start the debugger session with the named program file.
func (dbg *Debugger) Start(programFile string) error {
	image, err := os.ReadFile(programFile)
	if err != nil {
		return curated.Errorf(DebuggerError, err)
	}

	if err := dbg.m.AttachProgram(image); err != nil {
		return curated.Errorf(DebuggerError, err)
	}

	dbg.programFile = programFile
	dbg.dsm = disassembly.FromImage(image)

	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(newTabCompletion())

	dbg.events = &terminal.ReadEvents{
		IntEvents: make(chan os.Signal, 1),
	}
	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	dbg.printLine(terminal.StyleFeedback, "%s attached (%d bytes)", programFile, len(image))

	return dbg.inputLoop()
}

// inputLoop has two jobs. waiting for the next command and despatching
// it. it ends when the quit flag is raised.
func (dbg *Debugger) inputLoop() error {
	for !dbg.quit {
		n, err := dbg.term.TermRead(dbg.input, dbg.buildPrompt(), dbg.events)

		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.handleInterrupt()
				continue
			}
			if curated.Is(err, terminal.UserAbort) || err == io.EOF {
				dbg.quit = true
				continue
			}
			return curated.Errorf(DebuggerError, err)
		}

		if n <= 0 {
			continue
		}

		// the read includes the return key
		if err := dbg.parseInput(string(dbg.input[:n-1])); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// handleInterrupt is called when TermRead returns a UserInterrupt. a
// second confirmation is required before the session actually ends.
func (dbg *Debugger) handleInterrupt() {
	confirm := make([]byte, 3)
	n, err := dbg.term.TermRead(confirm,
		terminal.Prompt{Type: terminal.PromptTypeConfirm, Content: "really quit (y/n) "},
		dbg.events)
	if err != nil {
		// another interrupt while we're asking the question is taken as
		// an affirmative
		dbg.quit = true
		return
	}

	if n > 0 && (confirm[0] == 'y' || confirm[0] == 'Y') {
		dbg.quit = true
	}
}

// resetMachine winds the machine back to its power on state. the
// retirement trace restarts along with the retirement order counter.
func (dbg *Debugger) resetMachine() {
	dbg.m.Reset()
	dbg.trace.Records = dbg.trace.Records[:0]
	logger.Log("debugger", "machine reset")
}
