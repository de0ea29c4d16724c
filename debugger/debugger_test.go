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

package debugger_test

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wrenmcu/wren32/debugger"
	"github.com/wrenmcu/wren32/debugger/terminal"
)

type mockTerm struct {
	t      *testing.T
	inp    chan string
	out    chan string
	output []string
}

func newMockTerm(t *testing.T) *mockTerm {
	trm := &mockTerm{
		t:   t,
		inp: make(chan string),
		out: make(chan string, 100),
	}
	return trm
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(_ bool) {
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	s := <-trm.inp
	copy(buffer, s)
	return len(s) + 1, nil
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string, a ...interface{}) {
	if sty == terminal.StyleEcho {
		return
	}

	trm.out <- fmt.Sprintf(s, a...)
}

func (trm *mockTerm) sndInput(s string) {
	trm.output = make([]string, 0, 10)
	trm.inp <- s
}

func (trm *mockTerm) rcvOutput() {
	empty := false
	for !empty {
		select {
		case s := <-trm.out:
			trm.output = append(trm.output, s)

		// the amount of output sent by the debugger is unpredictable so a
		// timeout is necessary. a matter of milliseconds should be
		// sufficient
		case <-time.After(10 * time.Millisecond):
			empty = true
		}
	}
}

// cmpOutput compares the string argument with the *last line* of the
// most recent output.
func (trm *mockTerm) cmpOutput(s string) {
	trm.rcvOutput()

	if len(trm.output) == 0 {
		if len(s) != 0 {
			trm.t.Errorf("unexpected debugger output (nothing) should be (%s)", s)
		}
		return
	}

	l := len(trm.output) - 1

	if trm.output[l] == s {
		return
	}

	trm.t.Errorf("unexpected debugger output (%s) should be (%s)", trm.output[l], s)
}

func (trm *mockTerm) testBreakpoints() {
	// debugger starts off with no breakpoints
	trm.sndInput("LIST")
	trm.cmpOutput("no breakpoints")

	// add a break. this should be successful so there should be no
	// feedback
	trm.sndInput("BREAK $8")
	trm.cmpOutput("")

	trm.sndInput("LIST")
	trm.cmpOutput(" 0: 00000008")

	// adding the same break a second time is an error
	trm.sndInput("BREAK 0x8")
	trm.cmpOutput("breakpoint: already exists (00000008)")

	trm.sndInput("DROP 8")
	trm.cmpOutput("")

	trm.sndInput("LIST")
	trm.cmpOutput("no breakpoints")
}

func (trm *mockTerm) testInspection() {
	trm.sndInput("MEM 0 4")
	trm.cmpOutput("00000000: 00500093 00108113 0000006f 00000000")

	trm.sndInput("STEP")
	trm.cmpOutput("#0 pc=00000000 insn=00500093 x1=00000005")

	trm.sndInput("STEP")
	trm.cmpOutput("#1 pc=00000004 insn=00108113 x2=00000006")
}

func (trm *mockTerm) testSequence() {
	defer func() { trm.sndInput("QUIT") }()
	trm.testBreakpoints()
	trm.testInspection()
}

func TestDebugger(t *testing.T) {
	trm := newMockTerm(t)

	// addi x1, x0, 5; addi x2, x1, 1; jal x0, 0
	program := []uint32{0x00500093, 0x00108113, 0x0000006f}
	image := make([]byte, len(program)*4)
	for i, w := range program {
		binary.LittleEndian.PutUint32(image[i*4:], w)
	}

	programFile := filepath.Join(t.TempDir(), "program.bin")
	if err := os.WriteFile(programFile, image, 0600); err != nil {
		t.Fatalf(err.Error())
	}

	dbg, err := debugger.NewDebugger(trm)
	if err != nil {
		t.Fatalf(err.Error())
	}

	go trm.testSequence()

	err = dbg.Start(programFile)
	if err != nil {
		t.Fatalf(err.Error())
	}
}
