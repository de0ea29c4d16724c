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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/wrenmcu/wren32/debugger"
	"github.com/wrenmcu/wren32/debugger/terminal"
	"github.com/wrenmcu/wren32/debugger/terminal/colorterm"
	"github.com/wrenmcu/wren32/debugger/terminal/plainterm"
	"github.com/wrenmcu/wren32/disassembly"
	"github.com/wrenmcu/wren32/hardware"
	"github.com/wrenmcu/wren32/logger"
	"github.com/wrenmcu/wren32/modalflag"
	"github.com/wrenmcu/wren32/performance"
	"github.com/wrenmcu/wren32/regression"
	"github.com/wrenmcu/wren32/statsview"
	"github.com/wrenmcu/wren32/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelpRequested:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "REGRESS":
		err = regress(md)
	case "VERSION":
		fmt.Println(version.Version)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address for the stats server")
	retirements := md.AddUint("retirements", 0, "stop after this many retirements (0 for no limit)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	if *stats {
		statsview.Launch(md.Output, *statsAddr)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	image, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(hardware.DefaultRAMSize)
	if err != nil {
		return err
	}

	if err := m.AttachProgram(image); err != nil {
		return err
	}

	// ctrl-c stops the machine rather than killing the process
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	startTime := time.Now()

	err = m.Run(func() (bool, error) {
		if *retirements > 0 && m.CPU.Retired() >= uint64(*retirements) {
			return false, nil
		}
		select {
		case <-intChan:
			return false, nil
		default:
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(startTime).Seconds()
	ips, cpi := performance.CalcIPS(m.CPU.Retired(), m.Ticks, elapsed)
	fmt.Fprintf(md.Output, "%.2f MIPS (%d instructions in %.2f seconds) %.2f cycles/instruction\n",
		ips/1e6, m.CPU.Retired(), elapsed, cpi)

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo log to stdout")
	profile := md.AddString("profile", "none", "run debugger through profiler (CPU, MEM, TRACE, ALL)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		term = &plainterm.PlainTerminal{}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dbg, err := debugger.NewDebugger(term)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.RunProfiler(prf, "debugger", func() error {
		return dbg.Start(md.GetArg(0))
	})
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dsm, err := disassembly.FromFile(md.GetArg(0))
	if err != nil {
		return err
	}

	return dsm.Write(md.Output)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (with an additional short settling period)")
	profile := md.AddString("profile", "none", "run performance check through profiler (CPU, MEM, TRACE, ALL)")
	chart := md.AddString("chart", "", "write throughput chart to file")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, md.GetArg(0), *duration, *chart)
}

// yesReader always returns 'y'. used to automate confirmation requests.
type yesReader struct{}

func (rd *yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "display details of each failure")

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(md.Output, *verbose, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return regression.RegressList(md.Output)
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}
			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at a time when using %s mode", md)
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	retirements := md.AddInt("retirements", 1000, "number of retirements to record in the trace digest")

	md.AdditionalHelp("The ADD sub-mode runs the program for the specified number of retirements and records a digest of the retirement stream.")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		reg := &regression.TraceRegression{
			ProgramFile:    md.GetArg(0),
			NumRetirements: *retirements,
		}
		return regression.RegressAdd(md.Output, reg)
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}
}
