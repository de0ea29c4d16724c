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

// Package modalflag is a wrapper around the flag package of the standard
// library. It provides the ability to parse command line arguments in
// distinct modes, each mode with its own flag set:
//
//	wren32 [global flags] MODE [mode flags] [arguments]
//
// The caller cycles through modes with NewMode(), registering sub-modes and
// flags for each, and calling Parse() once per mode. The first non-flag
// argument that matches a registered sub-mode selects it and leaves the
// remaining arguments for the next round of parsing.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

const modeSeparator = "/"

// Modes provides flag parsing in the presence of sub-modes. The Output field
// should be set before calling Parse() or help messages will be lost.
type Modes struct {
	// where to print help messages. defaults to os.Stdout.
	Output io.Writer

	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes registered for the current round of parsing
	subModes []string

	// the series of sub-modes encountered over all calls to Parse()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected sub-mode. The empty string means
// no sub-mode has been selected yet.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every sub-mode encountered during parsing, joined with a
// separator.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs initialises the Modes struct with the argument list, typically
// os.Args[1:]. Implies NewMode().
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode begins a new round of parsing. Flags and sub-modes registered
// before the previous Parse() are discarded.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
}

// AddSubModes registers the sub-modes valid for the current mode. Matching
// is case-insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	md.subModes = append(md.subModes, subModes...)
}

// AdditionalHelp adds explanatory text to the help message, beyond the
// automatic list of flags and sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddBool registers a boolean flag with the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString registers a string flag with the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt registers an integer flag with the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddUint registers an unsigned integer flag with the current mode.
func (md *Modes) AddUint(name string, value uint, usage string) *uint {
	return md.flags.Uint(name, value, usage)
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were registered
	// the Mode() function says which one was selected.
	ParseContinue ParseResult = iota

	// help was requested and has been printed. the program should exit
	// without error.
	ParseHelpRequested

	// parsing failed. the accompanying error says why.
	ParseError
)

// Parse the next round of arguments. Call once per NewMode().
func (md *Modes) Parse() (ParseResult, error) {
	if md.Output == nil {
		md.Output = os.Stdout
	}

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.writeHelp()
			return ParseHelpRequested, nil
		}
		return ParseError, fmt.Errorf("modalflag: %v", err)
	}

	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 && md.flags.NArg() > 0 {
		cand := strings.ToUpper(md.flags.Arg(0))
		for _, sm := range md.subModes {
			if strings.ToUpper(sm) == cand {
				md.path = append(md.path, strings.ToUpper(sm))
				md.argsIdx++
				return ParseContinue, nil
			}
		}
		return ParseError, fmt.Errorf("modalflag: %s is not a valid mode for %s", md.flags.Arg(0), md.Path())
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments not yet consumed by parsing.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the remaining argument at idx, or the empty string if there
// is no argument at that position.
func (md *Modes) GetArg(idx int) string {
	r := md.RemainingArgs()
	if idx >= len(r) {
		return ""
	}
	return r[idx]
}

func (md *Modes) writeHelp() {
	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "%s\n\n", md.additionalHelp)
	}

	md.flags.SetOutput(md.Output)
	md.flags.PrintDefaults()
	md.flags.SetOutput(io.Discard)

	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "available sub-modes: %s\n", strings.Join(md.subModes, ", "))
	}
}
