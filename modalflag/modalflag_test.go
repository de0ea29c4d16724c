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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/wrenmcu/wren32/modalflag"
	"github.com/wrenmcu/wren32/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"somefile"})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, md.GetArg(0), "somefile")
	test.Equate(t, md.Mode(), "")
}

func TestSubModeSelection(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"run", "prog.bin"})
	md.AddSubModes("RUN", "DISASM")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, md.GetArg(0), "prog.bin")
}

func TestInvalidSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs(strings.Split("wibble", " "))
	md.AddSubModes("RUN", "DISASM")

	_, err := md.Parse()
	test.ExpectFailure(t, err)
}

func TestModeFlags(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-limit", "100", "run", "-trace", "prog.bin"})
	md.AddSubModes("RUN")
	limit := md.AddInt("limit", 0, "tick limit")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, *limit, 100)
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	trace := md.AddBool("trace", false, "enable retirement trace")

	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, *trace, true)
	test.Equate(t, md.GetArg(0), "prog.bin")
}
