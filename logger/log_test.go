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

package logger

import (
	"strings"
	"testing"

	"github.com/wrenmcu/wren32/test"
)

func TestLogAccumulation(t *testing.T) {
	l := newLogger(10)

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "")

	l.log("test", "this is a test")
	s.Reset()
	l.write(s)
	test.Equate(t, s.String(), "test: this is a test\n")

	l.log("test", "this is another test")
	s.Reset()
	l.write(s)
	test.Equate(t, s.String(), "test: this is a test\ntest: this is another test\n")
}

func TestRepeatFolding(t *testing.T) {
	l := newLogger(10)

	l.log("cpu", "trap entry")
	l.log("cpu", "trap entry")
	l.log("cpu", "trap entry")

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "cpu: trap entry (repeat x3)\n")
}

func TestTail(t *testing.T) {
	l := newLogger(10)

	l.log("a", "first")
	l.log("b", "second")
	l.log("c", "third")

	s := &strings.Builder{}
	l.tail(s, 2)
	test.Equate(t, s.String(), "b: second\nc: third\n")

	// tail longer than the log is capped
	s.Reset()
	l.tail(s, 100)
	test.Equate(t, s.String(), "a: first\nb: second\nc: third\n")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("a", "first")
	l.log("b", "second")
	l.log("c", "third")

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "b: second\nc: third\n")
}
