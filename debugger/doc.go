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

// Package debugger is a command line interface to a Wren32 machine. The
// processor can be stepped by the instruction or by the clock tick,
// breakpoints can be set on program addresses and the machine state can
// be inspected between steps.
//
// Commands are case insensitive. Numeric arguments accept decimal, 0x
// prefixed hexadecimal or $ prefixed hexadecimal.
package debugger
