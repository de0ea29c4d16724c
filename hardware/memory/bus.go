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

// Package memory defines the bus the processor is a master of and
// provides the RAM model attached to it in the default machine.
package memory

// Pins is the master side of the bus for one tick: a classic
// single-transfer handshake with a 30 bit word address, byte selects and
// separate read and write data paths.
type Pins struct {
	Cyc bool
	Stb bool
	We  bool

	// word address. the low two bits of the byte address travel in Sel.
	Addr uint32

	// byte lane selects
	Sel uint8

	// write data, already shifted onto the selected lanes
	DatW uint32
}

// Bus is implemented by anything the processor can be wired to. Tick
// presents the master pins for one clock tick and reports whether the
// slave acknowledged, along with the read data when it did.
type Bus interface {
	Tick(p Pins) (ack bool, datR uint32)
}
