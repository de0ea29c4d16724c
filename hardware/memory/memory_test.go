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

package memory_test

import (
	"testing"

	"github.com/wrenmcu/wren32/hardware/memory"
	"github.com/wrenmcu/wren32/test"
)

func TestReadWrite(t *testing.T) {
	ram := memory.NewRAM(1024)

	ack, _ := ram.Tick(memory.Pins{Cyc: true, Stb: true, We: true, Addr: 4, Sel: 0x0f, DatW: 0x11223344})
	test.Equate(t, ack, true)

	ack, datR := ram.Tick(memory.Pins{Cyc: true, Stb: true, Addr: 4})
	test.Equate(t, ack, true)
	test.Equate(t, datR, 0x11223344)
}

func TestByteLanes(t *testing.T) {
	ram := memory.NewRAM(1024)
	ram.Poke(0, 0xaabbccdd)

	// write a single byte into lane 2
	_, _ = ram.Tick(memory.Pins{Cyc: true, Stb: true, We: true, Addr: 0, Sel: 0x04, DatW: 0x00ee0000})
	test.Equate(t, ram.Peek(0), 0xaaeeccdd)

	// write a half word into lanes 0 and 1
	_, _ = ram.Tick(memory.Pins{Cyc: true, Stb: true, We: true, Addr: 0, Sel: 0x03, DatW: 0x00001234})
	test.Equate(t, ram.Peek(0), 0xaaee1234)
}

func TestIdleBus(t *testing.T) {
	ram := memory.NewRAM(1024)
	ack, _ := ram.Tick(memory.Pins{})
	test.Equate(t, ack, false)

	ack, _ = ram.Tick(memory.Pins{Cyc: true})
	test.Equate(t, ack, false)
}

func TestWaitStates(t *testing.T) {
	ram := memory.NewRAM(1024)
	ram.WaitStates = 2
	ram.Poke(8, 0x99)

	p := memory.Pins{Cyc: true, Stb: true, Addr: 2}
	ack, _ := ram.Tick(p)
	test.Equate(t, ack, false)
	ack, _ = ram.Tick(p)
	test.Equate(t, ack, false)
	ack, datR := ram.Tick(p)
	test.Equate(t, ack, true)
	test.Equate(t, datR, 0x99)
}

func TestLoadImage(t *testing.T) {
	ram := memory.NewRAM(8)
	err := ram.Load([]byte{0x11, 0x22, 0x33, 0x44, 0x55})
	test.ExpectSuccess(t, err)
	test.Equate(t, ram.Peek(0), 0x44332211)
	test.Equate(t, ram.Peek(4), 0x00000055)

	err = ram.Load(make([]byte, 9))
	test.ExpectFailure(t, err)
}
