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

package memory

import (
	"github.com/wrenmcu/wren32/curated"
)

// RAMError is returned when the RAM cannot be created or loaded.
const RAMError = "ram: %v"

// RAM is a single ported word organised memory that acknowledges every
// request on the tick it is presented. Addresses wrap at the memory size.
type RAM struct {
	words []uint32

	// optional wait states. a value of n means a request is acknowledged
	// on the tick it has been continuously presented for n extra ticks.
	WaitStates int

	held int
}

// NewRAM creates a RAM of the given size in bytes, rounded up to a whole
// number of words.
func NewRAM(size uint32) *RAM {
	return &RAM{words: make([]uint32, (size+3)>>2)}
}

// Load the byte image into RAM starting at byte address zero.
func (r *RAM) Load(image []byte) error {
	if len(image) > len(r.words)*4 {
		return curated.Errorf(RAMError, "image larger than memory")
	}
	for i, b := range image {
		w := i >> 2
		sh := uint(i&3) * 8
		r.words[w] = r.words[w]&^(0xff<<sh) | uint32(b)<<sh
	}
	return nil
}

// LoadWords writes the word image into RAM starting at word address zero.
func (r *RAM) LoadWords(image []uint32) error {
	if len(image) > len(r.words) {
		return curated.Errorf(RAMError, "image larger than memory")
	}
	copy(r.words, image)
	return nil
}

// Poke writes a word directly, bypassing the bus.
func (r *RAM) Poke(byteAddr uint32, value uint32) {
	r.words[(byteAddr>>2)%uint32(len(r.words))] = value
}

// Peek reads a word directly, bypassing the bus.
func (r *RAM) Peek(byteAddr uint32) uint32 {
	return r.words[(byteAddr>>2)%uint32(len(r.words))]
}

// Tick implements the Bus interface.
func (r *RAM) Tick(p Pins) (bool, uint32) {
	if !p.Cyc || !p.Stb {
		r.held = 0
		return false, 0
	}

	if r.held < r.WaitStates {
		r.held++
		return false, 0
	}
	r.held = 0

	idx := p.Addr % uint32(len(r.words))

	if p.We {
		var mask uint32
		for lane := uint(0); lane < 4; lane++ {
			if p.Sel&(1<<lane) != 0 {
				mask |= 0xff << (lane * 8)
			}
		}
		r.words[idx] = r.words[idx]&^mask | p.DatW&mask
		return true, 0
	}

	return true, r.words[idx]
}
