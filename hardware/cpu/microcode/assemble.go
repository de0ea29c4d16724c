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

package microcode

import (
	"github.com/wrenmcu/wren32/curated"
)

// AssemblyError is returned when the control program cannot be assembled.
const AssemblyError = "microcode: assembly: %v"

// Store is the immutable control store. It is addressed by the 8-bit
// micro-PC and every address yields a valid Word. Addresses that the
// program leaves unpopulated hold a word that jumps to the panic address.
type Store struct {
	words [256]Word

	// which addresses were explicitly populated
	populated [256]bool
}

// Word at the given micro-PC address.
func (s *Store) Word(upc uint8) Word {
	return s.words[upc]
}

// Populated returns true if the address was given a word by the control
// program, as opposed to the jump-to-panic filler.
func (s *Store) Populated(upc uint8) bool {
	return s.populated[upc]
}

// NewStore assembles the built-in control program.
func NewStore() (*Store, error) {
	return assemble(program())
}

func assemble(prog map[uint8]Op) (*Store, error) {
	s := &Store{}

	filler, err := Pack(Op{Jmp: JmpDirect, Cond: TestTrue, Target: AddrPanic})
	if err != nil {
		return nil, curated.Errorf(AssemblyError, err)
	}
	for i := range s.words {
		s.words[i] = filler
	}

	for addr, op := range prog {
		w, err := Pack(op)
		if err != nil {
			return nil, curated.Errorf(AssemblyError,
				curated.Errorf("address %02x: %v", addr, err))
		}
		s.words[addr] = w
		s.populated[addr] = true
	}

	// every jump through the target field must land on a populated word.
	// a word whose condition can never pass does not use its target and
	// is excluded, as is the panic address itself.
	for addr := 0; addr < 256; addr++ {
		if !s.populated[addr] {
			continue
		}
		w := s.words[addr]

		usesTarget := false
		switch w.Jmp() {
		case JmpDirect, JmpMap:
			usesTarget = true
		case JmpDirectZero:
			usesTarget = !(w.Cond() == TestTrue && w.Inv())
		}

		if usesTarget && !s.populated[w.Target()] {
			return nil, curated.Errorf(AssemblyError,
				curated.Errorf("address %02x jumps to unpopulated %02x", addr, w.Target()))
		}

		// fall-through must also land somewhere sensible
		fallsThrough := w.Jmp() == JmpCont ||
			(w.Jmp() == JmpDirect && !(w.Cond() == TestTrue && !w.Inv())) ||
			w.Jmp() == JmpMap
		if w.Jmp() == JmpMap {
			// the mapping table takes over; nothing to check here
			fallsThrough = false
		}
		if fallsThrough && addr < 255 && !s.populated[addr+1] {
			return nil, curated.Errorf(AssemblyError,
				curated.Errorf("address %02x falls through to unpopulated %02x", addr, addr+1))
		}
	}

	return s, nil
}
