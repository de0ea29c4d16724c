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

package digest_test

import (
	"testing"

	"github.com/wrenmcu/wren32/digest"
	"github.com/wrenmcu/wren32/hardware/cpu"
	"github.com/wrenmcu/wren32/test"
)

func TestChaining(t *testing.T) {
	dig := digest.NewRetirement()
	zero := dig.Hash()

	r := cpu.Result{Order: 1, Insn: 0x00100093, PC: 0x0, NextPC: 0x4}
	err := dig.Fold(r)
	test.ExpectSuccess(t, err)

	one := dig.Hash()
	test.Equate(t, one == zero, false)
	test.Equate(t, dig.Count(), uint64(1))

	// folding the next record must change the hash
	r.Order = 2
	r.PC = 0x4
	r.NextPC = 0x8
	err = dig.Fold(r)
	test.ExpectSuccess(t, err)
	test.Equate(t, dig.Hash() == one, false)
	test.Equate(t, dig.Count(), uint64(2))
}

func TestReproducible(t *testing.T) {
	a := digest.NewRetirement()
	b := digest.NewRetirement()

	records := []cpu.Result{
		{Order: 1, Insn: 0x00100093, PC: 0x0, NextPC: 0x4, Rd: 1, RdData: 1, RdWritten: true},
		{Order: 2, Insn: 0x00108133, PC: 0x4, NextPC: 0x8, Rd: 2, RdData: 2, RdWritten: true},
	}

	for _, r := range records {
		test.ExpectSuccess(t, a.Fold(r))
		test.ExpectSuccess(t, b.Fold(r))
	}

	test.Equate(t, a.Hash(), b.Hash())
}

func TestOrderSensitive(t *testing.T) {
	a := digest.NewRetirement()
	b := digest.NewRetirement()

	r1 := cpu.Result{Order: 1, Insn: 0x00100093}
	r2 := cpu.Result{Order: 2, Insn: 0x00200113}

	test.ExpectSuccess(t, a.Fold(r1))
	test.ExpectSuccess(t, a.Fold(r2))
	test.ExpectSuccess(t, b.Fold(r2))
	test.ExpectSuccess(t, b.Fold(r1))

	test.Equate(t, a.Hash() == b.Hash(), false)
}

func TestResetDigest(t *testing.T) {
	dig := digest.NewRetirement()
	zero := dig.Hash()

	test.ExpectSuccess(t, dig.Fold(cpu.Result{Order: 1}))
	test.Equate(t, dig.Hash() == zero, false)

	dig.ResetDigest()
	test.Equate(t, dig.Hash(), zero)
	test.Equate(t, dig.Count(), uint64(0))
}
