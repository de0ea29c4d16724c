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

package microcode_test

import (
	"testing"

	"github.com/wrenmcu/wren32/hardware/cpu/microcode"
	"github.com/wrenmcu/wren32/test"
)

func TestAssembleBuiltin(t *testing.T) {
	s, err := microcode.NewStore()
	test.ExpectSuccess(t, err)
	test.Equate(t, s.Populated(microcode.AddrFetch), true)
	test.Equate(t, s.Populated(microcode.AddrDispatch), true)
	test.Equate(t, s.Populated(microcode.AddrReset), true)
	test.Equate(t, s.Populated(microcode.AddrTrap), true)
	test.Equate(t, s.Populated(microcode.AddrMRet), true)
	test.Equate(t, s.Populated(microcode.AddrHalt), true)
	test.Equate(t, s.Populated(microcode.AddrPanic), true)
}

func TestPackRoundTrip(t *testing.T) {
	op := microcode.Op{
		Target:    0x42,
		Jmp:       microcode.JmpDirect,
		Cond:      microcode.TestALUZero,
		Inv:       true,
		PC:        microcode.PCInc,
		LatchA:    true,
		LatchB:    true,
		ASrc:      microcode.AImm,
		BSrc:      microcode.BPC,
		ALUOp:     microcode.ALUSub,
		IMod:      microcode.IModInvMSB,
		OMod:      microcode.OModInvLSB,
		RegRead:   true,
		RegWrite:  true,
		RegRSel:   microcode.RdRS2,
		RegWSel:   microcode.WrRD,
		MemReq:    true,
		WriteMem:  true,
		MemSel:    microcode.SelHalf,
		MemExtend: microcode.ExtSign,
		LatchAdr:  true,
		LatchData: true,
		ExceptCtl: microcode.ExcLatchStoreAddr,
	}

	w, err := microcode.Pack(op)
	test.ExpectSuccess(t, err)

	test.Equate(t, int(w.Target()), 0x42)
	test.Equate(t, int(w.Jmp()), int(microcode.JmpDirect))
	test.Equate(t, int(w.Cond()), int(microcode.TestALUZero))
	test.Equate(t, w.Inv(), true)
	test.Equate(t, int(w.PC()), int(microcode.PCInc))
	test.Equate(t, w.LatchA(), true)
	test.Equate(t, w.LatchB(), true)
	test.Equate(t, int(w.ASrc()), int(microcode.AImm))
	test.Equate(t, int(w.BSrc()), int(microcode.BPC))
	test.Equate(t, int(w.ALUOp()), int(microcode.ALUSub))
	test.Equate(t, int(w.IMod()), int(microcode.IModInvMSB))
	test.Equate(t, int(w.OMod()), int(microcode.OModInvLSB))
	test.Equate(t, w.RegRead(), true)
	test.Equate(t, w.RegWrite(), true)
	test.Equate(t, int(w.RegRSel()), int(microcode.RdRS2))
	test.Equate(t, int(w.RegWSel()), int(microcode.WrRD))
	test.Equate(t, w.MemReq(), true)
	test.Equate(t, w.WriteMem(), true)
	test.Equate(t, int(w.MemSel()), int(microcode.SelHalf))
	test.Equate(t, int(w.MemExtend()), int(microcode.ExtSign))
	test.Equate(t, w.LatchAdr(), true)
	test.Equate(t, w.LatchData(), true)
	test.Equate(t, int(w.ExceptCtl()), int(microcode.ExcLatchStoreAddr))
}

func TestPackZeroValue(t *testing.T) {
	w, err := microcode.Pack(microcode.Op{})
	test.ExpectSuccess(t, err)
	test.Equate(t, int(w.Jmp()), int(microcode.JmpCont))
	test.Equate(t, int(w.PC()), int(microcode.PCHold))
	test.Equate(t, w.RegWrite(), false)
	test.Equate(t, w.MemReq(), false)
}

func TestPackExclusions(t *testing.T) {
	// a CSR operation and a register write cannot share a word
	_, err := microcode.Pack(microcode.Op{
		CSROp:    microcode.CSRWrite,
		RegWrite: true,
	})
	test.ExpectFailure(t, err)

	// a target-addressed CSR operation cannot share a word with a
	// target jump
	_, err = microcode.Pack(microcode.Op{
		CSROp:  microcode.CSRRead,
		CSRSel: microcode.CSRSelTarget,
		Jmp:    microcode.JmpDirect,
	})
	test.ExpectFailure(t, err)

	_, err = microcode.Pack(microcode.Op{
		CSROp:  microcode.CSRRead,
		CSRSel: microcode.CSRSelTarget,
		Jmp:    microcode.JmpMap,
	})
	test.ExpectFailure(t, err)

	// a target-addressed CSR operation alongside a continue is fine
	_, err = microcode.Pack(microcode.Op{
		CSROp:  microcode.CSRRead,
		CSRSel: microcode.CSRSelTarget,
	})
	test.ExpectSuccess(t, err)
}

func TestPackWidthCheck(t *testing.T) {
	_, err := microcode.Pack(microcode.Op{ALUOp: 16})
	test.ExpectFailure(t, err)

	_, err = microcode.Pack(microcode.Op{Cond: 8})
	test.ExpectFailure(t, err)
}

func TestFetchWord(t *testing.T) {
	s, err := microcode.NewStore()
	test.ExpectSuccess(t, err)

	w := s.Word(microcode.AddrFetch)
	test.Equate(t, w.InsnFetch(), true)
	test.Equate(t, w.MemReq(), true)
	test.Equate(t, w.RegRead(), true)
	test.Equate(t, int(w.RegRSel()), int(microcode.RdRS1))
	test.Equate(t, int(w.Jmp()), int(microcode.JmpDirect))
	test.Equate(t, int(w.Cond()), int(microcode.TestMemValid))
	test.Equate(t, w.Inv(), true)
	test.Equate(t, int(w.Target()), int(microcode.AddrFetch))
}

func TestDispatchWord(t *testing.T) {
	s, err := microcode.NewStore()
	test.ExpectSuccess(t, err)

	w := s.Word(microcode.AddrDispatch)
	test.Equate(t, int(w.Jmp()), int(microcode.JmpMap))
	test.Equate(t, int(w.Cond()), int(microcode.TestException))
	test.Equate(t, int(w.Target()), int(microcode.AddrTrap))
	test.Equate(t, int(w.ExceptCtl()), int(microcode.ExcLatchDecoder))
}

func TestHaltAndPanicSpin(t *testing.T) {
	s, err := microcode.NewStore()
	test.ExpectSuccess(t, err)

	for _, addr := range []uint8{microcode.AddrHalt, microcode.AddrPanic} {
		w := s.Word(addr)
		test.Equate(t, int(w.Jmp()), int(microcode.JmpDirect))
		test.Equate(t, int(w.Cond()), int(microcode.TestTrue))
		test.Equate(t, w.Inv(), false)
		test.Equate(t, int(w.Target()), int(addr))
	}
}

func TestUnpopulatedFiller(t *testing.T) {
	s, err := microcode.NewStore()
	test.ExpectSuccess(t, err)

	// find any unpopulated address and check the filler jumps to panic
	for addr := 0; addr < 256; addr++ {
		if s.Populated(uint8(addr)) {
			continue
		}
		w := s.Word(uint8(addr))
		test.Equate(t, int(w.Jmp()), int(microcode.JmpDirect))
		test.Equate(t, int(w.Cond()), int(microcode.TestTrue))
		test.Equate(t, int(w.Target()), int(microcode.AddrPanic))
	}
}

func TestPackAlwaysTakenJump(t *testing.T) {
	// assembly of the builtin program succeeds so the validation paths
	// are only reachable through a custom program. Pack level checks
	// are still worth confirming against an always taken jump.
	w, err := microcode.Pack(microcode.Op{
		Jmp:    microcode.JmpDirect,
		Cond:   microcode.TestTrue,
		Target: 0x17,
	})
	test.ExpectSuccess(t, err)
	test.Equate(t, int(w.Target()), 0x17)
}
