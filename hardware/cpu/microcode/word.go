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
	"fmt"

	"github.com/wrenmcu/wren32/curated"
)

// Word is a single horizontal control word, packed into 49 bits of a
// uint64. Words are immutable once assembled; the accessor functions are
// the only way of looking inside.
type Word uint64

// bit layout of a Word. each entry is the position of the field's least
// significant bit. widths are given alongside.
const (
	shTarget    = 0  // 8 bits
	shJmp       = 8  // 2 bits
	shCond      = 10 // 3 bits
	shInv       = 13 // 1 bit
	shPC        = 14 // 2 bits
	shLatchA    = 16 // 1 bit
	shLatchB    = 17 // 1 bit
	shASrc      = 18 // 3 bits
	shBSrc      = 21 // 3 bits
	shALUOp     = 24 // 4 bits
	shIMod      = 28 // 1 bit
	shOMod      = 29 // 2 bits
	shRegRead   = 31 // 1 bit
	shRegWrite  = 32 // 1 bit
	shRegRSel   = 33 // 1 bit
	shRegWSel   = 34 // 1 bit
	shCSROp     = 35 // 2 bits
	shCSRSel    = 37 // 1 bit
	shMemReq    = 38 // 1 bit
	shWriteMem  = 39 // 1 bit
	shInsnFetch = 40 // 1 bit
	shMemSel    = 41 // 2 bits
	shMemExtend = 43 // 1 bit
	shLatchAdr  = 44 // 1 bit
	shLatchData = 45 // 1 bit
	shExceptCtl = 46 // 3 bits

	// WordWidth is the number of bits in use
	WordWidth = 49
)

// PackingError is returned when an Op cannot be encoded as a Word.
const PackingError = "microcode: packing: %v"

// Op is the unpacked form of a control word. The zero value is a word that
// does nothing except continue to the next micro-PC.
type Op struct {
	Target    uint8
	Jmp       JmpType
	Cond      CondTest
	Inv       bool
	PC        PCAction
	LatchA    bool
	LatchB    bool
	ASrc      ASrc
	BSrc      BSrc
	ALUOp     ALUOp
	IMod      ALUIMod
	OMod      ALUOMod
	RegRead   bool
	RegWrite  bool
	RegRSel   RegRSel
	RegWSel   RegWSel
	CSROp     CSROp
	CSRSel    CSRSel
	MemReq    bool
	WriteMem  bool
	InsnFetch bool
	MemSel    MemSel
	MemExtend MemExtend
	LatchAdr  bool
	LatchData bool
	ExceptCtl ExceptCtl
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Pack encodes an Op as a Word, checking that every field fits its
// allocated width and that mutually exclusive fields are not combined.
func Pack(op Op) (Word, error) {
	check := func(name string, v uint64, width uint) error {
		if v >= 1<<width {
			return curated.Errorf(PackingError, fmt.Sprintf("%s value %d too wide for %d bits", name, v, width))
		}
		return nil
	}

	for _, c := range []struct {
		name  string
		v     uint64
		width uint
	}{
		{"jmp", uint64(op.Jmp), 2},
		{"cond", uint64(op.Cond), 3},
		{"pc", uint64(op.PC), 2},
		{"aSrc", uint64(op.ASrc), 3},
		{"bSrc", uint64(op.BSrc), 3},
		{"aluOp", uint64(op.ALUOp), 4},
		{"iMod", uint64(op.IMod), 1},
		{"oMod", uint64(op.OMod), 2},
		{"regRSel", uint64(op.RegRSel), 1},
		{"regWSel", uint64(op.RegWSel), 1},
		{"csrOp", uint64(op.CSROp), 2},
		{"csrSel", uint64(op.CSRSel), 1},
		{"memSel", uint64(op.MemSel), 2},
		{"memExtend", uint64(op.MemExtend), 1},
		{"exceptCtl", uint64(op.ExceptCtl), 3},
	} {
		if err := check(c.name, c.v, c.width); err != nil {
			return 0, err
		}
	}

	// a CSR operation borrows the write value path used by the register
	// file. the two never appear together.
	if op.CSROp != CSRNone && op.RegWrite {
		return 0, curated.Errorf(PackingError, "csrOp and regWrite in the same word")
	}

	// a word that addresses a CSR through the target field cannot also
	// jump through the target field
	if op.CSROp != CSRNone && op.CSRSel == CSRSelTarget {
		if op.Jmp == JmpDirect || op.Jmp == JmpMap {
			return 0, curated.Errorf(PackingError, "csrSel target and a target jump in the same word")
		}
	}

	var w uint64
	w |= uint64(op.Target) << shTarget
	w |= uint64(op.Jmp) << shJmp
	w |= uint64(op.Cond) << shCond
	w |= b2u(op.Inv) << shInv
	w |= uint64(op.PC) << shPC
	w |= b2u(op.LatchA) << shLatchA
	w |= b2u(op.LatchB) << shLatchB
	w |= uint64(op.ASrc) << shASrc
	w |= uint64(op.BSrc) << shBSrc
	w |= uint64(op.ALUOp) << shALUOp
	w |= uint64(op.IMod) << shIMod
	w |= uint64(op.OMod) << shOMod
	w |= b2u(op.RegRead) << shRegRead
	w |= b2u(op.RegWrite) << shRegWrite
	w |= uint64(op.RegRSel) << shRegRSel
	w |= uint64(op.RegWSel) << shRegWSel
	w |= uint64(op.CSROp) << shCSROp
	w |= uint64(op.CSRSel) << shCSRSel
	w |= b2u(op.MemReq) << shMemReq
	w |= b2u(op.WriteMem) << shWriteMem
	w |= b2u(op.InsnFetch) << shInsnFetch
	w |= uint64(op.MemSel) << shMemSel
	w |= uint64(op.MemExtend) << shMemExtend
	w |= b2u(op.LatchAdr) << shLatchAdr
	w |= b2u(op.LatchData) << shLatchData
	w |= uint64(op.ExceptCtl) << shExceptCtl

	return Word(w), nil
}

func (w Word) bit(sh uint) bool {
	return (w>>sh)&1 == 1
}

// Target field of the word. Also carries the CSRTarget value for words
// with CSRSel of CSRSelTarget.
func (w Word) Target() uint8 { return uint8(w >> shTarget) }

// Jmp type of the word.
func (w Word) Jmp() JmpType { return JmpType((w >> shJmp) & 0x3) }

// Cond test of the word.
func (w Word) Cond() CondTest { return CondTest((w >> shCond) & 0x7) }

// Inv indicates the condition test result is inverted.
func (w Word) Inv() bool { return w.bit(shInv) }

// PC action of the word.
func (w Word) PC() PCAction { return PCAction((w >> shPC) & 0x3) }

// LatchA indicates the A operand latch captures this tick.
func (w Word) LatchA() bool { return w.bit(shLatchA) }

// LatchB indicates the B operand latch captures this tick.
func (w Word) LatchB() bool { return w.bit(shLatchB) }

// ASrc of the A operand latch.
func (w Word) ASrc() ASrc { return ASrc((w >> shASrc) & 0x7) }

// BSrc of the B operand latch.
func (w Word) BSrc() BSrc { return BSrc((w >> shBSrc) & 0x7) }

// ALUOp applied to the operand latches.
func (w Word) ALUOp() ALUOp { return ALUOp((w >> shALUOp) & 0xf) }

// IMod applied to the ALU inputs.
func (w Word) IMod() ALUIMod { return ALUIMod((w >> shIMod) & 0x1) }

// OMod applied to the ALU output.
func (w Word) OMod() ALUOMod { return ALUOMod((w >> shOMod) & 0x3) }

// RegRead indicates the register file read address is updated this tick.
func (w Word) RegRead() bool { return w.bit(shRegRead) }

// RegWrite indicates the register file is written this tick.
func (w Word) RegWrite() bool { return w.bit(shRegWrite) }

// RegRSel selects the read address source.
func (w Word) RegRSel() RegRSel { return RegRSel((w >> shRegRSel) & 0x1) }

// RegWSel selects the write address source.
func (w Word) RegWSel() RegWSel { return RegWSel((w >> shRegWSel) & 0x1) }

// CSROp of the word.
func (w Word) CSROp() CSROp { return CSROp((w >> shCSROp) & 0x3) }

// CSRSel of the word.
func (w Word) CSRSel() CSRSel { return CSRSel((w >> shCSRSel) & 0x1) }

// CSRTarget interpretation of the target field.
func (w Word) CSRTarget() CSRTarget { return CSRTarget(w.Target()) }

// MemReq indicates a bus request is driven this tick.
func (w Word) MemReq() bool { return w.bit(shMemReq) }

// WriteMem indicates the bus request is a write.
func (w Word) WriteMem() bool { return w.bit(shWriteMem) }

// InsnFetch indicates the bus request is an instruction fetch at PC.
func (w Word) InsnFetch() bool { return w.bit(shInsnFetch) }

// MemSel gives the transfer size of the bus request.
func (w Word) MemSel() MemSel { return MemSel((w >> shMemSel) & 0x3) }

// MemExtend gives the widening applied to sub-word load data.
func (w Word) MemExtend() MemExtend { return MemExtend((w >> shMemExtend) & 0x1) }

// LatchAdr indicates the data address register captures the ALU output.
func (w Word) LatchAdr() bool { return w.bit(shLatchAdr) }

// LatchData indicates the write data register captures the ALU output.
func (w Word) LatchData() bool { return w.bit(shLatchData) }

// ExceptCtl instruction for the exception router.
func (w Word) ExceptCtl() ExceptCtl { return ExceptCtl((w >> shExceptCtl) & 0x7) }

func (w Word) String() string {
	return fmt.Sprintf("jmp=%s cond=%s inv=%v target=%02x pc=%s exc=%s",
		w.Jmp(), w.Cond(), w.Inv(), w.Target(), w.PC(), w.ExceptCtl())
}
