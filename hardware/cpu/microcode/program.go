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

// Notable addresses in the control store. The Window* values are the bases
// of the mapping table's dispatch windows; the minor opcode bits of an
// instruction are added to the base to find its routine entry.
const (
	AddrFetch    = 0x00
	AddrDispatch = 0x01
	AddrReset    = 0x02

	WindowLoad = 0x08

	AddrCSRDispatch = 0x24
	AddrCSRRo0      = 0x25
	AddrCSRW        = 0x26
	AddrCSRRW       = 0x27
	AddrCSRR        = 0x28
	AddrCSRRS       = 0x29
	AddrCSRRC       = 0x2A
	AddrCSRWI       = 0x2B
	AddrCSRRWI      = 0x2C
	AddrCSRRSI      = 0x2D
	AddrCSRRCI      = 0x2E

	WindowMiscMem = 0x30
	WindowOpImm   = 0x40
	WindowAUIPC   = 0x50
	WindowStore   = 0x80
	WindowBranch  = 0x88
	WindowJALR    = 0x98
	WindowJAL     = 0xB0
	WindowOp      = 0xC0
	WindowLUI     = 0xD0

	AddrTrap  = 0xF0
	AddrMRet  = 0xF8
	AddrHalt  = 0xFE
	AddrPanic = 0xFF
)

// internal routine addresses. bodies are placed in the gaps between the
// dispatch windows.
const (
	ldSigned   = 0x10 // 5 words
	ldUnsigned = 0x15 // 5 words

	ccBody   = 0x1A // clear body, 7 words (0x1A-0x20)
	csiStage = 0x21 // set-immediate staging, 2 words
	cciStage = 0x23 // clear-immediate staging, 1 word
	cciJoin  = 0x2F // second clear-immediate staging word

	ro0Body = 0x31 // 2 words
	cwBody  = 0x33 // write body, 2 words
	crwBody = 0x35 // read-write body, 3 words
	crBody  = 0x38 // read body, 3 words
	csBody  = 0x3B // set body, 5 words (0x3B-0x3F)

	// shared compute words, one per operation. each increments the PC
	// and hands over to the shared writeback word.
	aluAdd  = 0x52
	aluSlt  = 0x53
	aluSltu = 0x54
	aluXor  = 0x55
	aluOr   = 0x56
	aluAnd  = 0x57
	aluSub  = 0x58

	opStage = 0x59 // register-register operand staging, 7 words (0x59-0x5F)

	shImmCount = 0x60 // 3 words, one per shift flavour
	shLeft     = 0x63 // negate/loop/step/finish, 4 words
	shRight    = 0x67
	shRightA   = 0x6B
	shRegCount = 0x70 // 3 words

	stBody = 0x74 // 6 words (0x74-0x79)

	writeback = 0x7F // shared register writeback

	brStage  = 0x90 // operand/compare pairs: beq, bne, blt, bge
	brStage2 = 0xA0 // operand/compare pairs: bltu, bgeu
	brIfZero = 0xA8 // decide word + fall-through finish
	brIfNot  = 0xAA
	brTaken  = 0xAC // target check + PC load, 2 words

	jalrBody = 0x99
	jalBody  = 0xB1
)

// returnToFetch is the jump configuration that sends the sequencer back to
// the fetch word: a direct-zero jump whose test can never pass.
func returnToFetch(op Op) Op {
	op.Jmp = JmpDirectZero
	op.Cond = TestTrue
	op.Inv = true
	return op
}

// always is a direct jump whose test always passes.
func always(target uint8, op Op) Op {
	op.Jmp = JmpDirect
	op.Cond = TestTrue
	op.Target = target
	return op
}

// program returns the control program as a map from micro-PC address to
// unpacked word. Assembly packs and validates it.
func program() map[uint8]Op {
	p := map[uint8]Op{}

	add := func(addr uint8, op Op) {
		if _, ok := p[addr]; ok {
			// a duplicate address is a programming error in this file
			panic("duplicate control store address")
		}
		p[addr] = op
	}

	// fetch. spin until the bus acknowledges. the register file read
	// address is taken eagerly from the rs1 field of the arriving
	// instruction word on the acknowledge tick.
	add(AddrFetch, Op{
		InsnFetch: true, MemReq: true, MemSel: SelAuto,
		RegRead: true, RegRSel: RdRS1,
		Jmp: JmpDirect, Cond: TestMemValid, Inv: true, Target: AddrFetch,
	})

	// dispatch. the mapping table supplies the next micro-PC unless an
	// exception condition holds for the decoded instruction.
	add(AddrDispatch, Op{
		ExceptCtl: ExcLatchDecoder,
		Jmp:       JmpMap, Cond: TestException, Target: AddrTrap,
	})

	// reset. the first two ticks explicitly rewrite x0 and MCAUSE with
	// the (zero) ALU output before the first fetch.
	add(AddrReset, Op{
		RegWrite: true, RegWSel: WrZero, ALUOp: ALUAnd,
	})
	add(AddrReset+1, returnToFetch(Op{
		CSROp: CSRWrite, CSRSel: CSRSelTarget, Target: uint8(CSRTargetMCause),
	}))

	addLoads(add)
	addStores(add)
	addCompute(add)
	addShifts(add)
	addBranches(add)
	addJumps(add)
	addCSR(add)
	addTrap(add)

	// fence and wfi retire without touching any state
	add(WindowMiscMem, returnToFetch(Op{PC: PCInc}))

	// halt and panic both spin in place. the distinction is made by the
	// processor when it notices the micro-PC value.
	add(AddrHalt, always(AddrHalt, Op{}))
	add(AddrPanic, always(AddrPanic, Op{}))

	return p
}

func addLoads(add func(uint8, Op)) {
	// window entries. funct3 0/1/2 sign extend, 4/5 zero extend. the
	// transfer size is derived from funct3 so the two bodies are shared.
	entry := func(target uint8) Op {
		return always(target, Op{LatchA: true, ASrc: AGP, LatchB: true, BSrc: BImm})
	}
	add(WindowLoad+0, entry(ldSigned))
	add(WindowLoad+1, entry(ldSigned))
	add(WindowLoad+2, entry(ldSigned))
	add(WindowLoad+4, entry(ldUnsigned))
	add(WindowLoad+5, entry(ldUnsigned))

	body := func(base uint8, ext MemExtend) {
		// effective address
		add(base, Op{ALUOp: ALUAdd})

		// capture the address and check alignment before any bus
		// activity
		add(base+1, Op{
			LatchAdr: true, MemSel: SelAuto, ALUOp: ALUAdd,
			ExceptCtl: ExcLatchLoadAddr,
			Jmp:       JmpDirect, Cond: TestException, Target: AddrTrap,
		})

		// spin until acknowledge. the B latch picks up the widened
		// read data on the acknowledge tick.
		add(base+2, Op{
			MemReq: true, MemSel: SelAuto, MemExtend: ext,
			LatchA: true, ASrc: AZero,
			LatchB: true, BSrc: BDatR,
			Jmp: JmpDirect, Cond: TestMemValid, Inv: true, Target: base + 2,
		})

		// pass the datum through the ALU
		add(base+3, Op{ALUOp: ALUAdd, PC: PCInc})

		add(base+4, returnToFetch(Op{RegWrite: true, RegWSel: WrRD}))
	}
	body(ldSigned, ExtSign)
	body(ldUnsigned, ExtZero)
}

func addStores(add func(uint8, Op)) {
	entry := always(stBody, Op{
		LatchA: true, ASrc: AGP,
		LatchB: true, BSrc: BImm,
		RegRead: true, RegRSel: RdRS2,
	})
	add(WindowStore+0, entry)
	add(WindowStore+1, entry)
	add(WindowStore+2, entry)

	// effective address
	add(stBody, Op{ALUOp: ALUAdd})

	// capture the address, check alignment before any bus activity, and
	// stage the operands for the store value compute
	add(stBody+1, Op{
		LatchAdr: true, MemSel: SelAuto, ALUOp: ALUAdd,
		ExceptCtl: ExcLatchStoreAddr,
		Jmp:       JmpDirect, Cond: TestException, Target: AddrTrap,
		LatchA:    true, ASrc: AZero,
		LatchB:    true, BSrc: BGP,
	})

	// store value through the ALU
	add(stBody+2, Op{ALUOp: ALUAdd})

	// capture the write data
	add(stBody+3, Op{LatchData: true, MemSel: SelAuto})

	// spin until acknowledge
	add(stBody+4, Op{
		MemReq: true, WriteMem: true, MemSel: SelAuto,
		Jmp: JmpDirect, Cond: TestMemValid, Inv: true, Target: stBody + 4,
	})

	add(stBody+5, returnToFetch(Op{PC: PCInc}))
}

// addCompute covers the arithmetic and logic instructions with the
// exception of the shifts: the immediate forms, the register forms, and
// LUI/AUIPC. All of them converge on a shared per-operation compute word
// and a single shared writeback word.
func addCompute(add func(uint8, Op)) {
	// immediate entries latch x[rs1] and the immediate and go straight
	// to the compute word
	immEntry := func(target uint8) Op {
		return always(target, Op{LatchA: true, ASrc: AGP, LatchB: true, BSrc: BImm})
	}
	add(WindowOpImm+0, immEntry(aluAdd))  // addi
	add(WindowOpImm+2, immEntry(aluSlt))  // slti
	add(WindowOpImm+3, immEntry(aluSltu)) // sltiu
	add(WindowOpImm+4, immEntry(aluXor))  // xori
	add(WindowOpImm+6, immEntry(aluOr))   // ori
	add(WindowOpImm+7, immEntry(aluAnd))  // andi

	// register entries latch x[rs1] and point the read port at rs2. the
	// staging word picks up x[rs2] one tick later.
	regEntry := func(target uint8) Op {
		return always(target, Op{LatchA: true, ASrc: AGP, RegRead: true, RegRSel: RdRS2})
	}
	add(WindowOp+0, regEntry(opStage+0)) // add
	add(WindowOp+8, regEntry(opStage+1)) // sub
	add(WindowOp+2, regEntry(opStage+2)) // slt
	add(WindowOp+3, regEntry(opStage+3)) // sltu
	add(WindowOp+4, regEntry(opStage+4)) // xor
	add(WindowOp+6, regEntry(opStage+5)) // or
	add(WindowOp+7, regEntry(opStage+6)) // and

	stage := func(target uint8) Op {
		return always(target, Op{LatchB: true, BSrc: BGP})
	}
	add(opStage+0, stage(aluAdd))
	add(opStage+1, stage(aluSub))
	add(opStage+2, stage(aluSlt))
	add(opStage+3, stage(aluSltu))
	add(opStage+4, stage(aluXor))
	add(opStage+5, stage(aluOr))
	add(opStage+6, stage(aluAnd))

	// lui is zero plus the immediate; auipc is the immediate plus PC
	add(WindowLUI, always(aluAdd, Op{LatchA: true, ASrc: AZero, LatchB: true, BSrc: BImm}))
	add(WindowAUIPC, always(aluAdd, Op{LatchA: true, ASrc: AImm, LatchB: true, BSrc: BPC}))

	compute := func(op ALUOp, imod ALUIMod, omod ALUOMod) Op {
		return always(writeback, Op{ALUOp: op, IMod: imod, OMod: omod, PC: PCInc})
	}
	add(aluAdd, compute(ALUAdd, IModNone, OModNone))
	add(aluSlt, compute(ALULTU, IModInvMSB, OModNone))
	add(aluSltu, compute(ALULTU, IModNone, OModNone))
	add(aluXor, compute(ALUXor, IModNone, OModNone))
	add(aluOr, compute(ALUOr, IModNone, OModNone))
	add(aluAnd, compute(ALUAnd, IModNone, OModNone))
	add(aluSub, compute(ALUSub, IModNone, OModNone))

	add(writeback, returnToFetch(Op{RegWrite: true, RegWSel: WrRD}))
}

// addShifts builds the one-bit-per-tick shift loops. The shifted value
// lives in x[rd] between iterations and the loop counter is the negated
// shift count, counted upwards until its low five bits are zero.
func addShifts(add func(uint8, Op)) {
	immEntry := func(target uint8) Op {
		return always(target, Op{LatchA: true, ASrc: AZero, LatchB: true, BSrc: BGP})
	}
	add(WindowOpImm+1, immEntry(shImmCount+0))   // slli
	add(WindowOpImm+5, immEntry(shImmCount+1))   // srli
	add(WindowOpImm+8+5, immEntry(shImmCount+2)) // srai

	regEntry := func(target uint8) Op {
		return always(target, Op{
			LatchA: true, ASrc: AZero,
			LatchB: true, BSrc: BGP,
			RegRead: true, RegRSel: RdRS2,
		})
	}
	add(WindowOp+1, regEntry(shRegCount+0))   // sll
	add(WindowOp+5, regEntry(shRegCount+1))   // srl
	add(WindowOp+8+5, regEntry(shRegCount+2)) // sra

	// pass the value through the ALU and pick up the count, either from
	// the immediate or from the read port (now showing x[rs2])
	add(shImmCount+0, always(shLeft, Op{ALUOp: ALUAdd, LatchB: true, BSrc: BImm}))
	add(shImmCount+1, always(shRight, Op{ALUOp: ALUAdd, LatchB: true, BSrc: BImm}))
	add(shImmCount+2, always(shRightA, Op{ALUOp: ALUAdd, LatchB: true, BSrc: BImm}))
	add(shRegCount+0, always(shLeft, Op{ALUOp: ALUAdd, LatchB: true, BSrc: BGP}))
	add(shRegCount+1, always(shRight, Op{ALUOp: ALUAdd, LatchB: true, BSrc: BGP}))
	add(shRegCount+2, always(shRightA, Op{ALUOp: ALUAdd, LatchB: true, BSrc: BGP}))

	loop := func(base uint8, op ALUOp) {
		// negate the count, seed x[rd] with the unshifted value and
		// stage the value for the first shift
		add(base, Op{
			ALUOp:  ALUSub,
			LatchA: true, ASrc: AALUOut,
			RegWrite: true, RegWSel: WrRD,
		})

		// loop head. the ALU output register holds the running
		// counter; leave the loop when its low five bits are zero.
		// shift the value one position and stage the counter.
		add(base+1, Op{
			ALUOp:  op,
			LatchA: true, ASrc: AALUOut,
			LatchB: true, BSrc: BOne,
			Jmp:    JmpDirect, Cond: TestALULow5Zero, Target: base + 3,
		})

		// advance the counter, commit the shifted value to x[rd] and
		// stage it for the next shift
		add(base+2, always(base+1, Op{
			ALUOp:  ALUAdd,
			LatchA: true, ASrc: AALUOut,
			RegWrite: true, RegWSel: WrRD,
		}))

		add(base+3, returnToFetch(Op{PC: PCInc}))
	}
	loop(shLeft, ALUSLL1)
	loop(shRight, ALUSRL1)
	loop(shRightA, ALUSRA1)
}

func addBranches(add func(uint8, Op)) {
	entry := func(target uint8) Op {
		return always(target, Op{LatchA: true, ASrc: AGP, RegRead: true, RegRSel: RdRS2})
	}
	add(WindowBranch+0, entry(brStage+0)) // beq
	add(WindowBranch+1, entry(brStage+2)) // bne
	add(WindowBranch+4, entry(brStage+4)) // blt
	add(WindowBranch+5, entry(brStage+6)) // bge
	add(WindowBranch+6, entry(brStage2+0)) // bltu
	add(WindowBranch+7, entry(brStage2+2)) // bgeu

	pair := func(base uint8, op ALUOp, imod ALUIMod, omod ALUOMod, decide uint8) {
		// pick up x[rs2]
		add(base, Op{LatchB: true, BSrc: BGP})

		// compare, and stage the operands of the target address
		// compute while the comparison is in flight
		add(base+1, always(decide, Op{
			ALUOp: op, IMod: imod, OMod: omod,
			LatchA: true, ASrc: AImm,
			LatchB: true, BSrc: BPC,
		}))
	}
	pair(brStage+0, ALUSub, IModNone, OModNone, brIfZero)               // beq
	pair(brStage+2, ALUSub, IModNone, OModNone, brIfNot)                // bne
	pair(brStage+4, ALULTU, IModInvMSB, OModNone, brIfNot)              // blt
	pair(brStage+6, ALULTU, IModInvMSB, OModInvLSB, brIfNot)            // bge
	pair(brStage2+0, ALULTU, IModNone, OModNone, brIfNot)               // bltu
	pair(brStage2+2, ALULTU, IModNone, OModInvLSB, brIfNot)             // bgeu

	// decide words. the ALU output register holds the comparison result;
	// the target address is computed while deciding. fall through to the
	// not-taken finish.
	add(brIfZero, Op{
		ALUOp: ALUAdd,
		Jmp:   JmpDirect, Cond: TestALUZero, Target: brTaken,
	})
	add(brIfZero+1, returnToFetch(Op{PC: PCInc}))
	add(brIfNot, Op{
		ALUOp: ALUAdd,
		Jmp:   JmpDirect, Cond: TestALUZero, Inv: true, Target: brTaken,
	})
	add(brIfNot+1, returnToFetch(Op{PC: PCInc}))

	// taken. check the target for alignment before loading the PC. the
	// operands are held stable so the recomputed output stays the target.
	add(brTaken, Op{
		ALUOp:     ALUAdd,
		ExceptCtl: ExcLatchJumpTarget,
		Jmp:       JmpDirect, Cond: TestException, Target: AddrTrap,
	})
	add(brTaken+1, returnToFetch(Op{PC: PCLoadALU}))
}

func addJumps(add func(uint8, Op)) {
	// jal. target is PC plus immediate
	add(WindowJAL, Op{LatchA: true, ASrc: AImm, LatchB: true, BSrc: BPC})
	add(jalBody, Op{ALUOp: ALUAdd})
	add(jalBody+1, Op{
		ALUOp:     ALUAdd,
		ExceptCtl: ExcLatchJumpTarget,
		Jmp:       JmpDirect, Cond: TestException, Target: AddrTrap,
		LatchA:    true, ASrc: AFour,
	})
	add(jalBody+2, Op{ALUOp: ALUAdd, PC: PCLoadALU})
	add(jalBody+3, returnToFetch(Op{RegWrite: true, RegWSel: WrRD}))

	// jalr. target is x[rs1] plus immediate with the low bit cleared
	add(WindowJALR, Op{LatchA: true, ASrc: AGP, LatchB: true, BSrc: BImm})
	add(jalrBody, Op{ALUOp: ALUAdd, OMod: OModClearLSB})
	add(jalrBody+1, Op{
		ALUOp: ALUAdd, OMod: OModClearLSB,
		ExceptCtl: ExcLatchJumpTarget,
		Jmp:       JmpDirect, Cond: TestException, Target: AddrTrap,
		LatchA:    true, ASrc: AFour,
		LatchB:    true, BSrc: BPC,
	})
	add(jalrBody+2, Op{ALUOp: ALUAdd, PC: PCLoadALU})
	add(jalrBody+3, returnToFetch(Op{RegWrite: true, RegWSel: WrRD}))
}

func addCSR(add func(uint8, Op)) {
	// second dispatch. the routine address for a CSR instruction is only
	// valid one tick after the first dispatch; the window sends every CSR
	// instruction here and the mapping table is consulted again. CSR
	// legality faults are caught on this word.
	add(AddrCSRDispatch, Op{
		ExceptCtl: ExcLatchDecoder,
		Jmp:       JmpMap, Cond: TestException, Target: AddrTrap,
	})

	// read of a read-only-zero CSR; also absorbs dropped writes
	add(AddrCSRRo0, always(ro0Body, Op{LatchA: true, ASrc: AZero}))
	add(ro0Body, Op{ALUOp: ALUAnd, PC: PCInc})
	add(ro0Body+1, returnToFetch(Op{RegWrite: true, RegWSel: WrRD}))

	// write without read
	add(AddrCSRW, always(cwBody, Op{LatchA: true, ASrc: AZero, LatchB: true, BSrc: BGP}))
	add(AddrCSRWI, always(cwBody, Op{LatchA: true, ASrc: AZero, LatchB: true, BSrc: BCSRImm}))
	add(cwBody, Op{ALUOp: ALUAdd, PC: PCInc})
	add(cwBody+1, returnToFetch(Op{CSROp: CSRWrite, CSRSel: CSRSelInsn}))

	// read then write
	add(AddrCSRRW, always(crwBody, Op{
		CSROp: CSRRead, CSRSel: CSRSelInsn,
		LatchA: true, ASrc: AZero,
		LatchB: true, BSrc: BGP,
	}))
	add(AddrCSRRWI, always(crwBody, Op{
		CSROp: CSRRead, CSRSel: CSRSelInsn,
		LatchA: true, ASrc: AZero,
		LatchB: true, BSrc: BCSRImm,
	}))
	add(crwBody, Op{ALUOp: ALUAdd, LatchB: true, BSrc: BCSR})
	add(crwBody+1, Op{
		CSROp: CSRWrite, CSRSel: CSRSelInsn,
		ALUOp: ALUAdd, PC: PCInc,
	})
	add(crwBody+2, returnToFetch(Op{RegWrite: true, RegWSel: WrRD}))

	// read without write
	add(AddrCSRR, always(crBody, Op{
		CSROp: CSRRead, CSRSel: CSRSelInsn,
		LatchA: true, ASrc: AZero,
	}))
	add(crBody, Op{LatchB: true, BSrc: BCSR})
	add(crBody+1, Op{ALUOp: ALUAdd, PC: PCInc})
	add(crBody+2, returnToFetch(Op{RegWrite: true, RegWSel: WrRD}))

	// read then set bits. the mask arrives in the A latch.
	add(AddrCSRRS, always(csBody, Op{
		CSROp: CSRRead, CSRSel: CSRSelInsn,
		LatchA: true, ASrc: AGP,
	}))
	add(csBody, Op{LatchB: true, BSrc: BCSR})
	add(csBody+1, Op{ALUOp: ALUOr})
	add(csBody+2, Op{
		CSROp: CSRWrite, CSRSel: CSRSelInsn,
		ALUOp: ALUOr,
		LatchA: true, ASrc: AZero,
	})
	add(csBody+3, Op{ALUOp: ALUAdd, PC: PCInc})
	add(csBody+4, returnToFetch(Op{RegWrite: true, RegWSel: WrRD}))

	// read then clear bits. old AND mask, XORed back out of old.
	add(AddrCSRRC, always(ccBody, Op{
		CSROp: CSRRead, CSRSel: CSRSelInsn,
		LatchA: true, ASrc: AGP,
	}))
	add(ccBody, Op{LatchB: true, BSrc: BCSR})
	add(ccBody+1, Op{ALUOp: ALUAnd})
	add(ccBody+2, Op{ALUOp: ALUAnd, LatchA: true, ASrc: AALUOut})
	add(ccBody+3, Op{ALUOp: ALUXor})
	add(ccBody+4, Op{
		CSROp: CSRWrite, CSRSel: CSRSelInsn,
		ALUOp: ALUXor,
		LatchA: true, ASrc: AZero,
	})
	add(ccBody+5, Op{ALUOp: ALUAdd, PC: PCInc})
	add(ccBody+6, returnToFetch(Op{RegWrite: true, RegWSel: WrRD}))

	// the immediate set/clear forms have no register path for the mask;
	// it is passed through the ALU and staged into the A latch before
	// joining the register-form bodies
	add(AddrCSRRSI, always(csiStage, Op{
		CSROp: CSRRead, CSRSel: CSRSelInsn,
		LatchA: true, ASrc: AZero,
		LatchB: true, BSrc: BCSRImm,
	}))
	add(csiStage, Op{ALUOp: ALUAdd})
	add(csiStage+1, always(csBody+1, Op{
		LatchA: true, ASrc: AALUOut,
		LatchB: true, BSrc: BCSR,
	}))

	add(AddrCSRRCI, always(cciStage, Op{
		CSROp: CSRRead, CSRSel: CSRSelInsn,
		LatchA: true, ASrc: AZero,
		LatchB: true, BSrc: BCSRImm,
	}))
	add(cciStage, always(cciJoin, Op{ALUOp: ALUAdd}))
	add(cciJoin, always(ccBody+1, Op{
		LatchA: true, ASrc: AALUOut,
		LatchB: true, BSrc: BCSR,
	}))
}

func addTrap(add func(uint8, Op)) {
	// trap entry. the handler base is read first; the PC and the latched
	// cause then flow through the ALU into MEPC and MCAUSE in turn.
	add(AddrTrap, Op{
		ExceptCtl: ExcEnterTrap,
		CSROp:     CSRRead, CSRSel: CSRSelTarget, Target: uint8(CSRTargetMTvec),
		LatchA:    true, ASrc: AZero,
		LatchB:    true, BSrc: BPC,
	})
	add(AddrTrap+1, Op{
		ALUOp:  ALUAdd,
		LatchB: true, BSrc: BMCauseLatch,
	})
	add(AddrTrap+2, Op{
		CSROp: CSRWrite, CSRSel: CSRSelTarget, Target: uint8(CSRTargetMEpc),
		ALUOp: ALUAdd,
		LatchB: true, BSrc: BCSR,
	})
	add(AddrTrap+3, Op{
		CSROp: CSRWrite, CSRSel: CSRSelTarget, Target: uint8(CSRTargetMCause),
		ALUOp: ALUAdd,
	})
	add(AddrTrap+4, returnToFetch(Op{PC: PCLoadALU}))

	// mret
	add(AddrMRet, Op{
		CSROp: CSRRead, CSRSel: CSRSelTarget, Target: uint8(CSRTargetMEpc),
		LatchA: true, ASrc: AZero,
	})
	add(AddrMRet+1, Op{LatchB: true, BSrc: BCSR})
	add(AddrMRet+2, Op{ALUOp: ALUAdd, ExceptCtl: ExcLeaveTrap})
	add(AddrMRet+3, returnToFetch(Op{PC: PCLoadALU}))
}
