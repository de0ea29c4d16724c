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

// Package cpu ties the control store, the datapath and the bus together
// into a clocked processor. One call to Tick is one clock tick; all state
// commits happen together at the end of the call, computed from the state
// the call began with.
package cpu

import (
	"fmt"

	"github.com/wrenmcu/wren32/curated"
	"github.com/wrenmcu/wren32/hardware/cpu/alu"
	"github.com/wrenmcu/wren32/hardware/cpu/csr"
	"github.com/wrenmcu/wren32/hardware/cpu/decode"
	"github.com/wrenmcu/wren32/hardware/cpu/microcode"
	"github.com/wrenmcu/wren32/hardware/cpu/registers"
	"github.com/wrenmcu/wren32/hardware/memory"
)

// PanicError is returned when the sequencer reaches the panic slot, which
// a correctly assembled control program never does.
const PanicError = "cpu: control store panic at insn %08x"

// exception cause codes
const (
	causeFetchMisaligned = 0x00000000
	causeIllegal         = 0x00000002
	causeBreakpoint      = 0x00000003
	causeLoadMisaligned  = 0x00000004
	causeStoreMisaligned = 0x00000006
	causeECallM          = 0x0000000b
	causeExternalIRQ     = 0x8000000b
)

// CPU is the processor. The exported subcomponents can be inspected
// between ticks but must not be mutated while an instruction is in
// flight.
type CPU struct {
	bus memory.Bus
	rom *microcode.Store

	upc uint8

	Regs registers.File
	PC   registers.PC
	ALU  alu.ALU
	CSR  csr.Store

	// decoder output latch. valid one tick after a fetch acknowledge.
	insn decode.Insn

	// memory interface registers
	adr  uint32
	datW uint32
	datR uint32

	// latched exception cause, retained through the trap routine
	mcauseLatch uint32

	irq bool

	// retirement bookkeeping
	inInsn    bool
	trapped   bool
	interrupt bool
	order     uint64
	insnTicks int
	working   Result

	// LastResult is the most recently retired instruction
	LastResult Result

	// OnRetire is called as each instruction retires. An error aborts
	// the tick.
	OnRetire func(Result) error
}

// NewCPU creates a processor wired to the given bus and assembles the
// control program.
func NewCPU(bus memory.Bus) (*CPU, error) {
	rom, err := microcode.NewStore()
	if err != nil {
		return nil, err
	}
	mc := &CPU{bus: bus, rom: rom}
	mc.Reset()
	return mc, nil
}

// Reset the processor. The reset routine in the control store zeroes the
// remaining architectural state before the first fetch.
func (mc *CPU) Reset() {
	mc.upc = microcode.AddrReset
	mc.PC = registers.PC{}
	mc.ALU = alu.ALU{}
	mc.CSR.Reset()
	mc.insn = decode.Insn{}
	mc.adr = 0
	mc.datW = 0
	mc.datR = 0
	mc.mcauseLatch = 0
	mc.inInsn = false
	mc.trapped = false
	mc.interrupt = false
	mc.order = 0
	mc.insnTicks = 0
	mc.working = Result{}
	mc.LastResult = Result{}
}

// SetIRQ presents the level of the external interrupt line. The line is
// sampled on every tick.
func (mc *CPU) SetIRQ(level bool) {
	mc.irq = level
	mc.CSR.SetIRQ(level)
}

// Retired is the number of instructions retired since the last reset.
func (mc *CPU) Retired() uint64 {
	return mc.order
}

// Halted is true when the sequencer has parked in the halt slot.
func (mc *CPU) Halted() bool {
	return mc.upc == microcode.AddrHalt
}

// Halt parks the sequencer. The processor stays halted until Reset.
func (mc *CPU) Halt() {
	mc.upc = microcode.AddrHalt
}

// MicroPC is the current micro program counter.
func (mc *CPU) MicroPC() uint8 {
	return mc.upc
}

// Insn is the decoder output latch.
func (mc *CPU) Insn() decode.Insn {
	return mc.insn
}

// transferSize resolves the mem_sel field against the current instruction.
func (mc *CPU) transferSize(sel microcode.MemSel, fetch bool) uint32 {
	switch sel {
	case microcode.SelByte:
		return 1
	case microcode.SelHalf:
		return 2
	case microcode.SelWord:
		return 4
	}

	// auto. a fetch is always a word transfer.
	if fetch {
		return 4
	}
	switch mc.insn.Funct3 & 0x3 {
	case 0:
		return 1
	case 1:
		return 2
	}
	return 4
}

// routerCause evaluates the exception router for the tick. The bool is
// false when no exception condition holds.
func (mc *CPU) routerCause(w microcode.Word) (uint32, bool) {
	switch w.ExceptCtl() {
	case microcode.ExcLatchDecoder:
		if mc.upc == microcode.AddrCSRDispatch {
			if mc.insn.CSRIllegal {
				return causeIllegal, true
			}
			return 0, false
		}
		switch {
		case mc.insn.Illegal:
			return causeIllegal, true
		case mc.insn.EBreak:
			return causeBreakpoint, true
		case mc.insn.ECall:
			return causeECallM, true
		case mc.CSR.InterruptPending():
			return causeExternalIRQ, true
		}

	case microcode.ExcLatchJumpTarget:
		if mc.ALU.O&0x3 != 0 {
			return causeFetchMisaligned, true
		}

	case microcode.ExcLatchLoadAddr:
		if mc.ALU.O%mc.transferSize(w.MemSel(), false) != 0 {
			return causeLoadMisaligned, true
		}

	case microcode.ExcLatchStoreAddr:
		if mc.ALU.O%mc.transferSize(w.MemSel(), false) != 0 {
			return causeStoreMisaligned, true
		}
	}

	return 0, false
}

// widen the raw bus word for the transfer described by the current word.
func (mc *CPU) widen(raw uint32, w microcode.Word) uint32 {
	size := mc.transferSize(w.MemSel(), false)
	v := raw >> (8 * (mc.adr & 0x3))

	switch size {
	case 1:
		v &= 0xff
		if w.MemExtend() == microcode.ExtSign && v&0x80 != 0 {
			v |= 0xffffff00
		}
	case 2:
		v &= 0xffff
		if w.MemExtend() == microcode.ExtSign && v&0x8000 != 0 {
			v |= 0xffff0000
		}
	}

	return v
}

// lanes gives the byte select pattern for a transfer at the current data
// address register.
func (mc *CPU) lanes(size uint32) uint8 {
	switch size {
	case 1:
		return 1 << (mc.adr & 0x3)
	case 2:
		return 0x3 << (mc.adr & 0x2)
	}
	return 0xf
}

// Tick advances the processor by one clock tick.
func (mc *CPU) Tick() error {
	if mc.upc == microcode.AddrPanic {
		return curated.Errorf(PanicError, mc.insn.Raw)
	}

	w := mc.rom.Word(mc.upc)
	mc.insnTicks++

	// exception router
	cause, excNow := mc.routerCause(w)

	// bus activity
	var busAck bool
	var busData uint32
	if w.MemReq() || w.InsnFetch() {
		p := memory.Pins{Cyc: true, Stb: true}
		if w.InsnFetch() {
			p.Addr = mc.PC.Value >> 2
			p.Sel = 0xf
		} else {
			p.Addr = mc.adr >> 2
			p.Sel = mc.lanes(mc.transferSize(w.MemSel(), false))
			p.We = w.WriteMem()
			p.DatW = mc.datW
		}
		busAck, busData = mc.bus.Tick(p)

		if busAck && mc.inInsn && !w.InsnFetch() {
			mc.working.MemAddr = mc.adr
			if p.We {
				mc.working.MemWMask = p.Sel
				mc.working.MemWData = mc.datW
			} else {
				mc.working.MemRMask = p.Sel
				mc.working.MemRData = busData
			}
		}
	}

	// condition test
	var condVal bool
	switch w.Cond() {
	case microcode.TestException:
		condVal = excNow
	case microcode.TestALUZero:
		condVal = mc.ALU.Zero()
	case microcode.TestALULow5Zero:
		condVal = mc.ALU.Low5Zero()
	case microcode.TestMemValid:
		condVal = busAck
	case microcode.TestTrue:
		condVal = true
	}
	condPass := condVal != w.Inv()

	// sequencer
	var nextUpc uint8
	switch w.Jmp() {
	case microcode.JmpCont:
		nextUpc = mc.upc + 1
	case microcode.JmpMap:
		if condPass {
			nextUpc = w.Target()
		} else if mc.upc == microcode.AddrCSRDispatch {
			nextUpc = mc.insn.CSREntry()
		} else {
			nextUpc = mc.insn.Entry()
		}
	case microcode.JmpDirect:
		if condPass {
			nextUpc = w.Target()
		} else {
			nextUpc = mc.upc + 1
		}
	case microcode.JmpDirectZero:
		if condPass {
			nextUpc = w.Target()
		} else {
			nextUpc = microcode.AddrFetch
		}
	}

	// end of tick. everything below commits from the state the tick
	// began with; the ALU output register is the last thing to change.

	// memory read data register and the value presented to the B input
	widened := mc.datR
	if busAck && !w.InsnFetch() && !w.WriteMem() {
		widened = mc.widen(busData, w)
		mc.datR = widened
	}

	// new ALU output, committed below
	newO := mc.ALU.Compute(w.ALUOp(), w.IMod(), w.OMod())

	// exception cause latch
	if excNow {
		mc.mcauseLatch = cause
	}

	switch w.ExceptCtl() {
	case microcode.ExcEnterTrap:
		mc.CSR.EnterTrap()
	case microcode.ExcLeaveTrap:
		mc.CSR.LeaveTrap()
	}

	// register file write port
	if w.RegWrite() {
		var rd uint32
		if w.RegWSel() == microcode.WrRD {
			rd = mc.insn.Rd
		}
		mc.Regs.Write(rd, mc.ALU.O)
		if mc.inInsn && rd != 0 {
			mc.working.Rd = rd
			mc.working.RdData = mc.ALU.O
			mc.working.RdWritten = true
		}
	}

	// CSR port
	if w.CSROp() != microcode.CSRNone {
		var num uint32
		if w.CSRSel() == microcode.CSRSelInsn {
			num = mc.insn.CSR
		} else {
			num = csr.TargetNum(w.CSRTarget())
		}
		if w.CSROp() == microcode.CSRRead {
			mc.CSR.Read(num)
			if mc.inInsn {
				mc.working.recordCSRRead(num, mc.CSR.ReadData())
			}
		} else {
			mc.CSR.Write(num, mc.ALU.O)
			if mc.inInsn {
				mc.working.recordCSRWrite(num, mc.ALU.O)
			}
		}
	}

	// memory interface registers
	if w.LatchAdr() {
		mc.adr = mc.ALU.O
	}
	if w.LatchData() {
		mc.datW = mc.ALU.O << (8 * (mc.adr & 0x3))
	}

	// operand latches
	if w.LatchA() {
		switch w.ASrc() {
		case microcode.AGP:
			mc.ALU.A = mc.Regs.ReadData()
		case microcode.AImm:
			mc.ALU.A = mc.insn.Imm
		case microcode.AALUOut:
			mc.ALU.A = mc.ALU.O
		case microcode.AZero:
			mc.ALU.A = 0
		case microcode.AFour:
			mc.ALU.A = 4
		case microcode.AThirtyOne:
			mc.ALU.A = 31
		}
	}
	if w.LatchB() {
		switch w.BSrc() {
		case microcode.BGP:
			mc.ALU.B = mc.Regs.ReadData()
		case microcode.BPC:
			mc.ALU.B = mc.PC.Value
		case microcode.BImm:
			mc.ALU.B = mc.insn.Imm
		case microcode.BOne:
			mc.ALU.B = 1
		case microcode.BDatR:
			mc.ALU.B = widened
		case microcode.BCSRImm:
			mc.ALU.B = mc.insn.ZImm
		case microcode.BCSR:
			mc.ALU.B = mc.CSR.ReadData()
		case microcode.BMCauseLatch:
			mc.ALU.B = mc.mcauseLatch
		}
	}

	// program counter
	mc.PC.Apply(w.PC(), mc.ALU.O)

	// register file read port address. on the fetch acknowledge tick
	// the address comes straight off the arriving instruction word.
	if w.RegRead() {
		if w.InsnFetch() && busAck {
			mc.Regs.SetReadAddr(busData >> 15)
		} else if w.RegRSel() == microcode.RdRS1 {
			mc.Regs.SetReadAddr(mc.insn.Rs1)
		} else {
			mc.Regs.SetReadAddr(mc.insn.Rs2)
		}
	}

	// decoder output latch
	if w.InsnFetch() && busAck {
		mc.insn = decode.Decode(busData)
	}

	// the output register commits last
	mc.ALU.O = newO

	// retirement bookkeeping
	if mc.upc == microcode.AddrDispatch {
		mc.inInsn = true
		mc.trapped = false
		mc.interrupt = false
		mc.working = Result{
			Order: mc.order,
			Insn:  mc.insn.Raw,
			PC:    mc.PC.Value,
			Rs1:   mc.insn.Rs1,
			Rs2:   mc.insn.Rs2,
		}
		mc.working.Rs1Data = mc.Regs.Reg(mc.insn.Rs1)
		mc.working.Rs2Data = mc.Regs.Reg(mc.insn.Rs2)
	}
	if nextUpc == microcode.AddrTrap && mc.inInsn {
		mc.trapped = true
		if excNow && cause == causeExternalIRQ {
			mc.interrupt = true
		}
	}

	mc.upc = nextUpc

	if (nextUpc == microcode.AddrFetch || nextUpc == microcode.AddrHalt) && mc.inInsn {
		mc.working.NextPC = mc.PC.Value
		mc.working.Trap = mc.trapped
		mc.working.Intr = mc.interrupt
		mc.working.Halt = nextUpc == microcode.AddrHalt
		mc.working.Ticks = mc.insnTicks
		mc.insnTicks = 0
		mc.inInsn = false
		mc.order++
		mc.LastResult = mc.working
		if mc.OnRetire != nil {
			if err := mc.OnRetire(mc.LastResult); err != nil {
				return err
			}
		}
	}

	return nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("upc=%02x %s %s", mc.upc, mc.PC.String(), mc.ALU.String())
}
