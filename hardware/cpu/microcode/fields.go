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

// JmpType selects how the sequencer chooses the next micro-PC.
type JmpType uint8

// List of JmpType values.
const (
	// next micro-PC is the current micro-PC plus one
	JmpCont JmpType = iota

	// the mapping table supplies the next micro-PC, unless the condition
	// test passes in which case the target field is used instead
	JmpMap

	// the target field supplies the next micro-PC if the condition test
	// passes, otherwise continue to the next word
	JmpDirect

	// the target field supplies the next micro-PC if the condition test
	// passes, otherwise the fetch word at address zero
	JmpDirectZero
)

func (j JmpType) String() string {
	return [...]string{"cont", "map", "direct", "directZero"}[j]
}

// CondTest selects the boolean examined by the sequencer.
type CondTest uint8

// List of CondTest values.
const (
	// an exception condition holds for the current instruction
	TestException CondTest = iota

	// the ALU output register is zero
	TestALUZero

	// the low five bits of the ALU output register are zero
	TestALULow5Zero

	// the bus acknowledged the current request this tick
	TestMemValid

	// constant truth
	TestTrue
)

func (c CondTest) String() string {
	return [...]string{"exception", "aluZero", "aluLow5Zero", "memValid", "true"}[c]
}

// PCAction controls the program counter register.
type PCAction uint8

// List of PCAction values.
const (
	PCHold PCAction = iota
	PCInc
	PCLoadALU
)

func (p PCAction) String() string {
	return [...]string{"hold", "inc", "loadALU"}[p]
}

// ASrc selects the value captured by the A operand latch.
type ASrc uint8

// List of ASrc values.
const (
	AGP ASrc = iota
	AImm
	AALUOut
	AZero
	AFour
	AThirtyOne
)

func (a ASrc) String() string {
	return [...]string{"gp", "imm", "aluO", "zero", "four", "thirtyOne"}[a]
}

// BSrc selects the value captured by the B operand latch.
type BSrc uint8

// List of BSrc values.
const (
	BGP BSrc = iota
	BPC
	BImm
	BOne
	BDatR
	BCSRImm
	BCSR
	BMCauseLatch
)

func (b BSrc) String() string {
	return [...]string{"gp", "pc", "imm", "one", "datR", "csrImm", "csr", "mcauseLatch"}[b]
}

// ALUOp selects the ALU operation. Shift operations move by a single bit
// position per tick.
type ALUOp uint8

// List of ALUOp values.
const (
	ALUAdd ALUOp = iota
	ALUSub
	ALUAnd
	ALUOr
	ALUXor
	ALUSLL1
	ALUSRL1
	ALUSRA1
	ALULTU
)

func (o ALUOp) String() string {
	return [...]string{"add", "sub", "and", "or", "xor", "sll1", "srl1", "sra1", "ltu"}[o]
}

// ALUIMod modifies the ALU inputs before the operation is applied.
type ALUIMod uint8

// List of ALUIMod values.
const (
	IModNone ALUIMod = iota

	// invert the most significant bit of both inputs. turns an unsigned
	// comparison into a signed one.
	IModInvMSB
)

// ALUOMod modifies the ALU output after the operation is applied.
type ALUOMod uint8

// List of ALUOMod values.
const (
	OModNone ALUOMod = iota

	// XOR the least significant bit with one. turns less-than into
	// greater-or-equal.
	OModInvLSB

	// clear the least significant bit. used for indirect jump targets.
	OModClearLSB
)

// RegRSel selects the register file read address.
type RegRSel uint8

// List of RegRSel values.
const (
	RdRS1 RegRSel = iota
	RdRS2
)

// RegWSel selects the register file write address.
type RegWSel uint8

// List of RegWSel values.
const (
	WrRD RegWSel = iota
	WrZero
)

// CSROp selects the CSR file operation for the tick. A CSR operation and a
// register file write never appear in the same word.
type CSROp uint8

// List of CSROp values.
const (
	CSRNone CSROp = iota
	CSRRead
	CSRWrite
)

// CSRSel selects where the CSR number comes from.
type CSRSel uint8

// List of CSRSel values.
const (
	// the CSR number field of the current instruction
	CSRSelInsn CSRSel = iota

	// the target field of the microcode word, interpreted as a CSRTarget
	CSRSelTarget
)

// CSRTarget enumerates the CSRs the microcode itself needs to address,
// independently of any instruction. The value is carried in the target
// field of words that do not also jump through it.
type CSRTarget uint8

// List of CSRTarget values.
const (
	CSRTargetMCause CSRTarget = iota
	CSRTargetMTvec
	CSRTargetMEpc
)

// MemSel selects the transfer size of a bus request.
type MemSel uint8

// List of MemSel values.
const (
	// size taken from the current instruction's funct3 field. an
	// instruction fetch with auto select is always a word transfer.
	SelAuto MemSel = iota

	SelByte
	SelHalf
	SelWord
)

// MemExtend selects how sub-word load data is widened to 32 bits.
type MemExtend uint8

// List of MemExtend values.
const (
	ExtZero MemExtend = iota
	ExtSign
)

// ExceptCtl instructs the exception router.
type ExceptCtl uint8

// List of ExceptCtl values.
const (
	ExcNone ExceptCtl = iota

	// examine the decoded instruction (and the interrupt line) for a
	// pending exception and latch its cause
	ExcLatchDecoder

	// examine the ALU output as a jump target and latch a misaligned
	// fetch cause if its low bits are nonzero
	ExcLatchJumpTarget

	// examine the ALU output as a load address and latch a misaligned
	// load cause if it does not suit the transfer size
	ExcLatchLoadAddr

	// examine the ALU output as a store address and latch a misaligned
	// store cause if it does not suit the transfer size
	ExcLatchStoreAddr

	// enter the trap sequence: MPIE takes the value of MIE and MIE is
	// cleared. the latched cause is retained for the trap routine.
	ExcEnterTrap

	// leave the trap sequence: MIE takes the value of MPIE and MPIE is
	// set
	ExcLeaveTrap
)

func (e ExceptCtl) String() string {
	return [...]string{"none", "latchDecoder", "latchJumpTarget", "latchLoadAddr", "latchStoreAddr", "enterTrap", "leaveTrap"}[e]
}
