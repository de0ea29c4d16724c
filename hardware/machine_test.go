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

package hardware_test

import (
	"encoding/binary"
	"testing"

	"github.com/wrenmcu/wren32/hardware"
	"github.com/wrenmcu/wren32/test"
)

func makeImage(program []uint32) []byte {
	image := make([]byte, len(program)*4)
	for i, w := range program {
		binary.LittleEndian.PutUint32(image[i*4:], w)
	}
	return image
}

func TestStep(t *testing.T) {
	m, err := hardware.NewMachine(1024)
	test.ExpectSuccess(t, err)

	// addi x1, x0, 5; addi x2, x1, 1; jal x0, 0
	program := []uint32{0x00500093, 0x00108113, 0x0000006f}
	err = m.AttachProgram(makeImage(program))
	test.ExpectSuccess(t, err)

	err = m.Step()
	test.ExpectSuccess(t, err)
	test.Equate(t, m.CPU.Retired(), 1)
	test.Equate(t, m.CPU.Regs.Reg(1), 5)
	test.Equate(t, m.CPU.PC.Value, 4)

	err = m.Step()
	test.ExpectSuccess(t, err)
	test.Equate(t, m.CPU.Retired(), 2)
	test.Equate(t, m.CPU.Regs.Reg(2), 6)
	test.Equate(t, m.CPU.PC.Value, 8)
}

func TestStepWhenHalted(t *testing.T) {
	m, err := hardware.NewMachine(1024)
	test.ExpectSuccess(t, err)

	program := []uint32{0x00500093, 0x0000006f}
	err = m.AttachProgram(makeImage(program))
	test.ExpectSuccess(t, err)

	m.CPU.Halt()

	ticks := m.Ticks
	err = m.Step()
	test.ExpectSuccess(t, err)
	test.Equate(t, m.Ticks, ticks)
	test.Equate(t, m.CPU.Retired(), 0)
}

func TestRunContinueCheck(t *testing.T) {
	m, err := hardware.NewMachine(1024)
	test.ExpectSuccess(t, err)

	// addi x1, x1, 1; jal x0, -4
	program := []uint32{0x00108093, 0xffdff06f}
	err = m.AttachProgram(makeImage(program))
	test.ExpectSuccess(t, err)

	err = m.Run(func() (bool, error) {
		return m.CPU.Retired() < 100, nil
	})
	test.ExpectSuccess(t, err)
	test.Equate(t, m.CPU.Retired(), 100)

	// the addi retires on every second retirement
	test.Equate(t, m.CPU.Regs.Reg(1), 50)
}

func TestReset(t *testing.T) {
	m, err := hardware.NewMachine(1024)
	test.ExpectSuccess(t, err)

	program := []uint32{0x00500093, 0x00108113, 0x0000006f}
	err = m.AttachProgram(makeImage(program))
	test.ExpectSuccess(t, err)

	err = m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, m.Ticks > 0)

	m.Reset()
	test.Equate(t, m.Ticks, 0)
	test.Equate(t, m.CPU.Retired(), 0)
	test.Equate(t, m.CPU.PC.Value, 0)

	// the program image survives a reset
	err = m.Step()
	test.ExpectSuccess(t, err)
	test.Equate(t, m.CPU.Regs.Reg(1), 5)
}

func TestAttachProgramTooLarge(t *testing.T) {
	m, err := hardware.NewMachine(16)
	test.ExpectSuccess(t, err)

	err = m.AttachProgram(make([]byte, 32))
	test.ExpectFailure(t, err)
}
