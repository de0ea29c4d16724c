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

// Package hardware assembles the processor and its memory into a runnable
// machine.
package hardware

import (
	"github.com/wrenmcu/wren32/curated"
	"github.com/wrenmcu/wren32/hardware/cpu"
	"github.com/wrenmcu/wren32/hardware/memory"
)

// MachineError is returned for failures at the machine level.
const MachineError = "machine: %v"

// DefaultRAMSize is the memory size used when no other size is asked for.
const DefaultRAMSize = 1 << 20

// Machine is a processor wired to a RAM.
type Machine struct {
	CPU *cpu.CPU
	RAM *memory.RAM

	// Ticks since the last reset
	Ticks uint64
}

// NewMachine creates a machine with the given RAM size in bytes.
func NewMachine(ramSize uint32) (*Machine, error) {
	m := &Machine{RAM: memory.NewRAM(ramSize)}

	var err error
	m.CPU, err = cpu.NewCPU(m.RAM)
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	return m, nil
}

// AttachProgram loads the byte image at address zero and resets the
// machine.
func (m *Machine) AttachProgram(image []byte) error {
	if err := m.RAM.Load(image); err != nil {
		return curated.Errorf(MachineError, err)
	}
	m.Reset()
	return nil
}

// Reset the machine.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.Ticks = 0
}

// Tick advances the machine by one clock tick.
func (m *Machine) Tick() error {
	m.Ticks++
	return m.CPU.Tick()
}

// Step runs the machine until the next instruction retires. It returns
// immediately if the processor is halted.
func (m *Machine) Step() error {
	if m.CPU.Halted() {
		return nil
	}

	before := m.CPU.Retired()
	for {
		if err := m.Tick(); err != nil {
			return err
		}
		if m.CPU.Retired() != before || m.CPU.Halted() {
			return nil
		}
	}
}

// Run the machine until the continue check says otherwise or the
// processor halts. The check is consulted after every retirement.
func (m *Machine) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := m.Step(); err != nil {
			return err
		}
		if m.CPU.Halted() {
			return nil
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
