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

package regression

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/wrenmcu/wren32/curated"
	"github.com/wrenmcu/wren32/database"
	"github.com/wrenmcu/wren32/digest"
	"github.com/wrenmcu/wren32/hardware"
)

const traceEntryID = "trace"

const (
	traceFieldProgram int = iota
	traceFieldNumRetirements
	traceFieldDigest
	numTraceFields
)

// TraceRegression runs a program for a fixed number of retirements and
// hashes the retirement stream.
type TraceRegression struct {
	ProgramFile    string
	NumRetirements int
	digestHash     string
}

func deserialiseTraceEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &TraceRegression{}

	if len(fields) != numTraceFields {
		return nil, curated.Errorf("trace: %v", "wrong number of fields in database entry")
	}

	reg.ProgramFile = fields[traceFieldProgram]
	reg.digestHash = fields[traceFieldDigest]

	var err error
	reg.NumRetirements, err = strconv.Atoi(fields[traceFieldNumRetirements])
	if err != nil {
		return nil, curated.Errorf("trace: invalid retirements field [%s]", fields[traceFieldNumRetirements])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg TraceRegression) ID() string {
	return traceEntryID
}

// String implements the database.Entry interface.
func (reg TraceRegression) String() string {
	return fmt.Sprintf("[%s] %s retirements=%d", reg.ID(), reg.ProgramFile, reg.NumRetirements)
}

// Serialise implements the database.Entry interface.
func (reg *TraceRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.ProgramFile,
		strconv.Itoa(reg.NumRetirements),
		reg.digestHash,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg TraceRegression) CleanUp() error {
	return nil
}

// regress implements the Regressor interface.
func (reg *TraceRegression) regress(newRegression bool, output io.Writer, msg string) (bool, error) {
	output.Write([]byte(msg))

	image, err := os.ReadFile(reg.ProgramFile)
	if err != nil {
		return false, curated.Errorf("trace: %v", err)
	}

	m, err := hardware.NewMachine(hardware.DefaultRAMSize)
	if err != nil {
		return false, curated.Errorf("trace: %v", err)
	}

	dig := digest.NewRetirement()
	m.CPU.OnRetire = dig.Fold

	if err := m.AttachProgram(image); err != nil {
		return false, curated.Errorf("trace: %v", err)
	}

	err = m.Run(func() (bool, error) {
		return dig.Count() < uint64(reg.NumRetirements), nil
	})
	if err != nil {
		return false, curated.Errorf("trace: %v", err)
	}

	if newRegression {
		reg.digestHash = dig.Hash()
		return true, nil
	}

	return dig.Hash() == reg.digestHash, nil
}
