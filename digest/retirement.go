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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/wrenmcu/wren32/hardware/cpu"
)

// Retirement is a consumer of retirement records, producing a SHA-1 value
// over every record seen since the last reset. Suitable for use as a CPU
// OnRetire callback.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
type Retirement struct {
	digest [sha1.Size]byte

	// the serialisation buffer. the first sha1.Size bytes hold the previous
	// digest value so that hashes chain across records.
	buffer []byte

	// number of records folded into the digest since the last reset
	count uint64
}

// per-record serialisation length, not including the chained digest
const recordLen = 50

// NewRetirement is the preferred method of initialisation for the Retirement
// type.
func NewRetirement() *Retirement {
	return &Retirement{
		buffer: make([]byte, sha1.Size+recordLen),
	}
}

// Hash implements the digest.Digest interface.
func (dig *Retirement) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Retirement) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.count = 0
}

// Count returns the number of records folded into the digest since the last
// reset.
func (dig *Retirement) Count() uint64 {
	return dig.count
}

// Fold a retirement record into the digest. Suitable for use as a CPU
// OnRetire callback.
func (dig *Retirement) Fold(r cpu.Result) error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the serialisation buffer
	copy(dig.buffer, dig.digest[:])

	b := dig.buffer[sha1.Size:]
	binary.LittleEndian.PutUint64(b[0:], r.Order)
	binary.LittleEndian.PutUint32(b[8:], r.Insn)
	binary.LittleEndian.PutUint32(b[12:], r.PC)
	binary.LittleEndian.PutUint32(b[16:], r.NextPC)
	binary.LittleEndian.PutUint32(b[20:], r.Rd)
	binary.LittleEndian.PutUint32(b[24:], r.RdData)
	binary.LittleEndian.PutUint32(b[28:], r.MemAddr)
	binary.LittleEndian.PutUint32(b[32:], r.MemRData)
	binary.LittleEndian.PutUint32(b[36:], r.MemWData)
	b[40] = r.MemRMask
	b[41] = r.MemWMask
	b[42] = boolByte(r.RdWritten)
	b[43] = boolByte(r.Trap)
	b[44] = boolByte(r.Intr)
	binary.LittleEndian.PutUint32(b[45:], r.Rs1Data)
	// the final byte disambiguates records from chained padding
	b[49] = 0x5a

	dig.digest = sha1.Sum(dig.buffer)
	dig.count++

	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
