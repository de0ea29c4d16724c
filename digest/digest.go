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

// Package digest reduces a stream of retirement records to a cryptographic
// hash. If a new hash differs from a previously recorded value then the
// processor's architectural behaviour has changed. We use this as the basis
// for regression tests.
package digest

// Digest implementations return a hash in response to a Hash() request.
// Generation of the hash is achieved through the type's other interfaces.
type Digest interface {
	Hash() string
	ResetDigest()
}
