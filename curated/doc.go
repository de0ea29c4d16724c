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

// Package curated is a drop-in replacement for the flavour of error handling
// found in the fmt and errors packages of the standard library. Curated
// errors keep hold of the pattern string they were created with, meaning that
// errors can be compared against the pattern itself rather than against a
// formatted instance of the message.
//
// Create a curated error with Errorf:
//
//	const BusError = "bus: %s: no device at %08x"
//	return curated.Errorf(BusError, op, addr)
//
// The pattern can then be tested for at any point in the error chain:
//
//	if curated.Has(err, BusError) {
//		...
//	}
//
// Is() is the strict version of Has(), matching only the outermost error in
// the chain. Both are safe to call with errors that did not originate in
// this package, in which case they return false.
package curated
