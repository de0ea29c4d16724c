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

// Package regression facilitates the regression testing of Wren32.
//
// A regression entry names a program file, a number of retirements to run
// and the hash of the retirement stream produced when the entry was added.
// Running the entry again repeats the measurement and compares hashes. Any
// difference means the architectural behaviour of the processor has changed.
//
// The "database" of regression entries is handled by the database package.
package regression
