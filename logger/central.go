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

// Package logger implements the central application log. There is only one
// log for the whole application and packages add to it with the Log() and
// Logf() functions. Each entry is tagged with the subsystem that emitted it.
package logger

import (
	"io"
)

// one central log for the entire application.
var central *logger

// maximum number of entries kept in the central log.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write the contents of the central logger to output.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last number entries to output.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho directs future log entries to output as they arrive. A nil output
// turns echoing off. If replay is true any existing entries are written to
// output immediately.
func SetEcho(output io.Writer, replay bool) {
	central.setEcho(output, replay)
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries. The slice must not be retained after f returns.
func BorrowLog(f func([]Entry)) {
	central.borrow(f)
}
