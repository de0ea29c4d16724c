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

// Package database is a very simple way of storing structured and arbitrary
// entry types in a flat file.
//
// Use of a database requires starting a "session" with the StartSession()
// function, coupled with an EndSession() once we're done. For example (error
// handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityReading, initDBSession)
//	defer db.EndSession(false)
//
// The first argument is the path to the database file on the local disk. The
// second argument describes the activity that will happen during the session.
// ActivityCreating will create the database file if it does not already
// exist; ActivityReading will not modify the file at all.
//
// The third argument is the initialisation function, wherein the session is
// told what entry types to expect and how to deserialise them:
//
//	func initSession(db *database.Session) error {
//		return db.RegisterEntryType("trace", deserialiseTraceEntry)
//	}
//
// Deserialisation functions receive the serialised fields of the entry (the
// leader fields, key and ID, are not included) and return a value satisfying
// the database.Entry interface.
package database
