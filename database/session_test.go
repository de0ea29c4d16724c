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

package database_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/wrenmcu/wren32/database"
	"github.com/wrenmcu/wren32/test"
)

type testEntry struct {
	label string
}

func (e testEntry) ID() string {
	return "test"
}

func (e testEntry) String() string {
	return e.label
}

func (e testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{e.label}, nil
}

func (e testEntry) CleanUp() error {
	return nil
}

func deserialiseTestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	return testEntry{label: fields[0]}, nil
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType("test", deserialiseTestEntry)
}

func TestSessionRoundTrip(t *testing.T) {
	dbfile := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(dbfile, database.ActivityCreating, initTestSession)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, db.Add(testEntry{label: "first"}))
	test.ExpectSuccess(t, db.Add(testEntry{label: "second"}))
	test.Equate(t, db.NumEntries(), 2)

	test.ExpectSuccess(t, db.EndSession(true))

	// reopen for reading
	db, err = database.StartSession(dbfile, database.ActivityReading, initTestSession)
	test.ExpectSuccess(t, err)
	defer db.EndSession(false)

	test.Equate(t, db.NumEntries(), 2)

	s := strings.Builder{}
	test.ExpectSuccess(t, db.List(&s))
	test.ExpectSuccess(t, strings.Contains(s.String(), "first"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "Total: 2"))

	// committing to a reading session is not allowed
	test.ExpectFailure(t, db.EndSession(true))
}

func TestSelectKeys(t *testing.T) {
	dbfile := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(dbfile, database.ActivityCreating, initTestSession)
	test.ExpectSuccess(t, err)
	defer db.EndSession(false)

	test.ExpectSuccess(t, db.Add(testEntry{label: "first"}))
	test.ExpectSuccess(t, db.Add(testEntry{label: "second"}))

	seen := []string{}
	err = db.SelectAll(func(key int, ent database.Entry) (bool, error) {
		seen = append(seen, ent.String())
		return true, nil
	})
	test.ExpectSuccess(t, err)
	test.Equate(t, len(seen), 2)
	test.Equate(t, seen[0], "first")

	// a missing key is an error
	err = db.SelectKeys(nil, 99)
	test.ExpectFailure(t, err)
}

func TestDelete(t *testing.T) {
	dbfile := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(dbfile, database.ActivityCreating, initTestSession)
	test.ExpectSuccess(t, err)
	defer db.EndSession(false)

	test.ExpectSuccess(t, db.Add(testEntry{label: "only"}))
	test.ExpectSuccess(t, db.Delete(0))
	test.Equate(t, db.NumEntries(), 0)
	test.ExpectFailure(t, db.Delete(0))
}
