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

package database

// SelectAll entries in the database, in key order. onSelect can be nil. If
// onSelect returns false the selection stops without error.
func (db *Session) SelectAll(onSelect func(key int, ent Entry) (bool, error)) error {
	if onSelect == nil {
		onSelect = func(_ int, _ Entry) (bool, error) { return true, nil }
	}

	for _, key := range db.SortedKeyList() {
		cont, err := onSelect(key, db.entries[key])
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}

// SelectKeys matches entries with the specified key(s). An empty keys list
// matches every entry. onSelect can be nil.
func (db *Session) SelectKeys(onSelect func(key int, ent Entry) (bool, error), keys ...int) error {
	if len(keys) == 0 {
		return db.SelectAll(onSelect)
	}

	if onSelect == nil {
		onSelect = func(_ int, _ Entry) (bool, error) { return true, nil }
	}

	for _, key := range keys {
		ent, err := db.Get(key)
		if err != nil {
			return err
		}

		cont, err := onSelect(key, ent)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
