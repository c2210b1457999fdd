// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cityindex maps city names to stable, dense integer ids.
package cityindex

import "fmt"

// ID is a stable, dense city identifier assigned in insertion order.
type ID int32

// None is the sentinel id returned by Lookup when a name is unknown.
const None ID = -1

// Index interns city names into dense ids. The zero value is ready to use.
type Index struct {
	byName map[string]ID
	names  []string
}

// IsValidName reports whether name is acceptable as a city name: non-empty
// and free of bytes 0..31 and the field separator ';'.
func IsValidName(name string) bool {
	if len(name) == 0 {
		return false
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		if b <= 31 || b == ';' {
			return false
		}
	}
	return true
}

// Intern returns the id for name, assigning a new one if name has not been
// seen before. It reports an error if name fails IsValidName.
func (idx *Index) Intern(name string) (ID, error) {
	if !IsValidName(name) {
		return None, fmt.Errorf("cityindex: invalid city name %q", name)
	}
	if idx.byName == nil {
		idx.byName = make(map[string]ID)
	}
	if id, ok := idx.byName[name]; ok {
		return id, nil
	}
	id := ID(len(idx.names))
	idx.byName[name] = id
	idx.names = append(idx.names, name)
	return id, nil
}

// Lookup returns the id for name, or None if name has not been interned.
func (idx *Index) Lookup(name string) ID {
	if idx.byName == nil {
		return None
	}
	id, ok := idx.byName[name]
	if !ok {
		return None
	}
	return id
}

// NameOf returns the name assigned to id. It panics if id is out of range,
// which indicates a caller bug since ids are only ever handed out by Intern.
func (idx *Index) NameOf(id ID) string {
	return idx.names[id]
}

// Len returns the number of interned cities.
func (idx *Index) Len() int {
	return len(idx.names)
}
