// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roadmap

import (
	"testing"

	fuzz "github.com/google/gofuzz"

	"github.com/natroutes/roadmap/cityindex"
)

// TestFuzzAddRoadNeverPanics throws random byte strings (including ones
// containing bytes 0..31 and ';') at AddRoad as city names, the way
// tigerwill90/fox's TestFuzzInsertNoPanics throws random path segments at
// its router: the only contract under test is "never panics, and agrees
// with cityindex.IsValidName about what it accepted".
func TestFuzzAddRoadNeverPanics(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(500, 1000)

	var names []string
	f.Fuzz(&names)

	m := NewMap()
	for i := 0; i+1 < len(names); i += 2 {
		city1, city2 := names[i], names[i+1]
		ok, err := m.AddRoad(city1, city2, 10, 2000)
		wantValid := cityindex.IsValidName(city1) && cityindex.IsValidName(city2) && city1 != city2
		if !wantValid && ok {
			t.Fatalf("AddRoad(%q, %q) succeeded despite invalid/duplicate input", city1, city2)
		}
		if err != nil && ok {
			t.Fatalf("AddRoad(%q, %q) returned ok=true with non-nil err %v", city1, city2, err)
		}
	}
}

// TestFuzzLengthYearBoundaries checks every random uint32 length and int32
// year is handled consistently: only the reserved zero values are rejected.
func TestFuzzLengthYearBoundaries(t *testing.T) {
	f := fuzz.New().NilChance(0)

	for i := 0; i < 500; i++ {
		var length uint32
		var year int32
		f.Fuzz(&length)
		f.Fuzz(&year)

		city1 := "FuzzCityA"
		city2 := "FuzzCityB"
		m2 := NewMap()
		ok, err := m2.AddRoad(city1, city2, length, year)
		switch {
		case length == 0:
			if ok || err != ErrInvalidLength {
				t.Fatalf("length=0 year=%d: got ok=%v err=%v, want rejected with ErrInvalidLength", year, ok, err)
			}
		case year == 0:
			if ok || err != ErrInvalidYear {
				t.Fatalf("length=%d year=0: got ok=%v err=%v, want rejected with ErrInvalidYear", length, ok, err)
			}
		default:
			if !ok || err != nil {
				t.Fatalf("length=%d year=%d: got ok=%v err=%v, want accepted", length, year, ok, err)
			}
		}
	}
}
