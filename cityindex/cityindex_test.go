// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cityindex

import "testing"

func TestInternAssignsStableDenseIDs(t *testing.T) {
	var idx Index
	a, err := idx.Intern("Warsaw")
	if err != nil {
		t.Fatal(err)
	}
	b, err := idx.Intern("Gdansk")
	if err != nil {
		t.Fatal(err)
	}
	if a != 0 || b != 1 {
		t.Fatalf("got ids %d, %d, want 0, 1", a, b)
	}
	again, err := idx.Intern("Warsaw")
	if err != nil {
		t.Fatal(err)
	}
	if again != a {
		t.Fatalf("re-interning should return the same id, got %d want %d", again, a)
	}
	if idx.Len() != 2 {
		t.Fatalf("got Len %d, want 2", idx.Len())
	}
}

func TestInternRejectsInvalidNames(t *testing.T) {
	cases := []string{"", "has;semicolon", "has\x00null", "has\x1fcontrol"}
	for _, name := range cases {
		var idx Index
		if _, err := idx.Intern(name); err == nil {
			t.Errorf("Intern(%q) should have failed", name)
		}
	}
}

func TestLookupUnknownReturnsNone(t *testing.T) {
	var idx Index
	if got := idx.Lookup("Nowhere"); got != None {
		t.Fatalf("got %d, want None", got)
	}
}

func TestNameOfRoundTrips(t *testing.T) {
	var idx Index
	id, err := idx.Intern("Krakow")
	if err != nil {
		t.Fatal(err)
	}
	if got := idx.NameOf(id); got != "Krakow" {
		t.Fatalf("got %q, want Krakow", got)
	}
}
