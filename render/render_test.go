// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/natroutes/roadmap/roadmap"
)

func TestDescribeFormatsRouteAsSemicolonList(t *testing.T) {
	m := roadmap.NewMap()
	m.AddRoad("Warsaw", "Lodz", 100, 2000)
	m.AddRoad("Lodz", "Krakow", 50, 1990)
	if ok, err := m.NewRoute(5, "Warsaw", "Krakow"); !ok || err != nil {
		t.Fatalf("NewRoute failed: %v", err)
	}

	got := Describe(m, 5)
	want := "5;Warsaw;100;2000;Lodz;50;1990;Krakow"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDescribeUnknownRouteIsEmpty(t *testing.T) {
	m := roadmap.NewMap()
	if got := Describe(m, 42); got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}
