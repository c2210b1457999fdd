// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roadgraph

import (
	"testing"

	"github.com/natroutes/roadmap/cityindex"
)

func TestAddRoadRejectsSelfLoopAndZeroFields(t *testing.T) {
	g := NewGraph()
	if _, ok := g.AddRoad(0, 0, 10, 2000); ok {
		t.Fatal("self-loop road should be rejected")
	}
	if _, ok := g.AddRoad(0, 1, 0, 2000); ok {
		t.Fatal("zero-length road should be rejected")
	}
	if _, ok := g.AddRoad(0, 1, 10, 0); ok {
		t.Fatal("zero-year road should be rejected")
	}
}

func TestAddRoadRejectsDuplicate(t *testing.T) {
	g := NewGraph()
	if _, ok := g.AddRoad(0, 1, 10, 2000); !ok {
		t.Fatal("expected first add to succeed")
	}
	if _, ok := g.AddRoad(0, 1, 5, 1999); ok {
		t.Fatal("duplicate road should be rejected")
	}
	if _, ok := g.AddRoad(1, 0, 5, 1999); ok {
		t.Fatal("duplicate road (reversed) should be rejected")
	}
}

func TestRoadIsUndirected(t *testing.T) {
	g := NewGraph()
	g.AddRoad(0, 1, 10, 2000)
	r1 := g.Road(0, 1)
	r2 := g.Road(1, 0)
	if r1 == nil || r2 == nil || r1 != r2 {
		t.Fatal("expected Road(a,b) == Road(b,a)")
	}
}

func TestRepairRoadMonotonic(t *testing.T) {
	g := NewGraph()
	g.AddRoad(0, 1, 10, 2000)
	if !g.RepairRoad(0, 1, 2005) {
		t.Fatal("repairing forward should succeed")
	}
	if g.RepairRoad(0, 1, 2004) {
		t.Fatal("repairing to an earlier year should fail")
	}
	if g.Road(0, 1).Year != 2005 {
		t.Fatalf("got year %d, want 2005", g.Road(0, 1).Year)
	}
}

func TestRepairRoadMissingFails(t *testing.T) {
	g := NewGraph()
	if g.RepairRoad(0, 1, 2000) {
		t.Fatal("repairing a nonexistent road should fail")
	}
}

func TestRemoveRoadDropsFromBothAdjacencyLists(t *testing.T) {
	g := NewGraph()
	g.AddRoad(0, 1, 10, 2000)
	g.RemoveRoad(0, 1)
	if g.Road(0, 1) != nil {
		t.Fatal("expected road to be gone")
	}
	if len(g.Neighbors(0)) != 0 || len(g.Neighbors(1)) != 0 {
		t.Fatal("expected both adjacency lists to be empty")
	}
}

func TestRouteSetMembership(t *testing.T) {
	g := NewGraph()
	g.AddRoad(0, 1, 10, 2000)
	r := g.Road(0, 1)
	r.Routes.Add(5)
	r.Routes.Add(7)
	if !r.Routes.Has(5) || !r.Routes.Has(7) {
		t.Fatal("expected routes 5 and 7 to be marked")
	}
	if r.Routes.Has(6) {
		t.Fatal("route 6 should not be marked")
	}
	r.Routes.Remove(5)
	if r.Routes.Has(5) {
		t.Fatal("route 5 should have been removed")
	}
	if r.Routes.Len() != 1 {
		t.Fatalf("got Len %d, want 1", r.Routes.Len())
	}
}

func TestRoadOther(t *testing.T) {
	g := NewGraph()
	g.AddRoad(0, 1, 10, 2000)
	r := g.Road(0, 1)
	if r.Other(cityindex.ID(0)) != 1 || r.Other(cityindex.ID(1)) != 0 {
		t.Fatal("Other should return the opposite endpoint")
	}
}
