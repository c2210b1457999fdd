// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roadgraph implements the undirected road network: cities are
// nodes identified by a dense integer id, roads are edges carrying a
// length, a repair year, and the set of national routes using them.
//
// The shape follows gonum.org/v1/gonum/graph and graph/simple: a
// per-city adjacency list indexed by node id, with edges looked up
// through a map keyed on the pair of endpoint ids rather than
// pointer-chasing.
package roadgraph

import "github.com/natroutes/roadmap/cityindex"

// Road is an undirected edge between two distinct cities.
type Road struct {
	A, B   cityindex.ID
	Length uint32
	Year   int32
	Routes routeSet
}

// Other returns the endpoint of r that is not id.
func (r *Road) Other(id cityindex.ID) cityindex.ID {
	if r.A == id {
		return r.B
	}
	return r.A
}

// Graph is the undirected road network over a fixed universe of city ids.
// Nodes never need to be added explicitly: any city id from 0..n-1 is a
// valid (possibly isolated) node once the graph has been grown to cover it.
type Graph struct {
	adj [][]*Road // adj[id] lists roads incident to city id, keyed by other endpoint implicitly
	idx map[int64]*Road
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{idx: make(map[int64]*Road)}
}

func pairKey(a, b cityindex.ID) int64 {
	if a > b {
		a, b = b, a
	}
	return int64(a)<<32 | int64(uint32(b))
}

// Grow ensures the graph has adjacency storage for city ids up to n-1.
func (g *Graph) Grow(n int) {
	for len(g.adj) < n {
		g.adj = append(g.adj, nil)
	}
}

// AddRoad creates a new road between a and b. It fails if a == b, a road
// between them already exists, length is 0, or year is 0.
func (g *Graph) AddRoad(a, b cityindex.ID, length uint32, year int32) (*Road, bool) {
	if a == b || length == 0 || year == 0 {
		return nil, false
	}
	if g.Road(a, b) != nil {
		return nil, false
	}
	n := int(a) + 1
	if int(b)+1 > n {
		n = int(b) + 1
	}
	g.Grow(n)

	r := &Road{A: a, B: b, Length: length, Year: year, Routes: newRouteSet()}
	g.idx[pairKey(a, b)] = r
	g.adj[a] = append(g.adj[a], r)
	g.adj[b] = append(g.adj[b], r)
	return r, true
}

// Road returns the road between a and b, or nil if none exists.
func (g *Graph) Road(a, b cityindex.ID) *Road {
	return g.idx[pairKey(a, b)]
}

// RepairRoad sets the road's year to year. It fails if no road exists
// between a and b, or if year is 0 or older than the road's current year.
func (g *Graph) RepairRoad(a, b cityindex.ID, year int32) bool {
	r := g.Road(a, b)
	if r == nil || year == 0 || year < r.Year {
		return false
	}
	r.Year = year
	return true
}

// RemoveRoad deletes the road between a and b unconditionally. It is a
// no-op if no such road exists. Callers are responsible for patching any
// routes that traversed the road before calling this.
func (g *Graph) RemoveRoad(a, b cityindex.ID) {
	if g.Road(a, b) == nil {
		return
	}
	delete(g.idx, pairKey(a, b))
	g.adj[a] = removeRoad(g.adj[a], a, b)
	g.adj[b] = removeRoad(g.adj[b], a, b)
}

func removeRoad(roads []*Road, a, b cityindex.ID) []*Road {
	for i, r := range roads {
		if (r.A == a && r.B == b) || (r.A == b && r.B == a) {
			return append(roads[:i], roads[i+1:]...)
		}
	}
	return roads
}

// Neighbors returns the roads incident to city id, in the order they were
// added. The returned slice must not be modified by the caller.
func (g *Graph) Neighbors(id cityindex.ID) []*Road {
	if int(id) >= len(g.adj) {
		return nil
	}
	return g.adj[id]
}
