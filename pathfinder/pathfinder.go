// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathfinder implements the routing engine's core search: a
// label-correcting (SPFA / Bellman-Ford style) relaxation that finds the
// best path under the lexicographic order ⟨total length, -oldest edge
// year⟩, tracking whether that optimum is attained uniquely.
//
// The queue discipline — a FIFO of pending vertices, an onQueue flag per
// vertex, relaxation only re-enqueuing on a strict distance decrease — is
// the same one gonum.org/v1/gonum/graph/path.BellmanFordFrom uses. The
// secondary ⟨oldest-year⟩ tie-break and the ambiguity (non-uniqueness)
// tracking have no gonum equivalent; they are ported from
// original_source/src/map.c's spfa.
package pathfinder

import (
	"math"

	"github.com/natroutes/roadmap/cityindex"
	"github.com/natroutes/roadmap/roadgraph"
	"github.com/natroutes/roadmap/routestore"
)

// infDist and infYear are the sentinels for "no path yet" and "no edge
// seen yet on the best path so far" respectively. infYear equals the
// largest legal road year (spec §6.3's year upper bound), which is safe:
// min(infYear, y) for any legal y <= infYear always yields y, so the
// sentinel and a genuine maximal-year road behave identically under min.
const (
	infDist uint64 = math.MaxUint64
	infYear int32  = math.MaxInt32
)

// Result is the outcome of a single-source, single-target search.
type Result struct {
	Dist      uint64         // total length of the best path, or infDist if unreachable
	Oldest    int32          // minimum edge year on the best path
	Unique    bool           // whether the optimum is attained by exactly one predecessor chain
	Reachable bool           // whether target is reachable at all under the route filter
	prev      []cityindex.ID // dense predecessor array, indexed by city id; -1 means "no predecessor"
}

const noPrev cityindex.ID = -1

// Path reconstructs the best path from start to target as an ordered
// sequence of city ids, start first. It must only be called when
// Reachable && Unique.
func (r Result) Path(start, target cityindex.ID) []cityindex.ID {
	var rev []cityindex.ID
	for c := target; ; {
		rev = append(rev, c)
		if c == start {
			break
		}
		c = r.prev[c]
	}
	path := make([]cityindex.ID, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// Search finds the best start->target path in g, a graph over numCities
// dense city ids. If route is non-nil, the search is constrained to avoid
// any city already on that route except where the route's own endpoint
// logic allows passing through target (spec §4.4's "route filtering").
func Search(g *roadgraph.Graph, numCities int, start, target cityindex.ID, route *routestore.Route) Result {
	dist := make([]uint64, numCities)
	oldest := make([]int32, numCities)
	unique := make([]bool, numCities)
	prev := make([]cityindex.ID, numCities)
	inQueue := make([]bool, numCities)

	for i := range dist {
		dist[i] = infDist
		oldest[i] = infYear
		prev[i] = noPrev
	}
	dist[start] = 0
	unique[start] = true

	queue := make([]cityindex.ID, 0, numCities)
	queue = append(queue, start)
	inQueue[start] = true

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		for _, road := range g.Neighbors(u) {
			v := road.Other(u)
			if !admissible(route, v, start, target, u) {
				continue
			}

			candLen := dist[u] + uint64(road.Length)
			candOld := minYear(oldest[u], road.Year)

			switch {
			case candLen < dist[v]:
				dist[v] = candLen
				oldest[v] = candOld
				prev[v] = u
				unique[v] = unique[u]
				if !inQueue[v] {
					inQueue[v] = true
					queue = append(queue, v)
				}
			case candLen == dist[v]:
				if candOld > oldest[v] {
					oldest[v] = candOld
					prev[v] = u
					unique[v] = unique[u]
					// No re-enqueue: dist[v] did not change, so v's
					// outgoing relaxations that depend on dist are
					// already queued or settled; only the oldest-year
					// label changed, which later ties will pick up.
				} else if candOld == oldest[v] && prev[v] != u {
					unique[v] = false
				}
			}
		}
	}

	return Result{
		Dist:      dist[target],
		Oldest:    oldest[target],
		Unique:    unique[target],
		Reachable: dist[target] != infDist,
		prev:      prev,
	}
}

// admissible reports whether v may be entered from u while searching
// under the given forbidden-route filter (spec §4.4).
func admissible(route *routestore.Route, v, start, target, u cityindex.ID) bool {
	if route == nil {
		return true
	}
	if v == start {
		return true
	}
	if !route.Contains(v) {
		return true
	}
	return v == target && u != start
}

func minYear(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
