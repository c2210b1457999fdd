// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roadmap ties cityindex, roadgraph, pathfinder, and routestore
// together into the Map aggregate and the route-maintenance operations
// built on top of them: AddRoad, RepairRoad, NewRoute, ExtendRoute,
// RemoveRoute, and RemoveRoad (spec §4.5).
//
// Map is grounded on original_source/src/map.c and map.h's Map struct,
// which owns the same three collaborators (trie, national routes array,
// road sections reached through the trie) under a different storage
// scheme.
package roadmap

import (
	"time"

	"github.com/natroutes/roadmap/cityindex"
	"github.com/natroutes/roadmap/metrics"
	"github.com/natroutes/roadmap/pathfinder"
	"github.com/natroutes/roadmap/roadgraph"
	"github.com/natroutes/roadmap/routestore"
)

// search runs pathfinder.Search and records its duration under operation,
// the way qumo-relay times its own request handling for Prometheus.
func search(operation string, g *roadgraph.Graph, numCities int, start, target cityindex.ID, route *routestore.Route) pathfinder.Result {
	begin := time.Now()
	res := pathfinder.Search(g, numCities, start, target, route)
	metrics.SearchDuration.WithLabelValues(operation).Observe(time.Since(begin).Seconds())
	return res
}

// reportGauges refreshes the cities-known and routes-active gauges after a
// mutation that may have changed either count.
func (m *Map) reportGauges() {
	metrics.CitiesKnown.Set(float64(m.cities.Len()))
	metrics.RoutesActive.Set(float64(m.routes.Count()))
}

// Map is the in-memory road map: the sole unit of mutation described in
// spec §5. A zero-valued Map is not ready to use; construct with NewMap.
type Map struct {
	cities cityindex.Index
	graph  *roadgraph.Graph
	routes routestore.Store
}

// NewMap returns an empty, ready-to-use Map.
func NewMap() *Map {
	return &Map{graph: roadgraph.NewGraph()}
}

// CityName returns the name assigned to a city id.
func (m *Map) CityName(id cityindex.ID) string {
	return m.cities.NameOf(id)
}

// Road returns the road between two city ids, or nil if none exists.
func (m *Map) Road(a, b cityindex.ID) *roadgraph.Road {
	return m.graph.Road(a, b)
}

// RouteByID returns the route registered under id, or nil.
func (m *Map) RouteByID(id int) *routestore.Route {
	return m.routes.Get(id)
}

// AddRoad creates a new road between city1 and city2. Preconditions and
// ordering follow original_source/src/map.c's addRoad exactly: length and
// year are validated before either city name, which is validated before
// interning, so a validation failure never creates a city (spec §4.5,
// DESIGN.md Open Question 1).
func (m *Map) AddRoad(city1, city2 string, length uint32, year int32) (bool, error) {
	if length == 0 {
		return false, ErrInvalidLength
	}
	if year == 0 {
		return false, ErrInvalidYear
	}
	if !cityindex.IsValidName(city1) || !cityindex.IsValidName(city2) {
		return false, ErrInvalidCityName
	}
	if city1 == city2 {
		return false, ErrSameCity
	}

	if id1 := m.cities.Lookup(city1); id1 != cityindex.None {
		if id2 := m.cities.Lookup(city2); id2 != cityindex.None {
			if m.graph.Road(id1, id2) != nil {
				return false, ErrRoadExists
			}
		}
	}

	id1, err := m.cities.Intern(city1)
	if err != nil {
		return false, ErrInvalidCityName
	}
	id2, err := m.cities.Intern(city2)
	if err != nil {
		return false, ErrInvalidCityName
	}

	if _, ok := m.graph.AddRoad(id1, id2, length, year); !ok {
		return false, ErrRoadExists
	}
	m.reportGauges()
	return true, nil
}

// RepairRoad updates the repair year of the road between city1 and city2.
// The year may only increase (spec §4.2).
func (m *Map) RepairRoad(city1, city2 string, year int32) (bool, error) {
	if year == 0 {
		return false, ErrInvalidYear
	}
	if !cityindex.IsValidName(city1) || !cityindex.IsValidName(city2) {
		return false, ErrInvalidCityName
	}
	if city1 == city2 {
		return false, ErrSameCity
	}

	id1 := m.cities.Lookup(city1)
	id2 := m.cities.Lookup(city2)
	if id1 == cityindex.None || id2 == cityindex.None {
		return false, ErrCityNotFound
	}
	road := m.graph.Road(id1, id2)
	if road == nil {
		return false, ErrNoRoad
	}
	if year < road.Year {
		return false, ErrYearRegression
	}
	m.graph.RepairRoad(id1, id2, year)
	return true, nil
}

// NewRoute creates route routeID as the best path from city1 to city2.
func (m *Map) NewRoute(routeID int, city1, city2 string) (bool, error) {
	if routeID < routestore.MinID || routeID > routestore.MaxID {
		return false, ErrRouteIDRange
	}
	if m.routes.Has(routeID) {
		return false, ErrRouteExists
	}
	if !cityindex.IsValidName(city1) || !cityindex.IsValidName(city2) {
		return false, ErrInvalidCityName
	}
	if city1 == city2 {
		return false, ErrSameCity
	}

	id1 := m.cities.Lookup(city1)
	id2 := m.cities.Lookup(city2)
	if id1 == cityindex.None || id2 == cityindex.None {
		return false, ErrCityNotFound
	}

	res := search("newRoute", m.graph, m.cities.Len(), id1, id2, nil)
	if !res.Reachable {
		return false, ErrUnreachable
	}
	if !res.Unique {
		return false, ErrAmbiguous
	}

	route := &routestore.Route{ID: routeID, Sequence: res.Path(id1, id2)}
	m.markSegment(route.Sequence, routeID)
	m.routes.Put(route)
	m.reportGauges()
	return true, nil
}

// ExtendRoute extends route routeID to reach city, trying both of the
// route's endpoints and choosing the winner under spec §4.5's composite
// rule. Ambiguity — both extensions tie exactly — is a user-visible
// failure, never an arbitrary choice.
func (m *Map) ExtendRoute(routeID int, city string) (bool, error) {
	route := m.routes.Get(routeID)
	if route == nil {
		return false, ErrRouteNotFound
	}
	if !cityindex.IsValidName(city) {
		return false, ErrInvalidCityName
	}
	id := m.cities.Lookup(city)
	if id == cityindex.None {
		return false, ErrCityNotFound
	}
	if route.Contains(id) {
		return false, ErrCityOnRoute
	}

	last := route.Last()
	first := route.First()
	n := m.cities.Len()

	toTail := search("extendRoute", m.graph, n, last, id, route)
	toHead := search("extendRoute", m.graph, n, id, first, route)

	switch pickExtension(toTail, toHead) {
	case extendNone:
		return false, ErrUnreachable
	case extendAmbiguous:
		return false, ErrAmbiguous
	case extendTail:
		path := toTail.Path(last, id)
		m.markSegment(path, routeID)
		route.Sequence = append(route.Sequence, path[1:]...)
	case extendHead:
		path := toHead.Path(id, first)
		m.markSegment(path, routeID)
		route.Sequence = append(append([]cityindex.ID{}, path[:len(path)-1]...), route.Sequence...)
	}
	return true, nil
}

type extensionChoice int

const (
	extendNone extensionChoice = iota
	extendAmbiguous
	extendTail
	extendHead
)

// pickExtension applies spec §4.5's tie-break: discard unreachable/
// non-unique sides, prefer smaller length then greater oldest-year among
// survivors, and report ambiguity if both survivors tie on both.
func pickExtension(toTail, toHead pathfinder.Result) extensionChoice {
	tailOK := toTail.Reachable && toTail.Unique
	headOK := toHead.Reachable && toHead.Unique
	switch {
	case !tailOK && !headOK:
		return extendNone
	case tailOK && !headOK:
		return extendTail
	case !tailOK && headOK:
		return extendHead
	default:
		if toTail.Dist < toHead.Dist {
			return extendTail
		}
		if toHead.Dist < toTail.Dist {
			return extendHead
		}
		if toTail.Oldest > toHead.Oldest {
			return extendTail
		}
		if toHead.Oldest > toTail.Oldest {
			return extendHead
		}
		return extendAmbiguous
	}
}

// RemoveRoute deletes routeID, clearing its route id from every segment
// it traversed. Always succeeds if the route exists (spec §4.5).
func (m *Map) RemoveRoute(routeID int) (bool, error) {
	route := m.routes.Get(routeID)
	if route == nil {
		return false, ErrRouteNotFound
	}
	m.unmarkSegment(route.Sequence, routeID)
	m.routes.Delete(routeID)
	m.reportGauges()
	return true, nil
}

// RemoveRoad deletes the road between city1 and city2, first finding and
// splicing in a replacement sub-path for every route that used it. The
// removal is rejected, with no mutation at all, if any affected route
// cannot be uniquely repaired (spec §4.5).
//
// The edge being removed is excluded from the replacement search by
// removing it from the graph before searching and restoring it (with its
// original route membership) if any route's replacement search fails —
// see DESIGN.md Open Question 5. Without this, a replacement search could
// trivially "find" the very edge being deleted as its own shortest
// replacement, since that edge is still present and admissible.
func (m *Map) RemoveRoad(city1, city2 string) (bool, error) {
	if !cityindex.IsValidName(city1) || !cityindex.IsValidName(city2) {
		return false, ErrInvalidCityName
	}
	if city1 == city2 {
		return false, ErrSameCity
	}

	id1 := m.cities.Lookup(city1)
	id2 := m.cities.Lookup(city2)
	if id1 == cityindex.None || id2 == cityindex.None {
		return false, ErrCityNotFound
	}
	road := m.graph.Road(id1, id2)
	if road == nil {
		return false, ErrNoRoad
	}

	var affected []int
	road.Routes.Each(func(rid int) { affected = append(affected, rid) })

	length, year := road.Length, road.Year
	m.graph.RemoveRoad(id1, id2)

	n := m.cities.Len()
	replacements := make(map[int][]cityindex.ID, len(affected))
	for _, rid := range affected {
		route := m.routes.Get(rid)
		res := search("removeRoad", m.graph, n, id1, id2, route)
		if !res.Reachable || !res.Unique {
			m.restoreRoad(id1, id2, length, year, affected)
			if !res.Reachable {
				return false, ErrUnreachable
			}
			return false, ErrAmbiguous
		}
		replacements[rid] = res.Path(id1, id2)
	}

	for _, rid := range affected {
		route := m.routes.Get(rid)
		replacement := replacements[rid]
		spliceRoute(route, id1, id2, replacement)
		m.markSegment(replacement, rid)
	}
	return true, nil
}

func (m *Map) restoreRoad(id1, id2 cityindex.ID, length uint32, year int32, affected []int) {
	road, _ := m.graph.AddRoad(id1, id2, length, year)
	for _, rid := range affected {
		road.Routes.Add(rid)
	}
}

func (m *Map) markSegment(seq []cityindex.ID, routeID int) {
	for i := 0; i+1 < len(seq); i++ {
		m.graph.Road(seq[i], seq[i+1]).Routes.Add(routeID)
	}
}

func (m *Map) unmarkSegment(seq []cityindex.ID, routeID int) {
	for i := 0; i+1 < len(seq); i++ {
		if r := m.graph.Road(seq[i], seq[i+1]); r != nil {
			r.Routes.Remove(routeID)
		}
	}
}

// spliceRoute replaces the (a,b) or (b,a) adjacent pair in route's
// sequence with replacement, a full a..b (or b..a) path.
func spliceRoute(route *routestore.Route, a, b cityindex.ID, replacement []cityindex.ID) {
	seq := route.Sequence
	for i := 0; i+1 < len(seq); i++ {
		switch {
		case seq[i] == a && seq[i+1] == b:
			route.Sequence = splice(seq, i, replacement)
			return
		case seq[i] == b && seq[i+1] == a:
			route.Sequence = splice(seq, i, reversed(replacement))
			return
		}
	}
}

func splice(seq []cityindex.ID, i int, replacement []cityindex.ID) []cityindex.ID {
	out := make([]cityindex.ID, 0, len(seq)-2+len(replacement))
	out = append(out, seq[:i]...)
	out = append(out, replacement...)
	out = append(out, seq[i+2:]...)
	return out
}

func reversed(seq []cityindex.ID) []cityindex.ID {
	out := make([]cityindex.ID, len(seq))
	for i, c := range seq {
		out[len(seq)-1-i] = c
	}
	return out
}

// InternCity interns a city name directly, for use by the explicit route
// declaration CLI form, which must be able to create cities without also
// creating a road. It is not part of spec §6.1's programmatic API surface,
// but is required to implement §6.2's explicit route declaration, which
// creates roads (and therefore cities) as it validates.
func (m *Map) InternCity(name string) (cityindex.ID, error) {
	return m.cities.Intern(name)
}

// LookupCity returns the id of name, or cityindex.None if unknown.
func (m *Map) LookupCity(name string) cityindex.ID {
	return m.cities.Lookup(name)
}
