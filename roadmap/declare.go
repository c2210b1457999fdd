// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roadmap

import (
	"github.com/natroutes/roadmap/cityindex"
	"github.com/natroutes/roadmap/routestore"
)

// DeclareRoute registers routeID as running through cities in order, with
// lengths[i]/years[i] describing the road between cities[i] and
// cities[i+1]. Any road already present between two consecutive cities
// must match the declared length exactly and may only have its year
// repaired forward (never backward); any road absent is created fresh
// with the declared length and year. This is the explicit route
// declaration form of spec §6.2, distinct from NewRoute (§4.5), which
// computes its own path instead of being handed one.
//
// Grounded on original_source/src/map_main.c's inline handling of a
// command line whose first token is itself a route id: validate every
// city name, reject a repeated city (a route may not cross itself),
// validate every segment's length/year against whatever road already
// exists, then commit cities, roads, and the route itself in that order.
func (m *Map) DeclareRoute(routeID int, cities []string, lengths []uint32, years []int32) (bool, error) {
	if routeID < routestore.MinID || routeID > routestore.MaxID {
		return false, ErrRouteIDRange
	}
	if m.routes.Has(routeID) {
		return false, ErrRouteExists
	}
	if len(cities) < 2 || len(lengths) != len(cities)-1 || len(years) != len(cities)-1 {
		return false, ErrInvalidLength
	}

	for _, name := range cities {
		if !cityindex.IsValidName(name) {
			return false, ErrInvalidCityName
		}
	}
	for i := range cities {
		for j := 0; j < i; j++ {
			if cities[i] == cities[j] {
				return false, ErrCityOnRoute
			}
		}
	}
	for i, length := range lengths {
		if length == 0 {
			return false, ErrInvalidLength
		}
		if years[i] == 0 {
			return false, ErrInvalidYear
		}
		a := m.cities.Lookup(cities[i])
		b := m.cities.Lookup(cities[i+1])
		if a != cityindex.None && b != cityindex.None {
			if road := m.graph.Road(a, b); road != nil {
				if road.Length != length {
					return false, ErrRoadExists
				}
				if years[i] < road.Year {
					return false, ErrYearRegression
				}
			}
		}
	}

	ids := make([]cityindex.ID, len(cities))
	for i, name := range cities {
		id, err := m.cities.Intern(name)
		if err != nil {
			return false, ErrInvalidCityName
		}
		ids[i] = id
	}
	for i, length := range lengths {
		a, b := ids[i], ids[i+1]
		if m.graph.Road(a, b) != nil {
			m.graph.RepairRoad(a, b, years[i])
		} else {
			m.graph.AddRoad(a, b, length, years[i])
		}
	}

	route := &routestore.Route{ID: routeID, Sequence: ids}
	m.markSegment(ids, routeID)
	m.routes.Put(route)
	m.reportGauges()
	return true, nil
}
