// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roadgraph

import "github.com/natroutes/roadmap/internal/bitset"

// MaxRouteID is the largest route id a route may be assigned (spec §6.3).
const MaxRouteID = 999

// routeSet tracks which national routes traverse a road segment.
type routeSet struct {
	bits bitset.Set
}

func newRouteSet() routeSet {
	return routeSet{bits: bitset.New(MaxRouteID + 1)}
}

// Add marks routeID as using this segment.
func (s routeSet) Add(routeID int) { s.bits.Add(routeID) }

// Remove unmarks routeID.
func (s routeSet) Remove(routeID int) { s.bits.Remove(routeID) }

// Has reports whether routeID uses this segment.
func (s routeSet) Has(routeID int) bool { return s.bits.Test(routeID) }

// Each calls fn for every route id using this segment, ascending.
func (s routeSet) Each(fn func(routeID int)) { s.bits.Each(fn) }

// Len returns how many routes use this segment.
func (s routeSet) Len() int { return s.bits.Count() }
