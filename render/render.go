// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render formats a route as the canonical ';'-delimited
// description string returned by the CLI and HTTP surfaces (spec §6).
package render

import (
	"strconv"
	"strings"

	"github.com/natroutes/roadmap/roadmap"
)

// Describe returns routeID's description: "routeId;City1;length1;year1;
// City2;length2;year2;...;CityN", one length/year pair per road traversed
// in order. It returns the empty string if routeID is not registered,
// matching original_source/src/map.c's getRouteDescription, which returns
// an empty buffer rather than an error for the same case.
func Describe(m *roadmap.Map, routeID int) string {
	route := m.RouteByID(routeID)
	if route == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(routeID))

	seq := route.Sequence
	for i := 0; i < len(seq); i++ {
		b.WriteByte(';')
		b.WriteString(m.CityName(seq[i]))
		if i+1 < len(seq) {
			road := m.Road(seq[i], seq[i+1])
			b.WriteByte(';')
			b.WriteString(strconv.FormatUint(uint64(road.Length), 10))
			b.WriteByte(';')
			b.WriteString(strconv.FormatInt(int64(road.Year), 10))
		}
	}
	return b.String()
}
