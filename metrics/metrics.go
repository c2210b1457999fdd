// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics defines the Prometheus instrumentation exposed by
// cmd/roadmap-api, grounded on qumo/cmd/qumo-relay/main.go's
// promhttp.Handler() mount. Counters and a histogram are registered via
// promauto at package init, the standard client_golang idiom.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal counts every Map mutation attempt, labeled by
	// operation name and outcome ("ok" or "rejected").
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roadmap_operations_total",
		Help: "Total number of map operations processed, by operation and outcome.",
	}, []string{"operation", "outcome"})

	// SearchDuration observes how long Pathfinder.Search takes to run, in
	// seconds, for each operation that triggers a search.
	SearchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roadmap_search_duration_seconds",
		Help:    "Duration of pathfinder searches triggered by map operations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// CitiesKnown reports the number of distinct cities interned so far.
	CitiesKnown = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roadmap_cities_known",
		Help: "Number of distinct cities known to the map.",
	})

	// RoutesActive reports the number of national routes currently
	// registered.
	RoutesActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roadmap_routes_active",
		Help: "Number of national routes currently registered.",
	})
)

// ObserveOutcome records the result of an operation attempt.
func ObserveOutcome(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	OperationsTotal.WithLabelValues(operation, outcome).Inc()
}
