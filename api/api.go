// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package api exposes roadmap.Map over HTTP using github.com/tigerwill90/
// fox as the router. Grounded on tigerwill90/fox's own route-registration
// style (fox.go's MustAdd/Add with a method slice and a pattern string,
// context.go's *fox.Context handlers and Context.Param path-parameter
// access). Each request gets a google/uuid correlation id, generated by
// middleware and logged once the handler returns, the way a
// correlation id threads through a request in mpisat-qumo's relay.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tigerwill90/fox"

	"github.com/natroutes/roadmap/metrics"
	"github.com/natroutes/roadmap/render"
	"github.com/natroutes/roadmap/roadmap"
)

// New builds a fox.Router exposing m's road-network operations. log
// receives one line per request: correlation id, method, path, and
// duration.
func New(m *roadmap.Map, log *slog.Logger) (*fox.Router, error) {
	router, err := fox.NewRouter(fox.WithMiddleware(correlate(log)))
	if err != nil {
		return nil, err
	}

	h := &handlers{m: m, log: log}
	router.MustAdd([]string{http.MethodPost}, "/roads", h.addRoad)
	router.MustAdd([]string{http.MethodDelete}, "/roads/{city1}/{city2}", h.removeRoad)
	router.MustAdd([]string{http.MethodPatch}, "/roads/{city1}/{city2}", h.repairRoad)
	router.MustAdd([]string{http.MethodPost}, "/routes/{id}", h.newRoute)
	router.MustAdd([]string{http.MethodPatch}, "/routes/{id}", h.extendRoute)
	router.MustAdd([]string{http.MethodDelete}, "/routes/{id}", h.removeRoute)
	router.MustAdd([]string{http.MethodGet}, "/routes/{id}", h.getRouteDescription)
	return router, nil
}

// correlate generates a fresh correlation id for every request and logs it
// with the request's method, path, and duration once the handler returns.
func correlate(log *slog.Logger) fox.MiddlewareFunc {
	return func(next fox.HandlerFunc) fox.HandlerFunc {
		return func(c *fox.Context) {
			start := time.Now()
			id := uuid.NewString()
			next(c)
			log.Info("request",
				"request_id", id,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"duration", time.Since(start),
			)
		}
	}
}

// handlers serializes every request against m behind a single mutex.
// net/http runs one goroutine per connection, but roadmap.Map (spec §5) is
// not safe for concurrent mutation — its CityIndex map, Graph adjacency
// slices, and Store array all assume a sole mutator — so every handler
// takes mu before touching m, the same single-lock-around-the-aggregate
// shape mpisat-qumo's relay uses to guard its connection table.
type handlers struct {
	m   *roadmap.Map
	log *slog.Logger
	mu  sync.Mutex
}

type addRoadRequest struct {
	City1  string `json:"city1"`
	City2  string `json:"city2"`
	Length uint32 `json:"length"`
	Year   int32  `json:"year"`
}

func (h *handlers) addRoad(c *fox.Context) {
	var req addRoadRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	h.mu.Lock()
	ok, err := h.m.AddRoad(req.City1, req.City2, req.Length, req.Year)
	h.mu.Unlock()
	metrics.ObserveOutcome("addRoad", err)
	if !ok {
		writeError(c, statusFor(err), err)
		return
	}
	c.Writer().WriteHeader(http.StatusCreated)
}

func (h *handlers) removeRoad(c *fox.Context) {
	h.mu.Lock()
	ok, err := h.m.RemoveRoad(c.Param("city1"), c.Param("city2"))
	h.mu.Unlock()
	metrics.ObserveOutcome("removeRoad", err)
	if !ok {
		writeError(c, statusFor(err), err)
		return
	}
	c.Writer().WriteHeader(http.StatusNoContent)
}

type repairRoadRequest struct {
	Year int32 `json:"year"`
}

func (h *handlers) repairRoad(c *fox.Context) {
	var req repairRoadRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	h.mu.Lock()
	ok, err := h.m.RepairRoad(c.Param("city1"), c.Param("city2"), req.Year)
	h.mu.Unlock()
	metrics.ObserveOutcome("repairRoad", err)
	if !ok {
		writeError(c, statusFor(err), err)
		return
	}
	c.Writer().WriteHeader(http.StatusNoContent)
}

type newRouteRequest struct {
	City1 string `json:"city1"`
	City2 string `json:"city2"`
}

func (h *handlers) newRoute(c *fox.Context) {
	routeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	var req newRouteRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	h.mu.Lock()
	ok, err := h.m.NewRoute(routeID, req.City1, req.City2)
	h.mu.Unlock()
	metrics.ObserveOutcome("newRoute", err)
	if !ok {
		writeError(c, statusFor(err), err)
		return
	}
	c.Writer().WriteHeader(http.StatusCreated)
}

type extendRouteRequest struct {
	City string `json:"city"`
}

func (h *handlers) extendRoute(c *fox.Context) {
	routeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	var req extendRouteRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	h.mu.Lock()
	ok, err := h.m.ExtendRoute(routeID, req.City)
	h.mu.Unlock()
	metrics.ObserveOutcome("extendRoute", err)
	if !ok {
		writeError(c, statusFor(err), err)
		return
	}
	c.Writer().WriteHeader(http.StatusNoContent)
}

func (h *handlers) removeRoute(c *fox.Context) {
	routeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	h.mu.Lock()
	ok, err := h.m.RemoveRoute(routeID)
	h.mu.Unlock()
	metrics.ObserveOutcome("removeRoute", err)
	if !ok {
		writeError(c, statusFor(err), err)
		return
	}
	c.Writer().WriteHeader(http.StatusNoContent)
}

func (h *handlers) getRouteDescription(c *fox.Context) {
	routeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	h.mu.Lock()
	desc := render.Describe(h.m, routeID)
	h.mu.Unlock()
	if desc == "" {
		writeError(c, http.StatusNotFound, roadmap.ErrRouteNotFound)
		return
	}
	c.String(http.StatusOK, desc)
}

func writeError(c *fox.Context, status int, err error) {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	c.Blob(status, "application/json", body)
}

// statusFor maps a roadmap.Error's Kind to the HTTP status it reports as.
func statusFor(err error) int {
	rerr, ok := err.(*roadmap.Error)
	if !ok {
		return http.StatusInternalServerError
	}
	switch rerr.Kind {
	case roadmap.KindValidation:
		return http.StatusBadRequest
	case roadmap.KindState:
		return http.StatusConflict
	case roadmap.KindSearch:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
