// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clishell implements the line-oriented command interpreter
// described in spec §6.2: one command per line of input. A successful
// getRouteDescription prints one line of output, other successful commands
// print nothing, and a failed line produces an "ERROR <lineNumber>"
// diagnostic.
//
// Grounded on original_source/src/map_main.c's readLine/processLine pair.
// Line splitting and the seven recognized command forms plus explicit
// route declaration follow that source's validation order exactly; the
// manual realloc-doubling buffer and strtok-based tokenizing have no
// idiomatic Go analogue worth keeping and are replaced by bufio.Scanner
// and strings.Split.
package clishell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/natroutes/roadmap/render"
	"github.com/natroutes/roadmap/roadmap"
)

// Interpreter executes command lines against a Map, grounded on
// original_source/src/map_main.c's processLine.
type Interpreter struct {
	Map    *roadmap.Map
	Stdout io.Writer
	Stderr io.Writer
	Log    *slog.Logger
}

// New returns an Interpreter ready to run against m, writing results to
// stdout and ERROR diagnostics to stderr.
func New(m *roadmap.Map, stdout, stderr io.Writer) *Interpreter {
	return &Interpreter{Map: m, Stdout: stdout, Stderr: stderr, Log: slog.Default()}
}

// Run reads newline-delimited commands from r until EOF, processing each
// in turn. Embedded NUL bytes are rewritten to byte 0x01 so they cannot
// be mistaken for a string terminator downstream, matching readLine's
// "\0 -> 1" substitution.
func (ip *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 16*1024*1024)

	lineNumber := 1
	for scanner.Scan() {
		line := sanitizeNUL(scanner.Text())
		ip.processLine(line, lineNumber)
		lineNumber++
	}
	return scanner.Err()
}

func sanitizeNUL(line string) string {
	if !strings.ContainsRune(line, 0) {
		return line
	}
	return strings.ReplaceAll(line, "\x00", "\x01")
}

func (ip *Interpreter) reportError(lineNumber int) {
	fmt.Fprintf(ip.Stderr, "ERROR %d\n", lineNumber)
}

// processLine dispatches a single command line. Comments ("#...") and
// blank lines are silently ignored; a line starting with ';' is always a
// malformed command (an empty leading field).
func (ip *Interpreter) processLine(line string, lineNumber int) {
	if line == "" || line[0] == '#' {
		return
	}
	if line[0] == ';' {
		ip.reportError(lineNumber)
		return
	}

	fields := strings.Split(line, ";")
	for _, f := range fields {
		if f == "" {
			// A run of consecutive ';' (or a trailing one) produces an
			// empty field here; the C tokenizer silently drops it instead,
			// which always desyncs the line's real length against the
			// token count it reconstructs. Both behaviors reject the line.
			ip.reportError(lineNumber)
			return
		}
	}

	command := fields[0]
	args := fields[1:]

	if routeID, ok := parseRouteID(command); ok {
		ip.processRouteDeclaration(routeID, args, lineNumber)
		return
	}

	var ok bool
	switch command {
	case "addRoad":
		ok = ip.cmdAddRoad(args)
	case "removeRoad":
		ok = ip.cmdRemoveRoad(args)
	case "repairRoad":
		ok = ip.cmdRepairRoad(args)
	case "newRoute":
		ok = ip.cmdNewRoute(args)
	case "removeRoute":
		ok = ip.cmdRemoveRoute(args)
	case "extendRoute":
		ok = ip.cmdExtendRoute(args)
	case "getRouteDescription":
		ok = ip.cmdGetRouteDescription(args)
	default:
		ok = false
	}
	if !ok {
		ip.reportError(lineNumber)
	}
}

func (ip *Interpreter) cmdAddRoad(args []string) bool {
	if len(args) != 4 {
		return false
	}
	length, lok := parseLength(args[2])
	year, yok := parseYear(args[3])
	if !lok || !yok {
		return false
	}
	ok, err := ip.Map.AddRoad(args[0], args[1], length, year)
	if err != nil {
		ip.Log.Debug("addRoad rejected", "city1", args[0], "city2", args[1], "err", err)
	}
	return ok
}

func (ip *Interpreter) cmdRemoveRoad(args []string) bool {
	if len(args) != 2 {
		return false
	}
	ok, err := ip.Map.RemoveRoad(args[0], args[1])
	if err != nil {
		ip.Log.Debug("removeRoad rejected", "city1", args[0], "city2", args[1], "err", err)
	}
	return ok
}

func (ip *Interpreter) cmdRepairRoad(args []string) bool {
	if len(args) != 3 {
		return false
	}
	year, yok := parseYear(args[2])
	if !yok {
		return false
	}
	ok, err := ip.Map.RepairRoad(args[0], args[1], year)
	if err != nil {
		ip.Log.Debug("repairRoad rejected", "city1", args[0], "city2", args[1], "err", err)
	}
	return ok
}

func (ip *Interpreter) cmdNewRoute(args []string) bool {
	if len(args) != 3 {
		return false
	}
	routeID, rok := parseRouteID(args[0])
	if !rok {
		return false
	}
	ok, err := ip.Map.NewRoute(routeID, args[1], args[2])
	if err != nil {
		ip.Log.Debug("newRoute rejected", "routeID", routeID, "err", err)
	}
	return ok
}

func (ip *Interpreter) cmdRemoveRoute(args []string) bool {
	if len(args) != 1 {
		return false
	}
	routeID, rok := parseRouteID(args[0])
	if !rok {
		return false
	}
	ok, err := ip.Map.RemoveRoute(routeID)
	if err != nil {
		ip.Log.Debug("removeRoute rejected", "routeID", routeID, "err", err)
	}
	return ok
}

func (ip *Interpreter) cmdExtendRoute(args []string) bool {
	if len(args) != 2 {
		return false
	}
	routeID, rok := parseRouteID(args[0])
	if !rok {
		return false
	}
	ok, err := ip.Map.ExtendRoute(routeID, args[1])
	if err != nil {
		ip.Log.Debug("extendRoute rejected", "routeID", routeID, "err", err)
	}
	return ok
}

func (ip *Interpreter) cmdGetRouteDescription(args []string) bool {
	if len(args) != 1 {
		return false
	}
	// map_main.c's getRouteDescription branch always rejects a leading '-'
	// before it ever considers the out-of-range-id/empty-description case,
	// so a negative id is a command error, never a blank-line success.
	if args[0] != "" && args[0][0] == '-' {
		return false
	}
	routeID, rok := parseRouteID(args[0])
	if !rok {
		// A non-negative id outside [1,999] still produces the empty
		// description, not a rejected command, matching getRouteDescription
		// returning an empty (never NULL) buffer for any id outside [1,999].
		if !isDigits(args[0]) {
			return false
		}
		fmt.Fprintln(ip.Stdout)
		return true
	}
	fmt.Fprintln(ip.Stdout, render.Describe(ip.Map, routeID))
	return true
}

// processRouteDeclaration handles the explicit route form: a line whose
// command token is itself a route id in [1,999], followed by an
// alternating city;length;year;...;city list describing the route's full
// path. Any road segment already present in the map must match the
// declared length exactly and may only have its year repaired forward;
// any segment absent is created fresh. Grounded on map_main.c's inline
// handling in processLine (the branch keyed on strGetRouteId(command)).
func (ip *Interpreter) processRouteDeclaration(routeID int, args []string, lineNumber int) {
	if len(args) < 4 || (len(args)-1)%3 != 0 {
		ip.reportError(lineNumber)
		return
	}

	numSegments := (len(args) - 1) / 3
	cities := make([]string, 0, numSegments+1)
	lengths := make([]uint32, 0, numSegments)
	years := make([]int32, 0, numSegments)

	for i := 0; i < numSegments; i++ {
		cities = append(cities, args[3*i])
		length, lok := parseLength(args[3*i+1])
		year, yok := parseYear(args[3*i+2])
		if !lok || !yok {
			ip.reportError(lineNumber)
			return
		}
		lengths = append(lengths, length)
		years = append(years, year)
	}
	cities = append(cities, args[len(args)-1])

	if ok, err := ip.Map.DeclareRoute(routeID, cities, lengths, years); !ok {
		ip.Log.Debug("route declaration rejected", "routeID", routeID, "err", err)
		ip.reportError(lineNumber)
	}
}
