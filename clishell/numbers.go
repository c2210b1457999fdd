// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clishell

import (
	"math"
	"strconv"
)

const (
	minYear = math.MinInt32
	maxYear = math.MaxInt32
)

// isDigits reports whether s is an optional leading '-' followed by one or
// more ASCII digits, mirroring original_source/src/strings.c's
// strIsValidNumber (no sign-only or empty strings, no '+').
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseYear parses s as a road's built/repair year, returning (0, false)
// for anything strGetYear would also turn into 0: non-numeric, out of
// int32 range, or the literal 0.
func parseYear(s string) (int32, bool) {
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < minYear || n > maxYear || n == 0 {
		return 0, false
	}
	return int32(n), true
}

// parseLength parses s as a road length, returning (0, false) for
// anything strGetLength would also turn into 0.
func parseLength(s string) (uint32, bool) {
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 || n > math.MaxUint32 || n == 0 {
		return 0, false
	}
	return uint32(n), true
}

// parseRouteID parses s as a route id, returning (0, false) for anything
// strGetRouteId would also turn into 0: non-numeric, negative, or outside
// the [1,999] range this implementation enforces for routes (spec §6.3).
func parseRouteID(s string) (int, bool) {
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 || n > 999 {
		return 0, false
	}
	return int(n), true
}
