// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clishell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/natroutes/roadmap/roadmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	ip := New(roadmap.NewMap(), &outBuf, &errBuf)
	err := ip.Run(strings.NewReader(input))
	require.NoError(t, err)
	return outBuf.String(), errBuf.String()
}

func TestAddRoadAndDescribeRoute(t *testing.T) {
	input := "addRoad;Warsaw;Lodz;100;2000\n" +
		"newRoute;1;Warsaw;Lodz\n" +
		"getRouteDescription;1\n"
	stdout, stderr := run(t, input)
	assert.Empty(t, stderr)
	assert.Equal(t, "1;Warsaw;100;2000;Lodz\n", stdout)
}

func TestBlankAndCommentLinesAreIgnored(t *testing.T) {
	stdout, stderr := run(t, "# a comment\n\naddRoad;A;B;10;2000\n")
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestLeadingSemicolonIsAlwaysAnError(t *testing.T) {
	_, stderr := run(t, ";addRoad;A;B;10;2000\n")
	assert.Equal(t, "ERROR 1\n", stderr)
}

func TestConsecutiveSemicolonsAreRejected(t *testing.T) {
	_, stderr := run(t, "addRoad;A;;10;2000\n")
	assert.Equal(t, "ERROR 1\n", stderr)
}

func TestUnknownCommandIsAnError(t *testing.T) {
	_, stderr := run(t, "flyToTheMoon;A;B\n")
	assert.Equal(t, "ERROR 1\n", stderr)
}

func TestExplicitRouteDeclaration(t *testing.T) {
	input := "5;Warsaw;100;2000;Lodz;50;1990;Krakow\n" +
		"getRouteDescription;5\n"
	stdout, stderr := run(t, input)
	assert.Empty(t, stderr)
	assert.Equal(t, "5;Warsaw;100;2000;Lodz;50;1990;Krakow\n", stdout)
}

func TestExplicitRouteDeclarationRejectsLengthMismatch(t *testing.T) {
	input := "addRoad;Warsaw;Lodz;100;2000\n" +
		"5;Warsaw;999;2000;Lodz\n"
	_, stderr := run(t, input)
	assert.Equal(t, "ERROR 2\n", stderr)
}

func TestGetRouteDescriptionRejectsNegativeID(t *testing.T) {
	stdout, stderr := run(t, "getRouteDescription;-5\n")
	assert.Empty(t, stdout)
	assert.Equal(t, "ERROR 1\n", stderr)
}

func TestGetRouteDescriptionOutOfRangePositiveIDIsBlank(t *testing.T) {
	stdout, stderr := run(t, "getRouteDescription;1000\n")
	assert.Empty(t, stderr)
	assert.Equal(t, "\n", stdout)
}

func TestLineNumbersTrackAcrossMultipleErrors(t *testing.T) {
	input := "addRoad;A;B;10;2000\n" +
		"badcommand\n" +
		"addRoad;C;D;10;2000\n" +
		"anotherbad;x\n"
	_, stderr := run(t, input)
	assert.Equal(t, "ERROR 2\nERROR 4\n", stderr)
}
