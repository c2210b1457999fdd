// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command roadmap-cli runs the line-oriented command interpreter (spec
// §6.2) over standard input, writing results to standard output and
// "ERROR <lineNumber>" diagnostics to standard error. Grounded on
// original_source/src/map_main.c's main, in the flag/slog shape of
// mpisat-qumo/cmd/qumo-relay/main.go.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/natroutes/roadmap/clishell"
	"github.com/natroutes/roadmap/roadmap"
)

func main() {
	verbose := flag.Bool("verbose", false, "log rejected operations at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ip := clishell.New(roadmap.NewMap(), os.Stdout, os.Stderr)
	ip.Log = logger

	if err := ip.Run(os.Stdin); err != nil {
		logger.Error("reading input failed", "err", err)
		os.Exit(1)
	}
}
