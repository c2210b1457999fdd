// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  address: \":1234\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Address != ":1234" {
		t.Fatalf("got address %q, want :1234", cfg.Address)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Fatalf("got metrics addr %q, want default :9090", cfg.MetricsAddr)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("got log level %q, want default info", cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
