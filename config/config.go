// Copyright ©2024 The roadmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads cmd/roadmap-api's YAML configuration file.
// Grounded on qumo/cmd/qumo-relay/main.go's loadConfig: an unexported
// yaml-tagged struct decoded with gopkg.in/yaml.v3, copied into the
// exported Config with defaults applied for anything left zero.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is cmd/roadmap-api's resolved runtime configuration.
type Config struct {
	Address     string
	MetricsAddr string
	LogLevel    string
}

// Load reads and decodes the YAML file at filename, filling in defaults
// for any field left unset.
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", filename, err)
	}
	defer file.Close()

	var yml struct {
		Server struct {
			Address string `yaml:"address"`
		} `yaml:"server"`
		Metrics struct {
			Address string `yaml:"address"`
		} `yaml:"metrics"`
		Log struct {
			Level string `yaml:"level"`
		} `yaml:"log"`
	}

	if err := yaml.NewDecoder(file).Decode(&yml); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", filename, err)
	}

	cfg := &Config{
		Address:     yml.Server.Address,
		MetricsAddr: yml.Metrics.Address,
		LogLevel:    yml.Log.Level,
	}
	if cfg.Address == "" {
		cfg.Address = ":8080"
	}
	if cfg.MetricsAddr == "" {
		cfg.MetricsAddr = ":9090"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}
