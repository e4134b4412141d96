// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Native Wrappers

// Package config handles nativegen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the nativegen.yaml project configuration file.
type Config struct {
	Version int    `yaml:"version"`
	Docs    string `yaml:"docs"`
	Enums   string `yaml:"enums,omitempty"`
	Structs string `yaml:"structs,omitempty"`
	Output  string `yaml:"output,omitempty"`

	// Formats lists the emitters run by default when generate is invoked
	// without an explicit --format.
	Formats []string `yaml:"formats,omitempty"`

	// Strict promotes parse and validation warnings to errors.
	Strict bool `yaml:"strict,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	if c.Docs == "" {
		return errors.New("docs directory is required")
	}
	return nil
}
