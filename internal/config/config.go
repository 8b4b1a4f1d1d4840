// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config reads the optional exrun.yaml file at the repository root.
// Flag values override file values, which override the built-in defaults;
// a missing file is not an error.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// FileName is the name of the optional configuration file.
const FileName = "exrun.yaml"

const (
	// DefaultToolchain is the executable used when no override is configured.
	DefaultToolchain = "dotnet"
	// DefaultConfiguration is the build configuration used when no override is configured.
	DefaultConfiguration = "Debug"
)

// ErrParseConfig is returned when the configuration file cannot be parsed.
var ErrParseConfig = errors.New("failed to parse config file")

// Config holds the repository-level defaults for running examples.
type Config struct {
	// Toolchain is the name of the toolchain executable to invoke.
	Toolchain string `yaml:"toolchain"`
	// Configuration is the build configuration passed to every run.
	Configuration string `yaml:"configuration"`
	// Framework is the target framework, passed only when non-empty.
	Framework string `yaml:"framework"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Toolchain:     DefaultToolchain,
		Configuration: DefaultConfiguration,
	}
}

// Load reads exrun.yaml from repoRoot, falling back to Default for the file
// as a whole and per field. The returned Config is always usable; the error
// reports an unreadable or unparseable file so the caller can surface it.
func Load(fsys afero.Fs, repoRoot string) (Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fsys, filepath.Join(repoRoot, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, err
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, errors.Join(ErrParseConfig, err)
	}

	if file.Toolchain != "" {
		cfg.Toolchain = file.Toolchain
	}

	if file.Configuration != "" {
		cfg.Configuration = file.Configuration
	}

	cfg.Framework = file.Framework

	return cfg, nil
}
