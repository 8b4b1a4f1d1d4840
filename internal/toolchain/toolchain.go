// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package toolchain

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// MinSingleFileMajor is the first toolchain major version able to run
	// bare source files directly.
	MinSingleFileMajor = 10
	// ExitCodeNotFound is the conventional "command not found" exit code,
	// returned when the toolchain executable cannot be located or started.
	ExitCodeNotFound = 127
)

// ErrNotFound is returned when the toolchain executable is not on PATH.
var ErrNotFound = errors.New("toolchain executable not found")

// Toolchain invokes a named external toolchain executable.
type Toolchain struct {
	name  string
	path  string         // resolved lazily by Find
	sigCh chan os.Signal // channel to receive signals, allows mocking in test
}

// New returns a Toolchain that invokes the named executable.
func New(name string) *Toolchain {
	return &Toolchain{name: name}
}

// Name returns the configured executable name.
func (t *Toolchain) Name() string {
	return t.name
}

// Find locates the executable on PATH and caches the result. On non-Windows
// systems the candidate must have an executable bit set; on Windows the
// name is also tried with an .exe suffix.
func (t *Toolchain) Find() (string, error) {
	if t.path != "" {
		return t.path, nil
	}

	if t.name == "" {
		return "", ErrNotFound
	}

	candidates := []string{t.name}
	if runtime.GOOS == "windows" && !strings.EqualFold(filepath.Ext(t.name), ".exe") {
		candidates = append(candidates, t.name+".exe")
	}

	for _, p := range strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)) {
		for _, candidate := range candidates {
			full := filepath.Join(p, candidate)

			info, err := os.Stat(full)
			if err != nil || info.IsDir() {
				continue
			}

			if runtime.GOOS != "windows" && info.Mode()&0111 == 0 {
				continue
			}

			t.path = full

			return full, nil
		}
	}

	return "", ErrNotFound
}
