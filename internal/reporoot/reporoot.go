// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package reporoot locates the repository root by walking ancestor
// directories until one containing an examples directory is found.
package reporoot

import (
	"path/filepath"

	"github.com/matt-FFFFFF/exrun/internal/examples"
	"github.com/spf13/afero"
)

// Find walks from start up the ancestor chain (inclusive) and returns the
// first directory that has a direct child named examples or Examples. If no
// ancestor qualifies, the original start directory is returned unchanged.
// Find never fails and has no side effects.
func Find(fsys afero.Fs, start string) string {
	dir := filepath.Clean(start)

	for {
		if examples.Dir(fsys, dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}

		dir = parent
	}
}
