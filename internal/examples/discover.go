// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package examples

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/exrun/internal/ctxlog"
	"github.com/spf13/afero"
)

const (
	// ProjectExt is the extension of project descriptor files.
	ProjectExt = ".csproj"
	// SourceExt is the extension of single-file example sources.
	SourceExt = ".cs"
)

// ErrWalk is returned (wrapped) for filesystem entries skipped during discovery.
var ErrWalk = errors.New("discovery walk error")

// buildDirNames are path components that mark build output; anything below
// them is never a single-file example.
var buildDirNames = []string{"bin", "obj"}

// DirNames are the accepted names of the examples directory, checked in
// order. These are explicit alternatives, not a case-insensitive lookup.
var DirNames = []string{"examples", "Examples"}

// Dir returns the examples directory under repoRoot, or an empty string if
// no such directory exists.
func Dir(fsys afero.Fs, repoRoot string) string {
	for _, name := range DirNames {
		dir := filepath.Join(repoRoot, name)
		if ok, err := afero.DirExists(fsys, dir); err == nil && ok {
			return dir
		}
	}

	return ""
}

// Discover walks the examples directory under repoRoot and builds the name
// to target mapping. Project descriptors register two candidate keys each:
// the containing directory's name and the descriptor's base name. When
// singleFileCapable is true, bare source files register their base name,
// except files inside build output directories or alongside a descriptor.
//
// Discovery is total: it always returns a usable (possibly empty) mapping.
// The returned error aggregates entries that were skipped because they could
// not be read and is informational, not fatal.
func Discover(ctx context.Context, fsys afero.Fs, repoRoot string, singleFileCapable bool) (Mapping, error) {
	m := Mapping{}

	dir := Dir(fsys, repoRoot)
	if dir == "" {
		ctxlog.Debug(ctx, "no examples directory", "repoRoot", repoRoot)
		return m, nil
	}

	var errs *multierror.Error

	errs = multierror.Append(errs, discoverProjects(ctx, fsys, dir, m))

	if singleFileCapable {
		errs = multierror.Append(errs, discoverFiles(ctx, fsys, dir, m))
	}

	return m, errs.ErrorOrNil()
}

func discoverProjects(ctx context.Context, fsys afero.Fs, dir string, m Mapping) error {
	var errs *multierror.Error

	_ = afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s: %v", ErrWalk, path, err))
			return skipEntry(info)
		}

		if info.IsDir() || !strings.EqualFold(filepath.Ext(path), ProjectExt) {
			return nil
		}

		target := Target{Kind: KindProject, Path: path}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		// Users may refer to an example by its folder name or project name.
		m.add(ctx, filepath.Base(filepath.Dir(path)), target)
		m.add(ctx, base, target)

		return nil
	})

	return errs.ErrorOrNil()
}

func discoverFiles(ctx context.Context, fsys afero.Fs, dir string, m Mapping) error {
	var errs *multierror.Error

	_ = afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s: %v", ErrWalk, path, err))
			return skipEntry(info)
		}

		if info.IsDir() {
			if isBuildDir(info.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), SourceExt) {
			return nil
		}

		// A source file next to a project descriptor belongs to that
		// project and is not an independent example.
		hasProject, err := containsProject(fsys, filepath.Dir(path))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s: %v", ErrWalk, path, err))
			return nil
		}

		if hasProject {
			return nil
		}

		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		m.add(ctx, base, Target{Kind: KindFile, Path: path})

		return nil
	})

	return errs.ErrorOrNil()
}

func containsProject(fsys afero.Fs, dir string) (bool, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return false, err
	}

	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ProjectExt) {
			return true, nil
		}
	}

	return false, nil
}

func isBuildDir(name string) bool {
	for _, b := range buildDirNames {
		if strings.EqualFold(name, b) {
			return true
		}
	}

	return false
}

// skipEntry keeps the walk going after an unreadable entry: partial results
// are more useful than total failure for a convenience tool.
func skipEntry(info os.FileInfo) error {
	if info != nil && info.IsDir() {
		return filepath.SkipDir
	}

	return nil
}
