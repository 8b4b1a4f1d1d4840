// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package examples

import (
	"context"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/exrun/internal/ctxlog"
)

// TargetKind distinguishes how a target is handed to the toolchain.
type TargetKind int

const (
	// KindProject is an example built and run via a project descriptor file.
	KindProject TargetKind = iota
	// KindFile is a single self-contained source file run directly.
	KindFile
)

// String returns a string representation of the target kind.
func (k TargetKind) String() string {
	switch k {
	case KindProject:
		return "project"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Target represents one runnable example. For KindProject, Path is the
// project descriptor file; for KindFile, it is the source file itself.
// Targets are immutable once constructed.
type Target struct {
	Kind TargetKind
	Path string
}

// Mapping maps example names (case-sensitive) to targets. Keys follow
// first-writer-wins semantics: project-based discovery runs before
// single-file discovery, so project-derived keys take priority.
type Mapping map[string]Target

// add registers name unless it is already claimed. Attempted overwrites are
// logged so silent ties are visible to the user at debug/warn level.
func (m Mapping) add(ctx context.Context, name string, t Target) {
	if existing, ok := m[name]; ok {
		if existing.Path == t.Path {
			return
		}

		ctxlog.Warn(ctx, "example name already claimed, keeping first",
			"name", name, "kept", existing.Path, "ignored", t.Path)

		return
	}

	m[name] = t
}

// Names returns all registered names sorted case-insensitively, with a
// case-sensitive tiebreak for names that are equal under folding. This is
// the one comparison used everywhere available names are displayed.
func (m Mapping) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	slices.SortFunc(names, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}

		return strings.Compare(a, b)
	})

	return names
}
