// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package examples discovers runnable example programs under a repository's
// examples directory and resolves a user-supplied name to exactly one target.
//
// Two kinds of target exist: project-based examples, described by a project
// descriptor file the toolchain builds and runs, and single-file examples,
// bare source files that newer toolchains can run directly. Discovery builds
// a fresh name to target mapping on every invocation; a name, once bound, is
// never overwritten by a later discovery step.
package examples
