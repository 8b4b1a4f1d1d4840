// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package toolchain wraps the external build/run toolchain the examples are
// executed with. It locates the executable on PATH, probes its major version
// and runs a resolved target with inherited standard streams, propagating
// the child's exit code. The toolchain's capabilities are consumed, never
// reimplemented.
package toolchain
