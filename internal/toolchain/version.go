// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package toolchain

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/exrun/internal/ctxlog"
)

// maxVersionOutput bounds how much of the version output is read.
const maxVersionOutput = 4 * 1024

// MajorVersion probes the toolchain for its major version: the leading
// numeric token of the version string before any ".", "-" or "+" separator.
// It returns 0 when the toolchain is absent, cannot be started, exits
// non-zero or prints something unparseable. Absence of the toolchain is
// never an error here; 0 conservatively disables single-file discovery.
func (t *Toolchain) MajorVersion(ctx context.Context) int {
	logger := ctxlog.Logger(ctx)

	path, err := t.Find()
	if err != nil {
		logger.Debug("toolchain not found, assuming version 0", "name", t.name)
		return 0
	}

	rOut, wOut, err := os.Pipe()
	if err != nil {
		logger.Debug("failed to create pipe for version probe", "error", err)
		return 0
	}

	defer rOut.Close() //nolint:errcheck

	ps, err := startProcess(path, []string{filepath.Base(path), "--version"}, &os.ProcAttr{
		Files: []*os.File{nil, wOut, nil},
	})
	if err != nil {
		_ = wOut.Close()

		logger.Debug("failed to start version probe", "path", path, "error", err)

		return 0
	}

	state, psErr := ps.Wait()

	_ = wOut.Close()

	out, _ := io.ReadAll(io.LimitReader(rOut, maxVersionOutput))

	if psErr != nil {
		logger.Debug("version probe failed", "error", psErr)
		return 0
	}

	if state.ExitCode() != 0 {
		logger.Debug("version probe failed", "exitCode", state.ExitCode())
		return 0
	}

	major := parseMajor(string(out))
	logger.Debug("toolchain version probed", "path", path, "major", major)

	return major
}

// parseMajor extracts the leading integer from a version string such as
// "10.0.100-preview.7". Unparseable input yields 0.
func parseMajor(s string) int {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0
	}

	major, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}

	return major
}
