// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// newRepo creates a repository fixture on the real filesystem with project
// descriptors for the named examples.
func newRepo(t *testing.T, names ...string) string {
	t.Helper()

	repo := t.TempDir()
	for _, name := range names {
		dir := filepath.Join(repo, "examples", name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".csproj"), []byte("<Project/>"), 0o644))
	}

	return repo
}

func newRoot(out, errOut *bytes.Buffer) *cli.Command {
	// RunCmd is a shared package-level value and cli only wires writers on
	// its first setup, so point its writers at this test's buffers directly.
	RunCmd.Writer = out
	RunCmd.ErrWriter = errOut

	return &cli.Command{
		Name:      "exrun",
		Commands:  []*cli.Command{RunCmd},
		Writer:    out,
		ErrWriter: errOut,
	}
}

func TestRun_EmptyExampleListsToStdout(t *testing.T) {
	t.Setenv("PATH", t.TempDir()) // no toolchain on PATH

	repo := newRepo(t, "Alpha", "beta")

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root := newRoot(out, errOut)

	err := root.Run(context.Background(), []string{"exrun", "run", "--root", repo, "-e", ""})
	require.NoError(t, err)

	assert.Equal(t, "Alpha\nbeta\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_NoExamplesExitsOne(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	var code int

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	stub := gostub.Stub(&cli.OsExiter, func(c int) { code = c }).Stub(&cli.ErrWriter, errOut)
	defer stub.Reset()

	root := newRoot(out, errOut)

	err := root.Run(context.Background(), []string{"exrun", "run", "--root", t.TempDir(), "-e", ""})
	require.Error(t, err)

	assert.Equal(t, exitNoExamples, code)
	assert.Contains(t, errOut.String(), "no examples found")
}

func TestRun_NotFoundListsToStderrAndExitsTwo(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	repo := newRepo(t, "Alpha", "beta")

	var code int

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	stub := gostub.Stub(&cli.OsExiter, func(c int) { code = c }).Stub(&cli.ErrWriter, errOut)
	defer stub.Reset()

	root := newRoot(out, errOut)

	err := root.Run(context.Background(), []string{"exrun", "run", "--root", repo, "-e", "nope"})
	require.Error(t, err)

	assert.Equal(t, exitNameNotFound, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "available examples:")
	assert.Contains(t, errOut.String(), "Alpha")
	assert.Contains(t, errOut.String(), "beta")
	assert.Contains(t, errOut.String(), `example "nope" not found`)
}

func TestRun_ToolchainMissingExitsSentinel(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	repo := newRepo(t, "Hello")

	var code int

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	stub := gostub.Stub(&cli.OsExiter, func(c int) { code = c }).Stub(&cli.ErrWriter, errOut)
	defer stub.Reset()

	root := newRoot(out, errOut)

	err := root.Run(context.Background(), []string{"exrun", "run", "--root", repo, "-e", "Hello"})
	require.Error(t, err)

	assert.Equal(t, 127, code)
	assert.Contains(t, errOut.String(), "install the dotnet toolchain")
}

func TestRun_RunsResolvedExample(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures are not supported on windows")
	}

	binDir := t.TempDir()
	fake := filepath.Join(binDir, "dotnet")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\necho 9.0.0\n"), 0o755))
	t.Setenv("PATH", binDir)

	repo := newRepo(t, "Hello")

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root := newRoot(out, errOut)

	// Case-insensitive resolution reaches the same target.
	err := root.Run(context.Background(), []string{"exrun", "run", "--root", repo, "-e", "hello"})
	require.NoError(t, err)
}

func Test_writeNames(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	writeNames(buf, []string{"Alpha", "beta"})

	assert.Equal(t, "Alpha\nbeta\n", buf.String())
}
