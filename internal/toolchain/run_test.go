// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/matt-FFFFFF/exrun/internal/examples"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// newRunFixture creates a fake toolchain script on PATH and a project
// descriptor to run, returning the toolchain and the target.
func newRunFixture(t *testing.T, script string) (*Toolchain, examples.Target) {
	t.Helper()

	binDir := t.TempDir()
	writeScript(t, binDir, "mocktool", script)
	t.Setenv("PATH", binDir)

	projDir := filepath.Join(t.TempDir(), "Hello")
	require.NoError(t, os.MkdirAll(projDir, 0o755))

	desc := filepath.Join(projDir, "Hello.csproj")
	require.NoError(t, os.WriteFile(desc, []byte("<Project/>"), 0o644))

	tc := New("mocktool")
	tc.sigCh = make(chan os.Signal, 2)

	return tc, examples.Target{Kind: examples.KindProject, Path: desc}
}

func TestRun_PropagatesExitCode(t *testing.T) {
	defer goleak.VerifyNone(t)

	tc, target := newRunFixture(t, "exit 3")

	exitCode, err := tc.Run(context.Background(), target, RunOptions{Configuration: "Debug"})
	require.NoError(t, err)
	assert.Equal(t, 3, exitCode)
}

func TestRun_ForwardsArgumentsInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	tc, target := newRunFixture(t, `echo "$@" > "$EXRUN_TEST_OUT"`)

	outFile := filepath.Join(t.TempDir(), "args.txt")
	t.Setenv("EXRUN_TEST_OUT", outFile)

	exitCode, err := tc.Run(context.Background(), target, RunOptions{
		Configuration: "Release",
		Framework:     "net10.0",
		Args:          []string{"--verbose", "alpha", "beta"},
	})
	require.NoError(t, err)
	require.Equal(t, 0, exitCode)

	got, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t,
		"run --project "+target.Path+" -c Release -f net10.0 -- --verbose alpha beta\n",
		string(got),
	)
}

func TestRun_FileTargetRunsSourceDirectly(t *testing.T) {
	defer goleak.VerifyNone(t)

	tc, _ := newRunFixture(t, `echo "$@" > "$EXRUN_TEST_OUT"`)

	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "hello.cs")
	require.NoError(t, os.WriteFile(src, []byte("// hi"), 0o644))

	outFile := filepath.Join(t.TempDir(), "args.txt")
	t.Setenv("EXRUN_TEST_OUT", outFile)

	target := examples.Target{Kind: examples.KindFile, Path: src}

	_, err := tc.Run(context.Background(), target, RunOptions{Configuration: "Debug"})
	require.NoError(t, err)

	got, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "run "+src+" -c Debug --\n", string(got))
}

func TestRun_StartFailureReturnsNotFoundSentinel(t *testing.T) {
	defer goleak.VerifyNone(t)

	tc, target := newRunFixture(t, "exit 0")

	stub := gostub.Stub(&startProcess, func(string, []string, *os.ProcAttr) (*os.Process, error) {
		return nil, errors.New("boom")
	})
	defer stub.Reset()

	exitCode, err := tc.Run(context.Background(), target, RunOptions{Configuration: "Debug"})
	require.ErrorIs(t, err, ErrStartProcess)
	assert.Equal(t, ExitCodeNotFound, exitCode)
}

func TestRun_ContextCancellationKillsChild(t *testing.T) {
	defer goleak.VerifyNone(t)

	// PATH is restricted to the fixture directory, so sleep needs its full path.
	tc, target := newRunFixture(t, "/bin/sleep 5")

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	exitCode, err := tc.Run(ctx, target, RunOptions{Configuration: "Debug"})
	require.NoError(t, err)

	assert.Negative(t, exitCode)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestRun_DuplicateSignalKillsChild(t *testing.T) {
	defer goleak.VerifyNone(t)

	// The child ignores the forwarded interrupt; only the duplicate kills it.
	tc, target := newRunFixture(t, "trap \"\" INT\n/bin/sleep 5")

	tc.sigCh <- syscall.SIGINT
	tc.sigCh <- syscall.SIGINT

	start := time.Now()
	exitCode, err := tc.Run(context.Background(), target, RunOptions{Configuration: "Debug"})
	require.NoError(t, err)

	assert.Negative(t, exitCode)
	assert.Less(t, time.Since(start), 3*time.Second)
}
