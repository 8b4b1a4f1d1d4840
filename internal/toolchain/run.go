// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"

	"github.com/matt-FFFFFF/exrun/internal/ctxlog"
	"github.com/matt-FFFFFF/exrun/internal/examples"
	"github.com/matt-FFFFFF/exrun/internal/signalbroker"
)

var (
	// ErrStartProcess is returned when the toolchain process could not be started.
	ErrStartProcess = errors.New("could not start toolchain process")
	// ErrWait is returned when waiting for the toolchain process fails.
	ErrWait = errors.New("failed waiting for toolchain process")
)

// startProcess allows stubbing process creation in tests.
var startProcess = os.StartProcess

// RunOptions carries the per-invocation arguments for running a target.
type RunOptions struct {
	// Configuration is the build configuration, always passed.
	Configuration string
	// Framework is the target framework, passed only when non-empty.
	Framework string
	// Args are forwarded verbatim to the example after the "--" separator.
	Args []string
}

// Run executes the resolved target through the toolchain's run capability
// and returns the child's exit code. The child inherits stdin, stdout and
// stderr for interactive pass-through, with its working directory set to the
// target's containing directory.
//
// The first termination signal received is forwarded to the child so
// interactive programs can exit cleanly; a duplicate signal or context
// cancellation kills it. If the child has already exited when cancellation
// arrives, its exit code is still reported. A start failure returns
// ExitCodeNotFound alongside ErrStartProcess.
func (t *Toolchain) Run(ctx context.Context, target examples.Target, opts RunOptions) (int, error) {
	logger := ctxlog.Logger(ctx).With("toolchain", t.name).With("target", target.Path)

	path, err := t.Find()
	if err != nil {
		return ExitCodeNotFound, err
	}

	args := slices.Concat([]string{filepath.Base(path)}, runArgs(target, opts))
	cwd := filepath.Dir(target.Path)

	logger.Debug("starting toolchain", "path", path, "cwd", cwd, "args", args)

	if t.sigCh == nil {
		t.sigCh = signalbroker.New(ctx)
	}

	ps, err := startProcess(path, args, &os.ProcAttr{
		Dir:   cwd,
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	})
	if err != nil {
		return ExitCodeNotFound, errors.Join(ErrStartProcess, err)
	}

	logger.Debug("toolchain started", "pid", ps.Pid)

	done := make(chan struct{})

	// Watchdog for signals and context cancellation.
	go func() {
		seen := make(map[os.Signal]struct{})

		for {
			select {
			case s := <-t.sigCh:
				if _, ok := seen[s]; ok {
					logger.Info("received duplicate signal, killing toolchain", "signal", s.String())
					killPs(ctx, ps)

					return
				}

				seen[s] = struct{}{}

				logger.Info("forwarding signal to toolchain", "signal", s.String())

				if err := ps.Signal(s); err != nil {
					logger.Debug("failed to forward signal", "signal", s.String(), "error", err)
				}

			case <-ctx.Done():
				logger.Info("context done, killing toolchain")
				killPs(ctx, ps)

				return

			case <-done:
				return
			}
		}
	}()

	state, psErr := ps.Wait()

	close(done)

	if psErr != nil {
		return 1, errors.Join(ErrWait, psErr)
	}

	exitCode := state.ExitCode()
	logger.Debug("toolchain finished", "exitCode", exitCode)

	return exitCode, nil
}

// runArgs translates a target into toolchain run arguments. Project targets
// are run via their descriptor; file targets are handed to the toolchain
// directly. The trailing separator keeps pass-through arguments out of the
// toolchain's own option parsing.
func runArgs(target examples.Target, opts RunOptions) []string {
	args := []string{"run"}

	switch target.Kind {
	case examples.KindProject:
		args = append(args, "--project", target.Path)
	case examples.KindFile:
		args = append(args, target.Path)
	}

	args = append(args, "-c", opts.Configuration)

	if opts.Framework != "" {
		args = append(args, "-f", opts.Framework)
	}

	args = append(args, "--")

	return append(args, opts.Args...)
}

// killPs kills the process, tolerating one that has already exited.
func killPs(ctx context.Context, ps *os.Process) {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Logger(ctx).Debug("process already done", "pid", ps.Pid)
			return
		}

		ctxlog.Logger(ctx).Error("process kill error", "pid", ps.Pid, "error", err)

		return
	}

	ctxlog.Logger(ctx).Info("process killed", "pid", ps.Pid)
}
