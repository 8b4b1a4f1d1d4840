// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/matt-FFFFFF/exrun/internal/config"
	"github.com/matt-FFFFFF/exrun/internal/ctxlog"
	"github.com/matt-FFFFFF/exrun/internal/examples"
	"github.com/matt-FFFFFF/exrun/internal/reporoot"
	"github.com/matt-FFFFFF/exrun/internal/toolchain"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const (
	rootFlag          = "root"
	configurationFlag = "configuration"
	frameworkFlag     = "framework"
	exampleFlag       = "example"
)

// Exit codes for the run command. The toolchain's own exit code is
// propagated unchanged on a successful start.
const (
	exitNoExamples   = 1
	exitNameNotFound = 2
)

// RunCmd is the command that discovers examples and runs the requested one
// through the toolchain, forwarding trailing arguments after "--".
var RunCmd = &cli.Command{
	Name:        "run",
	Description: "Run a named example through the toolchain. Trailing arguments after -- are forwarded to the example.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        rootFlag,
			Usage:       "directory to start the repository root search from",
			Value:       ".",
			DefaultText: "current directory",
		},
		&cli.StringFlag{
			Name:    configurationFlag,
			Aliases: []string{"c"},
			Usage:   "build configuration passed to the toolchain",
		},
		&cli.StringFlag{
			Name:    frameworkFlag,
			Aliases: []string{"f"},
			Usage:   "target framework passed to the toolchain",
		},
		&cli.StringFlag{
			Name:    exampleFlag,
			Aliases: []string{"e"},
			Usage:   "name of the example to run; leave empty to list available examples",
		},
	},
	ArgsUsage: " [-- args passed to the example]",
	Action:    actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	fsys := afero.NewOsFs()

	start, err := filepath.Abs(cmd.String(rootFlag))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to resolve root directory: %s", err), exitNoExamples)
	}

	repoRoot := reporoot.Find(fsys, start)

	cfg, err := config.Load(fsys, repoRoot)
	if err != nil {
		ctxlog.Warn(ctx, "ignoring config file", "error", err)
	}

	if v := cmd.String(configurationFlag); v != "" {
		cfg.Configuration = v
	}

	if v := cmd.String(frameworkFlag); v != "" {
		cfg.Framework = v
	}

	tc := toolchain.New(cfg.Toolchain)
	major := tc.MajorVersion(ctx)

	mapping, derr := examples.Discover(ctx, fsys, repoRoot, major >= toolchain.MinSingleFileMajor)
	if derr != nil {
		ctxlog.Debug(ctx, "discovery skipped unreadable entries", "error", derr)
	}

	if len(mapping) == 0 {
		return cli.Exit(fmt.Sprintf("no examples found under %s", repoRoot), exitNoExamples)
	}

	res := examples.Resolve(mapping, cmd.String(exampleFlag))

	switch res.Outcome {
	case examples.OutcomeNoNameGiven:
		// A deliberate listing query is informational, so it goes to stdout.
		writeNames(cmd.Writer, res.Available)

		return nil
	case examples.OutcomeNotFound:
		fmt.Fprintln(cmd.ErrWriter, "available examples:") //nolint:errcheck
		writeNames(cmd.ErrWriter, res.Available)

		return cli.Exit(fmt.Sprintf("example %q not found", res.Requested), exitNameNotFound)
	}

	exitCode, err := tc.Run(ctx, res.Target, toolchain.RunOptions{
		Configuration: cfg.Configuration,
		Framework:     cfg.Framework,
		Args:          cmd.Args().Slice(),
	})

	switch {
	case err != nil && exitCode == toolchain.ExitCodeNotFound:
		return cli.Exit(
			fmt.Sprintf("%s: install the %s toolchain and make sure it is on your PATH", err, cfg.Toolchain),
			toolchain.ExitCodeNotFound,
		)
	case err != nil:
		return cli.Exit(err.Error(), exitNoExamples)
	case exitCode < 0:
		// The child was killed by a signal; there is no exit code to propagate.
		return cli.Exit("", exitNoExamples)
	case exitCode != 0:
		return cli.Exit("", exitCode)
	}

	return nil
}

func writeNames(w io.Writer, names []string) {
	for _, name := range names {
		fmt.Fprintln(w, name) //nolint:errcheck
	}
}
