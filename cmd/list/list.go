// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package list

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/exrun/internal/config"
	"github.com/matt-FFFFFF/exrun/internal/ctxlog"
	"github.com/matt-FFFFFF/exrun/internal/examples"
	"github.com/matt-FFFFFF/exrun/internal/reporoot"
	"github.com/matt-FFFFFF/exrun/internal/toolchain"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const rootFlag = "root"

var (
	nameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	kindStyle = lipgloss.NewStyle().Faint(true)
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ListCmd is the command that lists every discovered example with its kind
// and path.
var ListCmd = &cli.Command{
	Name:        "list",
	Description: "List the examples discovered under the repository's examples directory.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        rootFlag,
			Usage:       "directory to start the repository root search from",
			Value:       ".",
			DefaultText: "current directory",
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	fsys := afero.NewOsFs()

	start, err := filepath.Abs(cmd.String(rootFlag))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to resolve root directory: %s", err), 1)
	}

	repoRoot := reporoot.Find(fsys, start)

	cfg, err := config.Load(fsys, repoRoot)
	if err != nil {
		ctxlog.Warn(ctx, "ignoring config file", "error", err)
	}

	major := toolchain.New(cfg.Toolchain).MajorVersion(ctx)

	mapping, derr := examples.Discover(ctx, fsys, repoRoot, major >= toolchain.MinSingleFileMajor)
	if derr != nil {
		ctxlog.Debug(ctx, "discovery skipped unreadable entries", "error", derr)
	}

	if len(mapping) == 0 {
		return cli.Exit(fmt.Sprintf("no examples found under %s", repoRoot), 1)
	}

	write(cmd.Writer, mapping)

	return nil
}

func write(w io.Writer, m examples.Mapping) {
	width := 0
	for _, name := range m.Names() {
		width = max(width, len(name))
	}

	for _, name := range m.Names() {
		t := m[name]
		fmt.Fprintf(w, "%s  %s  %s\n", //nolint:errcheck
			nameStyle.Width(width).Render(name),
			kindStyle.Width(len("project")).Render(t.Kind.String()),
			pathStyle.Render(t.Path),
		)
	}
}
