// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/exrun/cmd/list"
	"github.com/matt-FFFFFF/exrun/cmd/run"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
		list.ListCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "exrun",
	Description: `Exrun discovers runnable example programs under a repository's
examples directory and runs one of them through the dotnet toolchain.
Examples are either project-based (a .csproj anywhere under examples/) or
single self-contained source files on toolchains that support running them
directly. Trailing arguments after "--" are forwarded to the example verbatim.`,
	Usage:     "exrun run -e hello -- --flag-for-the-example",
	Version:   Version,
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
