// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/twer/internal/meta"
)

// Stdout and Stderr are where commands and spawned programs write. Tests swap
// them for buffers.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// InitApp builds the twer command tree. Nothing touches the filesystem here;
// each action bootstraps the storage directory itself so --path is honored.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	m := meta.Meta{
		Args:    args,
		Context: ctx,
	}

	app := &cli.Command{
		Name:      "twer",
		Usage:     "pick a stream from your links and play it",
		ArgsUsage: "[URL]",
		Flags: []cli.Flag{
			NewSourceFlag(),
			NewPathFlag(),
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "twer version info",
				HideDefault: true,
			},
		},
		Metadata:  map[string]any{"meta": m},
		Action:    launchCommandAction,
		Writer:    Stdout,
		ErrWriter: Stderr,
	}

	app.Commands = append(app.Commands,
		infoCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range append([]*cli.Command{app}, app.Commands...) {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
