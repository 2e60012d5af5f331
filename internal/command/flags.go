// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"
)

// NewSourceFlag constructs the --source flag. It has no Value so that an unset
// flag can fall back to the "source" key in twer.conf.
func NewSourceFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "source",
		Aliases: []string{"s"},
		Usage:   "source used to expand bare link entries (twitch, youtube, kick, or a source.NAME key)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TWER_SOURCE"),
		),
	}
}

// NewPathFlag constructs the --path flag. A non-empty value is used verbatim
// as the storage directory, bypassing $XDG_CONFIG_HOME/$HOME resolution.
func NewPathFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "path",
		Aliases: []string{"p"},
		Usage:   "directory holding twer.conf and links. Overrides $XDG_CONFIG_HOME/twer",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TWER_PATH"),
		),
	}
}

// NewOutputFlag constructs the --output flag used by reporting commands.
func NewOutputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml)",
		Value:   "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
}
