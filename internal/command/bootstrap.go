// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/twer/internal/config"
	"github.com/tfctl/twer/internal/location"
	"github.com/tfctl/twer/internal/log"
	"github.com/tfctl/twer/internal/meta"
	"github.com/tfctl/twer/internal/store"
)

// GetMeta returns the meta.Meta stored in the command's Metadata, walking up
// to the root for subcommands. If missing it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil {
		return meta.Meta{}
	}
	for _, c := range cmd.Lineage() {
		if m, ok := c.Metadata["meta"].(meta.Meta); ok {
			return m
		}
	}
	return meta.Meta{}
}

// Bootstrap runs the startup sequence: resolve the storage location (or take
// override verbatim), ensure the directory and both files exist, then parse
// twer.conf. Every failure is fatal to the caller.
func Bootstrap(m meta.Meta, override string, getenv func(string) string, notices io.Writer) (meta.Meta, error) {
	var loc location.Location
	if override != "" {
		loc = location.Override(override)
		log.Debugf("storage dir from --path: dir=%s", loc)
	} else {
		var err error
		if loc, err = location.Resolve(getenv); err != nil {
			return m, fmt.Errorf("cannot determine storage directory: %w", err)
		}
		log.Debugf("storage dir resolved: dir=%s", loc)
	}

	report, err := store.New(notices).Ensure(loc)
	if err != nil {
		return m, err
	}

	cfg, err := config.Load(loc.ConfigPath())
	if err != nil {
		return m, err
	}

	m.Location = loc
	m.Config = cfg
	m.Bootstrap = report
	return m, nil
}

// bootstrapCommand is Bootstrap fed from the command's flags and the process
// environment.
func bootstrapCommand(cmd *cli.Command, getenv func(string) string) (meta.Meta, error) {
	return Bootstrap(GetMeta(cmd), cmd.String("path"), getenv, Stderr)
}
