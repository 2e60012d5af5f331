// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/twer/internal/config"
	"github.com/tfctl/twer/internal/launcher"
	"github.com/tfctl/twer/internal/log"
	"github.com/tfctl/twer/internal/meta"
	"github.com/tfctl/twer/internal/version"
)

// launchCommandAction is the root action: bootstrap, then play the URL given
// on the command line or one picked from the links file.
func launchCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("version") {
		_, err := fmt.Fprintln(Stdout, version.String())
		return err
	}

	m, err := bootstrapCommand(cmd, os.Getenv)
	if err != nil {
		return err
	}

	url := cmd.Args().First()
	log.Debugf("Executing launch: url=%q dir=%s", url, m.Location)
	l, err := newLauncher(m, url == "")
	if err != nil {
		return err
	}

	source := cmd.String("source")
	if !cmd.IsSet("source") || source == "" {
		source, _ = m.Config.GetString("source", launcher.DefaultSource)
	}

	err = l.Run(ctx, launcher.Request{
		URL:       url,
		Source:    source,
		LinksPath: m.Location.LinksPath(),
	})
	if errors.Is(err, launcher.ErrNoSelection) {
		log.Debugf("nothing selected")
		return nil
	}
	return err
}

// newLauncher wires menu and player from twer.conf. The menu is only built
// when a selection is needed.
func newLauncher(m meta.Meta, needMenu bool) (*launcher.Launcher, error) {
	cfg := m.Config

	l := &launcher.Launcher{
		Sources: launcher.Sources(cfg.WithPrefix("source")),
	}

	if needMenu {
		kind, _ := cfg.GetString("menu", "auto")
		menu, err := launcher.NewMenu(kind, menuOptions(cfg))
		if err != nil {
			return nil, err
		}
		l.Menu = menu
	}

	player, _ := cfg.GetString("player", launcher.DefaultPlayerCommand)
	playerArgs, _ := cfg.GetFields("player_args", launcher.DefaultPlayerArgs)
	quality, _ := cfg.GetString("quality", launcher.DefaultQuality)
	l.Player = &launcher.ExecPlayer{
		Command: player,
		Args:    playerArgs,
		Quality: quality,
		Stdout:  Stdout,
		Stderr:  Stderr,
	}

	return l, nil
}

// menuOptions reads the menu_* keys. Malformed values are logged and replaced
// by their defaults rather than aborting the launch.
func menuOptions(cfg config.Type) launcher.MenuOptions {
	opts := launcher.MenuOptions{
		Lines:      launcher.DefaultMenuLines,
		IgnoreCase: true,
	}

	// A missing key leaves Args nil so only dmenu gets default flags.
	if args, err := cfg.GetFields("menu_args"); err == nil {
		opts.Args = args
	}

	if lines, err := cfg.GetInt("menu_lines", launcher.DefaultMenuLines); err != nil || lines < 1 {
		log.WithField("menu_lines", cfg.Data["menu_lines"]).Warnf("ignoring menu_lines, using %d", launcher.DefaultMenuLines)
	} else {
		opts.Lines = lines
	}

	if ignoreCase, err := cfg.GetBool("menu_ignore_case", true); err != nil {
		log.Warnf("ignoring menu_ignore_case: %v", err)
	} else {
		opts.IgnoreCase = ignoreCase
	}

	return opts
}
