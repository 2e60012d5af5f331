// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/tfctl/twer/internal/log"
)

// Player defaults: streamlink extracts the stream and hands it to mpv.
const (
	DefaultPlayerCommand = "streamlink"
	DefaultQuality       = "best"
)

var DefaultPlayerArgs = []string{"--player", "mpv"}

// Player plays a resolved URL.
type Player interface {
	Play(ctx context.Context, url string) error
}

// ExecPlayer runs Command Args... URL [Quality] in the foreground.
type ExecPlayer struct {
	Command string
	Args    []string
	Quality string

	// Stdout and Stderr default to the process's own.
	Stdout io.Writer
	Stderr io.Writer
}

// Argv returns the full argument list passed to Command.
func (p *ExecPlayer) Argv(url string) []string {
	argv := append([]string{}, p.Args...)
	argv = append(argv, url)
	if p.Quality != "" {
		argv = append(argv, p.Quality)
	}
	return argv
}

// Play implements Player.
func (p *ExecPlayer) Play(ctx context.Context, url string) error {
	argv := p.Argv(url)
	cmd := exec.CommandContext(ctx, p.Command, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = p.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = p.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	log.Debugf("spawning player: cmd=%s args=%v", p.Command, argv)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("player %s failed on %s: %w", p.Command, url, err)
	}
	return nil
}
