// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/tfctl/twer/internal/log"
)

var (
	// ErrNoSelection means the user dismissed the menu.
	ErrNoSelection = errors.New("no selection made")

	// ErrNoMenu means menu = auto found neither dmenu nor a terminal.
	ErrNoMenu = errors.New("no menu available: install dmenu or run from a terminal")
)

// DefaultMenuCommand is what menu = auto looks for on PATH.
const DefaultMenuCommand = "dmenu"

// DefaultMenuLines is the list height for dmenu and the builtin selector.
const DefaultMenuLines = 10

// MenuOptions carries the menu_* config keys into NewMenu.
type MenuOptions struct {
	// Args replaces the command's default arguments. Nil means dmenu gets
	// DmenuArgs and any other command gets none.
	Args []string

	Lines      int
	IgnoreCase bool
}

// DmenuArgs returns the dmenu flags for a vertical list of lines rows.
func DmenuArgs(lines int, ignoreCase bool) []string {
	if lines < 1 {
		lines = DefaultMenuLines
	}
	var args []string
	if ignoreCase {
		args = append(args, "-i")
	}
	return append(args, "-l", strconv.Itoa(lines))
}

func (o MenuOptions) argsFor(command string) []string {
	if o.Args != nil {
		return o.Args
	}
	if filepath.Base(command) == DefaultMenuCommand {
		return DmenuArgs(o.Lines, o.IgnoreCase)
	}
	return nil
}

func (o MenuOptions) builtin() *TUIMenu {
	return &TUIMenu{Rows: o.Lines, MatchCase: !o.IgnoreCase}
}

// Menu lets the user pick one line out of the links catalog. The catalog is
// passed verbatim.
type Menu interface {
	Select(ctx context.Context, catalog []byte) (string, error)
}

// Seams for menu auto-detection.
var (
	lookPath   = exec.LookPath
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

// NewMenu builds the Menu named by the config "menu" key:
//   - "builtin": the terminal selector
//   - "auto" or "": dmenu when on PATH, else builtin when stdout is a terminal
//   - anything else: that command, fed the catalog on stdin
func NewMenu(kind string, opts MenuOptions) (Menu, error) {
	switch kind {
	case "builtin":
		return opts.builtin(), nil
	case "", "auto":
		if _, err := lookPath(DefaultMenuCommand); err == nil {
			log.Debugf("menu auto: using %s", DefaultMenuCommand)
			return &ExecMenu{Command: DefaultMenuCommand, Args: opts.argsFor(DefaultMenuCommand)}, nil
		}
		if isTerminal() {
			log.Debugf("menu auto: %s not found, using builtin", DefaultMenuCommand)
			return opts.builtin(), nil
		}
		return nil, ErrNoMenu
	default:
		return &ExecMenu{Command: kind, Args: opts.argsFor(kind)}, nil
	}
}

// ExecMenu pipes the catalog into an external selector such as dmenu or fzf
// and reads the chosen line back from its stdout.
type ExecMenu struct {
	Command string
	Args    []string
}

// Select implements Menu.
func (m *ExecMenu) Select(ctx context.Context, catalog []byte) (string, error) {
	cmd := exec.CommandContext(ctx, m.Command, m.Args...)
	cmd.Stdin = bytes.NewReader(catalog)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Debugf("spawning menu: cmd=%s args=%v", m.Command, m.Args)
	out, err := cmd.Output()
	choice := strings.TrimSpace(string(out))

	if err != nil {
		var exitErr *exec.ExitError
		// dmenu and fzf exit non-zero without output when dismissed.
		if errors.As(err, &exitErr) && choice == "" {
			log.Debugf("menu exited: code=%d stderr=%q", exitErr.ExitCode(), stderr.String())
			return "", ErrNoSelection
		}
		return "", fmt.Errorf("menu %s failed: %w", m.Command, err)
	}

	if choice == "" {
		return "", ErrNoSelection
	}
	return choice, nil
}
