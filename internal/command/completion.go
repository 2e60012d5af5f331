// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/twer/internal/meta"
)

const bashCompletionScript = `# bash completion for twer
_twer()
{
    local cur prev
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    case "$prev" in
        -s|--source)
            COMPREPLY=( $(compgen -W "twitch youtube kick" -- "$cur") )
            return 0
            ;;
        -p|--path)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
        -o|--output)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
    esac

    case "${COMP_WORDS[1]}" in
        info)
            COMPREPLY=( $(compgen -W "--output -o --path -p --help" -- "$cur") )
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            ;;
        *)
            COMPREPLY=( $(compgen -W "info completion --source -s --path -p --help --version" -- "$cur") )
            ;;
    esac
    return 0
}

complete -F _twer twer
`

const zshCompletionScript = `#compdef twer

_twer() {
  local -a cmds
  cmds=(
    'info:show storage location and parsed twer.conf'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
    '(-p --path)'{-p,--path}'[storage directory]:dir:_directories'
  )

  case $words[2] in
    info)
      _arguments -C $common \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common \
        '(-s --source)'{-s,--source}'[link source]:source:(twitch youtube kick)' \
        '(-v --version)'{-v,--version}'[version]' \
        '1: :{_describe -t commands "twer commands" cmds}'
      ;;
  esac
}

if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _twer twer
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(Stdout, zshCompletionScript)
	default:
		fmt.Fprintln(Stderr, "usage: twer completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		ArgsUsage: "[bash|zsh]",
		Metadata:  map[string]any{"meta": m},
		Action:    completionCommandAction,
	}
}
