// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tfctl/twer/internal/command"
	"github.com/tfctl/twer/internal/log"
	"github.com/tfctl/twer/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// valueFlags take the next argument as their value, even one that looks like
// a flag.
var valueFlags = map[string]bool{
	"-s": true, "--source": true,
	"-p": true, "--path": true,
	"-o": true, "--output": true,
}

// handleVersion checks for --version/-v ahead of any subcommand and returns
// whether it was handled.
func handleVersion(w io.Writer, args []string) bool {
	for i := 1; i < len(args); i++ {
		switch a := args[i]; {
		case a == "--":
			return false
		case valueFlags[a]:
			i++
		case a == "--version" || a == "-v":
			fmt.Fprintln(w, version.String())
			return true
		}
	}
	return false
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string, stderr io.Writer) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		log.WithError(err).Debug("app init failed")
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		log.WithError(err).Debug("app run failed")
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(os.Stdout, args) {
		return 0
	}

	return initAndRunApp(args, os.Stderr)
}
