// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package location

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// AppName is the per-application subdirectory under the config home.
	AppName = "twer"

	// ConfigFileName and LinksFileName are the two files kept in Dir.
	ConfigFileName = "twer.conf"
	LinksFileName  = "links"
)

// ErrUnresolvable is returned when neither XDG_CONFIG_HOME nor HOME yields a
// directory. It is not retryable.
var ErrUnresolvable = errors.New("cannot find either $XDG_CONFIG_HOME or $HOME")

// Location is the storage directory holding twer.conf and links.
type Location struct {
	Dir string
}

// ConfigPath returns the absolute path of twer.conf.
func (l Location) ConfigPath() string {
	return filepath.Join(l.Dir, ConfigFileName)
}

// LinksPath returns the absolute path of the links catalog.
func (l Location) LinksPath() string {
	return filepath.Join(l.Dir, LinksFileName)
}

func (l Location) String() string {
	return l.Dir
}

// Resolve derives the storage location from getenv without touching the
// filesystem. Precedence:
//  1. $XDG_CONFIG_HOME/twer, if set and non-empty
//  2. $HOME/.local/etc/twer, if set and non-empty
//
// Anything else is ErrUnresolvable.
func Resolve(getenv func(string) string) (Location, error) {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return Location{Dir: filepath.Join(dir, AppName)}, nil
	}
	if home := getenv("HOME"); home != "" {
		return Location{Dir: filepath.Join(home, ".local", "etc", AppName)}, nil
	}
	return Location{}, ErrUnresolvable
}

// FromEnv resolves against the process environment.
func FromEnv() (Location, error) {
	return Resolve(os.Getenv)
}

// Override wraps a user supplied directory verbatim. No resolution applies.
func Override(dir string) Location {
	return Location{Dir: dir}
}
