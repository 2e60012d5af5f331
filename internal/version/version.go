// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other twer packages to avoid import cycles.

package version

import (
	"runtime/debug"
)

// Version is the module version stamped by `go install`, or "dev".
var Version = fromBuildInfo(debug.ReadBuildInfo)

func fromBuildInfo(read func() (*debug.BuildInfo, bool)) string {
	if info, ok := read(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// String is the one-line banner printed by --version.
func String() string {
	return "twer " + Version
}
