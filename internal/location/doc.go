// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package location computes where twer keeps its configuration and links
// catalog. The directory is derived from the environment following the XDG
// config-home convention, with a $HOME/.local/etc fallback:
//   - $XDG_CONFIG_HOME/twer
//   - $HOME/.local/etc/twer
//
// Resolution is pure. Creating the directory is the store package's job.
package location
