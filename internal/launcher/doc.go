// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package launcher hands the links catalog to a menu and the chosen entry to
// a player. Both ends are external programs (dmenu, streamlink) behind small
// interfaces; TUIMenu is the built-in fallback selector.
package launcher
