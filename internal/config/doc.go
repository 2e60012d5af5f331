// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config parses twer.conf, a flat "key = value" file living next to
// the links catalog:
//
//	# comments run to end of line, there is no escaping
//	menu   = builtin
//	player = streamlink
//	source.twitch = https://www.twitch.tv/
//
// Parse never fails; malformed lines are dropped. Typed getters on Type
// interpret values for callers. There is no package-level instance.
package config
