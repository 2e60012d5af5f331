// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for twer. The root command
// bootstraps the storage directory and launches a stream; info reports what
// was found there and completion prints shell completion scripts.
package command
