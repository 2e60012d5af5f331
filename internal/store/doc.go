// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package store bootstraps twer's storage directory. Ensure is idempotent: the
// first run creates the directory plus empty twer.conf and links files, later
// runs only probe. Every failure is returned as a *BootstrapError naming the
// artifact; callers surface it and exit.
package store
