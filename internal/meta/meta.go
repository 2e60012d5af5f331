// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfctl/twer/internal/config"
	"github.com/tfctl/twer/internal/location"
	"github.com/tfctl/twer/internal/store"
)

// Meta is the per-invocation state shared by commands. Args and Context are
// set when the app is built; Location, Config and Bootstrap are filled in once
// the storage directory has been ensured and twer.conf parsed.
type Meta struct {
	Args      []string
	Context   context.Context
	Location  location.Location
	Config    config.Type
	Bootstrap store.Report
}
