// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/twer/internal/command"
)

func TestPages(t *testing.T) {
	app, err := command.InitApp(context.Background(), []string{"twer"})
	require.NoError(t, err)

	ps := pages(app, "today")

	ids := make([]string, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"twer", "twer-info", "twer-completion"}, ids)

	var root, info Page
	root, info = ps[0], ps[1]
	assert.Equal(t, "twer [flags] [URL]", root.Syntax)

	var sawPath bool
	for _, f := range root.Flags {
		if f.Syntax == "--path, -p" {
			sawPath = true
			assert.Equal(t, "TWER_PATH", f.Env)
		}
	}
	assert.True(t, sawPath)

	var sawOutput bool
	for _, f := range info.Flags {
		if f.Syntax == "--output, -o" {
			sawOutput = true
		}
	}
	assert.True(t, sawOutput)
	assert.Len(t, info.Flags, len(root.Flags)+1)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	err := render(&buf, Page{
		ID:      "twer-info",
		Usage:   "show things",
		Syntax:  "twer [flags] info",
		Flags:   []Flag{{Syntax: "--output, -o", Description: "format", Default: "text"}},
		Date:    "today",
		Version: "twer dev",
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "# twer-info\n")
	assert.Contains(t, out, "twer [flags] info")
	assert.Contains(t, out, "| `--output, -o` | format | text |  |")
	assert.Contains(t, out, "_twer dev, generated today_")
}
