// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Map
	}{
		{
			name: "comments and blank lines",
			text: "# just a comment\n\n  \nkey = value # trailing comment\n",
			want: Map{"key": "value"},
		},
		{
			name: "last write wins",
			text: "a = 1\na = 2\n",
			want: Map{"a": "2"},
		},
		{
			name: "malformed line ignored",
			text: "not-a-pair\nkey=value\n",
			want: Map{"key": "value"},
		},
		{
			name: "empty input",
			text: "",
			want: Map{},
		},
		{
			name: "split at first equals only",
			text: "url = https://x.tv/?a=b\n",
			want: Map{"url": "https://x.tv/?a=b"},
		},
		{
			name: "hash inside value truncates",
			text: "color = #ff0000\n",
			want: Map{"color": ""},
		},
		{
			name: "comment hides equals",
			text: "# a = b\nc # = d\n",
			want: Map{},
		},
		{
			name: "no trailing newline",
			text: "k=v",
			want: Map{"k": "v"},
		},
		{
			name: "crlf line endings",
			text: "a = 1\r\nb = 2\r\n",
			want: Map{"a": "1", "b": "2"},
		},
		{
			name: "tabs and empty value",
			text: "\tk\t=\t\nx=  y z  ",
			want: Map{"k": "", "x": "y z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestParse_Repeatable(t *testing.T) {
	text := "a = 1\n# c\nb = 2\nbogus\n"

	assert.Equal(t, Parse(text), Parse(text))
}

func TestParse_OrderIndependentForDistinctKeys(t *testing.T) {
	lines := []string{"alpha = 1", "beta = two", "gamma = 3 # x", "delta=4"}
	reversed := make([]string, len(lines))
	for i, l := range lines {
		reversed[len(lines)-1-i] = l
	}

	assert.Equal(t,
		Parse(strings.Join(lines, "\n")),
		Parse(strings.Join(reversed, "\n")),
	)
}

func TestParse_FreshMapEachCall(t *testing.T) {
	first := Parse("a = 1")
	first["a"] = "mutated"

	assert.Equal(t, Map{"a": "1"}, Parse("a = 1"))
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "full.conf"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "full.conf"), cfg.Source)
	assert.Equal(t, "builtin", cfg.Data["menu"])
	assert.Equal(t, "-i -l 20", cfg.Data["menu_args"])
	assert.Equal(t, "best", cfg.Data["quality"], "later line wins")
	assert.NotContains(t, cfg.Data, "broken line without equals")
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "empty.conf"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Data)
}

func TestLoad_ReadFailure(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.conf"))

	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.conf")
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrRead)
}

func TestLoad_Unreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	path := filepath.Join(t.TempDir(), "twer.conf")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o000))

	_, err := Load(path)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestGetters(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "full.conf"))
	require.NoError(t, err)

	t.Run("GetString", func(t *testing.T) {
		v, err := cfg.GetString("player")
		assert.NoError(t, err)
		assert.Equal(t, "streamlink", v)

		v, err = cfg.GetString("missing", "fallback")
		assert.NoError(t, err)
		assert.Equal(t, "fallback", v)

		_, err = cfg.GetString("missing")
		assert.Error(t, err)

		_, err = cfg.GetString("missing", "first", "second")
		assert.Error(t, err)
	})

	t.Run("GetInt", func(t *testing.T) {
		v, err := cfg.GetInt("retries")
		assert.NoError(t, err)
		assert.Equal(t, 3, v)

		v, err = cfg.GetInt("missing", 9)
		assert.NoError(t, err)
		assert.Equal(t, 9, v)

		_, err = cfg.GetInt("player", 9)
		assert.ErrorContains(t, err, "not an int")
	})

	t.Run("GetBool", func(t *testing.T) {
		v, err := cfg.GetBool("notify")
		assert.NoError(t, err)
		assert.True(t, v)

		v, err = cfg.GetBool("missing", false)
		assert.NoError(t, err)
		assert.False(t, v)

		_, err = cfg.GetBool("player")
		assert.ErrorContains(t, err, "not a bool")
	})

	t.Run("GetFields", func(t *testing.T) {
		v, err := cfg.GetFields("menu_args")
		assert.NoError(t, err)
		assert.Equal(t, []string{"-i", "-l", "20"}, v)

		def := []string{"--player", "mpv"}
		v, err = cfg.GetFields("player_args", def)
		assert.NoError(t, err)
		assert.Equal(t, def, v)

		empty := Type{Data: Map{"args": "   "}}
		v, err = empty.GetFields("args", def)
		assert.NoError(t, err)
		assert.Equal(t, []string{}, v)
	})
}

func TestWithPrefix(t *testing.T) {
	cfg := Type{Data: Map{
		"source.kick":   "https://kick.com/",
		"source.twitch": "https://twitch.example/",
		"source.":       "ignored",
		"source":        "kick",
		"sources.other": "ignored",
	}}

	assert.Equal(t, map[string]string{
		"kick":   "https://kick.com/",
		"twitch": "https://twitch.example/",
	}, cfg.WithPrefix("source"))
}
