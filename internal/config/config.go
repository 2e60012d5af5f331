// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tfctl/twer/internal/log"
)

// ErrRead marks a config file that exists on paper but could not be read.
var ErrRead = errors.New("cannot read config file")

// Map is the flat key/value view of twer.conf. Values are untyped strings.
type Map map[string]string

// Type is the in-memory representation of a loaded twer.conf.
//
// Fields:
//   - Source: path of the file that was read.
//   - Data: parsed key/value pairs.
type Type struct {
	Source string
	Data   Map
}

// Parse turns twer.conf text into a Map. It never fails. For each line:
// everything from the first '#' on is dropped, blank lines are skipped, and
// the rest is split at the first '='. Lines without '=' contribute nothing.
// Keys and values are whitespace-trimmed and later lines win.
func Parse(text string) Map {
	m := make(Map)
	for n, line := range strings.Split(text, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			log.Tracef("config line %d ignored: no '='", n+1)
			continue
		}
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return m
}

// Load reads and parses the file at path.
func Load(path string) (Type, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Type{}, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}

	data := Parse(string(b))
	log.Debugf("loaded config: path=%s keys=%d", path, len(data))

	return Type{Source: path, Data: data}, nil
}

// lookup returns the raw value for key and whether it was present.
func (c Type) lookup(key string) (string, bool) {
	v, ok := c.Data[key]
	return v, ok
}

// GetString returns the value for key. If the key is missing and a single
// defaultValue is provided, the default is returned.
func (c Type) GetString(key string, defaultValue ...string) (string, error) {
	v, ok := c.lookup(key)
	if !ok {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", fmt.Errorf("no value for key %q", key)
	}
	return v, nil
}

// GetInt parses the value for key as a base-10 int. The default only covers
// a missing key; a present but malformed value is an error.
func (c Type) GetInt(key string, defaultValue ...int) (int, error) {
	v, ok := c.lookup(key)
	if !ok {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, fmt.Errorf("no value for key %q", key)
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("value for key %q is not an int: %w", key, err)
	}
	return i, nil
}

// GetBool accepts the strconv.ParseBool spellings plus yes/no and on/off.
func (c Type) GetBool(key string, defaultValue ...bool) (bool, error) {
	v, ok := c.lookup(key)
	if !ok {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, fmt.Errorf("no value for key %q", key)
	}

	switch strings.ToLower(v) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("value for key %q is not a bool: %w", key, err)
	}
	return b, nil
}

// GetFields splits the value for key on whitespace, for argument lists such as
// menu_args. An empty value yields an empty, non-nil slice.
func (c Type) GetFields(key string, defaultValue ...[]string) ([]string, error) {
	v, ok := c.lookup(key)
	if !ok {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, fmt.Errorf("no value for key %q", key)
	}
	fields := strings.Fields(v)
	if fields == nil {
		fields = []string{}
	}
	return fields, nil
}

// WithPrefix returns the entries whose key starts with prefix+".", keyed by
// the remainder. source.twitch = URL becomes {"twitch": URL} for "source".
func (c Type) WithPrefix(prefix string) map[string]string {
	out := make(map[string]string)
	for k, v := range c.Data {
		if rest, ok := strings.CutPrefix(k, prefix+"."); ok && rest != "" {
			out[rest] = v
		}
	}
	return out
}
