// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/tfctl/twer/internal/log"
)

var (
	// ErrEmptyCatalog means the links file has no usable lines.
	ErrEmptyCatalog = errors.New("links file is empty")

	// ErrLinksRead wraps failures reading the links file after bootstrap.
	ErrLinksRead = errors.New("cannot read links file")
)

// DefaultSource is used when neither --source nor the config picks one.
const DefaultSource = "twitch"

// DefaultSources maps source names to the prefix prepended to bare catalog
// entries such as a channel name.
var DefaultSources = map[string]string{
	"twitch":  "https://www.twitch.tv/",
	"youtube": "https://www.youtube.com/",
	"kick":    "https://kick.com/",
}

// Sources merges overrides (source.NAME config keys) over DefaultSources.
func Sources(overrides map[string]string) map[string]string {
	out := maps.Clone(DefaultSources)
	maps.Copy(out, overrides)
	return out
}

// Entries splits a catalog into its non-blank, trimmed lines.
func Entries(catalog []byte) []string {
	var out []string
	for _, line := range strings.Split(string(catalog), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ResolveURL turns a catalog entry into a playable URL. Only the first
// whitespace-separated field counts, so entries may carry a description.
// Fields containing "://" are used as-is; anything else is appended to the
// prefix registered for source.
func ResolveURL(entry, source string, sources map[string]string) (string, error) {
	fields := strings.Fields(entry)
	if len(fields) == 0 {
		return "", ErrNoSelection
	}
	target := fields[0]
	if strings.Contains(target, "://") {
		return target, nil
	}

	prefix, ok := sources[source]
	if !ok {
		return "", fmt.Errorf("unknown source %q", source)
	}
	return prefix + target, nil
}

// Request is one launch: either an explicit URL or a pick from LinksPath.
type Request struct {
	URL       string
	Source    string
	LinksPath string
}

// Launcher drives the menu then the player.
type Launcher struct {
	Menu    Menu
	Player  Player
	Sources map[string]string
}

// Run plays req.URL when given, otherwise lets the user pick from the links
// file. ErrNoSelection is returned untouched so callers can exit quietly.
func (l *Launcher) Run(ctx context.Context, req Request) error {
	sources := l.Sources
	if sources == nil {
		sources = DefaultSources
	}
	source := req.Source
	if source == "" {
		source = DefaultSource
	}

	entry := req.URL
	if entry == "" {
		catalog, err := os.ReadFile(req.LinksPath)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrLinksRead, req.LinksPath, err)
		}
		if len(Entries(catalog)) == 0 {
			return fmt.Errorf("%w: add one link per line to %s", ErrEmptyCatalog, req.LinksPath)
		}

		if entry, err = l.Menu.Select(ctx, catalog); err != nil {
			return err
		}
		log.Debugf("menu selection: entry=%q", entry)
	}

	url, err := ResolveURL(entry, source, sources)
	if err != nil {
		return err
	}
	log.Infof("playing %s", url)

	return l.Player.Play(ctx, url)
}
