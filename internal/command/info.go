// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/twer/internal/config"
	"github.com/tfctl/twer/internal/launcher"
	"github.com/tfctl/twer/internal/meta"
	"github.com/tfctl/twer/internal/store"
)

// FileInfo describes one of the two files in the storage directory.
type FileInfo struct {
	Path     string    `json:"path" yaml:"path"`
	Size     int64     `json:"size" yaml:"size"`
	Modified time.Time `json:"modified" yaml:"modified"`
}

// Info is what `twer info` reports.
type Info struct {
	Location string     `json:"location" yaml:"location"`
	Created  []string   `json:"created,omitempty" yaml:"created,omitempty"`
	Config   FileInfo   `json:"config_file" yaml:"config_file"`
	Links    FileInfo   `json:"links_file" yaml:"links_file"`
	Entries  int        `json:"entries" yaml:"entries"`
	Settings config.Map `json:"settings" yaml:"settings"`
}

func infoCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "info",
		Usage:    "show where twer keeps its files and what twer.conf says",
		Metadata: map[string]any{"meta": m},
		Flags:    []cli.Flag{NewOutputFlag()},
		Action:   infoCommandAction,
	}
}

func infoCommandAction(ctx context.Context, cmd *cli.Command) error {
	m, err := bootstrapCommand(cmd, os.Getenv)
	if err != nil {
		return err
	}

	info, err := gatherInfo(m)
	if err != nil {
		return err
	}

	return writeInfo(Stdout, info, cmd.String("output"))
}

// gatherInfo stats both files and counts catalog entries. Any failure here is
// a read failure after a successful bootstrap.
func gatherInfo(m meta.Meta) (Info, error) {
	info := Info{
		Location: m.Location.Dir,
		Settings: m.Config.Data,
	}
	if m.Bootstrap.CreatedDir {
		info.Created = append(info.Created, string(store.Directory))
	}
	for _, a := range m.Bootstrap.Created {
		info.Created = append(info.Created, string(a))
	}

	var err error
	if info.Config, err = statFile(m.Location.ConfigPath()); err != nil {
		return info, err
	}
	if info.Links, err = statFile(m.Location.LinksPath()); err != nil {
		return info, err
	}

	catalog, err := os.ReadFile(m.Location.LinksPath())
	if err != nil {
		return info, fmt.Errorf("%w %s: %w", launcher.ErrLinksRead, m.Location.LinksPath(), err)
	}
	info.Entries = len(launcher.Entries(catalog))

	return info, nil
}

func statFile(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("cannot stat %s: %w", path, err)
	}
	return FileInfo{Path: path, Size: st.Size(), Modified: st.ModTime()}, nil
}

func writeInfo(w io.Writer, info Info, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, infoTable(info))
		return err
	}
}

// infoTable renders Info as a borderless two-column table: files first, then
// the parsed settings in key order.
func infoTable(info Info) *table.Table {
	keyStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)

	rows := [][]string{
		{"location", info.Location},
		{"config", describeFile(info.Config)},
		{"links", describeFile(info.Links)},
		{"entries", strconv.Itoa(info.Entries)},
	}
	if len(info.Created) > 0 {
		rows = append(rows, []string{"created", fmt.Sprint(info.Created)})
	}

	keys := make([]string, 0, len(info.Settings))
	for k := range info.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, []string{"  " + k, info.Settings[k]})
	}

	return table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return cellStyle.PaddingLeft(1)
		}).
		Headers().
		Rows(rows...)
}

func describeFile(f FileInfo) string {
	if f.Size == 0 {
		return fmt.Sprintf("%s (empty, modified %s)", f.Path, humanize.Time(f.Modified))
	}
	return fmt.Sprintf("%s (%s, modified %s)", f.Path, humanize.Bytes(uint64(f.Size)), humanize.Time(f.Modified))
}
