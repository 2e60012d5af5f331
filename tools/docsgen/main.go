// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes one markdown page per twer command, built from the live
// command tree so flags and usage never drift from the binary.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/twer/internal/command"
	"github.com/tfctl/twer/internal/version"
)

type Flag struct {
	Syntax      string
	Description string
	Default     string
	Env         string
}

type Page struct {
	ID      string
	Usage   string
	Syntax  string
	Flags   []Flag
	Date    string
	Version string
}

var pageTemplate = template.Must(template.New("page").Parse(`# {{.ID}}

{{.Usage}}

` + "```" + `
{{.Syntax}}
` + "```" + `
{{if .Flags}}
## Flags

| Flag | Description | Default | Env |
|------|-------------|---------|-----|
{{range .Flags}}| ` + "`{{.Syntax}}`" + ` | {{.Description}} | {{.Default}} | {{.Env}} |
{{end}}{{end}}
_{{.Version}}, generated {{.Date}}_
`))

func main() {
	dir := "docs/commands"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	app, err := command.InitApp(context.Background(), []string{"twer"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	date := time.Now().Format("January 2, 2006")
	for _, p := range pages(app, date) {
		path := filepath.Join(dir, p.ID+".md")
		fmt.Println("Generating", path)
		if err := writeFile(path, p); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func writeFile(path string, p Page) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func render(w io.Writer, p Page) error {
	return pageTemplate.Execute(w, p)
}

// pages flattens the root and its subcommands. Root flags are listed on every
// page since they are accepted before any subcommand.
func pages(app *cli.Command, date string) []Page {
	common := flags(app.Flags)

	out := []Page{{
		ID:      app.Name,
		Usage:   app.Usage,
		Syntax:  strings.TrimSpace(app.Name + " [flags] " + app.ArgsUsage),
		Flags:   common,
		Date:    date,
		Version: version.String(),
	}}

	for _, sub := range app.Commands {
		merged := append(flags(sub.Flags), common...)
		sort.Slice(merged, func(i, j int) bool {
			return merged[i].Syntax < merged[j].Syntax
		})
		out = append(out, Page{
			ID:      app.Name + "-" + sub.Name,
			Usage:   sub.Usage,
			Syntax:  strings.TrimSpace(app.Name + " [flags] " + sub.Name + " " + sub.ArgsUsage),
			Flags:   merged,
			Date:    date,
			Version: version.String(),
		})
	}
	return out
}

func flags(in []cli.Flag) []Flag {
	out := make([]Flag, 0, len(in))
	for _, f := range in {
		names := f.Names()
		syntax := make([]string, 0, len(names))
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		flag := Flag{Syntax: strings.Join(syntax, ", ")}
		if d, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = d.GetUsage()
			flag.Default = d.GetDefaultText()
			if env := d.GetEnvVars(); len(env) > 0 {
				flag.Env = strings.Join(env, ", ")
			}
		}
		out = append(out, flag)
	}
	return out
}
