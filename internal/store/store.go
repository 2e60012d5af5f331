// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/tfctl/twer/internal/location"
	"github.com/tfctl/twer/internal/log"
)

// Artifact names one of the three things Ensure is responsible for.
type Artifact string

const (
	Directory  Artifact = "directory"
	ConfigFile Artifact = "config file"
	LinksFile  Artifact = "links file"
)

// ErrNotDirectory and ErrNotRegular flag a path occupied by the wrong kind of
// filesystem entry.
var (
	ErrNotDirectory = errors.New("exists but is not a directory")
	ErrNotRegular   = errors.New("exists but is not a regular file")
)

// Op is the filesystem step that failed.
type Op string

const (
	OpProbe  Op = "probe"
	OpCreate Op = "create"
)

// BootstrapError reports the artifact that could not be probed or created.
type BootstrapError struct {
	Op       Op
	Artifact Artifact
	Path     string
	Err      error
}

func (e *BootstrapError) Error() string {
	op := e.Op
	if op == "" {
		op = OpCreate
	}
	return fmt.Sprintf("cannot %s %s %s: %v", op, e.Artifact, e.Path, e.Err)
}

func (e *BootstrapError) Unwrap() error {
	return e.Err
}

// Report lists the mutations performed by one Ensure call. A zero Report means
// everything already existed.
type Report struct {
	CreatedDir bool
	Created    []Artifact
}

// Changed reports whether Ensure touched the filesystem.
func (r Report) Changed() bool {
	return r.CreatedDir || len(r.Created) > 0
}

type state int

const (
	noDirectory state = iota
	directoryOnly
	complete
)

// maxPasses bounds the probe loop: one pass may create the directory, the
// next creates the files.
const maxPasses = 2

// Bootstrapper creates the storage directory and its two files on demand.
type Bootstrapper struct {
	// Out receives the "Created directory" notice. Nil means os.Stderr.
	Out io.Writer

	DirMode  fs.FileMode
	FileMode fs.FileMode

	// beforeCreate runs between the probe and the exclusive create of a file.
	beforeCreate func(Artifact, string)
}

// New returns a Bootstrapper with 0755 directories and 0644 files.
func New(out io.Writer) *Bootstrapper {
	return &Bootstrapper{
		Out:      out,
		DirMode:  0o755, //nolint:mnd
		FileMode: 0o644, //nolint:mnd
	}
}

// Ensure makes sure loc.Dir exists and contains twer.conf and links. The
// directory is created non-recursively; a missing parent is an error. Files
// are created empty with O_EXCL so a concurrently created file is reported
// rather than truncated. Nothing is retried.
func (b *Bootstrapper) Ensure(loc location.Location) (Report, error) {
	var report Report

	for pass := 0; pass < maxPasses; pass++ {
		st, missing, err := probe(loc)
		if err != nil {
			return report, err
		}
		log.Tracef("bootstrap probe: dir=%s state=%d missing=%v", loc.Dir, st, missing)

		switch st {
		case complete:
			return report, nil

		case noDirectory:
			if err := os.Mkdir(loc.Dir, b.dirMode()); err != nil {
				return report, &BootstrapError{Op: OpCreate, Artifact: Directory, Path: loc.Dir, Err: err}
			}
			report.CreatedDir = true
			log.Debugf("created storage dir: path=%s", loc.Dir)
			fmt.Fprintf(b.out(), "Created directory %s.\n", loc.Dir)

		case directoryOnly:
			for _, a := range missing {
				path := artifactPath(loc, a)
				if b.beforeCreate != nil {
					b.beforeCreate(a, path)
				}
				if err := b.createExclusive(path); err != nil {
					return report, &BootstrapError{Op: OpCreate, Artifact: a, Path: path, Err: err}
				}
				report.Created = append(report.Created, a)
				log.Debugf("created %s: path=%s", a, path)
			}
			return report, nil
		}
	}

	// The directory vanished between Mkdir and the second probe.
	return report, &BootstrapError{Op: OpProbe, Artifact: Directory, Path: loc.Dir, Err: fs.ErrNotExist}
}

// probe classifies loc with metadata calls only.
func probe(loc location.Location) (state, []Artifact, error) {
	info, err := os.Stat(loc.Dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return noDirectory, nil, nil
	case err != nil:
		return noDirectory, nil, &BootstrapError{Op: OpProbe, Artifact: Directory, Path: loc.Dir, Err: err}
	case !info.IsDir():
		return noDirectory, nil, &BootstrapError{Op: OpProbe, Artifact: Directory, Path: loc.Dir, Err: ErrNotDirectory}
	}

	var missing []Artifact
	for _, a := range []Artifact{ConfigFile, LinksFile} {
		path := artifactPath(loc, a)
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, a)
		case err != nil:
			return directoryOnly, nil, &BootstrapError{Op: OpProbe, Artifact: a, Path: path, Err: err}
		case !info.Mode().IsRegular():
			return directoryOnly, nil, &BootstrapError{Op: OpProbe, Artifact: a, Path: path, Err: ErrNotRegular}
		}
	}

	if len(missing) == 0 {
		return complete, nil, nil
	}
	return directoryOnly, missing, nil
}

func (b *Bootstrapper) createExclusive(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, b.fileMode())
	if err != nil {
		return err
	}
	return f.Close()
}

func artifactPath(loc location.Location, a Artifact) string {
	if a == LinksFile {
		return loc.LinksPath()
	}
	return loc.ConfigPath()
}

func (b *Bootstrapper) out() io.Writer {
	if b.Out == nil {
		return os.Stderr
	}
	return b.Out
}

func (b *Bootstrapper) dirMode() fs.FileMode {
	if b.DirMode == 0 {
		return 0o755 //nolint:mnd
	}
	return b.DirMode
}

func (b *Bootstrapper) fileMode() fs.FileMode {
	if b.FileMode == 0 {
		return 0o644 //nolint:mnd
	}
	return b.FileMode
}
