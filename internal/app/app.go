package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/sirupsen/logrus"

	"skelgen/internal/fsops"
	"skelgen/internal/layout"
	"skelgen/internal/parser"
	"skelgen/internal/tree"
)

// DefaultBasePath is where the skeleton goes when no path is given.
const DefaultBasePath = "project_structure"

// Options holds everything one invocation needs.
type Options struct {
	BasePath   string
	Layout     string
	LayoutPath string // tree text file, "-" for stdin; overrides Layout
	DryRun     bool
	Quiet      bool
	Verbose    bool
	LogLevel   string
	DirPerm    os.FileMode
	FilePerm   os.FileMode

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// FS is the filesystem BasePath is resolved in. Nil means the host
	// filesystem.
	FS billy.Filesystem
}

// Run loads the layout and materializes it under BasePath.
func Run(o Options) error {
	o = withDefaults(o)

	log, err := newLogger(o)
	if err != nil {
		return err
	}

	l, err := loadLayout(o)
	if err != nil {
		return err
	}

	fs, dest, err := target(o)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"layout": l.Name,
		"path":   o.BasePath,
	}).Debug("materializing")

	res, err := fsops.Apply(fsops.ApplyArgs{
		FS:       fs,
		Root:     l.Root,
		DestRoot: dest,
		DryRun:   o.DryRun,
		DirPerm:  o.DirPerm,
		FilePerm: o.FilePerm,
		Log:      log,
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"dirs_created":  res.DirsCreated,
		"dirs_existing": res.DirsExisting,
		"files_written": res.FilesWritten,
	}).Debug("done")

	if !o.Quiet && !o.DryRun {
		fmt.Fprintf(o.Stdout, "Directory structure created successfully at %s\n", o.BasePath)
	}
	return nil
}

// Show writes the selected layout in tree format.
func Show(o Options, color bool) error {
	o = withDefaults(o)

	l, err := loadLayout(o)
	if err != nil {
		return err
	}
	return parser.Render(o.Stdout, l.Name, l.Root, parser.RenderOptions{Color: color, Summary: true})
}

// withDefaults fills unset paths, layout and streams.
func withDefaults(o Options) Options {
	if o.BasePath == "" {
		o.BasePath = DefaultBasePath
	}
	if o.Layout == "" {
		o.Layout = layout.DefaultName
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// newLogger builds the stderr logger; Verbose beats LogLevel.
func newLogger(o Options) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(o.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level := logrus.InfoLevel
	if o.LogLevel != "" {
		lvl, err := logrus.ParseLevel(o.LogLevel)
		if err != nil {
			return nil, err
		}
		level = lvl
	}
	if o.Verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	return log, nil
}

// loadLayout returns the built-in layout, or the one parsed from LayoutPath.
func loadLayout(o Options) (parser.Layout, error) {
	if o.LayoutPath == "" {
		root, err := layout.Get(o.Layout)
		if err != nil {
			return parser.Layout{}, err
		}
		return parser.Layout{Name: o.Layout, Root: root}, nil
	}

	var r io.Reader
	if o.LayoutPath == "-" {
		r = o.Stdin
	} else {
		f, err := os.Open(o.LayoutPath)
		if err != nil {
			return parser.Layout{}, fmt.Errorf("open layout %q: %w", o.LayoutPath, err)
		}
		defer f.Close()
		r = f
	}

	l, err := parser.Parse(r)
	if err != nil {
		return parser.Layout{}, fmt.Errorf("parse layout %q: %w", o.LayoutPath, err)
	}
	return l, nil
}

// target resolves BasePath to a filesystem and a path inside it. On the
// host the filesystem is rooted at the parent of the absolute base path.
func target(o Options) (billy.Filesystem, string, error) {
	if o.FS != nil {
		return o.FS, o.BasePath, nil
	}

	abs, err := filepath.Abs(o.BasePath)
	if err != nil {
		return nil, "", fmt.Errorf("resolve %s: %w", o.BasePath, err)
	}
	return fsops.NewHostFS(filepath.Dir(abs)), filepath.Base(abs), nil
}

// Entries lists the paths the selected layout would create.
func Entries(o Options) ([]string, error) {
	l, err := loadLayout(withDefaults(o))
	if err != nil {
		return nil, err
	}
	return tree.Paths(l.Root), nil
}
