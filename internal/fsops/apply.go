package fsops

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/sirupsen/logrus"

	"skelgen/internal/safety"
	"skelgen/internal/tree"
)

const (
	DefaultDirPerm  os.FileMode = 0o755
	DefaultFilePerm os.FileMode = 0o644
)

var (
	// ErrConflict is returned when an entry of the wrong kind already
	// occupies a path. Nothing is removed to make room.
	ErrConflict = errors.New("path conflict")
	// ErrInvalidTree wraps validation failures found before touching disk.
	ErrInvalidTree = errors.New("invalid tree")
)

// ApplyArgs configures one materialization.
type ApplyArgs struct {
	FS       billy.Filesystem
	Root     tree.Dir
	DestRoot string
	DryRun   bool
	DirPerm  os.FileMode
	FilePerm os.FileMode
	Log      logrus.FieldLogger
}

// Result counts what Apply did (or would do in dry-run).
type Result struct {
	DirsCreated  int
	DirsExisting int
	FilesWritten int
}

// Materialize creates root under basePath with default permissions.
func Materialize(fs billy.Filesystem, basePath string, root tree.Dir) error {
	_, err := Apply(ApplyArgs{FS: fs, Root: root, DestRoot: basePath})
	return err
}

// Apply creates DestRoot and then every directory and file of Root below it,
// depth-first in entry order. Directories are created if missing; files are
// always truncated and rewritten. The first error aborts the walk and leaves
// whatever was already created in place.
func Apply(a ApplyArgs) (Result, error) {
	a = withDefaults(a)
	var res Result

	if err := tree.Validate(a.Root); err != nil {
		return res, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	if err := ensureDir(a, &res, a.DestRoot); err != nil {
		return res, err
	}
	a.Log.WithField("path", a.DestRoot).Debug("root ready")

	err := applyDir(a, &res, a.DestRoot, a.Root)
	return res, err
}

// withDefaults fills in permissions and a silent logger.
func withDefaults(a ApplyArgs) ApplyArgs {
	if a.DirPerm == 0 {
		a.DirPerm = DefaultDirPerm
	}
	if a.FilePerm == 0 {
		a.FilePerm = DefaultFilePerm
	}
	if a.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		a.Log = l
	}
	return a
}

// applyDir materializes the entries of d inside dir, which already exists.
func applyDir(a ApplyArgs, res *Result, dir string, d tree.Dir) error {
	for _, e := range d.Entries() {
		target, err := safety.SafeJoin(dir, e.Name)
		if err != nil {
			return err
		}

		switch n := e.Node.(type) {
		case tree.Dir:
			if err := ensureDir(a, res, target); err != nil {
				return err
			}
			if err := applyDir(a, res, target, n); err != nil {
				return err
			}
		case tree.File:
			if err := writeFile(a, res, target, n.Content); err != nil {
				return err
			}
		}
	}
	return nil
}

// ensureDir makes path a directory. An existing directory, or a symlink to
// one, is left as it is.
func ensureDir(a ApplyArgs, res *Result, path string) error {
	log := a.Log.WithField("path", path)

	info, err := resolve(a.FS, path)
	switch {
	case err == nil && info.IsDir():
		res.DirsExisting++
		log.Debug("dir exists")
		return nil

	case err == nil:
		return fmt.Errorf("%w: %s exists and is not a directory", ErrConflict, path)

	case os.IsNotExist(err):
		res.DirsCreated++
		if a.DryRun {
			log.Info("mkdir -p")
			return nil
		}
		if err := a.FS.MkdirAll(path, a.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", path, err)
		}
		if err := chmod(a.FS, path, a.DirPerm); err != nil {
			return err
		}
		log.Debug("dir created")
		return nil

	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}

// writeFile creates or truncates path and writes content. The file is closed
// before returning.
func writeFile(a ApplyArgs, res *Result, path, content string) error {
	log := a.Log.WithField("path", path)

	info, err := resolve(a.FS, path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%w: %s exists and is a directory", ErrConflict, path)
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("stat %s: %w", path, err)
	}

	res.FilesWritten++
	if a.DryRun {
		log.WithField("bytes", len(content)).Info("write")
		return nil
	}

	f, err := a.FS.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, a.FilePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.WriteString(f, content); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := chmod(a.FS, path, a.FilePerm); err != nil {
		return err
	}
	log.Debug("file written")
	return nil
}

// resolve stats path and follows it when it is a symlink, so a link to a
// directory counts as a directory. A dangling link reports the Stat error.
func resolve(fs billy.Filesystem, path string) (os.FileInfo, error) {
	info, err := fs.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return info, err
	}
	return fs.Stat(path)
}

// chmod sets mode explicitly so the process umask cannot narrow it.
// Filesystems without billy.Change keep whatever mode they created.
func chmod(fs billy.Filesystem, path string, mode os.FileMode) error {
	ch, ok := fs.(billy.Change)
	if !ok {
		return nil
	}
	if err := ch.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
