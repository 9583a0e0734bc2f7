package fsops

import (
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"skelgen/internal/safety"
)

// HostFS is the host filesystem rooted at root. Besides the osfs operations
// it implements billy.Change, so Apply can set exact permissions.
type HostFS struct {
	billy.Filesystem
	root string
}

var _ billy.Change = (*HostFS)(nil)

// NewHostFS returns the host filesystem rooted at root.
func NewHostFS(root string) *HostFS {
	return &HostFS{Filesystem: osfs.New(root), root: root}
}

// hostPath maps name inside the filesystem to a path on the host.
func (h *HostFS) hostPath(name string) (string, error) {
	return safety.SafeJoin(h.root, name)
}

// Chmod sets the permission bits of name.
func (h *HostFS) Chmod(name string, mode os.FileMode) error {
	p, err := h.hostPath(name)
	if err != nil {
		return err
	}
	return os.Chmod(p, mode)
}

func (h *HostFS) Lchown(name string, uid, gid int) error {
	p, err := h.hostPath(name)
	if err != nil {
		return err
	}
	return os.Lchown(p, uid, gid)
}

func (h *HostFS) Chown(name string, uid, gid int) error {
	p, err := h.hostPath(name)
	if err != nil {
		return err
	}
	return os.Chown(p, uid, gid)
}

func (h *HostFS) Chtimes(name string, atime, mtime time.Time) error {
	p, err := h.hostPath(name)
	if err != nil {
		return err
	}
	return os.Chtimes(p, atime, mtime)
}
