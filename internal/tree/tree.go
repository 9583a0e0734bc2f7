// Package tree describes a directory skeleton as a value: directories hold an
// ordered list of named entries, files hold their literal content.
package tree

import (
	"errors"
	"fmt"
	"path"

	"skelgen/internal/safety"
)

// ErrDuplicateName is returned when two siblings share a name.
var ErrDuplicateName = errors.New("duplicate name")

// Node is either a Dir or a File.
type Node interface {
	isNode()
}

// File is a leaf whose Content is written verbatim.
type File struct {
	Content string
}

// Dir is an ordered set of named children. The zero value is an empty
// directory. A Dir never shares its backing slice with callers.
type Dir struct {
	entries []Entry
}

// Entry names a child node.
type Entry struct {
	Name string
	Node Node
}

func (File) isNode() {}
func (Dir) isNode() {}

// NewDir builds a directory from entries, keeping their order.
func NewDir(entries ...Entry) Dir {
	if len(entries) == 0 {
		return Dir{}
	}
	return Dir{entries: append([]Entry(nil), entries...)}
}

// Sub is shorthand for a directory entry.
func Sub(name string, entries ...Entry) Entry {
	return Entry{Name: name, Node: NewDir(entries...)}
}

// Text is shorthand for a file entry with content.
func Text(name, content string) Entry {
	return Entry{Name: name, Node: File{Content: content}}
}

// Empty is shorthand for a zero-byte file entry.
func Empty(name string) Entry {
	return Text(name, "")
}

// Entries returns a copy of the children in order.
func (d Dir) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}

// Len returns the number of direct children.
func (d Dir) Len() int { return len(d.entries) }

// Lookup returns the direct child called name.
func (d Dir) Lookup(name string) (Node, bool) {
	for _, e := range d.entries {
		if e.Name == name {
			return e.Node, true
		}
	}
	return nil, false
}

// WalkFunc is called for every entry with its slash separated path
// relative to the walked directory.
type WalkFunc func(rel string, n Node) error

// Walk visits every entry below d depth-first, parents before children,
// siblings in order. It stops at the first error fn returns.
func Walk(d Dir, fn WalkFunc) error {
	return walk("", d, fn)
}

func walk(prefix string, d Dir, fn WalkFunc) error {
	for _, e := range d.entries {
		rel := path.Join(prefix, e.Name)
		if err := fn(rel, e.Node); err != nil {
			return err
		}
		if sub, ok := e.Node.(Dir); ok {
			if err := walk(rel, sub, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate checks every name below d and rejects duplicate siblings and
// entries without a node.
func Validate(d Dir) error {
	return validate("", d)
}

func validate(prefix string, d Dir) error {
	seen := make(map[string]struct{}, len(d.entries))
	for _, e := range d.entries {
		rel := path.Join(prefix, e.Name)
		if err := safety.ValidateName(e.Name); err != nil {
			return fmt.Errorf("%s: %w", displayPath(prefix, e.Name), err)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("%s: %w", rel, ErrDuplicateName)
		}
		seen[e.Name] = struct{}{}

		switch n := e.Node.(type) {
		case Dir:
			if err := validate(rel, n); err != nil {
				return err
			}
		case File:
		default:
			return fmt.Errorf("%s: unsupported node %T", rel, e.Node)
		}
	}
	return nil
}

func displayPath(prefix, name string) string {
	if prefix == "" {
		return fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("%s/%q", prefix, name)
}

// Paths lists every path below d in walk order. Directories end in "/".
func Paths(d Dir) []string {
	var out []string
	_ = Walk(d, func(rel string, n Node) error {
		if _, ok := n.(Dir); ok {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	return out
}

// Count returns the number of directories and files below d.
func Count(d Dir) (dirs, files int) {
	_ = Walk(d, func(_ string, n Node) error {
		if _, ok := n.(Dir); ok {
			dirs++
		} else {
			files++
		}
		return nil
	})
	return dirs, files
}

// Equal reports whether a and b describe the same tree, order included.
func Equal(a, b Dir) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}
	for i := range a.entries {
		x, y := a.entries[i], b.entries[i]
		if x.Name != y.Name {
			return false
		}
		switch xn := x.Node.(type) {
		case Dir:
			yn, ok := y.Node.(Dir)
			if !ok || !Equal(xn, yn) {
				return false
			}
		case File:
			yn, ok := y.Node.(File)
			if !ok || xn != yn {
				return false
			}
		default:
			return false
		}
	}
	return true
}
