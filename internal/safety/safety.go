package safety

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

var (
	// ErrInvalidName is returned for names that are not a single path segment.
	ErrInvalidName = errors.New("invalid name")
	// ErrOutsideRoot is returned when a joined path escapes its root.
	ErrOutsideRoot = errors.New("path escapes root")
)

// ValidateName checks that name is exactly one path segment: not empty,
// not "." or "..", free of separators and control characters, without
// surrounding whitespace, and not absolute. Valid names survive a round
// trip through the tree text format unchanged.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.IndexFunc(name, unicode.IsControl) != -1:
		return fmt.Errorf("%w: %q contains a control character", ErrInvalidName, name)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidName, name)
	case filepath.IsAbs(name):
		return fmt.Errorf("%w: %q is absolute", ErrInvalidName, name)
	}
	return nil
}

// SafeJoin joins root and parts and makes sure the result stays inside root.
func SafeJoin(root string, parts ...string) (string, error) {
	cleanRoot := filepath.Clean(root)
	p := filepath.Join(append([]string{cleanRoot}, parts...)...)

	rel, err := filepath.Rel(cleanRoot, p)
	if err != nil {
		return "", err
	}
	relSl := filepath.ToSlash(rel)
	if relSl == ".." || strings.HasPrefix(relSl, "../") {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, p)
	}
	return p, nil
}
