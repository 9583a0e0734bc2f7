// Package layout holds the skeletons compiled into the binary.
package layout

import (
	"fmt"
	"sort"

	"skelgen/internal/tree"
)

// DefaultName is the layout used when none is selected.
const DefaultName = "flutter"

var builtin = map[string]func() tree.Dir{
	"flutter": Flutter,
}

// Default returns a fresh copy of the default layout.
func Default() tree.Dir {
	return Flutter()
}

// Get returns a fresh copy of the built-in layout called name.
func Get(name string) (tree.Dir, error) {
	build, ok := builtin[name]
	if !ok {
		return tree.Dir{}, fmt.Errorf("unknown layout %q (available: %v)", name, Names())
	}
	return build(), nil
}

// Names lists the built-in layouts in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
