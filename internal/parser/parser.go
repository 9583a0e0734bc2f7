// Package parser reads and writes layouts in the text format printed by
// tree(1):
//
//	project/
//	├── lib/
//	│   └── main.dart
//	└── README.md
//
// Both box-drawing (├──/└──) and ASCII (|--/`--/+--) branches are accepted.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"skelgen/internal/safety"
	"skelgen/internal/tree"
)

var (
	// ErrSyntax is returned for lines that are not tree branches or nest too deep.
	ErrSyntax = errors.New("syntax error")
	// ErrNoRoot is returned for input without a root line.
	ErrNoRoot = errors.New("no root line")
)

// Layout is a parsed tree together with the name on its first line.
type Layout struct {
	Name string
	Root tree.Dir
}

// line is one parsed branch before nesting is resolved.
type line struct {
	num   int
	name  string
	dir   bool
	depth int
}

// Parse reads tree-style text. A node is a directory when its name ends in
// "/" or when the next line is nested below it. Parsed files are empty.
func Parse(r io.Reader) (Layout, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var (
		root  string
		lines []line
		num   int
	)

	for sc.Scan() {
		num++
		raw := strings.TrimRight(sc.Text(), "\r\n")
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		if root == "" {
			name := strings.TrimSuffix(text, "/")
			if err := safety.ValidateName(name); err != nil {
				return Layout{}, fmt.Errorf("line %d: root: %w", num, err)
			}
			root = name
			continue
		}

		depth, name, ok := parseTreeLine(raw)
		if !ok {
			if isTreeSummary(text) {
				continue
			}
			return Layout{}, fmt.Errorf("line %d: %w: not a tree line: %q", num, ErrSyntax, raw)
		}

		isDir := strings.HasSuffix(name, "/")
		name = strings.TrimSuffix(name, "/")
		if err := safety.ValidateName(name); err != nil {
			return Layout{}, fmt.Errorf("line %d: %w", num, err)
		}

		lines = append(lines, line{num: num, name: name, dir: isDir, depth: depth})
	}
	if err := sc.Err(); err != nil {
		return Layout{}, err
	}
	if root == "" {
		return Layout{}, ErrNoRoot
	}

	for i := range lines {
		if i+1 < len(lines) && lines[i+1].depth > lines[i].depth {
			lines[i].dir = true
		}
	}

	pos := 0
	dir, err := build(lines, &pos, 0)
	if err != nil {
		return Layout{}, err
	}
	if err := tree.Validate(dir); err != nil {
		return Layout{}, err
	}

	return Layout{Name: root, Root: dir}, nil
}

// build consumes lines at depth and below, starting at *pos.
func build(lines []line, pos *int, depth int) (tree.Dir, error) {
	var entries []tree.Entry

	for *pos < len(lines) {
		l := lines[*pos]
		if l.depth < depth {
			break
		}
		if l.depth > depth {
			return tree.Dir{}, fmt.Errorf("line %d: %w: %q nested at depth %d under depth %d",
				l.num, ErrSyntax, l.name, l.depth, depth)
		}
		*pos++

		if !l.dir {
			entries = append(entries, tree.Empty(l.name))
			continue
		}
		sub, err := build(lines, pos, depth+1)
		if err != nil {
			return tree.Dir{}, err
		}
		entries = append(entries, tree.Entry{Name: l.name, Node: sub})
	}

	return tree.NewDir(entries...), nil
}

var (
	spacedMarkers = []string{"├── ", "└── ", "|-- ", "`-- ", "+-- "}
	bareMarkers   = []string{"├──", "└──", "|--", "`--", "+--"}
)

// parseTreeLine returns the depth and name of a branch line.
func parseTreeLine(line string) (int, string, bool) {
	idx, used := findMarker(line, spacedMarkers)
	if idx == -1 {
		idx, used = findMarker(line, bareMarkers)
	}
	if idx == -1 {
		return 0, "", false
	}

	name := strings.TrimSpace(line[idx+len(used):])
	if name == "" {
		return 0, "", false
	}
	return countDepth(line[:idx]), name, true
}

// findMarker returns the leftmost marker in line and its offset, or -1.
func findMarker(line string, markers []string) (int, string) {
	idx, used := -1, ""
	for _, m := range markers {
		if i := strings.Index(line, m); i != -1 && (idx == -1 || i < idx) {
			idx, used = i, m
		}
	}
	return idx, used
}

// countDepth turns a branch prefix into a nesting level: every guide rune
// counts as one column and four columns make a level.
func countDepth(prefix string) int {
	s := prefix
	for _, r := range []string{"│", "└", "├", "─", "|"} {
		s = strings.ReplaceAll(s, r, " ")
	}
	return strings.Count(s, " ") / 4
}

// isTreeSummary matches the "3 directories, 5 files" trailer.
func isTreeSummary(line string) bool {
	s := strings.ToLower(line)
	return strings.Contains(s, "director") && strings.Contains(s, "file") && strings.Contains(s, ",")
}

// RenderOptions tunes Render output.
type RenderOptions struct {
	// Color paints directory names. Output is plain when the terminal has
	// no colour support.
	Color bool
	// Summary appends a "N directories, M files" line.
	Summary bool
}

// Render writes root in the format Parse reads. Directories always carry a
// trailing "/" so empty ones survive a round trip. Names Parse could not
// read back unchanged are rejected before anything is written.
func Render(w io.Writer, name string, root tree.Dir, opts RenderOptions) error {
	if err := safety.ValidateName(name); err != nil {
		return fmt.Errorf("root: %w", err)
	}
	if err := tree.Validate(root); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, dirLabel(name, opts))
	renderDir(bw, "", root, opts)

	if opts.Summary {
		dirs, files := tree.Count(root)
		fmt.Fprintf(bw, "\n%d directories, %d files\n", dirs, files)
	}
	return bw.Flush()
}

// renderDir writes the entries of d, each line prefixed by indent.
func renderDir(w io.Writer, indent string, d tree.Dir, opts RenderOptions) {
	entries := d.Entries()
	for i, e := range entries {
		branch, guide := "├── ", "│   "
		if i == len(entries)-1 {
			branch, guide = "└── ", "    "
		}

		sub, isDir := e.Node.(tree.Dir)
		if !isDir {
			fmt.Fprintf(w, "%s%s%s\n", indent, branch, e.Name)
			continue
		}
		fmt.Fprintf(w, "%s%s%s\n", indent, branch, dirLabel(e.Name, opts))
		renderDir(w, indent+guide, sub, opts)
	}
}

// dirLabel formats a directory name with its trailing slash.
func dirLabel(name string, opts RenderOptions) string {
	if opts.Color {
		return color.Blue.Sprint(name) + "/"
	}
	return name + "/"
}
