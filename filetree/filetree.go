// Package filetree renders a bounded ASCII tree of a directory, used as
// prompt context so the model can see what the working directory contains.
package filetree

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options bounds the traversal. MaxEntries is a global cap on emitted
// entries across the whole tree, not a per-directory one.
type Options struct {
	MaxDepth   int
	MaxEntries int
	// Ignore holds glob patterns matched against slash-separated paths
	// relative to the root. Matching entries are neither emitted nor
	// descended into, and do not count against MaxEntries.
	Ignore []string
}

// DefaultOptions returns the bounds used for prompt context. The VCS object
// store is skipped because it adds bulk without telling the model anything
// about the project.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   3,
		MaxEntries: 30,
		Ignore:     []string{".git", ".git/**"},
	}
}

// Summarize renders the tree rooted at root. The first line is the root
// path itself; each entry below is prefixed with box-drawing connectors.
// Directories that cannot be listed are skipped silently. Output is
// deterministic for a stable filesystem snapshot.
func Summarize(root string, opts Options) string {
	w := &walker{opts: opts, root: root}
	w.lines = append(w.lines, root)
	w.walk(root, "", 0)
	return strings.Join(w.lines, "\n")
}

type walker struct {
	opts  Options
	root  string
	lines []string
	count int
}

func (w *walker) walk(dir, prefix string, depth int) {
	if depth > w.opts.MaxDepth || w.count >= w.opts.MaxEntries {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	// ReadDir returns entries sorted by name. Drop ignored ones up front so
	// connector shapes are computed against the visible set.
	visible := entries[:0:0]
	for _, e := range entries {
		if !w.ignored(filepath.Join(dir, e.Name())) {
			visible = append(visible, e)
		}
	}

	for i, e := range visible {
		if w.count >= w.opts.MaxEntries {
			return
		}
		last := i == len(visible)-1
		connector := "├── "
		if last {
			connector = "└── "
		}
		w.lines = append(w.lines, prefix+connector+e.Name())
		w.count++

		if e.IsDir() {
			childPrefix := prefix + "│   "
			if last {
				childPrefix = prefix + "    "
			}
			w.walk(filepath.Join(dir, e.Name()), childPrefix, depth+1)
		}
	}
}

func (w *walker) ignored(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.opts.Ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
