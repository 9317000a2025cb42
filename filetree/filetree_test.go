package filetree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func sampleTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "alpha", "one.txt"))
	writeFile(t, filepath.Join(root, "alpha", "two.txt"))
	writeFile(t, filepath.Join(root, "beta.txt"))
	writeFile(t, filepath.Join(root, "gamma", "delta", "deep.txt"))
	return root
}

func TestSummarizeShape(t *testing.T) {
	root := sampleTree(t)

	got := Summarize(root, Options{MaxDepth: 3, MaxEntries: 30})

	want := strings.Join([]string{
		root,
		"├── alpha",
		"│   ├── one.txt",
		"│   └── two.txt",
		"├── beta.txt",
		"└── gamma",
		"    └── delta",
		"        └── deep.txt",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestSummarizeIdempotent(t *testing.T) {
	root := sampleTree(t)
	opts := DefaultOptions()

	assert.Equal(t, Summarize(root, opts), Summarize(root, opts))
}

func TestSummarizeEntryCap(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 50; i++ {
		writeFile(t, filepath.Join(root, fmt.Sprintf("file_%02d.txt", i)))
	}

	got := Summarize(root, Options{MaxDepth: 3, MaxEntries: 30})
	lines := strings.Split(got, "\n")

	// Root line plus at most MaxEntries emitted entries.
	assert.Len(t, lines, 31)
}

func TestSummarizeEntryCapIsGlobal(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 10; i++ {
		writeFile(t, filepath.Join(root, fmt.Sprintf("dir_%02d", i), "inner.txt"))
	}

	got := Summarize(root, Options{MaxDepth: 3, MaxEntries: 5})
	lines := strings.Split(got, "\n")

	assert.Len(t, lines, 6, "the counter spans the whole traversal, not one directory")
}

func TestSummarizeDepthCap(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "b", "c", "d", "leaf.txt"))

	got := Summarize(root, Options{MaxDepth: 1, MaxEntries: 30})

	assert.Contains(t, got, "a")
	assert.Contains(t, got, "b")
	assert.NotContains(t, got, "c", "depth 2 must not be descended into")
}

func TestSummarizeIgnoreGlobs(t *testing.T) {
	root := sampleTree(t)
	writeFile(t, filepath.Join(root, ".git", "objects", "ab", "cdef"))

	got := Summarize(root, DefaultOptions())

	assert.NotContains(t, got, ".git")
	assert.Contains(t, got, "beta.txt")
}

func TestSummarizeIgnoredEntriesDoNotCount(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "HEAD"))
	writeFile(t, filepath.Join(root, "a.txt"))
	writeFile(t, filepath.Join(root, "b.txt"))

	got := Summarize(root, Options{MaxDepth: 3, MaxEntries: 2, Ignore: []string{".git", ".git/**"}})

	assert.Contains(t, got, "a.txt")
	assert.Contains(t, got, "b.txt")
}

func TestSummarizeUnreadableDirSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not apply to root")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ok.txt"))
	sealed := filepath.Join(root, "sealed")
	require.NoError(t, os.MkdirAll(sealed, 0755))
	writeFile(t, filepath.Join(sealed, "secret.txt"))
	require.NoError(t, os.Chmod(sealed, 0000))
	t.Cleanup(func() { os.Chmod(sealed, 0755) })

	got := Summarize(root, Options{MaxDepth: 3, MaxEntries: 30})

	assert.Contains(t, got, "sealed", "the directory itself is listed")
	assert.NotContains(t, got, "secret.txt", "its contents are silently skipped")
}

func TestSummarizeMissingRoot(t *testing.T) {
	got := Summarize(filepath.Join(t.TempDir(), "nope"), DefaultOptions())

	// Just the root line; an unlistable root produces no entries and no error.
	assert.NotContains(t, got, "\n")
}
