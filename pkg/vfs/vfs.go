// Package vfs implements the immutable virtual file database backing the
// page pipeline. The file set is loaded once at startup and never mutated,
// so it is safe for unsynchronized concurrent reads.
package vfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates a path absent from the file set. A miss is a broken
// content tree, not a recoverable condition.
var ErrNotFound = errors.New("vfs: file not found")

// Entry is one stored (path, content) pair. The serving layer registers
// each entry as a static route.
type Entry struct {
	Path    string
	Content []byte
}

// FS is an ordered, immutable collection of file entries. Lookup returns the
// first entry whose normalized path matches; uniqueness is not enforced by
// construction.
type FS struct {
	entries []Entry
}

func New(entries []Entry) *FS {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &FS{entries: copied}
}

// FromDir walks a directory tree on disk and loads every regular file into
// a new FS. Paths are stored relative to root, slash-separated. Any read
// error is fatal to the caller: it indicates a corrupted deployment.
func FromDir(root string) (*FS, error) {
	var entries []Entry
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Path: filepath.ToSlash(rel), Content: content})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load content tree %s: %w", root, err)
	}
	return &FS{entries: entries}, nil
}

// Entries returns the stored (path, content) pairs in insertion order.
// Callers must treat the result as read-only.
func (f *FS) Entries() []Entry {
	return f.entries
}

// Lookup returns the content of the first entry whose normalized path equals
// the normalized query path.
func (f *FS) Lookup(p string) ([]byte, error) {
	want := Normalize(p)
	for _, e := range f.entries {
		if Normalize(e.Path) == want {
			return e.Content, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
}

// FindByExtension returns every stored path whose containing directory
// normalizes equal to dir and whose extension matches ext exactly
// (case-sensitive, leading dot included, e.g. ".md").
func (f *FS) FindByExtension(ext, dir string) []string {
	wantDir := Normalize(dir)
	var found []string
	for _, e := range f.entries {
		p := Normalize(e.Path)
		if path.Ext(p) != ext {
			continue
		}
		if parentDir(p) == wantDir {
			found = append(found, p)
		}
	}
	return found
}

// ListDirectories derives the distinct parent directories of all stored
// paths, keeps those equal to or nested under the given path, and returns
// them deduplicated in first-seen order. Top-level files have no parent
// directory and contribute nothing.
func (f *FS) ListDirectories(under string) []string {
	underSegs := segments(under)
	seen := make(map[string]bool)
	var dirs []string
	for _, e := range f.entries {
		segs := segments(e.Path)
		if len(segs) < 2 {
			// File at the top level: empty parent, never listed.
			continue
		}
		dirSegs := segs[:len(segs)-1]
		if !underSegments(dirSegs, underSegs) {
			continue
		}
		dir := strings.Join(dirSegs, "/")
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// IsUnder reports whether p1 is equal to or nested under p2, comparing
// segment sequences. It is reflexive.
func IsUnder(p1, p2 string) bool {
	return underSegments(segments(p1), segments(p2))
}

func underSegments(p1, p2 []string) bool {
	if len(p2) > len(p1) {
		return false
	}
	for i := range p2 {
		if p1[i] != p2[i] {
			return false
		}
	}
	return true
}

// Normalize collapses redundant separators so that "a//b" and "a/b" compare
// equal everywhere in the database.
func Normalize(p string) string {
	return strings.Join(segments(p), "/")
}

func segments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func parentDir(p string) string {
	segs := segments(p)
	if len(segs) < 2 {
		return ""
	}
	return strings.Join(segs[:len(segs)-1], "/")
}
