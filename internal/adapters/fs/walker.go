// Package fs provides filesystem adapters: root location, walking,
// hashing, and output verification.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
)

// dirsNeverHashed are directories whose content never feeds a stage hash.
var dirsNeverHashed = []string{".git", ".jj", ".apbuild"}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root in lexical order, skipping VCS
// metadata, the apbuild scratch directory, and any extra ignored names.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			name := d.Name()
			if d.IsDir() {
				if path != root && (slices.Contains(dirsNeverHashed, name) || matchesAny(ignores, name)) {
					return filepath.SkipDir
				}
				return nil
			}

			if matchesAny(ignores, name) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func matchesAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
