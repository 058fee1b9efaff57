package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/notmyrealname/apbuild/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "")
	writeFile(t, root, "src/panel.py", "")
	writeFile(t, root, ".git/HEAD", "")
	writeFile(t, root, ".apbuild/state/record.json", "")
	writeFile(t, root, "node_modules/pkg/index.js", "")

	w := fs.NewWalker()

	var files []string
	for f := range w.WalkFiles(root, []string{"node_modules"}) {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		files = append(files, filepath.ToSlash(rel))
	}

	want := []string{"main.py", "src/panel.py"}
	if len(files) != len(want) {
		t.Fatalf("expected %v, got %v", want, files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], files[i])
		}
	}
}

func TestWalker_WalkFiles_EarlyStop(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "")
	writeFile(t, root, "b.txt", "")

	w := fs.NewWalker()

	count := 0
	for range w.WalkFiles(root, nil) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("expected early stop after one file, got %d", count)
	}
}
