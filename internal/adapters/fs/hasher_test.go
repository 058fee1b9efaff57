package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/notmyrealname/apbuild/internal/adapters/fs"
	"github.com/notmyrealname/apbuild/internal/core/domain"
)

func newHasher() *fs.Hasher {
	return fs.NewHasher(fs.NewWalker())
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

func TestHasher_StageHash_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "requirements.txt", "playwright==1.40\n")

	stage := &domain.Stage{
		Name:   "env",
		Inputs: []string{"requirements.txt"},
		Commands: []domain.Command{
			{Argv: []string{"python", "-m", "venv", ".venv"}},
		},
	}

	h := newHasher()
	first, err := h.StageHash(stage, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := h.StageHash(stage, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("hash not deterministic: %s != %s", first, second)
	}
}

func TestHasher_StageHash_InputContentChangesHash(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "requirements.txt", "playwright==1.40\n")

	stage := &domain.Stage{Name: "env", Inputs: []string{"requirements.txt"}}

	h := newHasher()
	before, err := h.StageHash(stage, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	writeFile(t, root, "requirements.txt", "playwright==1.41\n")
	after, err := h.StageHash(stage, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if before == after {
		t.Error("expected hash to change with input content")
	}
}

func TestHasher_StageHash_CommandEnvChangesHash(t *testing.T) {
	root := t.TempDir()

	base := &domain.Stage{
		Name:     "env",
		Commands: []domain.Command{{Argv: []string{"python", "-m", "playwright", "install"}}},
	}
	withEnv := &domain.Stage{
		Name: "env",
		Commands: []domain.Command{{
			Argv: []string{"python", "-m", "playwright", "install"},
			Env:  []string{"PLAYWRIGHT_BROWSERS_PATH=0"},
		}},
	}

	h := newHasher()
	a, err := h.StageHash(base, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := h.StageHash(withEnv, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a == b {
		t.Error("expected explicit command env to feed the hash")
	}
}

func TestHasher_StageHash_MissingInput(t *testing.T) {
	root := t.TempDir()
	stage := &domain.Stage{Name: "env", Inputs: []string{"requirements.txt"}}

	h := newHasher()
	if _, err := h.StageHash(stage, root); err == nil {
		t.Fatal("expected error for missing input, got nil")
	}
}

func TestHasher_StageHash_GlobInput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.py", "print('hi')\n")
	writeFile(t, root, "src/util.py", "pass\n")

	stage := &domain.Stage{Name: "bundle", Inputs: []string{"src/*.py"}}

	h := newHasher()
	before, err := h.StageHash(stage, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	writeFile(t, root, "src/util.py", "changed = True\n")
	after, err := h.StageHash(stage, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if before == after {
		t.Error("expected glob-matched file change to change the hash")
	}
}

func TestHasher_StageHash_DirectoryInput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "assets/icon.ico", "binary")
	writeFile(t, root, "assets/theme.json", "{}")

	stage := &domain.Stage{Name: "bundle", Inputs: []string{"assets"}}

	h := newHasher()
	before, err := h.StageHash(stage, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	writeFile(t, root, "assets/extra.txt", "new")
	after, err := h.StageHash(stage, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if before == after {
		t.Error("expected new file under directory input to change the hash")
	}
}

func TestHasher_OutputHash_MissingOutput(t *testing.T) {
	root := t.TempDir()

	h := newHasher()
	_, err := h.OutputHash([]string{"dist/AdminPanel"}, root)
	if !errors.Is(err, domain.ErrOutputMissing) {
		t.Fatalf("expected ErrOutputMissing, got %v", err)
	}
}

func TestHasher_OutputHash_Directory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "dist/AdminPanel/AdminPanel.exe", "MZ")

	h := newHasher()
	sum, err := h.OutputHash([]string{"dist/AdminPanel"}, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum == "" {
		t.Error("expected non-empty output hash")
	}
}
