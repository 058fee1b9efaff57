package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	require.NoError(t, os.Chdir(dir))
}

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	original := os.Args
	t.Cleanup(func() { os.Args = original })
	os.Args = append([]string{"apbuild"}, args...)
}

func TestRun_Version(t *testing.T) {
	setArgs(t, "version")
	assert.Equal(t, 0, run())
}

func TestRun_NoProjectRoot(t *testing.T) {
	chdir(t, t.TempDir())
	setArgs(t, "run")
	assert.Equal(t, 1, run())
}

func TestRun_MissingConsumedFiles(t *testing.T) {
	root := t.TempDir()
	manifest := `version: "1"
app:
  id: "{F4E2A6C1-0000-4000-8000-000000000001}"
  name: AdminPanel
  version: 1.0.0
  publisher: Example Corp
bundle:
  entry: main.py
installer:
  script: installer.iss
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "apbuild.yaml"), []byte(manifest), 0o600))
	chdir(t, root)

	// The manifest loads but the files the pipeline consumes are absent, so
	// planning fails before any tool runs.
	setArgs(t, "run")
	assert.Equal(t, 1, run())
}
