package domain

import "path/filepath"

// File and directory permissions used for everything apbuild writes.
const (
	DirPerm  = 0o750
	FilePerm = 0o644
)

// MarkerFile is the project manifest filename. Locating it is the only way
// a project root is determined; there is no fallback.
const MarkerFile = "apbuild.yaml"

// workDir is the per-project scratch directory.
const workDir = ".apbuild"

// DefaultStatePath returns the stage-cache directory, relative to the root.
func DefaultStatePath() string {
	return filepath.Join(workDir, "state")
}

// DefaultWorkPath returns the packaging tool's scratch directory,
// relative to the root.
func DefaultWorkPath() string {
	return filepath.Join(workDir, "build")
}
