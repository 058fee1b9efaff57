package domain

import "go.trai.ch/zerr"

var (
	// ErrStageExists is returned when adding a stage whose name is already taken.
	ErrStageExists = zerr.New("stage already exists")

	// ErrMissingDependency is returned when a stage depends on a stage that is not in the pipeline.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the stage dependency graph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrStageNotFound is returned when a requested stage is not part of the pipeline.
	ErrStageNotFound = zerr.New("stage not found")

	// ErrRootNotFound is returned when no ancestor of the start directory
	// contains the project marker file. There is no fallback: an ambiguous
	// root must be supplied explicitly.
	ErrRootNotFound = zerr.New("project root not found")

	// ErrSourceMissing is returned when a stage's source directory is absent
	// or empty, i.e. the preceding stage has not produced it.
	ErrSourceMissing = zerr.New("stage source directory missing or empty")

	// ErrOutputMissing is returned when a stage completed but one of its
	// declared outputs does not exist or is empty.
	ErrOutputMissing = zerr.New("stage output missing")

	// ErrPipelineFailed is the terminal error of a failed run. The causing
	// stage error is attached to it; the CLI maps it to a non-zero exit.
	ErrPipelineFailed = zerr.New("pipeline execution failed")
)
