// Package runner executes the packaging pipeline.
package runner

import (
	"context"
	"sync"
	"time"

	"github.com/notmyrealname/apbuild/internal/core/domain"
	"github.com/notmyrealname/apbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// StageStatus represents the status of a stage.
type StageStatus string

const (
	// StatusPending indicates the stage has not started.
	StatusPending StageStatus = "Pending"
	// StatusRunning indicates the stage is executing.
	StatusRunning StageStatus = "Running"
	// StatusCompleted indicates the stage finished successfully.
	StatusCompleted StageStatus = "Completed"
	// StatusFailed indicates the stage failed.
	StatusFailed StageStatus = "Failed"
	// StatusCached indicates the stage was skipped via the cache.
	StatusCached StageStatus = "Cached"
	// StatusSkipped indicates the stage was not requested.
	StatusSkipped StageStatus = "Skipped"
)

// Options configures a pipeline run.
type Options struct {
	// Force bypasses the stage cache.
	Force bool
}

// Runner executes stages strictly in dependency order, one at a time.
// A failure aborts the remaining stages; there is no rollback and no
// partial-artifact cleanup.
type Runner struct {
	planner   ports.StagePlanner
	executor  ports.Executor
	hasher    ports.Hasher
	store     ports.StageStore
	verifier  ports.Verifier
	telemetry ports.Telemetry
	logger    ports.Logger

	mu       sync.RWMutex
	statuses map[string]StageStatus
}

// NewRunner creates a new Runner.
func NewRunner(
	planner ports.StagePlanner,
	executor ports.Executor,
	hasher ports.Hasher,
	store ports.StageStore,
	verifier ports.Verifier,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Runner {
	return &Runner{
		planner:   planner,
		executor:  executor,
		hasher:    hasher,
		store:     store,
		verifier:  verifier,
		telemetry: telemetry,
		logger:    logger,
		statuses:  make(map[string]StageStatus),
	}
}

// Status returns the recorded status of a stage.
func (r *Runner) Status(stageName string) StageStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.statuses[stageName]; ok {
		return s
	}
	return StatusPending
}

func (r *Runner) setStatus(stageName string, s StageStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[stageName] = s
}

// Run plans and executes the pipeline for the given targets. An empty
// target list runs every stage.
func (r *Runner) Run(ctx context.Context, root string, m *domain.Manifest, targets []string, opts Options) error {
	pipeline, err := r.planner.Pipeline(root, m)
	if err != nil {
		return zerr.Wrap(err, "failed to plan pipeline")
	}

	required, err := pipeline.RequiredFor(targets)
	if err != nil {
		return err
	}

	for stage := range pipeline.Walk() {
		if !required[stage.Name] {
			r.setStatus(stage.Name, StatusSkipped)
			continue
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := r.runStage(ctx, root, m, &stage, opts); err != nil {
			r.setStatus(stage.Name, StatusFailed)
			return zerr.With(zerr.Wrap(err, domain.ErrPipelineFailed.Error()), "stage", stage.Name)
		}
	}

	return nil
}

func (r *Runner) runStage(ctx context.Context, root string, m *domain.Manifest, stage *domain.Stage, opts Options) error {
	r.setStatus(stage.Name, StatusRunning)

	ctx, vertex := r.telemetry.Record(ctx, stage.Name)

	// The definition hash uses the canonical stage from the pipeline, not
	// the materialized commands, so idempotence decisions made at run time
	// do not churn the cache key.
	inputHash, err := r.hasher.StageHash(stage, root)
	if err != nil {
		vertex.Complete(err)
		return err
	}

	if !opts.Force {
		hit, err := r.checkCache(root, stage, inputHash)
		if err != nil {
			vertex.Complete(err)
			return err
		}
		if hit {
			r.setStatus(stage.Name, StatusCached)
			r.logger.Info("stage " + stage.Name + " is up to date")
			vertex.Cached()
			vertex.Complete(nil)
			return nil
		}
	}

	commands, err := r.planner.Commands(root, m, stage.Name)
	if err != nil {
		vertex.Complete(err)
		return err
	}

	r.logger.Info("running stage " + stage.Name)
	for _, cmd := range commands {
		if err := r.executor.Execute(ctx, root, cmd); err != nil {
			vertex.Complete(err)
			return err
		}
	}

	if err := r.verifyAndRecord(root, stage, inputHash); err != nil {
		vertex.Complete(err)
		return err
	}

	r.setStatus(stage.Name, StatusCompleted)
	vertex.Complete(nil)
	return nil
}

// checkCache reports whether the stage can be skipped: the recorded input
// hash must match and the outputs must still verify on disk. A stale
// record with missing outputs is a miss, not an error.
func (r *Runner) checkCache(root string, stage *domain.Stage, inputHash string) (bool, error) {
	info, err := r.store.Get(root, stage.Name)
	if err != nil {
		return false, err
	}
	if info == nil || info.InputHash != inputHash {
		return false, nil
	}

	ok, err := r.verifier.VerifyOutputs(root, stage.Outputs)
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (r *Runner) verifyAndRecord(root string, stage *domain.Stage, inputHash string) error {
	ok, err := r.verifier.VerifyOutputs(root, stage.Outputs)
	if err != nil {
		return err
	}
	if !ok {
		return zerr.With(domain.ErrOutputMissing, "outputs", stage.Outputs)
	}

	outputHash, err := r.hasher.OutputHash(stage.Outputs, root)
	if err != nil {
		return err
	}

	return r.store.Put(root, domain.StageInfo{
		StageName:  stage.Name,
		InputHash:  inputHash,
		OutputHash: outputHash,
		Timestamp:  time.Now(),
	})
}
