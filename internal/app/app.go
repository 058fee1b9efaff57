// Package app implements the application layer for apbuild.
package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/notmyrealname/apbuild/internal/core/domain"
	"github.com/notmyrealname/apbuild/internal/core/ports"
	"github.com/notmyrealname/apbuild/internal/engine/runner"
	"go.trai.ch/zerr"
)

// RunOptions configures a pipeline run.
type RunOptions struct {
	// Root is an explicit project root. Empty means discover it by
	// walking up from the working directory.
	Root string

	// Force bypasses the stage cache.
	Force bool
}

// CleanOptions selects what Clean removes.
type CleanOptions struct {
	// Root is an explicit project root. Empty means discover it by
	// walking up from the working directory.
	Root string

	// Artifacts removes the distribution bundle and the installer output.
	Artifacts bool

	// State removes the stage cache and the packaging scratch directory.
	State bool
}

// App represents the main application logic.
type App struct {
	loader  ports.ManifestLoader
	locator ports.RootLocator
	runner  *runner.Runner
	logger  ports.Logger
}

// New creates a new App instance.
func New(loader ports.ManifestLoader, locator ports.RootLocator, r *runner.Runner, logger ports.Logger) *App {
	return &App{
		loader:  loader,
		locator: locator,
		runner:  r,
		logger:  logger,
	}
}

// Run executes the pipeline for the given targets. An empty target list
// runs every stage.
func (a *App) Run(ctx context.Context, targets []string, opts RunOptions) error {
	root, err := a.resolveRoot(opts.Root)
	if err != nil {
		return err
	}

	m, err := a.loader.Load(filepath.Join(root, domain.MarkerFile))
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	return a.runner.Run(ctx, root, m, targets, runner.Options{Force: opts.Force})
}

// Clean removes build artifacts and, optionally, the stage cache.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	root, err := a.resolveRoot(opts.Root)
	if err != nil {
		return err
	}

	m, err := a.loader.Load(filepath.Join(root, domain.MarkerFile))
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	var paths []string
	if opts.Artifacts {
		paths = append(paths,
			filepath.Join(root, filepath.FromSlash(m.Bundle.DistDir)),
			filepath.Join(root, filepath.FromSlash(m.Installer.OutputDir)),
		)
	}
	if opts.State {
		paths = append(paths,
			filepath.Join(root, domain.DefaultStatePath()),
			filepath.Join(root, domain.DefaultWorkPath()),
		)
	}

	for _, path := range paths {
		if err := os.RemoveAll(path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove"), "path", path)
		}
		a.logger.Info("removed " + path)
	}
	return nil
}

// resolveRoot returns the project root. An explicit root must itself carry
// the manifest marker; otherwise the root is discovered by walking up from
// the working directory. There is no silent fallback in either direction.
func (a *App) resolveRoot(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", explicit)
		}
		if _, err := os.Stat(filepath.Join(abs, domain.MarkerFile)); err != nil {
			return "", zerr.With(zerr.With(domain.ErrRootNotFound, "root", explicit), "marker", domain.MarkerFile)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine working directory")
	}
	return a.locator.Locate(cwd)
}
