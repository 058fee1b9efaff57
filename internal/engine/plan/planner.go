// Package plan materializes the packaging pipeline from the manifest.
//
// The pipeline always has the same three stages: environment preparation,
// executable assembly, and installer compilation. The manifest configures
// them; it cannot add or remove stages.
package plan

import (
	"os"
	"path/filepath"

	"github.com/notmyrealname/apbuild/internal/core/domain"
	"github.com/notmyrealname/apbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StagePlanner = (*Planner)(nil)

// Planner implements ports.StagePlanner.
type Planner struct {
	inspector ports.EnvInspector
	logger    ports.Logger
}

// NewPlanner creates a new Planner.
func NewPlanner(inspector ports.EnvInspector, logger ports.Logger) *Planner {
	return &Planner{inspector: inspector, logger: logger}
}

// Pipeline builds the static stage graph. Stage definitions carry the
// canonical command lists that feed the cache key; run-time materialization
// may deviate (see Commands) without changing the key.
func (p *Planner) Pipeline(root string, m *domain.Manifest) (*domain.Pipeline, error) {
	if err := p.checkConsumedFiles(root, m); err != nil {
		return nil, err
	}

	pipeline := domain.NewPipeline()

	stages := []*domain.Stage{
		p.envStage(root, m),
		p.bundleStage(root, m),
		p.installerStage(m),
	}
	for _, s := range stages {
		if err := pipeline.AddStage(s); err != nil {
			return nil, err
		}
	}

	if err := pipeline.Validate(); err != nil {
		return nil, err
	}
	return pipeline, nil
}

// checkConsumedFiles fails planning when a file the pipeline consumes is
// absent, before any tool runs.
func (p *Planner) checkConsumedFiles(root string, m *domain.Manifest) error {
	consumed := []struct {
		what, path string
	}{
		{"requirements lock file", m.Env.Requirements},
		{"entry script", m.Bundle.Entry},
		{"installer descriptor", m.Installer.Script},
	}
	for _, c := range consumed {
		if _, err := os.Stat(filepath.Join(root, c.path)); err != nil {
			return zerr.With(zerr.Wrap(err, "missing "+c.what), "path", c.path)
		}
	}
	return nil
}

// Commands materializes a stage's invocations against the current
// workspace state.
func (p *Planner) Commands(root string, m *domain.Manifest, stageName string) ([]domain.Command, error) {
	switch stageName {
	case domain.StageEnv:
		return p.envCommands(root, m), nil
	case domain.StageBundle:
		return p.bundleCommands(root, m)
	case domain.StageInstaller:
		return p.installerCommands(root, m)
	default:
		return nil, zerr.With(domain.ErrStageNotFound, "stage", stageName)
	}
}

// --- environment preparation ---

func (p *Planner) envStage(root string, m *domain.Manifest) *domain.Stage {
	interp := p.inspector.Interpreter(root, m.Env)
	return &domain.Stage{
		Name:     domain.StageEnv,
		Inputs:   []string{m.Env.Requirements},
		Outputs:  []string{interp},
		Commands: p.envCommandList(root, m, true),
	}
}

func (p *Planner) envCommands(root string, m *domain.Manifest) []domain.Command {
	create := !p.inspector.InterpreterExists(root, m.Env)
	if !create {
		p.logger.Info("environment exists, reusing " + m.Env.Dir)
	}
	return p.envCommandList(root, m, create)
}

// envCommandList builds the stage's commands. The canonical form used for
// hashing always includes environment creation so that idempotent reuse
// does not perturb the cache key.
func (p *Planner) envCommandList(root string, m *domain.Manifest, create bool) []domain.Command {
	interp := p.inspector.Interpreter(root, m.Env)

	var cmds []domain.Command
	if create {
		cmds = append(cmds, domain.Command{
			Argv: []string{m.Env.Interpreter, "-m", "venv", m.Env.Dir},
		})
	}

	cmds = append(cmds, domain.Command{
		Argv: []string{interp, "-m", "pip", "install", "-r", m.Env.Requirements},
	})

	// The placement variable rides on this one invocation only. It directs
	// the browser installer into the automation library's package tree so
	// the assembly stage bundles the binaries; set process-wide it would be
	// an invisible side channel.
	cmds = append(cmds, domain.Command{
		Argv: append([]string{interp, "-m", "playwright", "install"}, m.Env.Browsers...),
		Env:  []string{"PLAYWRIGHT_BROWSERS_PATH=" + m.Env.BrowsersPath},
	})

	return cmds
}

// --- executable assembly ---

func (p *Planner) bundleStage(root string, m *domain.Manifest) *domain.Stage {
	inputs := append([]string{m.Bundle.Entry, m.Env.Requirements}, m.Bundle.Inputs...)
	return &domain.Stage{
		Name:      domain.StageBundle,
		DependsOn: []string{domain.StageEnv},
		Inputs:    inputs,
		Outputs:   []string{m.BundleDir()},
		Commands: []domain.Command{{
			Argv: p.bundleBaseArgv(root, m),
		}},
	}
}

func (p *Planner) bundleBaseArgv(root string, m *domain.Manifest) []string {
	interp := p.inspector.Interpreter(root, m.Env)
	argv := []string{
		interp, "-m", "PyInstaller",
		"--noconfirm",
		"--name", m.App.Name,
		"--distpath", m.Bundle.DistDir,
		"--workpath", domain.DefaultWorkPath(),
		"--specpath", domain.DefaultWorkPath(),
	}
	if m.Bundle.Windowed {
		argv = append(argv, "--windowed")
	}
	return argv
}

// bundleCommands extends the base invocation with asset collection: whole
// packages whose data and binaries must ship, and defensively enumerated
// submodules for packages that static import analysis cannot see through.
func (p *Planner) bundleCommands(root string, m *domain.Manifest) ([]domain.Command, error) {
	argv := p.bundleBaseArgv(root, m)

	for _, pkg := range m.Bundle.CollectAll {
		// Verify the package is actually installed; PyInstaller would
		// otherwise fail mid-analysis with a less useful error.
		if _, err := p.inspector.PackageDir(root, m.Env, pkg); err != nil {
			return nil, err
		}
		argv = append(argv, "--collect-all", pkg)
	}

	for _, pkg := range m.Bundle.HiddenImportsFrom {
		mods, err := p.inspector.Submodules(root, m.Env, pkg)
		if err != nil {
			return nil, err
		}
		for _, mod := range mods {
			argv = append(argv, "--hidden-import", mod)
		}
	}

	argv = append(argv, m.Bundle.Entry)

	return []domain.Command{{Argv: argv}}, nil
}

// --- installer compilation ---

func (p *Planner) installerStage(m *domain.Manifest) *domain.Stage {
	return &domain.Stage{
		Name:      domain.StageInstaller,
		DependsOn: []string{domain.StageBundle},
		Inputs:    []string{m.Installer.Script, m.BundleDir()},
		Outputs:   []string{m.InstallerPath()},
		Commands: []domain.Command{{
			Argv: installerArgv(m),
		}},
	}
}

// installerCommands re-checks that the assembly stage's output is present
// and non-empty. The compiler would fail on the missing source path anyway,
// but this surfaces the ordering violation as a pipeline error.
func (p *Planner) installerCommands(root string, m *domain.Manifest) ([]domain.Command, error) {
	bundleDir := filepath.Join(root, m.BundleDir())
	entries, err := os.ReadDir(bundleDir)
	if err != nil || len(entries) == 0 {
		return nil, zerr.With(domain.ErrSourceMissing, "path", bundleDir)
	}

	return []domain.Command{{Argv: installerArgv(m)}}, nil
}

// installerArgv builds the compiler invocation. Application identity and
// paths are injected as preprocessor defines so the descriptor stays free
// of duplicated configuration.
func installerArgv(m *domain.Manifest) []string {
	return []string{
		m.Installer.Compiler,
		"/DAppId=" + m.App.ID,
		"/DAppName=" + m.App.Name,
		"/DAppVersion=" + m.App.Version,
		"/DAppPublisher=" + m.App.Publisher,
		"/DSourceDir=" + filepath.FromSlash(m.BundleDir()),
		"/O" + filepath.FromSlash(m.Installer.OutputDir),
		"/F" + m.Installer.BaseName,
		m.Installer.Script,
	}
}
