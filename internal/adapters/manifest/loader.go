// Package manifest provides the project manifest loader.
package manifest

import (
	"bytes"
	"errors"
	"io"
	"os"
	"slices"

	"github.com/notmyrealname/apbuild/internal/core/domain"
	"github.com/notmyrealname/apbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only manifest schema version this build understands.
const supportedVersion = "1"

// Loader implements ports.ManifestLoader for YAML manifests.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

var _ ports.ManifestLoader = (*Loader)(nil)

// Load reads, decodes, validates, and defaults the manifest at path.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields so a typoed key fails loudly instead of
	// silently dropping configuration.
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}

	if file.Version != supportedVersion {
		return nil, zerr.With(zerr.New("unsupported manifest version"), "version", file.Version)
	}

	m := toDomain(&file)
	applyDefaults(m)

	if err := validate(m); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if m.Env.BrowsersPath != "0" {
		// A custom placement outside the library tree produces a bundle
		// that only runs on machines with a local browser cache.
		l.logger.Warn("env.browsersPath is not \"0\"; browser binaries may not end up in the bundle")
	}

	return m, nil
}

func toDomain(f *File) *domain.Manifest {
	windowed := true
	if f.Bundle.Windowed != nil {
		windowed = *f.Bundle.Windowed
	}

	return &domain.Manifest{
		App: domain.AppIdentity{
			ID:        f.App.ID,
			Name:      f.App.Name,
			Version:   f.App.Version,
			Publisher: f.App.Publisher,
		},
		Env: domain.EnvSpec{
			Interpreter:  f.Env.Interpreter,
			Dir:          f.Env.Dir,
			Requirements: f.Env.Requirements,
			Browsers:     canonicalize(f.Env.Browsers),
			BrowsersPath: f.Env.BrowsersPath,
		},
		Bundle: domain.BundleSpec{
			Entry:             f.Bundle.Entry,
			DistDir:           f.Bundle.DistDir,
			Windowed:          windowed,
			CollectAll:        canonicalize(f.Bundle.CollectAll),
			HiddenImportsFrom: canonicalize(f.Bundle.HiddenImportsFrom),
			Inputs:            canonicalize(f.Bundle.Inputs),
		},
		Installer: domain.InstallerSpec{
			Script:    f.Installer.Script,
			OutputDir: f.Installer.OutputDir,
			BaseName:  f.Installer.BaseName,
			Compiler:  f.Installer.Compiler,
		},
	}
}

func applyDefaults(m *domain.Manifest) {
	if m.Env.Interpreter == "" {
		m.Env.Interpreter = "python"
	}
	if m.Env.Dir == "" {
		m.Env.Dir = ".venv"
	}
	if m.Env.Requirements == "" {
		m.Env.Requirements = "requirements.txt"
	}
	if len(m.Env.Browsers) == 0 {
		m.Env.Browsers = []string{"chromium"}
	}
	if m.Env.BrowsersPath == "" {
		// "0" relocates browser binaries into the automation library's own
		// package tree so the bundle stage can pick them up. Without it the
		// build works on the build machine and fails everywhere else.
		m.Env.BrowsersPath = "0"
	}
	if m.Bundle.DistDir == "" {
		m.Bundle.DistDir = "dist"
	}
	if m.Installer.OutputDir == "" {
		m.Installer.OutputDir = "dist/installer"
	}
	if m.Installer.BaseName == "" {
		m.Installer.BaseName = m.App.Name + "Setup"
	}
	if m.Installer.Compiler == "" {
		m.Installer.Compiler = "iscc"
	}
}

func validate(m *domain.Manifest) error {
	required := []struct {
		field, value string
	}{
		{"app.id", m.App.ID},
		{"app.name", m.App.Name},
		{"app.version", m.App.Version},
		{"app.publisher", m.App.Publisher},
		{"bundle.entry", m.Bundle.Entry},
		{"installer.script", m.Installer.Script},
	}
	for _, r := range required {
		if r.value == "" {
			return zerr.With(zerr.New("missing required manifest field"), "field", r.field)
		}
	}
	return nil
}

// canonicalize sorts and deduplicates a string list so that reordered
// manifest entries do not change the stage hash.
func canonicalize(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}
	sorted := slices.Clone(strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
