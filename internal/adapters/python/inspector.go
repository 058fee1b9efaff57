// Package python knows the on-disk layout of an isolated Python
// environment: interpreter location, site-packages, and installed
// package trees.
package python

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/notmyrealname/apbuild/internal/core/domain"
	"github.com/notmyrealname/apbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EnvInspector = (*Inspector)(nil)

// Inspector implements ports.EnvInspector for venv-style environments.
type Inspector struct {
	// goos lets tests pin the layout; empty means runtime.GOOS.
	goos string
}

// NewInspector creates a new Inspector for the current platform.
func NewInspector() *Inspector {
	return &Inspector{}
}

// NewInspectorFor creates an Inspector for a specific platform layout.
func NewInspectorFor(goos string) *Inspector {
	return &Inspector{goos: goos}
}

func (i *Inspector) platform() string {
	if i.goos != "" {
		return i.goos
	}
	return runtime.GOOS
}

// Interpreter returns the environment's interpreter path relative to root.
func (i *Inspector) Interpreter(_ string, env domain.EnvSpec) string {
	if i.platform() == "windows" {
		return filepath.Join(env.Dir, "Scripts", "python.exe")
	}
	return filepath.Join(env.Dir, "bin", "python")
}

// InterpreterExists reports whether the environment has been created.
func (i *Inspector) InterpreterExists(root string, env domain.EnvSpec) bool {
	_, err := os.Stat(filepath.Join(root, i.Interpreter(root, env)))
	return err == nil
}

// SitePackages returns the absolute path of the environment's package
// directory. The POSIX layout embeds the interpreter version, so it is
// discovered by glob rather than assembled.
func (i *Inspector) SitePackages(root string, env domain.EnvSpec) (string, error) {
	envDir := filepath.Join(root, env.Dir)

	if i.platform() == "windows" {
		site := filepath.Join(envDir, "Lib", "site-packages")
		if info, err := os.Stat(site); err == nil && info.IsDir() {
			return site, nil
		}
		return "", zerr.With(zerr.New("site-packages not found; environment not prepared"), "env_dir", envDir)
	}

	matches, err := filepath.Glob(filepath.Join(envDir, "lib", "python*", "site-packages"))
	if err == nil && len(matches) > 0 {
		sort.Strings(matches)
		return matches[0], nil
	}
	return "", zerr.With(zerr.New("site-packages not found; environment not prepared"), "env_dir", envDir)
}

// PackageDir returns the absolute directory of an installed package.
func (i *Inspector) PackageDir(root string, env domain.EnvSpec, pkg string) (string, error) {
	site, err := i.SitePackages(root, env)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(site, importName(pkg))
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", zerr.With(zerr.With(zerr.New("package not installed in environment"), "package", pkg), "site_packages", site)
	}
	return dir, nil
}

// Submodules enumerates the importable submodules of an installed package
// as dotted module names, the package itself included. This is the
// defensive enumeration for packages that import submodules conditionally
// at runtime, invisible to static import analysis.
func (i *Inspector) Submodules(root string, env domain.EnvSpec, pkg string) ([]string, error) {
	dir, err := i.PackageDir(root, env, pkg)
	if err != nil {
		return nil, err
	}

	top := importName(pkg)
	modules := map[string]bool{top: true}

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			// Only directories with an __init__ module are packages.
			if _, err := os.Stat(filepath.Join(path, "__init__.py")); err != nil {
				return filepath.SkipDir
			}
			modules[top+"."+dotted(rel)] = true
			return nil
		}

		name := d.Name()
		if name == "__init__.py" {
			return nil
		}
		if isModuleFile(name) {
			// Compiled modules carry platform tags after the first dot
			// (e.g. "speed.cpython-311-x86_64.so"); the module name is
			// everything before it.
			stem := name
			if idx := strings.IndexByte(stem, '.'); idx >= 0 {
				stem = stem[:idx]
			}
			parent := filepath.Dir(rel)
			qualified := top
			if parent != "." {
				qualified += "." + dotted(parent)
			}
			modules[qualified+"."+stem] = true
		}
		return nil
	})
	if walkErr != nil {
		return nil, zerr.With(zerr.Wrap(walkErr, "failed to enumerate submodules"), "package", pkg)
	}

	result := make([]string, 0, len(modules))
	for m := range modules {
		result = append(result, m)
	}
	sort.Strings(result)
	return result, nil
}

// importName maps a distribution name to its import name. Distribution
// names use dashes, import names use underscores.
func importName(pkg string) string {
	return strings.ReplaceAll(pkg, "-", "_")
}

func dotted(rel string) string {
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
}

func isModuleFile(name string) bool {
	switch filepath.Ext(name) {
	case ".py", ".pyd", ".so":
		return true
	default:
		return false
	}
}
