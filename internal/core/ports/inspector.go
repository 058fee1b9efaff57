package ports

import "github.com/notmyrealname/apbuild/internal/core/domain"

// EnvInspector exposes the layout of the prepared interpreter environment.
//
// The bundle planner uses it to locate installed dependencies and to
// enumerate submodules that static import analysis cannot discover.
//
//go:generate go run go.uber.org/mock/mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type EnvInspector interface {
	// Interpreter returns the environment's interpreter path, relative to
	// root, whether or not it exists yet.
	Interpreter(root string, env domain.EnvSpec) string

	// InterpreterExists reports whether the environment has been created.
	InterpreterExists(root string, env domain.EnvSpec) bool

	// SitePackages returns the absolute path of the environment's package
	// directory. It fails when the environment has not been prepared.
	SitePackages(root string, env domain.EnvSpec) (string, error)

	// PackageDir returns the absolute directory of an installed package.
	// It fails when the package is not installed in the environment.
	PackageDir(root string, env domain.EnvSpec, pkg string) (string, error)

	// Submodules enumerates the importable submodules of an installed
	// package as dotted module names, the package itself included.
	Submodules(root string, env domain.EnvSpec, pkg string) ([]string, error)
}
