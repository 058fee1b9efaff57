package ports

import "github.com/notmyrealname/apbuild/internal/core/domain"

// StagePlanner turns the manifest into the executable pipeline.
//
// Pipeline produces the static stage graph whose definitions feed the
// cache key. Commands materializes a stage's invocations against the
// current workspace state just before execution; materialization is where
// idempotence decisions (skip environment creation) and preconditions
// (bundle directory must exist before the installer compiles) live.
//
//go:generate go run go.uber.org/mock/mockgen -source=planner.go -destination=mocks/mock_planner.go -package=mocks
type StagePlanner interface {
	Pipeline(root string, m *domain.Manifest) (*domain.Pipeline, error)
	Commands(root string, m *domain.Manifest, stageName string) ([]domain.Command, error)
}
