package ports

import "github.com/notmyrealname/apbuild/internal/core/domain"

// StageStore persists per-stage cache records under the project root.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StageStore interface {
	// Get retrieves the record for a stage. Returns nil, nil if not found.
	Get(root, stageName string) (*domain.StageInfo, error)

	// Put stores the record, overwriting any previous one.
	Put(root string, info domain.StageInfo) error
}
