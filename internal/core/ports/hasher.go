package ports

import "github.com/notmyrealname/apbuild/internal/core/domain"

// Hasher computes stage cache keys.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// StageHash computes the input hash of a stage: its definition, the
	// explicit environment of its commands, and the content of its inputs.
	StageHash(stage *domain.Stage, root string) (string, error)

	// OutputHash computes the hash of the stage's produced outputs.
	OutputHash(outputs []string, root string) (string, error)
}
