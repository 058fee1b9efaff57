package ports

import (
	"context"

	"github.com/notmyrealname/apbuild/internal/core/domain"
)

// Executor runs a single external tool invocation.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd with its explicit environment merged over the
	// process environment. root anchors relative working directories.
	// Tool output is streamed verbatim; on failure the returned error
	// carries the tool's exit code.
	Execute(ctx context.Context, root string, cmd domain.Command) error
}
