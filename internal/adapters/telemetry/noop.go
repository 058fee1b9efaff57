// Package telemetry provides progress-recording implementations.
package telemetry

import (
	"context"
	"io"

	"github.com/notmyrealname/apbuild/internal/core/ports"
)

// Noop is a ports.Telemetry implementation that records nothing.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that discards everything.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &noopVertex{}
}

// Close does nothing.
func (n *Noop) Close() error { return nil }

type noopVertex struct{}

func (v *noopVertex) Stdout() io.Writer { return io.Discard }
func (v *noopVertex) Stderr() io.Writer { return io.Discard }
func (v *noopVertex) Complete(error)    {}
func (v *noopVertex) Cached()           {}
