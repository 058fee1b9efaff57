package python

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/notmyrealname/apbuild/internal/core/ports"
)

// NodeID is the unique identifier for the environment inspector Graft node.
const NodeID graft.ID = "adapter.env_inspector"

func init() {
	graft.Register(graft.Node[ports.EnvInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvInspector, error) {
			return NewInspector(), nil
		},
	})
}
