package state

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/notmyrealname/apbuild/internal/core/ports"
)

// NodeID is the unique identifier for the stage store Graft node.
const NodeID graft.ID = "adapter.stage_store"

func init() {
	graft.Register(graft.Node[ports.StageStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StageStore, error) {
			return NewStore()
		},
	})
}
