package plan

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/notmyrealname/apbuild/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/notmyrealname/apbuild/internal/adapters/python" //nolint:depguard // Wired in engine wiring
	"github.com/notmyrealname/apbuild/internal/core/ports"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[ports.StagePlanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{python.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.StagePlanner, error) {
			inspector, err := graft.Dep[ports.EnvInspector](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPlanner(inspector, log), nil
		},
	})
}
