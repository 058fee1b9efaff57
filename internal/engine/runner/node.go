package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/notmyrealname/apbuild/internal/adapters/fs"    //nolint:depguard // Wired in engine wiring
	"github.com/notmyrealname/apbuild/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/notmyrealname/apbuild/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"github.com/notmyrealname/apbuild/internal/adapters/state"  //nolint:depguard // Wired in engine wiring
	"github.com/notmyrealname/apbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/notmyrealname/apbuild/internal/core/ports"
	"github.com/notmyrealname/apbuild/internal/engine/plan"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			plan.NodeID,
			shell.NodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			state.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			planner, err := graft.Dep[ports.StagePlanner](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.StageStore](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(planner, executor, hasher, store, verifier, telemetry, log), nil
		},
	})
}
