package runner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/notmyrealname/apbuild/internal/core/domain"
	"github.com/notmyrealname/apbuild/internal/core/ports"
	"github.com/notmyrealname/apbuild/internal/core/ports/mocks"
	"github.com/notmyrealname/apbuild/internal/engine/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	planner   *mocks.MockStagePlanner
	executor  *mocks.MockExecutor
	hasher    *mocks.MockHasher
	store     *mocks.MockStageStore
	verifier  *mocks.MockVerifier
	telemetry *mocks.MockTelemetry
	runner    *runner.Runner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		planner:   mocks.NewMockStagePlanner(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		store:     mocks.NewMockStageStore(ctrl),
		verifier:  mocks.NewMockVerifier(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()

	f.runner = runner.NewRunner(f.planner, f.executor, f.hasher, f.store, f.verifier, f.telemetry, log)
	return f
}

func singleStagePipeline(t *testing.T) *domain.Pipeline {
	t.Helper()
	p := domain.NewPipeline()
	stage := domain.Stage{
		Name:    domain.StageEnv,
		Inputs:  []string{"requirements.txt"},
		Outputs: []string{".venv/bin/python"},
	}
	require.NoError(t, p.AddStage(&stage))
	require.NoError(t, p.Validate())
	return p
}

func fullPipeline(t *testing.T) *domain.Pipeline {
	t.Helper()
	p := domain.NewPipeline()
	stages := []domain.Stage{
		{Name: domain.StageEnv, Outputs: []string{".venv/bin/python"}},
		{Name: domain.StageBundle, DependsOn: []string{domain.StageEnv}, Outputs: []string{"dist/AdminPanel"}},
		{Name: domain.StageInstaller, DependsOn: []string{domain.StageBundle}, Outputs: []string{"dist/installer/AdminPanelSetup.exe"}},
	}
	for i := range stages {
		require.NoError(t, p.AddStage(&stages[i]))
	}
	require.NoError(t, p.Validate())
	return p
}

func TestRunner_Run_CacheMiss(t *testing.T) {
	f := newFixture(t)
	m := &domain.Manifest{}
	root := t.TempDir()

	f.planner.EXPECT().Pipeline(root, m).Return(singleStagePipeline(t), nil)
	f.hasher.EXPECT().StageHash(gomock.Any(), root).Return("hash1", nil)
	f.store.EXPECT().Get(root, domain.StageEnv).Return(nil, nil)
	f.planner.EXPECT().Commands(root, m, domain.StageEnv).
		Return([]domain.Command{{Argv: []string{"python", "-m", "venv", ".venv"}}}, nil)
	f.executor.EXPECT().Execute(gomock.Any(), root, gomock.Any()).Return(nil)
	f.verifier.EXPECT().VerifyOutputs(root, gomock.Any()).Return(true, nil)
	f.hasher.EXPECT().OutputHash(gomock.Any(), root).Return("out1", nil)
	f.store.EXPECT().Put(root, gomock.Any()).DoAndReturn(func(_ string, info domain.StageInfo) error {
		assert.Equal(t, domain.StageEnv, info.StageName)
		assert.Equal(t, "hash1", info.InputHash)
		assert.Equal(t, "out1", info.OutputHash)
		return nil
	})

	require.NoError(t, f.runner.Run(context.Background(), root, m, nil, runner.Options{}))
	assert.Equal(t, runner.StatusCompleted, f.runner.Status(domain.StageEnv))
}

func TestRunner_Run_CacheHit(t *testing.T) {
	f := newFixture(t)
	m := &domain.Manifest{}
	root := t.TempDir()

	f.planner.EXPECT().Pipeline(root, m).Return(singleStagePipeline(t), nil)
	f.hasher.EXPECT().StageHash(gomock.Any(), root).Return("hash1", nil)
	f.store.EXPECT().Get(root, domain.StageEnv).
		Return(&domain.StageInfo{StageName: domain.StageEnv, InputHash: "hash1"}, nil)
	f.verifier.EXPECT().VerifyOutputs(root, gomock.Any()).Return(true, nil)
	// No Commands, no Execute, no Put.

	require.NoError(t, f.runner.Run(context.Background(), root, m, nil, runner.Options{}))
	assert.Equal(t, runner.StatusCached, f.runner.Status(domain.StageEnv))
}

// A matching hash with missing outputs is a miss: the artifacts were
// deleted out from under the cache and must be rebuilt.
func TestRunner_Run_CacheHitWithMissingOutputs(t *testing.T) {
	f := newFixture(t)
	m := &domain.Manifest{}
	root := t.TempDir()

	f.planner.EXPECT().Pipeline(root, m).Return(singleStagePipeline(t), nil)
	f.hasher.EXPECT().StageHash(gomock.Any(), root).Return("hash1", nil)
	f.store.EXPECT().Get(root, domain.StageEnv).
		Return(&domain.StageInfo{StageName: domain.StageEnv, InputHash: "hash1"}, nil)
	f.verifier.EXPECT().VerifyOutputs(root, gomock.Any()).Return(false, nil)

	f.planner.EXPECT().Commands(root, m, domain.StageEnv).Return([]domain.Command{{Argv: []string{"true"}}}, nil)
	f.executor.EXPECT().Execute(gomock.Any(), root, gomock.Any()).Return(nil)
	f.verifier.EXPECT().VerifyOutputs(root, gomock.Any()).Return(true, nil)
	f.hasher.EXPECT().OutputHash(gomock.Any(), root).Return("out1", nil)
	f.store.EXPECT().Put(root, gomock.Any()).Return(nil)

	require.NoError(t, f.runner.Run(context.Background(), root, m, nil, runner.Options{}))
	assert.Equal(t, runner.StatusCompleted, f.runner.Status(domain.StageEnv))
}

func TestRunner_Run_ForceBypassesCache(t *testing.T) {
	f := newFixture(t)
	m := &domain.Manifest{}
	root := t.TempDir()

	f.planner.EXPECT().Pipeline(root, m).Return(singleStagePipeline(t), nil)
	f.hasher.EXPECT().StageHash(gomock.Any(), root).Return("hash1", nil)
	// Store.Get must not be consulted under force.
	f.planner.EXPECT().Commands(root, m, domain.StageEnv).Return([]domain.Command{{Argv: []string{"true"}}}, nil)
	f.executor.EXPECT().Execute(gomock.Any(), root, gomock.Any()).Return(nil)
	f.verifier.EXPECT().VerifyOutputs(root, gomock.Any()).Return(true, nil)
	f.hasher.EXPECT().OutputHash(gomock.Any(), root).Return("out1", nil)
	f.store.EXPECT().Put(root, gomock.Any()).Return(nil)

	require.NoError(t, f.runner.Run(context.Background(), root, m, nil, runner.Options{Force: true}))
}

func TestRunner_Run_MissingOutputsAfterExecution(t *testing.T) {
	f := newFixture(t)
	m := &domain.Manifest{}
	root := t.TempDir()

	f.planner.EXPECT().Pipeline(root, m).Return(singleStagePipeline(t), nil)
	f.hasher.EXPECT().StageHash(gomock.Any(), root).Return("hash1", nil)
	f.store.EXPECT().Get(root, domain.StageEnv).Return(nil, nil)
	f.planner.EXPECT().Commands(root, m, domain.StageEnv).Return([]domain.Command{{Argv: []string{"true"}}}, nil)
	f.executor.EXPECT().Execute(gomock.Any(), root, gomock.Any()).Return(nil)
	f.verifier.EXPECT().VerifyOutputs(root, gomock.Any()).Return(false, nil)

	err := f.runner.Run(context.Background(), root, m, nil, runner.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutputMissing)
	assert.Equal(t, runner.StatusFailed, f.runner.Status(domain.StageEnv))
}

func TestRunner_Run_FailFast(t *testing.T) {
	f := newFixture(t)
	m := &domain.Manifest{}
	root := t.TempDir()

	f.planner.EXPECT().Pipeline(root, m).Return(fullPipeline(t), nil)
	f.hasher.EXPECT().StageHash(gomock.Any(), root).Return("hash1", nil)
	f.store.EXPECT().Get(root, domain.StageEnv).Return(nil, nil)
	f.planner.EXPECT().Commands(root, m, domain.StageEnv).Return([]domain.Command{{Argv: []string{"false"}}}, nil)
	f.executor.EXPECT().Execute(gomock.Any(), root, gomock.Any()).Return(errors.New("venv creation failed"))
	// Bundle and installer must never start.

	err := f.runner.Run(context.Background(), root, m, nil, runner.Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "venv creation failed")
	assert.Equal(t, runner.StatusFailed, f.runner.Status(domain.StageEnv))
	assert.Equal(t, runner.StatusPending, f.runner.Status(domain.StageBundle))
	assert.Equal(t, runner.StatusPending, f.runner.Status(domain.StageInstaller))
}

func TestRunner_Run_TargetSelection(t *testing.T) {
	f := newFixture(t)
	m := &domain.Manifest{}
	root := t.TempDir()

	f.planner.EXPECT().Pipeline(root, m).Return(fullPipeline(t), nil)
	// Only env runs; bundle and installer are skipped.
	f.hasher.EXPECT().StageHash(gomock.Any(), root).Return("hash1", nil)
	f.store.EXPECT().Get(root, domain.StageEnv).Return(nil, nil)
	f.planner.EXPECT().Commands(root, m, domain.StageEnv).Return([]domain.Command{{Argv: []string{"true"}}}, nil)
	f.executor.EXPECT().Execute(gomock.Any(), root, gomock.Any()).Return(nil)
	f.verifier.EXPECT().VerifyOutputs(root, gomock.Any()).Return(true, nil)
	f.hasher.EXPECT().OutputHash(gomock.Any(), root).Return("out1", nil)
	f.store.EXPECT().Put(root, gomock.Any()).Return(nil)

	require.NoError(t, f.runner.Run(context.Background(), root, m, []string{domain.StageEnv}, runner.Options{}))
	assert.Equal(t, runner.StatusCompleted, f.runner.Status(domain.StageEnv))
	assert.Equal(t, runner.StatusSkipped, f.runner.Status(domain.StageBundle))
	assert.Equal(t, runner.StatusSkipped, f.runner.Status(domain.StageInstaller))
}

func TestRunner_Run_UnknownTarget(t *testing.T) {
	f := newFixture(t)
	m := &domain.Manifest{}
	root := t.TempDir()

	f.planner.EXPECT().Pipeline(root, m).Return(fullPipeline(t), nil)

	err := f.runner.Run(context.Background(), root, m, []string{"package"}, runner.Options{})
	assert.ErrorIs(t, err, domain.ErrStageNotFound)
}

func TestRunner_Run_ContextCanceled(t *testing.T) {
	f := newFixture(t)
	m := &domain.Manifest{}
	root := t.TempDir()

	f.planner.EXPECT().Pipeline(root, m).Return(fullPipeline(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.runner.Run(ctx, root, m, nil, runner.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
