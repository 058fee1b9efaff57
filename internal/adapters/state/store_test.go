package state_test

import (
	"testing"
	"time"

	"github.com/notmyrealname/apbuild/internal/adapters/state"
	"github.com/notmyrealname/apbuild/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetMissing(t *testing.T) {
	store, err := state.NewStore()
	require.NoError(t, err)

	info, err := store.Get(t.TempDir(), "env")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestStore_PutGet(t *testing.T) {
	store, err := state.NewStore()
	require.NoError(t, err)
	root := t.TempDir()

	want := domain.StageInfo{
		StageName:  "bundle",
		InputHash:  "00000000deadbeef",
		OutputHash: "00000000cafebabe",
		Timestamp:  time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Put(root, want))

	got, err := store.Get(root, "bundle")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.StageName, got.StageName)
	assert.Equal(t, want.InputHash, got.InputHash)
	assert.Equal(t, want.OutputHash, got.OutputHash)
	assert.True(t, want.Timestamp.Equal(got.Timestamp))
}

func TestStore_PutOverwrites(t *testing.T) {
	store, err := state.NewStore()
	require.NoError(t, err)
	root := t.TempDir()

	require.NoError(t, store.Put(root, domain.StageInfo{StageName: "env", InputHash: "old"}))
	require.NoError(t, store.Put(root, domain.StageInfo{StageName: "env", InputHash: "new"}))

	got, err := store.Get(root, "env")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.InputHash)
}

func TestStore_RecordsAreIndependentPerStage(t *testing.T) {
	store, err := state.NewStore()
	require.NoError(t, err)
	root := t.TempDir()

	require.NoError(t, store.Put(root, domain.StageInfo{StageName: "env", InputHash: "a"}))
	require.NoError(t, store.Put(root, domain.StageInfo{StageName: "bundle", InputHash: "b"}))

	env, err := store.Get(root, "env")
	require.NoError(t, err)
	bundle, err := store.Get(root, "bundle")
	require.NoError(t, err)

	assert.Equal(t, "a", env.InputHash)
	assert.Equal(t, "b", bundle.InputHash)
}

func TestStore_SurvivesNewInstance(t *testing.T) {
	root := t.TempDir()

	first, err := state.NewStore()
	require.NoError(t, err)
	require.NoError(t, first.Put(root, domain.StageInfo{StageName: "installer", InputHash: "x"}))

	second, err := state.NewStore()
	require.NoError(t, err)
	got, err := second.Get(root, "installer")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "x", got.InputHash)
}
