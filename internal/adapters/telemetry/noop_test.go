package telemetry_test

import (
	"context"
	"testing"

	"github.com/notmyrealname/apbuild/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoop(t *testing.T) {
	n := telemetry.NewNoop()

	ctx, vertex := n.Record(context.Background(), "env")
	require.NotNil(t, vertex)
	assert.Equal(t, context.Background(), ctx)

	_, err := vertex.Stdout().Write([]byte("ignored"))
	assert.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("ignored"))
	assert.NoError(t, err)

	vertex.Cached()
	vertex.Complete(nil)
	assert.NoError(t, n.Close())
}
