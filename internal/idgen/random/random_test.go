package random

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_UUID(t *testing.T) {
	g := New()

	a, err := g.GetID(context.Background())
	require.NoError(t, err)

	b, err := g.GetID(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
