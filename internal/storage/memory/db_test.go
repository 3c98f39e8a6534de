package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/resortrates/internal/catalog"
	"github.com/avstrong/resortrates/internal/logger"
)

func TestDB_LoadAndGet(t *testing.T) {
	ctx := context.Background()
	db := New(Config{L: logger.Discard()})

	resorts, err := catalog.Default("")
	require.NoError(t, err)
	require.NoError(t, db.Load(ctx, resorts))

	aarah, err := db.GetResort(ctx, "Heritance Aarah")
	require.NoError(t, err)
	assert.Equal(t, 3, aarah.MinStay)

	list, err := db.Resorts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Adaaran Prestige Vadoo", list[0].Name)
	assert.Equal(t, "Adaaran Select Hudhuranfushi", list[1].Name)
	assert.Equal(t, "Heritance Aarah", list[2].Name)
}

func TestDB_UnknownResort(t *testing.T) {
	db := New(Config{L: logger.Discard()})
	require.NoError(t, db.Load(context.Background(), nil))

	_, err := db.GetResort(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, catalog.ErrResortNotFound)
}

func TestDB_LoadOnce(t *testing.T) {
	ctx := context.Background()
	db := New(Config{L: logger.Discard()})

	require.NoError(t, db.Load(ctx, []*catalog.Resort{{Name: "A"}}))
	assert.ErrorIs(t, db.Load(ctx, []*catalog.Resort{{Name: "B"}}), ErrAlreadyLoaded)

	_, err := db.GetResort(ctx, "B")
	assert.ErrorIs(t, err, catalog.ErrResortNotFound)
}

func TestDB_RejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	db := New(Config{L: logger.Discard()})

	err := db.Load(ctx, []*catalog.Resort{{Name: "A"}, {Name: "A"}})
	require.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, db.Load(ctx, []*catalog.Resort{{Name: "A"}}))
}
