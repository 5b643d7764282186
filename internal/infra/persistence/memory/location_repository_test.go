package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sosradar/internal/domain/entity"
	"sosradar/internal/domain/repository"
)

func TestLocationRepository_UpsertAndFind(t *testing.T) {
	repo := NewLocationRepository()
	ctx := context.Background()

	now := time.Now()
	err := repo.Upsert(ctx, &entity.UserLocation{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	loc, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 48.1486, loc.Latitude)
	assert.Equal(t, 17.1077, loc.Longitude)
}

func TestLocationRepository_FindUnknownUser(t *testing.T) {
	repo := NewLocationRepository()

	_, err := repo.FindByUserID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)
}

func TestLocationRepository_EveryWriteApplied(t *testing.T) {
	repo := NewLocationRepository()
	ctx := context.Background()

	base := time.Now()
	require.NoError(t, repo.Upsert(ctx, &entity.UserLocation{
		UserID:    "user-1",
		Latitude:  10.0,
		Longitude: 10.0,
		UpdatedAt: base,
	}))

	// A newer write replaces the stored position.
	require.NoError(t, repo.Upsert(ctx, &entity.UserLocation{
		UserID:    "user-1",
		Latitude:  20.0,
		Longitude: 20.0,
		UpdatedAt: base.Add(time.Second),
	}))

	loc, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, loc.Latitude)

	// The user owns their record, so a write carrying an older timestamp
	// is still applied.
	require.NoError(t, repo.Upsert(ctx, &entity.UserLocation{
		UserID:    "user-1",
		Latitude:  5.0,
		Longitude: 5.0,
		UpdatedAt: base.Add(-time.Minute),
	}))

	loc, err = repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, loc.Latitude)
}

func TestLocationRepository_SnapshotIsolation(t *testing.T) {
	repo := NewLocationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.UserLocation{
		UserID:    "user-1",
		Latitude:  1.0,
		Longitude: 1.0,
		UpdatedAt: time.Now(),
	}))

	snapshot, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	// Mutating the snapshot must not leak into the store.
	snapshot[0].Latitude = 99.0
	loc, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, loc.Latitude)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
