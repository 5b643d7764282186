package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "sosradar/internal/domain/errors"
	"sosradar/internal/domain/service"
	"sosradar/internal/infra/geo"
	"sosradar/internal/infra/persistence/memory"
	mockSvc "sosradar/internal/mocks/service"
	"sosradar/internal/usecase"
)

func createTestLocationService(t *testing.T) (usecase.LocationUsecase, *memory.LocationRepository) {
	repo := memory.NewLocationRepository()

	return NewLocationService(repo, geo.NewIndex(repo), testAlertConfig()), repo
}

func TestLocationService_UpdateAndGet(t *testing.T) {
	locationUC, _ := createTestLocationService(t)
	ctx := context.Background()

	loc, err := locationUC.UpdateLocation(ctx, &usecase.UpdateLocationInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", loc.ExternalID)
	assert.False(t, loc.UpdatedAt.IsZero())

	stored, err := locationUC.GetLocation(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 48.1486, stored.Latitude)
}

func TestLocationService_UpdateLocation_InvalidCoordinates(t *testing.T) {
	locationUC, _ := createTestLocationService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"latitude too high", 200.0, 17.1077},
		{"latitude too low", -90.1, 17.1077},
		{"longitude too high", 48.1486, 180.5},
		{"longitude too low", 48.1486, -181.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := locationUC.UpdateLocation(ctx, &usecase.UpdateLocationInput{
				UserID:    "user-1",
				Latitude:  tc.lat,
				Longitude: tc.lon,
			})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
		})
	}
}

func TestLocationService_UpdateLocation_EmptyUserID(t *testing.T) {
	locationUC, _ := createTestLocationService(t)

	_, err := locationUC.UpdateLocation(context.Background(), &usecase.UpdateLocationInput{
		UserID:    "  ",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUserID)
}

func TestLocationService_UpdateLocation_OlderTimestampApplied(t *testing.T) {
	locationUC, _ := createTestLocationService(t)
	ctx := context.Background()

	base := time.Now()
	_, err := locationUC.UpdateLocation(ctx, &usecase.UpdateLocationInput{
		UserID:    "user-1",
		Latitude:  10.0,
		Longitude: 10.0,
		Timestamp: base,
	})
	require.NoError(t, err)

	// Each user owns their own record, so a client resending an older
	// reading still replaces the stored position.
	_, err = locationUC.UpdateLocation(ctx, &usecase.UpdateLocationInput{
		UserID:    "user-1",
		Latitude:  20.0,
		Longitude: 20.0,
		Timestamp: base.Add(-time.Minute),
	})
	require.NoError(t, err)

	stored, err := locationUC.GetLocation(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, stored.Latitude)
}

func TestLocationService_GetLocation_Unknown(t *testing.T) {
	locationUC, _ := createTestLocationService(t)

	_, err := locationUC.GetLocation(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestLocationService_NearbyUsers_DefaultRadius(t *testing.T) {
	repo := memory.NewLocationRepository()
	geoIndex := mockSvc.NewMockGeoIndex(t)
	locationUC := NewLocationService(repo, geoIndex, testAlertConfig())
	ctx := context.Background()

	geoIndex.EXPECT().
		NearbyUsers(ctx, 48.1486, 17.1077, 200.0, "user-1").
		Return([]service.NearbyUser{}, nil)

	_, err := locationUC.NearbyUsers(ctx, &usecase.NearbyQueryInput{
		UserID:    "user-1",
		Latitude:  48.1486,
		Longitude: 17.1077,
	})
	require.NoError(t, err)
}

func TestLocationService_NearbyUsers_RadiusAboveMaximum(t *testing.T) {
	locationUC, _ := createTestLocationService(t)

	_, err := locationUC.NearbyUsers(context.Background(), &usecase.NearbyQueryInput{
		UserID:       "user-1",
		Latitude:     48.1486,
		Longitude:    17.1077,
		RadiusMeters: 50000,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
}
