package impl

import (
	"context"
	"strings"
	"time"

	"sosradar/config"
	"sosradar/internal/domain/entity"
	domainerrors "sosradar/internal/domain/errors"
	"sosradar/internal/domain/repository"
	"sosradar/internal/domain/service"
	"sosradar/internal/errors"
	"sosradar/internal/usecase"
)

type locationService struct {
	locationRepo repository.LocationRepository
	geoIndex     service.GeoIndex
	config       *config.Config
}

// NewLocationService creates a new location service instance
func NewLocationService(locationRepo repository.LocationRepository, geoIndex service.GeoIndex, cfg *config.Config) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		geoIndex:     geoIndex,
		config:       cfg,
	}
}

// UpdateLocation records a user's latest position
func (s *locationService) UpdateLocation(ctx context.Context, input *usecase.UpdateLocationInput) (*entity.UserLocation, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.ErrInvalidUserID
	}
	if !entity.ValidCoordinates(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	externalID := input.ExternalID
	if externalID == "" {
		externalID = input.UserID
	}

	location := &entity.UserLocation{
		UserID:     input.UserID,
		ExternalID: externalID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		DeviceType: input.DeviceType,
		UpdatedAt:  timestamp,
	}

	if err := s.locationRepo.Upsert(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to upsert location")
	}

	return location, nil
}

// GetLocation returns the latest stored position for a user
func (s *locationService) GetLocation(ctx context.Context, userID string) (*entity.UserLocation, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidUserID
	}

	location, err := s.locationRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return location, nil
}

// NearbyUsers returns users within the query radius, nearest first
func (s *locationService) NearbyUsers(ctx context.Context, input *usecase.NearbyQueryInput) ([]service.NearbyUser, error) {
	if !entity.ValidCoordinates(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	radius := input.RadiusMeters
	if radius <= 0 {
		radius = float64(s.config.Alert.DefaultRadiusMeters)
	}
	if radius > float64(s.config.Alert.MaxRadiusMeters) {
		return nil, domainerrors.ErrInvalidRadius
	}

	nearby, err := s.geoIndex.NearbyUsers(ctx, input.Latitude, input.Longitude, radius, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query nearby users")
	}

	return nearby, nil
}
