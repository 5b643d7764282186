package postgres

import (
	"context"

	"sosradar/internal/domain/entity"
	"sosradar/internal/domain/repository"
	"sosradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements repository.LocationRepository on PostgreSQL.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Upsert writes the user's row, replacing any existing one. The replace is
// unconditional; the caller-supplied timestamp is stored as given, so an
// older timestamp overwrites a newer row just like any other update.
func (repo *locationRepository) Upsert(ctx context.Context, location *entity.UserLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(locationM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert user location")
	}

	return nil
}

// FindByUserID retrieves a user's latest location.
func (repo *locationRepository) FindByUserID(ctx context.Context, userID string) (*entity.UserLocation, error) {
	var locationM model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by user ID")
	}

	return toLocationDomain(&locationM), nil
}

// Snapshot returns all stored locations. The registered population is small
// enough that a full scan per alert is cheaper than maintaining a spatial
// index in the database.
func (repo *locationRepository) Snapshot(ctx context.Context) ([]entity.UserLocation, error) {
	var locationModels []*model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to snapshot user locations")
	}

	locations := make([]entity.UserLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, *toLocationDomain(locationM))
	}

	return locations, nil
}

// Count returns the number of registered users with a stored location.
func (repo *locationRepository) Count(ctx context.Context) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserLocationModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count user locations")
	}

	return int(count), nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	return &entity.UserLocation{
		UserID:     data.UserID,
		ExternalID: data.ExternalID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		DeviceType: data.DeviceType,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		UserID:     data.UserID,
		ExternalID: data.ExternalID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		DeviceType: data.DeviceType,
		UpdatedAt:  data.UpdatedAt,
	}
}
