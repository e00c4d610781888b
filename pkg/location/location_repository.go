package location

import (
	"context"

	"rotasol-backend/entities"

	"gorm.io/gorm"
)

type (
	LocationRepository interface {
		GetActiveLocations(ctx context.Context) ([]*entities.Location, error)
		GetLocationByID(ctx context.Context, id uint) (*entities.Location, error)
		CreateUserLocation(ctx context.Context, location *entities.UserLocation) error
		GetUserLocations(ctx context.Context, userID string) ([]*entities.UserLocation, error)
	}

	locationRepository struct {
		db *gorm.DB
	}
)

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) GetActiveLocations(ctx context.Context) ([]*entities.Location, error) {
	var locations []*entities.Location
	if err := r.db.WithContext(ctx).
		Where("ativo = ?", true).
		Order("nome").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) GetLocationByID(ctx context.Context, id uint) (*entities.Location, error) {
	var location entities.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) CreateUserLocation(ctx context.Context, location *entities.UserLocation) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) GetUserLocations(ctx context.Context, userID string) ([]*entities.UserLocation, error) {
	var locations []*entities.UserLocation
	if err := r.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("data_registro DESC").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
