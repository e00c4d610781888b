package location

import (
	"context"

	"rotasol-backend/domain"
	"rotasol-backend/entities"

	"github.com/google/uuid"
)

type (
	LocationService interface {
		GetCollectionPoints(ctx context.Context) ([]*domain.CollectionPoint, error)
		SaveUserLocation(ctx context.Context, req domain.SaveLocationRequest, userID string) (*domain.UserLocationResponse, error)
		GetUserLocations(ctx context.Context, userID string) ([]*domain.UserLocationResponse, error)
	}

	locationService struct {
		locationRepository LocationRepository
	}
)

func NewLocationService(locationRepository LocationRepository) LocationService {
	return &locationService{locationRepository: locationRepository}
}

func (s *locationService) GetCollectionPoints(ctx context.Context) ([]*domain.CollectionPoint, error) {
	locations, err := s.locationRepository.GetActiveLocations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.CollectionPoint, 0, len(locations))
	for _, loc := range locations {
		result = append(result, &domain.CollectionPoint{
			ID:        loc.ID,
			Name:      loc.Name,
			Address:   loc.Address,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		})
	}
	return result, nil
}

func (s *locationService) SaveUserLocation(ctx context.Context, req domain.SaveLocationRequest, userID string) (*domain.UserLocationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	location := &entities.UserLocation{
		UserID:    userUUID,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := s.locationRepository.CreateUserLocation(ctx, location); err != nil {
		return nil, err
	}

	return &domain.UserLocationResponse{
		ID:        location.ID,
		Address:   location.Address,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		CreatedAt: location.CreatedAt,
	}, nil
}

func (s *locationService) GetUserLocations(ctx context.Context, userID string) ([]*domain.UserLocationResponse, error) {
	locations, err := s.locationRepository.GetUserLocations(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.UserLocationResponse, 0, len(locations))
	for _, loc := range locations {
		result = append(result, &domain.UserLocationResponse{
			ID:        loc.ID,
			Address:   loc.Address,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			CreatedAt: loc.CreatedAt,
		})
	}
	return result, nil
}
