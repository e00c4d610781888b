package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCollectionPoints = "collection points retrieved successfully"
	MessageSuccessSaveLocation        = "location saved successfully"
	MessageSuccessGetLocations        = "locations retrieved successfully"

	MessageFailedGetCollectionPoints = "failed to retrieve collection points"
	MessageFailedSaveLocation        = "failed to save location"
	MessageFailedGetLocations        = "failed to retrieve locations"

	ErrLocationNotFound = errors.New("location not found")
)

type (
	CollectionPoint struct {
		ID        uint    `json:"id"`
		Name      string  `json:"name"`
		Address   string  `json:"address"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	SaveLocationRequest struct {
		Address   string  `json:"address" validate:"required"`
		Latitude  float64 `json:"latitude" validate:"required"`
		Longitude float64 `json:"longitude" validate:"required"`
	}

	UserLocationResponse struct {
		ID        uint      `json:"id"`
		Address   string    `json:"address"`
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		CreatedAt time.Time `json:"created_at"`
	}
)
