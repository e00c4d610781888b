package handlers

import (
	"rotasol-backend/domain"
	"rotasol-backend/internal/api/presenters"
	"rotasol-backend/pkg/location"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LocationHandler interface {
		GetCollectionPoints(c *fiber.Ctx) error
		SaveLocation(c *fiber.Ctx) error
		GetMyLocations(c *fiber.Ctx) error
	}

	locationHandler struct {
		locationService location.LocationService
		validator       *validator.Validate
	}
)

func NewLocationHandler(locationService location.LocationService, validator *validator.Validate) LocationHandler {
	return &locationHandler{
		locationService: locationService,
		validator:       validator,
	}
}

func (h *locationHandler) GetCollectionPoints(c *fiber.Ctx) error {
	points, err := h.locationService.GetCollectionPoints(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCollectionPoints, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"collection_points": points,
	}, fiber.StatusOK, domain.MessageSuccessGetCollectionPoints)
}

func (h *locationHandler) SaveLocation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SaveLocationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveLocation, err)
	}

	result, err := h.locationService.SaveUserLocation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveLocation, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessSaveLocation)
}

func (h *locationHandler) GetMyLocations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	result, err := h.locationService.GetUserLocations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetLocations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"locations": result,
	}, fiber.StatusOK, domain.MessageSuccessGetLocations)
}
