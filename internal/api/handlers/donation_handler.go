package handlers

import (
	"errors"
	"strconv"

	"rotasol-backend/domain"
	"rotasol-backend/internal/api/presenters"
	"rotasol-backend/pkg/donation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		SubmitDonation(c *fiber.Ctx) error
		GetMyDonations(c *fiber.Ctx) error
		GetAllDonations(c *fiber.Ctx) error
		ConfirmDonation(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) SubmitDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.DonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	result, err := h.donationService.Submit(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetMyDonations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	result, err := h.donationService.GetUserDonations(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetAllDonations(c *fiber.Ctx) error {
	result, err := h.donationService.ListDonations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations": result,
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

// ConfirmDonation is the admin confirmation: the record is removed for good
// and the caller gets a summary of what was deleted. The UI asks the human
// for confirmation first; this endpoint does not.
func (h *donationHandler) ConfirmDonation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmDonation, domain.ErrDonationNotFound)
	}

	removed, err := h.donationService.Confirm(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrDonationNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedConfirmDonation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedConfirmDonation, err)
	}

	return presenters.SuccessResponse(c, domain.ConfirmDonationResponse{
		RemovedRecord: *removed,
	}, fiber.StatusOK, domain.MessageSuccessConfirmDonation)
}
