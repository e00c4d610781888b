package handlers

import (
	"errors"

	"rotasol-backend/domain"
	"rotasol-backend/internal/api/presenters"
	"rotasol-backend/pkg/report"
	"rotasol-backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		Login(c *fiber.Ctx) error
		GetMe(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		GetUserDetail(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
		GetCharts(c *fiber.Ctx) error
	}

	adminHandler struct {
		userService   user.UserService
		reportService report.ReportService
		validator     *validator.Validate
	}
)

func NewAdminHandler(userService user.UserService, reportService report.ReportService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		userService:   userService,
		reportService: reportService,
		validator:     validator,
	}
}

func (h *adminHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	result, err := h.userService.AdminLogin(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialsInvalid) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *adminHandler) GetMe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	result, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMe, err)
	}

	return presenters.SuccessResponse(c, domain.AdminProfile{
		ID:       result.ID,
		Username: result.Username,
	}, fiber.StatusOK, domain.MessageSuccessGetMe)
}

func (h *adminHandler) GetUsers(c *fiber.Ctx) error {
	result, err := h.userService.GetUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"users": result,
	}, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *adminHandler) GetUserDetail(c *fiber.Ctx) error {
	result, err := h.userService.GetUserDetail(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetUsers, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *adminHandler) GetStats(c *fiber.Ctx) error {
	result, err := h.reportService.Stats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *adminHandler) GetCharts(c *fiber.Ctx) error {
	result, err := h.reportService.Charts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCharts, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetCharts)
}
