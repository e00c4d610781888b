package handlers

import (
	"rotasol-backend/domain"
	"rotasol-backend/internal/api/presenters"
	"rotasol-backend/pkg/inventory"

	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		GetInventory(c *fiber.Ctx) error
		GetConversions(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService) InventoryHandler {
	return &inventoryHandler{inventoryService: inventoryService}
}

func (h *inventoryHandler) GetInventory(c *fiber.Ctx) error {
	summary, err := h.inventoryService.ListAvailable(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetInventory, err)
	}

	return presenters.SuccessResponse(c, summary, fiber.StatusOK, domain.MessageSuccessGetInventory)
}

func (h *inventoryHandler) GetConversions(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.inventoryService.ConversionTable(), fiber.StatusOK, domain.MessageSuccessGetConversions)
}
