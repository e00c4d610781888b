package handlers

import (
	"errors"
	"strconv"

	"rotasol-backend/domain"
	"rotasol-backend/internal/api/presenters"
	"rotasol-backend/pkg/contact"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ContactHandler interface {
		SubmitContact(c *fiber.Ctx) error
		GetContacts(c *fiber.Ctx) error
		ReplyContact(c *fiber.Ctx) error
	}

	contactHandler struct {
		contactService contact.ContactService
		validator      *validator.Validate
	}
)

func NewContactHandler(contactService contact.ContactService, validator *validator.Validate) ContactHandler {
	return &contactHandler{
		contactService: contactService,
		validator:      validator,
	}
}

func (h *contactHandler) SubmitContact(c *fiber.Ctx) error {
	req := new(domain.ContactRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateContact, err)
	}

	result, err := h.contactService.Submit(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateContact, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusCreated, domain.MessageSuccessCreateContact)
}

func (h *contactHandler) GetContacts(c *fiber.Ctx) error {
	result, err := h.contactService.GetContacts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetContacts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"contacts": result,
	}, fiber.StatusOK, domain.MessageSuccessGetContacts)
}

func (h *contactHandler) ReplyContact(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplyContact, domain.ErrContactNotFound)
	}

	req := new(domain.ReplyContactRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplyContact, err)
	}

	if err := h.contactService.Reply(c.Context(), uint(id), *req); err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedReplyContact, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedReplyContact, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReplyContact)
}
