package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateContact = "message sent successfully, we will get back to you soon"
	MessageSuccessGetContacts   = "contact messages retrieved successfully"
	MessageSuccessReplyContact  = "reply sent successfully"

	MessageFailedCreateContact = "failed to send message"
	MessageFailedGetContacts   = "failed to retrieve contact messages"
	MessageFailedReplyContact  = "failed to reply to contact message"

	ErrContactNotFound = errors.New("contact message not found")
)

type (
	ContactRequest struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Subject string `json:"subject" validate:"required"`
		Message string `json:"message" validate:"required"`
	}

	ContactResponse struct {
		ID        uint       `json:"id"`
		Name      string     `json:"name"`
		Email     string     `json:"email"`
		Subject   string     `json:"subject"`
		Message   string     `json:"message"`
		Status    string     `json:"status"`
		Reply     string     `json:"reply,omitempty"`
		CreatedAt time.Time  `json:"created_at"`
		RepliedAt *time.Time `json:"replied_at,omitempty"`
	}

	ReplyContactRequest struct {
		Reply string `json:"reply" validate:"required"`
	}
)
