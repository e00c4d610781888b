package contact

import (
	"context"
	"errors"
	"fmt"

	"rotasol-backend/domain"
	"rotasol-backend/entities"
	"rotasol-backend/internal/utils/mailing"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	ContactService interface {
		Submit(ctx context.Context, req domain.ContactRequest) (*domain.ContactResponse, error)
		GetContacts(ctx context.Context) ([]*domain.ContactResponse, error)
		Reply(ctx context.Context, id uint, req domain.ReplyContactRequest) error
	}

	contactService struct {
		contactRepository ContactRepository
	}
)

func NewContactService(contactRepository ContactRepository) ContactService {
	return &contactService{contactRepository: contactRepository}
}

func (s *contactService) Submit(ctx context.Context, req domain.ContactRequest) (*domain.ContactResponse, error) {
	contact := &entities.Contact{
		FullName: req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Status:   "pendente",
	}

	if err := s.contactRepository.CreateContact(ctx, contact); err != nil {
		return nil, err
	}

	log.Infof("new contact message from %s (%s) - subject: %s", req.Name, req.Email, req.Subject)

	return toContactResponse(contact), nil
}

func (s *contactService) GetContacts(ctx context.Context) ([]*domain.ContactResponse, error) {
	contacts, err := s.contactRepository.GetContacts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		result = append(result, toContactResponse(c))
	}
	return result, nil
}

// Reply marks the message answered and mails the reply to the sender. The
// mail delivery is best effort: the reply is persisted even when the SMTP
// relay is down.
func (s *contactService) Reply(ctx context.Context, id uint, req domain.ReplyContactRequest) error {
	contact, err := s.contactRepository.GetContactByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrContactNotFound
		}
		return err
	}

	if err := s.contactRepository.MarkReplied(ctx, id, req.Reply); err != nil {
		return err
	}

	subject := fmt.Sprintf("Re: %s", contact.Subject)
	if err := mailing.SendMail(contact.Email, subject, req.Reply); err != nil {
		log.Warnf("failed to mail contact reply to %s: %v", contact.Email, err)
	}

	return nil
}

func toContactResponse(c *entities.Contact) *domain.ContactResponse {
	return &domain.ContactResponse{
		ID:        c.ID,
		Name:      c.FullName,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Status:    c.Status,
		Reply:     c.Reply,
		CreatedAt: c.CreatedAt,
		RepliedAt: c.RepliedAt,
	}
}
