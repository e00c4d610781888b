package contact

import (
	"context"
	"time"

	"rotasol-backend/entities"

	"gorm.io/gorm"
)

type (
	ContactRepository interface {
		CreateContact(ctx context.Context, contact *entities.Contact) error
		GetContactByID(ctx context.Context, id uint) (*entities.Contact, error)
		GetContacts(ctx context.Context) ([]*entities.Contact, error)
		MarkReplied(ctx context.Context, id uint, reply string) error
	}

	contactRepository struct {
		db *gorm.DB
	}
)

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) CreateContact(ctx context.Context, contact *entities.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) GetContactByID(ctx context.Context, id uint) (*entities.Contact, error) {
	var contact entities.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) GetContacts(ctx context.Context) ([]*entities.Contact, error) {
	var contacts []*entities.Contact
	if err := r.db.WithContext(ctx).
		Order("data_registro DESC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) MarkReplied(ctx context.Context, id uint, reply string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.Contact{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        "respondido",
			"resposta":      reply,
			"data_resposta": now,
		}).Error
}
