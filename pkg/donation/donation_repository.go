package donation

import (
	"context"

	"rotasol-backend/entities"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id uint) (*entities.Donation, error)
		DeleteDonation(ctx context.Context, id uint) error
		GetUserDonations(ctx context.Context, userID string) ([]*entities.Donation, error)
		GetUserMonthTotals(ctx context.Context, userID string) (int64, float64, error)
		GetAllDonations(ctx context.Context) ([]*entities.Donation, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id uint) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Donation{}).Error
}

func (r *donationRepository) GetUserDonations(ctx context.Context, userID string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Location").
		Where("usuario_id = ?", userID).
		Order("data_doacao DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// GetUserMonthTotals counts the caller's donations in the current calendar
// month and sums their raw quantities.
func (r *donationRepository) GetUserMonthTotals(ctx context.Context, userID string) (int64, float64, error) {
	var result struct {
		Total    int64
		Quantity float64
	}

	query := `
		SELECT COUNT(*) as total, COALESCE(SUM(quantidade), 0) as quantity
		FROM doacoes
		WHERE usuario_id = ?
		  AND date_trunc('month', data_doacao) = date_trunc('month', now())
	`

	if err := r.db.WithContext(ctx).Raw(query, userID).Scan(&result).Error; err != nil {
		return 0, 0, err
	}

	return result.Total, result.Quantity, nil
}

func (r *donationRepository) GetAllDonations(ctx context.Context) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Location").
		Order("data_doacao DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
