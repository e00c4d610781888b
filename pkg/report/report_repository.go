package report

import (
	"context"

	"rotasol-backend/domain"
	"rotasol-backend/entities"

	"gorm.io/gorm"
)

type (
	ReportRepository interface {
		CountUsers(ctx context.Context) (int64, error)
		CountDonations(ctx context.Context) (int64, error)
		DonationsByMonth(ctx context.Context) ([]*domain.MonthBucket, error)
		DonationsByCategory(ctx context.Context) ([]*domain.CategoryBucket, error)
		NewUsersByMonth(ctx context.Context) ([]*domain.MonthBucket, error)
		DonationsByLocation(ctx context.Context) ([]*domain.LocationBucket, error)
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reportRepository) CountDonations(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Donation{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reportRepository) DonationsByMonth(ctx context.Context) ([]*domain.MonthBucket, error) {
	var buckets []*domain.MonthBucket

	query := `
		SELECT to_char(data_doacao, 'YYYY-MM') as mes,
		       COUNT(*) as quantidade,
		       COALESCE(SUM(valor_estoque), 0) as valor
		FROM doacoes
		WHERE data_doacao >= now() - INTERVAL '6 months'
		GROUP BY to_char(data_doacao, 'YYYY-MM')
		ORDER BY mes
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&buckets).Error; err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *reportRepository) DonationsByCategory(ctx context.Context) ([]*domain.CategoryBucket, error) {
	var buckets []*domain.CategoryBucket

	query := `
		SELECT tipo_doacao,
		       COUNT(*) as quantidade,
		       COALESCE(SUM(valor_estoque), 0) as valor
		FROM doacoes
		GROUP BY tipo_doacao
		ORDER BY valor DESC
		LIMIT 6
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&buckets).Error; err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *reportRepository) NewUsersByMonth(ctx context.Context) ([]*domain.MonthBucket, error) {
	var buckets []*domain.MonthBucket

	query := `
		SELECT to_char(data_criacao, 'YYYY-MM') as mes,
		       COUNT(*) as quantidade
		FROM usuarios
		WHERE data_criacao >= now() - INTERVAL '6 months'
		GROUP BY to_char(data_criacao, 'YYYY-MM')
		ORDER BY mes
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&buckets).Error; err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *reportRepository) DonationsByLocation(ctx context.Context) ([]*domain.LocationBucket, error) {
	var buckets []*domain.LocationBucket

	query := `
		SELECT l.nome as local,
		       COUNT(d.id) as quantidade_doacoes,
		       COALESCE(SUM(d.valor_estoque), 0) as valor_total
		FROM doacoes d
		JOIN localizacoes l ON d.localizacao_id = l.id
		GROUP BY l.id, l.nome
		ORDER BY valor_total DESC
		LIMIT 5
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&buckets).Error; err != nil {
		return nil, err
	}
	return buckets, nil
}
