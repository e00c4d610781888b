package inventory

import (
	"context"

	"rotasol-backend/domain"
	"rotasol-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	StockRepository interface {
		AddStock(ctx context.Context, stock *entities.Stock) error
		ListAvailableByValue(ctx context.Context) ([]*domain.NormalizedStockRow, error)
		ListAvailableByQuantity(ctx context.Context) ([]*domain.RawStockRow, error)
		TotalAvailableValue(ctx context.Context) (float64, error)
	}

	stockRepository struct {
		db *gorm.DB
	}
)

func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

// AddStock increments the (location, category) aggregate in one
// INSERT ... ON CONFLICT DO UPDATE statement. The add happens inside the
// store so that concurrent intakes for the same pair cannot lose updates;
// there is no read-modify-write in the application. The unit label is only
// written on first insert, later donations keep the existing label.
func (r *stockRepository) AddStock(ctx context.Context, stock *entities.Stock) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "localizacao_id"}, {Name: "tipo_item"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantidade":    gorm.Expr("estoque.quantidade + excluded.quantidade"),
			"valor_estoque": gorm.Expr("estoque.valor_estoque + excluded.valor_estoque"),
			"atualizado_em": gorm.Expr("now()"),
		}),
	}).Create(stock).Error
}

func (r *stockRepository) ListAvailableByValue(ctx context.Context) ([]*domain.NormalizedStockRow, error) {
	var rows []*domain.NormalizedStockRow

	query := `
		SELECT tipo_item,
		       SUM(valor_estoque) as quantidade_total
		FROM estoque
		WHERE status = 'disponivel'
		GROUP BY tipo_item
		ORDER BY tipo_item
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// ListAvailableByQuantity is the fallback read path used when the normalized
// value column cannot be queried: it sums raw quantities per unit instead.
func (r *stockRepository) ListAvailableByQuantity(ctx context.Context) ([]*domain.RawStockRow, error) {
	var rows []*domain.RawStockRow

	query := `
		SELECT tipo_item,
		       SUM(quantidade) as quantidade_total,
		       unidade_medida
		FROM estoque
		WHERE status = 'disponivel'
		GROUP BY tipo_item, unidade_medida
		ORDER BY tipo_item
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *stockRepository) TotalAvailableValue(ctx context.Context) (float64, error) {
	var result struct {
		Total float64
	}
	query := `
		SELECT COALESCE(SUM(valor_estoque), 0) as total
		FROM estoque
		WHERE status = 'disponivel'
	`
	if err := r.db.WithContext(ctx).Raw(query).Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}
