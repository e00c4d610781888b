package entities

import "time"

// Stock is the denormalized running total per (location, category). It is
// incremented by intake and only ever read elsewhere; rows are never deleted.
type Stock struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LocationID uint      `gorm:"column:localizacao_id;uniqueIndex:idx_estoque_local_item" json:"location_id"`
	Category   string    `gorm:"column:tipo_item;uniqueIndex:idx_estoque_local_item" json:"category"`
	Quantity   float64   `gorm:"column:quantidade" json:"quantity"`
	Unit       string    `gorm:"column:unidade_medida" json:"unit"`
	StockValue float64   `gorm:"column:valor_estoque" json:"stock_value"`
	Status     string    `gorm:"column:status;default:disponivel" json:"status"`
	UpdatedAt  time.Time `gorm:"column:atualizado_em;autoUpdateTime" json:"updated_at"`
}

func (Stock) TableName() string {
	return "estoque"
}
