package entities

import (
	"time"

	"github.com/google/uuid"
)

// Donation is one intake event. StockValue is computed once at creation from
// the conversion table and never recomputed; rows are removed (not updated)
// when an admin confirms the donation.
type Donation struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uuid.UUID `gorm:"column:usuario_id;type:uuid" json:"user_id"`
	Category   string    `gorm:"column:tipo_doacao" json:"category"`
	Quantity   float64   `gorm:"column:quantidade" json:"quantity"`
	Unit       string    `gorm:"column:unidade_medida" json:"unit"`
	LocationID uint      `gorm:"column:localizacao_id" json:"location_id"`
	Notes      string    `gorm:"column:observacoes" json:"notes"`
	Status     string    `gorm:"column:status;default:pendente" json:"status"`
	StockValue float64   `gorm:"column:valor_estoque" json:"stock_value"`
	CreatedAt  time.Time `gorm:"column:data_doacao;autoCreateTime" json:"created_at"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (Donation) TableName() string {
	return "doacoes"
}
