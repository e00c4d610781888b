package entities

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:nome" json:"name"`
	Address   string    `gorm:"column:endereco" json:"address"`
	Latitude  float64   `gorm:"column:latitude" json:"latitude"`
	Longitude float64   `gorm:"column:longitude" json:"longitude"`
	Active    bool      `gorm:"column:ativo;default:true" json:"active"`
	CreatedAt time.Time `gorm:"column:data_criacao;autoCreateTime" json:"created_at"`

	Donations []*Donation `gorm:"foreignKey:LocationID" json:"donations,omitempty"`
}

func (Location) TableName() string {
	return "localizacoes"
}

// UserLocation is an address a donor saved for themselves, unrelated to the
// collection points above.
type UserLocation struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"column:usuario_id;type:uuid" json:"user_id"`
	Address   string    `gorm:"column:endereco" json:"address"`
	Latitude  float64   `gorm:"column:latitude" json:"latitude"`
	Longitude float64   `gorm:"column:longitude" json:"longitude"`
	CreatedAt time.Time `gorm:"column:data_registro;autoCreateTime" json:"created_at"`
}

func (UserLocation) TableName() string {
	return "localizacoes_usuario"
}
