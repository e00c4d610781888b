package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FullName    string     `gorm:"column:nome_completo" json:"full_name"`
	Email       string     `gorm:"column:email;uniqueIndex" json:"email"`
	Username    string     `gorm:"column:usuario;uniqueIndex" json:"username"`
	Password    string     `gorm:"column:senha" json:"-"`
	Role        string     `gorm:"column:tipo;default:doador" json:"role"` // doador or admin
	Active      bool       `gorm:"column:ativo;default:true" json:"active"`
	PhotoURL    string     `gorm:"column:foto_perfil" json:"photo_url,omitempty"`
	LastLoginAt *time.Time `gorm:"column:ultimo_login" json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:data_criacao;autoCreateTime" json:"created_at"`

	Donations []*Donation `gorm:"foreignKey:UserID" json:"donations,omitempty"`
}

func (User) TableName() string {
	return "usuarios"
}
