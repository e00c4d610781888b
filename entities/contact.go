package entities

import "time"

type Contact struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string     `gorm:"column:nome_completo" json:"full_name"`
	Email     string     `gorm:"column:email" json:"email"`
	Subject   string     `gorm:"column:assunto" json:"subject"`
	Message   string     `gorm:"column:mensagem" json:"message"`
	Status    string     `gorm:"column:status;default:pendente" json:"status"` // pendente or respondido
	Reply     string     `gorm:"column:resposta" json:"reply,omitempty"`
	CreatedAt time.Time  `gorm:"column:data_registro;autoCreateTime" json:"created_at"`
	RepliedAt *time.Time `gorm:"column:data_resposta" json:"replied_at,omitempty"`
}

func (Contact) TableName() string {
	return "contatos"
}
