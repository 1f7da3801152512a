package entities

import (
	"time"
)

// Lead representa um contato capturado pelo formulário público,
// junto com os parâmetros de atribuição de marketing da visita.
type Lead struct {
	ID             string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Nome           string    `json:"nome" gorm:"column:nome;type:varchar(255)"`
	Email          string    `json:"email" gorm:"column:email;type:varchar(255);uniqueIndex:idx_leads_email"`
	Telefone       string    `json:"telefone" gorm:"column:telefone;type:varchar(20)"`
	Cargo          string    `json:"cargo" gorm:"column:cargo;type:varchar(255)"`
	DataNascimento time.Time `json:"data_nascimento" gorm:"column:data_nascimento;type:date"`
	Mensagem       string    `json:"mensagem" gorm:"column:mensagem;type:text"`
	UtmSource      string    `json:"utm_source" gorm:"column:utm_source;type:varchar(255)"`
	UtmMedium      string    `json:"utm_medium" gorm:"column:utm_medium;type:varchar(255)"`
	UtmCampaign    string    `json:"utm_campaign" gorm:"column:utm_campaign;type:varchar(255)"`
	UtmTerm        string    `json:"utm_term" gorm:"column:utm_term;type:varchar(255)"`
	UtmContent     string    `json:"utm_content" gorm:"column:utm_content;type:varchar(255)"`
	Gclid          string    `json:"gclid" gorm:"column:gclid;type:varchar(255)"`
	Fbclid         string    `json:"fbclid" gorm:"column:fbclid;type:varchar(255)"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Lead) TableName() string {
	return "leads"
}

// AdminUser é a identidade administrativa única autenticada pelo painel.
type AdminUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
