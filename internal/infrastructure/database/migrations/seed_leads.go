package migrations

import (
	"time"

	"github.com/caions/lead/internal/domain/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedLeads popula a tabela com alguns leads de exemplo quando ela está
// vazia, para o painel não abrir em branco em ambiente novo.
func SeedLeads(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Lead{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	seeds := []entities.Lead{
		{
			ID:             uuid.New().String(),
			Nome:           "João Silva",
			Email:          "joao.silva@email.com",
			Telefone:       "11999887766",
			Cargo:          "Desenvolvedor",
			DataNascimento: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
			Mensagem:       "Interessado em conhecer mais sobre os produtos da empresa. Gostaria de agendar uma reunião para discutir possibilidades de parceria.",
			UtmSource:      "google",
			UtmMedium:      "cpc",
			UtmCampaign:    "produtos_2024",
			UtmTerm:        "desenvolvimento",
			UtmContent:     "banner_principal",
			Gclid:          "CjwKCAjw123456789",
			Fbclid:         "fb.1.1234567890123456",
			CreatedAt:      now.AddDate(0, 0, -5),
			UpdatedAt:      now.AddDate(0, 0, -5),
		},
		{
			ID:             uuid.New().String(),
			Nome:           "Maria Santos",
			Email:          "maria.santos@empresa.com",
			Telefone:       "11988776655",
			Cargo:          "Gerente de Marketing",
			DataNascimento: time.Date(1985, 8, 22, 0, 0, 0, 0, time.UTC),
			Mensagem:       "Nossa empresa está buscando soluções inovadoras para aumentar nossa presença digital. Gostaria de saber mais sobre os serviços oferecidos.",
			UtmSource:      "facebook",
			UtmMedium:      "social",
			UtmCampaign:    "marketing_digital",
			UtmTerm:        "soluções",
			UtmContent:     "post_instagram",
			Fbclid:         "fb.1.9876543210987654",
			CreatedAt:      now.AddDate(0, 0, -3),
			UpdatedAt:      now.AddDate(0, 0, -3),
		},
		{
			ID:             uuid.New().String(),
			Nome:           "Pedro Oliveira",
			Email:          "pedro.oliveira@startup.com",
			Telefone:       "11977665544",
			Cargo:          "CEO",
			DataNascimento: time.Date(1982, 12, 10, 0, 0, 0, 0, time.UTC),
			Mensagem:       "Estamos em fase de expansão e precisamos de parceiros estratégicos. Interessado em conhecer as soluções da empresa.",
			UtmSource:      "linkedin",
			UtmMedium:      "social",
			UtmCampaign:    "parcerias_2024",
			UtmTerm:        "expansão",
			UtmContent:     "artigo_linkedin",
			CreatedAt:      now.AddDate(0, 0, -1),
			UpdatedAt:      now.AddDate(0, 0, -1),
		},
	}

	return db.Create(&seeds).Error
}
