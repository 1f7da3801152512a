package migrations

import (
	"github.com/caions/lead/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate cria a tabela de leads com o índice único de email.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(&entities.Lead{})
}
