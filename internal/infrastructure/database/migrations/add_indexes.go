package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Listing is always ordered by created_at DESC
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads (created_at)").Error; err != nil {
		return err
	}

	// Exact-match attribution filters
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_leads_utm_source ON leads (utm_source)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_leads_utm_campaign ON leads (utm_campaign)").Error; err != nil {
		return err
	}

	return nil
}
