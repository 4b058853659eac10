package database

import (
	"heptabet_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs the schema migrations for every persisted model. The uuid
// extension backs the uuid_generate_v4() column defaults.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Prediction{},
		&models.BlogPost{},
		&models.PaymentTransaction{},
	)
}
