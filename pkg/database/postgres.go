package database

import (
	"habitly-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the GORM handle. TranslateError is enabled so
// unique-constraint violations come back as gorm.ErrDuplicatedKey and the
// repository can map them to domain errors.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
}
