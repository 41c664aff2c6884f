package psql

import (
	"context"
	"fmt"
	"notebox/notebox/config"
	"notebox/notebox/sources/psql/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	DB *gorm.DB
}

// Partial indexes backing the tenant-scoped access paths. The deleted = false
// predicate is repeated in every query; these only make those scans cheap.
var noteIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_note_account_active
		ON note ("idAccount")
		WHERE deleted = false`,
	`CREATE INDEX IF NOT EXISTS idx_note_account_user_active
		ON note ("idAccount", "idUser")
		INCLUDE ("title", "dateCreated", "dateModified")
		WHERE deleted = false`,
	`CREATE INDEX IF NOT EXISTS idx_note_account_created_active
		ON note ("idAccount", "dateCreated" DESC)
		INCLUDE ("idUser", "title")
		WHERE deleted = false`,
}

func NewDatabase(ctx context.Context, cfg config.Config) (*Database, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}

	return &Database{DB: db}, nil
}

// Migrate creates the schema and the partial indexes. Order matters: account
// before user before note, so the foreign keys resolve.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&models.Account{},
		&models.User{},
		&models.Note{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}

	for _, ddl := range noteIndexes {
		if err := db.WithContext(ctx).Exec(ddl).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

func (db *Database) Close() {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
