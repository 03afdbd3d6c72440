package sql

import (
	"finance-tracker/internal/infra/utils"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMemoryORM opens a private sqlite in-memory database. Schemas come from
// gorm auto migration, so the SQL migrations path is not read.
func NewMemoryORM(_ string) (ORM, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.GenerateUUID())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite in-memory db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sqlite connection pool: %w", err)
	}
	// sqlite serializes writers; one connection keeps transactions from
	// failing with "database table is locked".
	sqlDB.SetMaxOpenConns(1)

	return &DB{DB: gormDB, autoMigrationEnabled: true, system: "sqlite"}, nil
}
