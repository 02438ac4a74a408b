package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hoaxify/internal/model"
)

// NewMySQL returns a connected GORM DB instance. Unique-key violations are
// translated to gorm.ErrDuplicatedKey.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema, dropping existing tables first when reset is set.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		// hoaxes reference users, drop them first
		for _, table := range []interface{}{&model.Hoax{}, &model.User{}} {
			if err := db.Migrator().DropTable(table); err != nil {
				return fmt.Errorf("drop table: %w", err)
			}
		}
	}
	if err := db.AutoMigrate(&model.User{}, &model.Hoax{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
