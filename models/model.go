package models

import (
	"fmt"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Member{},
		&Account{},
		&Transaction{},
		&ExchangeRate{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}
