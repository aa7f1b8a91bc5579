package db

import (
	"fmt"
	"log"

	"rental-server/entities"
)

// Models lists every table in dependency order: referenced tables first.
func Models() []interface{} {
	return []interface{}{
		&entities.PropertyType{},
		&entities.User{},
		&entities.Property{},
		&entities.Image{},
		&entities.Review{},
		&entities.Favourite{},
	}
}

// Migrate creates missing tables and brings existing ones up to date.
func Migrate(database Database) error {
	migrator := database.GetDB().Migrator()
	for _, model := range Models() {
		if !migrator.HasTable(model) {
			if err := migrator.CreateTable(model); err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
			log.Printf("Created table for %T", model)
			continue
		}
		if err := migrator.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}

// Drop removes every table, dependents first.
func Drop(database Database) error {
	models := Models()
	migrator := database.GetDB().Migrator()
	for i := len(models) - 1; i >= 0; i-- {
		if err := migrator.DropTable(models[i]); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", models[i], err)
		}
	}
	return nil
}
