package config

import (
	"log"

	"charity-foundation-api/models"
)

// MigrateDB creates or updates the schema for every record type, including
// the expense_report_photos join table.
func MigrateDB() {
	err := DB.AutoMigrate(
		&models.AdminUser{},
		&models.FoundationInfo{},
		&models.News{},
		&models.FundraisingGoal{},
		&models.Donation{},
		&models.ExpenseReport{},
		&models.ExpensePhoto{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database migration completed")
}
