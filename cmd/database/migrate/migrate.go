package migration

import (
	"fmt"
	"log"

	"rotasol-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Location{}); err != nil {
		log.Fatalf("Error migrating location database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Stock{}); err != nil {
		log.Fatalf("Error migrating stock database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserLocation{}); err != nil {
		log.Fatalf("Error migrating user location database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Contact{}); err != nil {
		log.Fatalf("Error migrating contact database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
