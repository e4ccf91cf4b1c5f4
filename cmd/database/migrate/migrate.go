package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"foodbridge/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Restaurant{}); err != nil {
		log.Fatalf("Error migrating restaurant database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Charity{}); err != nil {
		log.Fatalf("Error migrating charity database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonationImage{}); err != nil {
		log.Fatalf("Error migrating donation image database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Reservation{}); err != nil {
		log.Fatalf("Error migrating reservation database: %v", err)
		return err
	}

	// One live reservation per donation, enforced at the storage level as a
	// backstop behind the row-locking transaction in the reservation
	// repository.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_one_active_per_donation
		ON reservations (donation_id)
		WHERE status <> 'Cancelled' AND deleted = false;`)

	fmt.Println("Database migration complete")
	return nil
}
