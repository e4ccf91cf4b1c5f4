package entities

import (
	"time"

	"github.com/google/uuid"
)

type Donation struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID        uuid.UUID      `gorm:"index" json:"restaurant_id"`
	FoodType            string         `json:"food_type"`
	Description         string         `json:"description"`
	EstimatedServings   int            `json:"estimated_servings"`
	ExpiryDateTime      time.Time      `json:"expiry_date_time"`
	Status              DonationStatus `gorm:"type:varchar(16)" json:"status"`
	RequiresPickup      bool           `json:"requires_pickup"`
	SpecialInstructions string         `json:"special_instructions,omitempty"`
	ContactPerson       string         `json:"contact_person,omitempty"`
	ContactPhone        string         `json:"contact_phone,omitempty"`
	Deleted             bool           `gorm:"index" json:"deleted"`

	Restaurant   *Restaurant      `gorm:"foreignKey:RestaurantID"`
	Images       []*DonationImage `gorm:"foreignKey:DonationID"`
	Reservations []*Reservation   `gorm:"foreignKey:DonationID"`
	Timestamp
}

// IsExpired is computed on read; no background sweeper flips expired
// donations, so queries must never trust Status alone.
func (d *Donation) IsExpired(now time.Time) bool {
	return d.ExpiryDateTime.Before(now)
}

func (d *Donation) IsAvailable(now time.Time) bool {
	return d.Status == DonationAvailable && !d.IsExpired(now)
}

type DonationImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID uuid.UUID `gorm:"index" json:"donation_id"`
	ImagePath  string    `json:"image_path"`
	IsPrimary  bool      `json:"is_primary"`
	Deleted    bool      `json:"deleted"`

	Donation *Donation `gorm:"foreignKey:DonationID"`
	Timestamp
}
