package entities

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID        uuid.UUID         `gorm:"index" json:"donation_id"`
	CharityID         uuid.UUID         `gorm:"index" json:"charity_id"`
	ReservationTime   time.Time         `json:"reservation_time"`
	Status            ReservationStatus `gorm:"type:varchar(16)" json:"status"`
	Notes             string            `json:"notes,omitempty"`
	PickupTime        *time.Time        `json:"pickup_time,omitempty"`
	PickupPersonName  string            `json:"pickup_person_name,omitempty"`
	PickupPersonPhone string            `json:"pickup_person_phone,omitempty"`
	Deleted           bool              `json:"deleted"`

	Donation *Donation `gorm:"foreignKey:DonationID"`
	Charity  *Charity  `gorm:"foreignKey:CharityID"`
	Timestamp
}
