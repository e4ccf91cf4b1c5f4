package entities

import (
	"github.com/google/uuid"
)

type Restaurant struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID             uuid.UUID      `gorm:"uniqueIndex" json:"user_id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	Address            string         `json:"address"`
	Latitude           float64        `json:"latitude"`
	Longitude          float64        `json:"longitude"`
	LicenseDocument    string         `json:"license_document,omitempty"`
	CommercialRegister string         `json:"commercial_register,omitempty"`
	Status             ApprovalStatus `gorm:"type:varchar(16)" json:"status"`
	RejectionReason    string         `json:"rejection_reason,omitempty"`
	IsActive           bool           `json:"is_active"`

	User      *User       `gorm:"foreignKey:UserID"`
	Donations []*Donation `gorm:"foreignKey:RestaurantID"`
	Timestamp
}
