package entities

import (
	"github.com/google/uuid"
)

type Charity struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID      `gorm:"uniqueIndex" json:"user_id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Address         string         `json:"address"`
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
	Capacity        int            `json:"capacity"`
	Type            CharityType    `gorm:"type:varchar(16)" json:"type"`
	LicenseDocument string         `json:"license_document,omitempty"`
	ProofDocument   string         `json:"proof_document,omitempty"`
	Status          ApprovalStatus `gorm:"type:varchar(16)" json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	IsActive        bool           `json:"is_active"`

	User         *User          `gorm:"foreignKey:UserID"`
	Reservations []*Reservation `gorm:"foreignKey:CharityID"`
	Timestamp
}
