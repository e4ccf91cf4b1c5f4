package domain

import (
	"fmt"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateDonation      = "donation created successfully"
	MessageSuccessGetDonations        = "donations retrieved successfully"
	MessageSuccessUpdateDonation      = "donation updated successfully"
	MessageSuccessDeleteDonation      = "donation deleted successfully"
	MessageSuccessGetNearbyDonations  = "nearby donations retrieved successfully"
	MessageSuccessUpdateStatus        = "donation status updated successfully"
	MessageSuccessAddDonationImage    = "donation image added successfully"
	MessageSuccessRemoveDonationImage = "donation image removed successfully"

	MessageFailedCreateDonation      = "failed to create donation"
	MessageFailedGetDonations        = "failed to retrieve donations"
	MessageFailedUpdateDonation      = "failed to update donation"
	MessageFailedDeleteDonation      = "failed to delete donation"
	MessageFailedGetNearbyDonations  = "failed to retrieve nearby donations"
	MessageFailedUpdateStatus        = "failed to update donation status"
	MessageFailedAddDonationImage    = "failed to add donation image"
	MessageFailedRemoveDonationImage = "failed to remove donation image"

	ErrDonationNotFound           = fmt.Errorf("%w: donation not found", ErrNotFound)
	ErrDonationImageNotFound      = fmt.Errorf("%w: donation image not found", ErrNotFound)
	ErrUnauthorizedDonationAccess = fmt.Errorf("%w: caller does not own this donation", ErrForbidden)
	ErrExpiryNotFuture            = fmt.Errorf("%w: expiry date must be in the future", ErrValidation)
	ErrInvalidDonationStatus      = fmt.Errorf("%w: invalid donation status", ErrValidation)
	ErrDonationHasReservations    = fmt.Errorf("%w: donation has active reservations", ErrConflict)
	ErrDonationLocked             = fmt.Errorf("%w: donation cannot be edited in its current state", ErrConflict)
)

type (
	CreateDonationRequest struct {
		FoodType            string                  `json:"food_type" form:"food_type" validate:"required"`
		Description         string                  `json:"description" form:"description" validate:"omitempty"`
		EstimatedServings   int                     `json:"estimated_servings" form:"estimated_servings" validate:"required,min=1"`
		ExpiryDateTime      time.Time               `json:"expiry_date_time" form:"expiry_date_time" validate:"required"`
		RequiresPickup      bool                    `json:"requires_pickup" form:"requires_pickup"`
		SpecialInstructions string                  `json:"special_instructions" form:"special_instructions"`
		ContactPerson       string                  `json:"contact_person" form:"contact_person"`
		ContactPhone        string                  `json:"contact_phone" form:"contact_phone"`
		Images              []*multipart.FileHeader `json:"-" form:"images"`
	}

	UpdateDonationRequest struct {
		FoodType            string    `json:"food_type" validate:"omitempty"`
		Description         string    `json:"description" validate:"omitempty"`
		EstimatedServings   int       `json:"estimated_servings" validate:"omitempty,min=1"`
		ExpiryDateTime      time.Time `json:"expiry_date_time" validate:"required"`
		RequiresPickup      *bool     `json:"requires_pickup"`
		SpecialInstructions string    `json:"special_instructions"`
		ContactPerson       string    `json:"contact_person"`
		ContactPhone        string    `json:"contact_phone"`
	}

	AdminUpdateDonationStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=Available Reserved InProgress Completed Expired Cancelled"`
	}

	AdminDonationFilter struct {
		Status     string `json:"status" validate:"omitempty,oneof=Available Reserved InProgress Completed Expired Cancelled"`
		SearchTerm string `json:"search_term"`
	}

	AddDonationImageRequest struct {
		Image     *multipart.FileHeader `json:"-" form:"image" validate:"required"`
		IsPrimary bool                  `json:"is_primary" form:"is_primary"`
	}

	DonationImageResponse struct {
		ID        string `json:"id"`
		ImagePath string `json:"image_path"`
		IsPrimary bool   `json:"is_primary"`
	}

	DonationResponse struct {
		ID                  string                   `json:"id"`
		RestaurantID        string                   `json:"restaurant_id"`
		RestaurantName      string                   `json:"restaurant_name,omitempty"`
		RestaurantAddress   string                   `json:"restaurant_address,omitempty"`
		FoodType            string                   `json:"food_type"`
		Description         string                   `json:"description,omitempty"`
		EstimatedServings   int                      `json:"estimated_servings"`
		ExpiryDateTime      time.Time                `json:"expiry_date_time"`
		Status              string                   `json:"status"`
		StatusDisplayName   string                   `json:"status_display_name"`
		IsExpired           bool                     `json:"is_expired"`
		IsAvailable         bool                     `json:"is_available"`
		RequiresPickup      bool                     `json:"requires_pickup"`
		SpecialInstructions string                   `json:"special_instructions,omitempty"`
		ContactPerson       string                   `json:"contact_person,omitempty"`
		ContactPhone        string                   `json:"contact_phone,omitempty"`
		DistanceKm          float64                  `json:"distance_km,omitempty"`
		Images              []*DonationImageResponse `json:"images"`
		CreatedAt           time.Time                `json:"created_at"`
		UpdatedAt           time.Time                `json:"updated_at"`
	}
)
