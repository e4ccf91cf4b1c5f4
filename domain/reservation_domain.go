package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessCreateReservation   = "reservation created successfully"
	MessageSuccessCancelReservation   = "reservation cancelled successfully"
	MessageSuccessCompleteReservation = "reservation completed successfully"
	MessageSuccessGetReservations     = "reservations retrieved successfully"

	MessageFailedCreateReservation   = "failed to create reservation"
	MessageFailedCancelReservation   = "failed to cancel reservation"
	MessageFailedCompleteReservation = "failed to complete reservation"
	MessageFailedGetReservations     = "failed to retrieve reservations"

	ErrReservationNotFound             = fmt.Errorf("%w: reservation not found", ErrNotFound)
	ErrDonationNotAvailable            = fmt.Errorf("%w: donation not available", ErrConflict)
	ErrDuplicateReservation            = fmt.Errorf("%w: duplicate reservation", ErrConflict)
	ErrReservationTerminal             = fmt.Errorf("%w: reservation already completed or cancelled", ErrConflict)
	ErrUnauthorizedReservationAccess   = fmt.Errorf("%w: caller does not own this reservation", ErrForbidden)
	ErrUnauthorizedReservationComplete = fmt.Errorf("%w: caller does not own the donation for this reservation", ErrForbidden)
)

type (
	CreateReservationRequest struct {
		DonationID        string     `json:"donation_id" validate:"required,uuid"`
		Notes             string     `json:"notes" validate:"omitempty"`
		PickupTime        *time.Time `json:"pickup_time"`
		PickupPersonName  string     `json:"pickup_person_name"`
		PickupPersonPhone string     `json:"pickup_person_phone"`
	}

	ReservationResponse struct {
		ID                string     `json:"id"`
		DonationID        string     `json:"donation_id"`
		CharityID         string     `json:"charity_id"`
		ReservationTime   time.Time  `json:"reservation_time"`
		Status            string     `json:"status"`
		StatusDisplayName string     `json:"status_display_name"`
		Notes             string     `json:"notes,omitempty"`
		PickupTime        *time.Time `json:"pickup_time,omitempty"`
		PickupPersonName  string     `json:"pickup_person_name,omitempty"`
		PickupPersonPhone string     `json:"pickup_person_phone,omitempty"`

		// Projections for convenience
		DonationFoodType  string    `json:"donation_food_type,omitempty"`
		DonationExpiry    time.Time `json:"donation_expiry,omitempty"`
		RestaurantName    string    `json:"restaurant_name,omitempty"`
		RestaurantAddress string    `json:"restaurant_address,omitempty"`
		CharityName       string    `json:"charity_name,omitempty"`

		CreatedAt time.Time `json:"created_at"`
	}
)
