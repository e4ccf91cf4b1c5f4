package domain

import (
	"fmt"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateCharity      = "charity profile created successfully"
	MessageSuccessGetCharity         = "charity profile retrieved successfully"
	MessageSuccessGetNearbyCharities = "nearby charities retrieved successfully"

	MessageFailedCreateCharity      = "failed to create charity profile"
	MessageFailedGetCharity         = "failed to retrieve charity profile"
	MessageFailedGetNearbyCharities = "failed to retrieve nearby charities"

	ErrCharityNotFound      = fmt.Errorf("%w: charity not found", ErrNotFound)
	ErrCharityAlreadyExists = fmt.Errorf("%w: charity profile already exists", ErrConflict)
	ErrInvalidCoordinates   = fmt.Errorf("%w: invalid coordinates", ErrValidation)
)

type (
	CreateCharityRequest struct {
		Name            string                `json:"name" form:"name" validate:"required,min=2"`
		Description     string                `json:"description" form:"description" validate:"omitempty"`
		Address         string                `json:"address" form:"address" validate:"required"`
		Latitude        float64               `json:"latitude" form:"latitude" validate:"required,min=-90,max=90"`
		Longitude       float64               `json:"longitude" form:"longitude" validate:"required,min=-180,max=180"`
		Capacity        int                   `json:"capacity" form:"capacity" validate:"required,min=1"`
		Type            string                `json:"type" form:"type" validate:"required,oneof=Orphanage ElderlyHome Shelter FoodBank Other"`
		LicenseDocument *multipart.FileHeader `json:"-" form:"license_document"`
		ProofDocument   *multipart.FileHeader `json:"-" form:"proof_document"`
	}

	GetNearbyCharitiesRequest struct {
		Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
		Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
		Radius    float64 `json:"radius" validate:"required,min=1,max=50"`
	}

	CharityResponse struct {
		ID                string    `json:"id"`
		UserID            string    `json:"user_id"`
		Name              string    `json:"name"`
		Description       string    `json:"description,omitempty"`
		Address           string    `json:"address"`
		Latitude          float64   `json:"latitude"`
		Longitude         float64   `json:"longitude"`
		Capacity          int       `json:"capacity"`
		Type              string    `json:"type"`
		TypeDisplayName   string    `json:"type_display_name"`
		Status            string    `json:"status"`
		StatusDisplayName string    `json:"status_display_name"`
		IsActive          bool      `json:"is_active"`
		DistanceKm        float64   `json:"distance_km,omitempty"`
		CreatedAt         time.Time `json:"created_at"`
	}
)
