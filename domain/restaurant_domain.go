package domain

import (
	"fmt"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateRestaurant = "restaurant profile created successfully"
	MessageSuccessGetRestaurant    = "restaurant profile retrieved successfully"

	MessageFailedCreateRestaurant = "failed to create restaurant profile"
	MessageFailedGetRestaurant    = "failed to retrieve restaurant profile"

	ErrRestaurantNotFound      = fmt.Errorf("%w: restaurant not found", ErrNotFound)
	ErrRestaurantAlreadyExists = fmt.Errorf("%w: restaurant profile already exists", ErrConflict)
)

type (
	CreateRestaurantRequest struct {
		Name               string                `json:"name" form:"name" validate:"required,min=2"`
		Description        string                `json:"description" form:"description" validate:"omitempty"`
		Address            string                `json:"address" form:"address" validate:"required"`
		Latitude           float64               `json:"latitude" form:"latitude" validate:"required,min=-90,max=90"`
		Longitude          float64               `json:"longitude" form:"longitude" validate:"required,min=-180,max=180"`
		LicenseDocument    *multipart.FileHeader `json:"-" form:"license_document"`
		CommercialRegister *multipart.FileHeader `json:"-" form:"commercial_register"`
	}

	RestaurantResponse struct {
		ID                string    `json:"id"`
		UserID            string    `json:"user_id"`
		Name              string    `json:"name"`
		Description       string    `json:"description,omitempty"`
		Address           string    `json:"address"`
		Latitude          float64   `json:"latitude"`
		Longitude         float64   `json:"longitude"`
		Status            string    `json:"status"`
		StatusDisplayName string    `json:"status_display_name"`
		IsActive          bool      `json:"is_active"`
		CreatedAt         time.Time `json:"created_at"`
	}
)
