package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"foodbridge/domain"
	"foodbridge/internal/api/presenters"
	"foodbridge/pkg/restaurant"
)

type (
	RestaurantHandler interface {
		CreateRestaurant(c *fiber.Ctx) error
		GetMyRestaurant(c *fiber.Ctx) error
	}

	restaurantHandler struct {
		restaurantService restaurant.RestaurantService
		validator         *validator.Validate
	}
)

func NewRestaurantHandler(restaurantService restaurant.RestaurantService, validator *validator.Validate) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		validator:         validator,
	}
}

func (h *restaurantHandler) CreateRestaurant(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRestaurantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// Onboarding documents are optional at registration time.
	if file, err := c.FormFile("license_document"); err == nil {
		req.LicenseDocument = file
	}
	if file, err := c.FormFile("commercial_register"); err == nil {
		req.CommercialRegister = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRestaurant, err)
	}

	res, err := h.restaurantService.CreateRestaurant(c.Context(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRestaurant)
}

func (h *restaurantHandler) GetMyRestaurant(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.restaurantService.GetMyRestaurant(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurant)
}
