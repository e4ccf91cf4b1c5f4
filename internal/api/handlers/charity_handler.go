package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"foodbridge/domain"
	"foodbridge/internal/api/presenters"
	"foodbridge/pkg/charity"
)

type (
	CharityHandler interface {
		CreateCharity(c *fiber.Ctx) error
		GetMyCharity(c *fiber.Ctx) error
		GetNearbyCharities(c *fiber.Ctx) error
	}

	charityHandler struct {
		charityService charity.CharityService
		validator      *validator.Validate
	}
)

func NewCharityHandler(charityService charity.CharityService, validator *validator.Validate) CharityHandler {
	return &charityHandler{
		charityService: charityService,
		validator:      validator,
	}
}

func (h *charityHandler) CreateCharity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateCharityRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("license_document"); err == nil {
		req.LicenseDocument = file
	}
	if file, err := c.FormFile("proof_document"); err == nil {
		req.ProofDocument = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCharity, err)
	}

	res, err := h.charityService.CreateCharity(c.Context(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateCharity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCharity)
}

func (h *charityHandler) GetMyCharity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.charityService.GetMyCharity(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetCharity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCharity)
}

func (h *charityHandler) GetNearbyCharities(c *fiber.Ctx) error {
	req := domain.GetNearbyCharitiesRequest{}

	var err error
	if req.Latitude, err = strconv.ParseFloat(c.Query("latitude", "0"), 64); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyCharities, domain.ErrInvalidCoordinates)
	}
	if req.Longitude, err = strconv.ParseFloat(c.Query("longitude", "0"), 64); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyCharities, domain.ErrInvalidCoordinates)
	}
	if req.Radius, err = strconv.ParseFloat(c.Query("radius", "10"), 64); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyCharities, domain.ErrInvalidCoordinates)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyCharities, err)
	}

	page, limit := paginationParams(c)

	res, err := h.charityService.GetNearbyCharities(c.Context(), req, page, limit)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetNearbyCharities, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNearbyCharities)
}
