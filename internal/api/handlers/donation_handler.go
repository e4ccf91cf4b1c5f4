package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"foodbridge/domain"
	"foodbridge/internal/api/presenters"
	"foodbridge/pkg/donation"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		UpdateDonation(c *fiber.Ctx) error
		DeleteDonation(c *fiber.Ctx) error
		GetDonationDetails(c *fiber.Ctx) error
		GetMyDonations(c *fiber.Ctx) error
		GetAvailableDonations(c *fiber.Ctx) error
		GetNearbyDonations(c *fiber.Ctx) error
		AddDonationImage(c *fiber.Ctx) error
		RemoveDonationImage(c *fiber.Ctx) error
		AdminUpdateDonationStatus(c *fiber.Ctx) error
		AdminDeleteDonation(c *fiber.Ctx) error
		AdminGetDonations(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateDonationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if form, err := c.MultipartForm(); err == nil {
		req.Images = form.File["images"]
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	res, err := h.donationService.CreateDonation(c.Context(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) UpdateDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")
	req := new(domain.UpdateDonationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonation, err)
	}

	res, err := h.donationService.UpdateDonation(c.Context(), donationID, *req, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDonation)
}

func (h *donationHandler) DeleteDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	if err := h.donationService.DeleteDonation(c.Context(), donationID, userID); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDonation)
}

func (h *donationHandler) GetDonationDetails(c *fiber.Ctx) error {
	donationID := c.Params("id")

	res, err := h.donationService.GetDonationByID(c.Context(), donationID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetMyDonations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := paginationParams(c)

	res, err := h.donationService.GetMyDonations(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetAvailableDonations(c *fiber.Ctx) error {
	page, limit := paginationParams(c)

	res, err := h.donationService.GetAvailableDonations(c.Context(), page, limit)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

// GetNearbyDonations serves both explicit coordinates and the logged-in
// charity's stored location. When latitude and longitude are absent the
// caller must be a charity with a registered profile.
func (h *donationHandler) GetNearbyDonations(c *fiber.Ctx) error {
	page, limit := paginationParams(c)

	radius, err := strconv.ParseFloat(c.Query("radius", "10"), 64)
	if err != nil || radius <= 0 || radius > 50 {
		radius = 10
	}

	latQuery := c.Query("latitude")
	lngQuery := c.Query("longitude")

	if latQuery == "" || lngQuery == "" {
		userID := c.Locals("user_id").(string)
		res, err := h.donationService.GetNearbyDonationsForCharity(c.Context(), userID, radius, page, limit)
		if err != nil {
			return presenters.HandleError(c, domain.MessageFailedGetNearbyDonations, err)
		}
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNearbyDonations)
	}

	lat, err := strconv.ParseFloat(latQuery, 64)
	if err != nil || lat < -90 || lat > 90 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyDonations, domain.ErrInvalidCoordinates)
	}
	lng, err := strconv.ParseFloat(lngQuery, 64)
	if err != nil || lng < -180 || lng > 180 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyDonations, domain.ErrInvalidCoordinates)
	}

	res, err := h.donationService.GetNearbyDonations(c.Context(), lat, lng, radius, page, limit)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetNearbyDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNearbyDonations)
}

func (h *donationHandler) AddDonationImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")
	req := new(domain.AddDonationImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file
	req.IsPrimary = c.FormValue("is_primary") == "true"

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddDonationImage, err)
	}

	res, err := h.donationService.AddDonationImage(c.Context(), donationID, *req, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddDonationImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddDonationImage)
}

func (h *donationHandler) RemoveDonationImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")
	imageID := c.Params("imageId")

	if err := h.donationService.RemoveDonationImage(c.Context(), donationID, imageID, userID); err != nil {
		return presenters.HandleError(c, domain.MessageFailedRemoveDonationImage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveDonationImage)
}

func (h *donationHandler) AdminUpdateDonationStatus(c *fiber.Ctx) error {
	donationID := c.Params("id")
	req := new(domain.AdminUpdateDonationStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStatus, err)
	}

	if err := h.donationService.AdminUpdateDonationStatus(c.Context(), donationID, *req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateStatus)
}

func (h *donationHandler) AdminDeleteDonation(c *fiber.Ctx) error {
	donationID := c.Params("id")

	if err := h.donationService.AdminDeleteDonation(c.Context(), donationID); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDonation)
}

func (h *donationHandler) AdminGetDonations(c *fiber.Ctx) error {
	page, limit := paginationParams(c)

	filter := domain.AdminDonationFilter{
		Status:     c.Query("status"),
		SearchTerm: c.Query("search"),
	}

	if err := h.validator.Struct(filter); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, err)
	}

	res, err := h.donationService.GetDonationsForAdmin(c.Context(), page, limit, filter)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}
