package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"foodbridge/domain"
	"foodbridge/internal/api/presenters"
	"foodbridge/pkg/reservation"
)

type (
	ReservationHandler interface {
		CreateReservation(c *fiber.Ctx) error
		CancelReservation(c *fiber.Ctx) error
		CompleteReservation(c *fiber.Ctx) error
		GetMyReservations(c *fiber.Ctx) error
		GetRestaurantReservations(c *fiber.Ctx) error
	}

	reservationHandler struct {
		reservationService reservation.ReservationService
		validator          *validator.Validate
	}
)

func NewReservationHandler(reservationService reservation.ReservationService, validator *validator.Validate) ReservationHandler {
	return &reservationHandler{
		reservationService: reservationService,
		validator:          validator,
	}
}

func (h *reservationHandler) CreateReservation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateReservationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReservation, err)
	}

	res, err := h.reservationService.CreateReservation(c.Context(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCreateReservation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReservation)
}

func (h *reservationHandler) CancelReservation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reservationID := c.Params("id")

	if err := h.reservationService.CancelReservation(c.Context(), reservationID, userID); err != nil {
		return presenters.HandleError(c, domain.MessageFailedCancelReservation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelReservation)
}

func (h *reservationHandler) CompleteReservation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reservationID := c.Params("id")

	if err := h.reservationService.CompleteReservation(c.Context(), reservationID, userID); err != nil {
		return presenters.HandleError(c, domain.MessageFailedCompleteReservation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteReservation)
}

func (h *reservationHandler) GetMyReservations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := paginationParams(c)

	res, err := h.reservationService.GetMyReservations(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetReservations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReservations)
}

func (h *reservationHandler) GetRestaurantReservations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := paginationParams(c)

	res, err := h.reservationService.GetRestaurantReservations(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetReservations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReservations)
}
