package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"foodbridge/domain"
)

type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
		Errors:  errorList(err),
	})
}

// HandleError maps the domain error taxonomy to HTTP status codes.
// Unexpected errors are reported as a generic failure, never as a raw
// error message.
func HandleError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return ErrorResponse(c, fiber.StatusBadRequest, message, err)
	case errors.Is(err, domain.ErrNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrForbidden):
		return ErrorResponse(c, fiber.StatusForbidden, message, err)
	case errors.Is(err, domain.ErrConflict):
		return ErrorResponse(c, fiber.StatusConflict, message, err)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Success: false,
			Message: domain.MessageFailedProcessRequest,
		})
	}
}

func errorList(err error) []string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields = append(fields, fieldError.Field()+": "+fieldError.Tag())
		}
		return fields
	}

	return []string{err.Error()}
}
