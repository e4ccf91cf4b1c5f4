package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// paginationParams parses page and limit query parameters, falling back to
// the first page of ten items on anything unparseable or out of range.
func paginationParams(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}
