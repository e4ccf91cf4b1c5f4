package domain

import (
	"errors"
)

const (
	RoleUser       = "user"
	RoleRestaurant = "restaurant"
	RoleCharity    = "charity"
	RoleAdmin      = "admin"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	// Error taxonomy roots. Feature errors wrap exactly one of these so
	// the HTTP layer can map kinds to status codes with errors.Is.
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("resource not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrUserNotAllowed = errors.New("user not allowed")
)

type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	PageNumber int   `json:"page_number"`
	PageSize   int   `json:"page_size"`
}

// Paginate is the in-memory variant used for geo-filtered results, where
// spatial filtering happens after the fetch. Repositories implement the
// same semantics with Count + Offset + Limit for query-pushdown listings:
// skip = (pageNumber-1)*pageSize, take = pageSize, TotalCount counted
// before paging.
func Paginate[T any](items []T, pageNumber, pageSize int) PagedResult[T] {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(items))
	start := (pageNumber - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return PagedResult[T]{
		Items:      items[start:end],
		TotalCount: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
}

func NewPagedResult[T any](items []T, totalCount int64, pageNumber, pageSize int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}
}
