package http

import (
	"errors"

	"inventory-management/internal/inventory"
	"inventory-management/internal/inventory/repository"
	pkgErrors "inventory-management/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrItemNotFound):
		return pkgErrors.NewHTTPError(404, "item not found")
	case errors.Is(err, inventory.ErrInvalidSortField):
		return pkgErrors.NewHTTPError(400, "invalid sort field")
	case errors.Is(err, inventory.ErrInvalidSortOrder):
		return pkgErrors.NewHTTPError(400, "invalid sort order")
	case errors.Is(err, repository.ErrFailedToInsert),
		errors.Is(err, repository.ErrFailedToGet),
		errors.Is(err, repository.ErrFailedToList),
		errors.Is(err, repository.ErrFailedToUpdate),
		errors.Is(err, repository.ErrFailedToDelete):
		// Store failures surface as server errors, untouched by retries.
		return pkgErrors.NewHTTPError(500, "persistence failure")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
