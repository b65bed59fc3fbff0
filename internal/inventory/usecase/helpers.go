package usecase

import (
	"strings"

	"inventory-management/internal/inventory"
)

const (
	defaultSortField = "name"
	defaultPageSize  = 20
)

// sortableFields whitelists the columns a caller may sort by. Anything else
// is rejected before it can reach the SQL layer.
var sortableFields = map[string]bool{
	"id":         true,
	"name":       true,
	"sku":        true,
	"quantity":   true,
	"price":      true,
	"category":   true,
	"created_at": true,
	"updated_at": true,
}

// normalizeSort validates and normalizes the sort parameters.
// Empty values fall back to name ASC.
func normalizeSort(field, order string) (string, string, error) {
	field = strings.ToLower(strings.TrimSpace(field))
	if field == "" {
		field = defaultSortField
	}
	if !sortableFields[field] {
		return "", "", inventory.ErrInvalidSortField
	}

	switch strings.ToLower(strings.TrimSpace(order)) {
	case "", "asc":
		return field, "ASC", nil
	case "desc":
		return field, "DESC", nil
	default:
		return "", "", inventory.ErrInvalidSortOrder
	}
}

// normalizePage clamps pagination inputs. Page is zero-based.
func normalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	return page, size
}
