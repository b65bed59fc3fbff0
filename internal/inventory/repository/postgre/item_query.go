package postgre

import (
	"fmt"
	"strings"

	repo "inventory-management/internal/inventory/repository"
)

// buildWhere renders the WHERE clause + args for one FilterKind.
// Matching is delegated to ILIKE so the store and the Go side agree on
// case-insensitivity.
func buildWhere(opt repo.ListItemsOptions) (string, []any) {
	switch opt.Filter {
	case repo.FilterCategory:
		return "category ILIKE $1", []any{contains(opt.Category)}
	case repo.FilterNameExact:
		return "LOWER(name) = LOWER($1)", []any{opt.SearchTerm}
	case repo.FilterNameOrSKU:
		return "(name ILIKE $1 OR sku ILIKE $1)", []any{contains(opt.SearchTerm)}
	case repo.FilterCategoryAndName:
		return "category ILIKE $1 AND name ILIKE $2",
			[]any{contains(opt.Category), contains(opt.SearchTerm)}
	default:
		return "1=1", nil
	}
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListItems.
func buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	where, args := buildWhere(opt)
	parts := []string{"WHERE " + where}
	idx := len(args) + 1

	// Sorting: field and order are whitelisted upstream.
	orderBy := opt.SortField
	if orderBy == "" {
		orderBy = "name"
	}
	order := opt.SortOrder
	if order == "" {
		order = "ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s %s", orderBy, order))

	// Pagination
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

// contains wraps a term for ILIKE substring matching.
func contains(term string) string {
	return "%" + term + "%"
}
