package usecase

import (
	"context"
	"strings"

	"inventory-management/internal/inventory"
	repo "inventory-management/internal/inventory/repository"
)

// List resolves the optional filters into a store predicate and returns a
// page of Items.
//
// Precedence:
//  1. no filters            → every item
//  2. category only         → category substring match
//  3. searchTerm present    → exact name match first; when that finds
//     nothing, fall back to a substring match - over name OR sku when no
//     category was given, over name narrowed by category otherwise.
//
// The exact-name branch deliberately ignores category: a user who typed a
// full item name wants that item regardless of which category box is still
// selected.
func (uc *implUseCase) List(ctx context.Context, input inventory.ListItemsInput) (inventory.ListItemsOutput, error) {
	sortField, sortOrder, err := normalizeSort(input.SortField, input.SortOrder)
	if err != nil {
		return inventory.ListItemsOutput{}, err
	}

	page, size := normalizePage(input.Page, input.Size)
	base := repo.ListItemsOptions{
		Limit:     size,
		Offset:    page * size,
		SortField: sortField,
		SortOrder: sortOrder,
	}

	// All-whitespace filters are treated as absent.
	searchTerm := strings.TrimSpace(input.SearchTerm)
	category := strings.TrimSpace(input.Category)

	switch {
	case searchTerm == "" && category == "":
		base.Filter = repo.FilterAll

	case searchTerm == "":
		base.Filter = repo.FilterCategory
		base.Category = category

	default:
		exact := base
		exact.Filter = repo.FilterNameExact
		exact.SearchTerm = searchTerm

		items, total, err := uc.repo.ListItems(ctx, exact)
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListItems exact: %v", err)
			return inventory.ListItemsOutput{}, err
		}
		if total > 0 {
			return newListOutput(items, total, page, size), nil
		}

		// No exact match: substring fallback.
		base.SearchTerm = searchTerm
		if category != "" {
			base.Filter = repo.FilterCategoryAndName
			base.Category = category
		} else {
			base.Filter = repo.FilterNameOrSKU
		}
	}

	items, total, err := uc.repo.ListItems(ctx, base)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return inventory.ListItemsOutput{}, err
	}

	return newListOutput(items, total, page, size), nil
}

func newListOutput(items []inventory.Item, total, page, size int) inventory.ListItemsOutput {
	totalPages := total / size
	if total%size != 0 {
		totalPages++
	}
	return inventory.ListItemsOutput{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		Size:       size,
	}
}
