package usecase_test

import (
	"context"
	"errors"
	"testing"

	"inventory-management/internal/inventory"
	repo "inventory-management/internal/inventory/repository"
	"inventory-management/internal/inventory/usecase"
)

func TestListFilterResolution(t *testing.T) {
	t.Run("No Filters Returns All", func(t *testing.T) {
		mRepo := &mockRepository{
			listFunc: func(opt repo.ListItemsOptions) ([]inventory.Item, int, error) {
				return []inventory.Item{{ID: 1, Name: "Widget"}}, 1, nil
			},
		}
		uc := usecase.New(mRepo, &mockLogger{})

		out, err := uc.List(context.Background(), inventory.ListItemsInput{Size: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mRepo.listCalls) != 1 {
			t.Fatalf("expected 1 store query, got %d", len(mRepo.listCalls))
		}
		if mRepo.listCalls[0].Filter != repo.FilterAll {
			t.Errorf("expected FilterAll, got %v", mRepo.listCalls[0].Filter)
		}
		if out.Total != 1 {
			t.Errorf("expected total 1, got %d", out.Total)
		}
	})

	t.Run("Whitespace Filters Are Absent", func(t *testing.T) {
		mRepo := &mockRepository{}
		uc := usecase.New(mRepo, &mockLogger{})

		_, err := uc.List(context.Background(), inventory.ListItemsInput{
			SearchTerm: "   ",
			Category:   "\t ",
			Size:       10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mRepo.listCalls[0].Filter != repo.FilterAll {
			t.Errorf("expected FilterAll for all-whitespace filters, got %v", mRepo.listCalls[0].Filter)
		}
	})

	t.Run("Category Only", func(t *testing.T) {
		mRepo := &mockRepository{
			listFunc: func(opt repo.ListItemsOptions) ([]inventory.Item, int, error) {
				return []inventory.Item{
					{ID: 1, Name: "Widget", Category: "Tools"},
					{ID: 2, Name: "Gadget", Category: "Tools"},
				}, 2, nil
			},
		}
		uc := usecase.New(mRepo, &mockLogger{})

		out, err := uc.List(context.Background(), inventory.ListItemsInput{Category: " Tools ", Size: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		call := mRepo.listCalls[0]
		if call.Filter != repo.FilterCategory {
			t.Errorf("expected FilterCategory, got %v", call.Filter)
		}
		if call.Category != "Tools" {
			t.Errorf("expected trimmed category, got %q", call.Category)
		}
		if len(out.Items) != 2 {
			t.Errorf("expected both Tools items, got %d", len(out.Items))
		}
	})

	t.Run("Exact Name Match Wins", func(t *testing.T) {
		mRepo := &mockRepository{
			listFunc: func(opt repo.ListItemsOptions) ([]inventory.Item, int, error) {
				if opt.Filter == repo.FilterNameExact && opt.SearchTerm == "Widget" {
					return []inventory.Item{{ID: 1, Name: "Widget", Category: "Tools"}}, 1, nil
				}
				t.Errorf("unexpected fallback query: %+v", opt)
				return nil, 0, nil
			},
		}
		uc := usecase.New(mRepo, &mockLogger{})

		out, err := uc.List(context.Background(), inventory.ListItemsInput{SearchTerm: "Widget", Size: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mRepo.listCalls) != 1 {
			t.Fatalf("expected exact match to short-circuit, got %d queries", len(mRepo.listCalls))
		}
		if out.Total != 1 || out.Items[0].ID != 1 {
			t.Errorf("unexpected result: %+v", out)
		}
	})

	t.Run("Exact Match Ignores Category", func(t *testing.T) {
		mRepo := &mockRepository{
			listFunc: func(opt repo.ListItemsOptions) ([]inventory.Item, int, error) {
				if opt.Filter == repo.FilterNameExact {
					return []inventory.Item{{ID: 1, Name: "Widget", Category: "Tools"}}, 1, nil
				}
				return nil, 0, nil
			},
		}
		uc := usecase.New(mRepo, &mockLogger{})

		_, err := uc.List(context.Background(), inventory.ListItemsInput{
			SearchTerm: "Widget",
			Category:   "Electronics",
			Size:       10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mRepo.listCalls) != 1 || mRepo.listCalls[0].Filter != repo.FilterNameExact {
			t.Errorf("expected single exact-match query, got %+v", mRepo.listCalls)
		}
	})

	t.Run("Substring Fallback Over Name And SKU", func(t *testing.T) {
		mRepo := &mockRepository{
			listFunc: func(opt repo.ListItemsOptions) ([]inventory.Item, int, error) {
				if opt.Filter == repo.FilterNameExact {
					return nil, 0, nil // no exact match for "cable"
				}
				return []inventory.Item{{ID: 7, Name: "USB Cable"}}, 1, nil
			},
		}
		uc := usecase.New(mRepo, &mockLogger{})

		out, err := uc.List(context.Background(), inventory.ListItemsInput{SearchTerm: "cable", Size: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mRepo.listCalls) != 2 {
			t.Fatalf("expected exact then fallback query, got %d", len(mRepo.listCalls))
		}
		if mRepo.listCalls[1].Filter != repo.FilterNameOrSKU {
			t.Errorf("expected FilterNameOrSKU fallback, got %v", mRepo.listCalls[1].Filter)
		}
		if out.Total != 1 || out.Items[0].Name != "USB Cable" {
			t.Errorf("unexpected fallback result: %+v", out)
		}
	})

	t.Run("Category Narrows Substring Fallback", func(t *testing.T) {
		mRepo := &mockRepository{
			listFunc: func(opt repo.ListItemsOptions) ([]inventory.Item, int, error) {
				return nil, 0, nil
			},
		}
		uc := usecase.New(mRepo, &mockLogger{})

		_, err := uc.List(context.Background(), inventory.ListItemsInput{
			SearchTerm: "cable",
			Category:   "Electronics",
			Size:       10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mRepo.listCalls) != 2 {
			t.Fatalf("expected 2 queries, got %d", len(mRepo.listCalls))
		}
		fallback := mRepo.listCalls[1]
		if fallback.Filter != repo.FilterCategoryAndName {
			t.Errorf("expected FilterCategoryAndName, got %v", fallback.Filter)
		}
		if fallback.Category != "Electronics" || fallback.SearchTerm != "cable" {
			t.Errorf("unexpected fallback options: %+v", fallback)
		}
	})

	t.Run("Store Error Propagates", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		mRepo := &mockRepository{
			listFunc: func(opt repo.ListItemsOptions) ([]inventory.Item, int, error) {
				return nil, 0, storeErr
			},
		}
		uc := usecase.New(mRepo, &mockLogger{})

		_, err := uc.List(context.Background(), inventory.ListItemsInput{Size: 10})
		if !errors.Is(err, storeErr) {
			t.Errorf("expected store error to propagate unchanged, got %v", err)
		}
	})
}

func TestListSortAndPagination(t *testing.T) {
	t.Run("Invalid Sort Order", func(t *testing.T) {
		mRepo := &mockRepository{}
		uc := usecase.New(mRepo, &mockLogger{})

		_, err := uc.List(context.Background(), inventory.ListItemsInput{SortOrder: "sideways", Size: 10})
		if !errors.Is(err, inventory.ErrInvalidSortOrder) {
			t.Errorf("expected ErrInvalidSortOrder, got %v", err)
		}
		if len(mRepo.listCalls) != 0 {
			t.Errorf("expected no store query on invalid sort, got %d", len(mRepo.listCalls))
		}
	})

	t.Run("Invalid Sort Field", func(t *testing.T) {
		uc := usecase.New(&mockRepository{}, &mockLogger{})

		_, err := uc.List(context.Background(), inventory.ListItemsInput{SortField: "password", Size: 10})
		if !errors.Is(err, inventory.ErrInvalidSortField) {
			t.Errorf("expected ErrInvalidSortField, got %v", err)
		}
	})

	t.Run("Default Sort Is Name Ascending", func(t *testing.T) {
		mRepo := &mockRepository{}
		uc := usecase.New(mRepo, &mockLogger{})

		if _, err := uc.List(context.Background(), inventory.ListItemsInput{Size: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		call := mRepo.listCalls[0]
		if call.SortField != "name" || call.SortOrder != "ASC" {
			t.Errorf("expected name ASC default, got %s %s", call.SortField, call.SortOrder)
		}
	})

	t.Run("Sort Direction Is Case Insensitive", func(t *testing.T) {
		mRepo := &mockRepository{}
		uc := usecase.New(mRepo, &mockLogger{})

		if _, err := uc.List(context.Background(), inventory.ListItemsInput{
			SortField: "Price",
			SortOrder: "DESC",
			Size:      10,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		call := mRepo.listCalls[0]
		if call.SortField != "price" || call.SortOrder != "DESC" {
			t.Errorf("expected price DESC, got %s %s", call.SortField, call.SortOrder)
		}
	})

	t.Run("Page Math 25 Items Size 10", func(t *testing.T) {
		items := make([]inventory.Item, 5)
		mRepo := &mockRepository{
			listFunc: func(opt repo.ListItemsOptions) ([]inventory.Item, int, error) {
				return items, 25, nil
			},
		}
		uc := usecase.New(mRepo, &mockLogger{})

		out, err := uc.List(context.Background(), inventory.ListItemsInput{Page: 2, Size: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", out.TotalPages)
		}
		if out.Total != 25 {
			t.Errorf("expected total 25, got %d", out.Total)
		}
		if len(out.Items) != 5 {
			t.Errorf("expected 5 items on the last page, got %d", len(out.Items))
		}
		call := mRepo.listCalls[0]
		if call.Limit != 10 || call.Offset != 20 {
			t.Errorf("expected LIMIT 10 OFFSET 20, got LIMIT %d OFFSET %d", call.Limit, call.Offset)
		}
	})

	t.Run("Negative Page Clamps To Zero", func(t *testing.T) {
		mRepo := &mockRepository{}
		uc := usecase.New(mRepo, &mockLogger{})

		if _, err := uc.List(context.Background(), inventory.ListItemsInput{Page: -3, Size: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mRepo.listCalls[0].Offset != 0 {
			t.Errorf("expected offset 0, got %d", mRepo.listCalls[0].Offset)
		}
	})
}
