package postgre

import (
	"reflect"
	"testing"

	repo "inventory-management/internal/inventory/repository"
)

func TestBuildWhere(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		where, args := buildWhere(repo.ListItemsOptions{Filter: repo.FilterAll})
		if where != "1=1" || len(args) != 0 {
			t.Errorf("unexpected clause: %q %v", where, args)
		}
	})

	t.Run("Category", func(t *testing.T) {
		where, args := buildWhere(repo.ListItemsOptions{
			Filter:   repo.FilterCategory,
			Category: "Tools",
		})
		if where != "category ILIKE $1" {
			t.Errorf("unexpected clause: %q", where)
		}
		if !reflect.DeepEqual(args, []any{"%Tools%"}) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Name Exact", func(t *testing.T) {
		where, args := buildWhere(repo.ListItemsOptions{
			Filter:     repo.FilterNameExact,
			SearchTerm: "Widget",
		})
		if where != "LOWER(name) = LOWER($1)" {
			t.Errorf("unexpected clause: %q", where)
		}
		if !reflect.DeepEqual(args, []any{"Widget"}) {
			t.Errorf("exact match must not wrap the term: %v", args)
		}
	})

	t.Run("Name Or SKU", func(t *testing.T) {
		where, args := buildWhere(repo.ListItemsOptions{
			Filter:     repo.FilterNameOrSKU,
			SearchTerm: "cable",
		})
		if where != "(name ILIKE $1 OR sku ILIKE $1)" {
			t.Errorf("unexpected clause: %q", where)
		}
		if !reflect.DeepEqual(args, []any{"%cable%"}) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Category And Name", func(t *testing.T) {
		where, args := buildWhere(repo.ListItemsOptions{
			Filter:     repo.FilterCategoryAndName,
			SearchTerm: "cable",
			Category:   "Electronics",
		})
		if where != "category ILIKE $1 AND name ILIKE $2" {
			t.Errorf("unexpected clause: %q", where)
		}
		if !reflect.DeepEqual(args, []any{"%Electronics%", "%cable%"}) {
			t.Errorf("unexpected args: %v", args)
		}
	})
}

func TestBuildListQuery(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListItemsOptions{Filter: repo.FilterAll})
		if mods != "WHERE 1=1 ORDER BY name ASC" {
			t.Errorf("unexpected query: %q", mods)
		}
		if len(args) != 0 {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Full Clause With Pagination", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListItemsOptions{
			Filter:    repo.FilterCategory,
			Category:  "Tools",
			SortField: "price",
			SortOrder: "DESC",
			Limit:     10,
			Offset:    20,
		})
		want := "WHERE category ILIKE $1 ORDER BY price DESC LIMIT $2 OFFSET $3"
		if mods != want {
			t.Errorf("expected %q, got %q", want, mods)
		}
		if !reflect.DeepEqual(args, []any{"%Tools%", 10, 20}) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Placeholders Continue After Two-Arg Filter", func(t *testing.T) {
		mods, args := buildListQuery(repo.ListItemsOptions{
			Filter:     repo.FilterCategoryAndName,
			Category:   "Electronics",
			SearchTerm: "cable",
			Limit:      5,
		})
		want := "WHERE category ILIKE $1 AND name ILIKE $2 ORDER BY name ASC LIMIT $3"
		if mods != want {
			t.Errorf("expected %q, got %q", want, mods)
		}
		if !reflect.DeepEqual(args, []any{"%Electronics%", "%cable%", 5}) {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("Zero Offset Omitted", func(t *testing.T) {
		mods, _ := buildListQuery(repo.ListItemsOptions{
			Filter: repo.FilterAll,
			Limit:  10,
			Offset: 0,
		})
		if mods != "WHERE 1=1 ORDER BY name ASC LIMIT $1" {
			t.Errorf("unexpected query: %q", mods)
		}
	})
}
