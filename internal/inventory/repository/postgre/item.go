package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory-management/internal/inventory"
	repo "inventory-management/internal/inventory/repository"
)

const itemColumns = "id, name, sku, quantity, price, category, created_at, updated_at"

// CreateItem inserts a new Item row and returns the created entity with its
// store-assigned identifier.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inventory.Item, error) {
	query := fmt.Sprintf(`
		INSERT INTO inventory_items (name, sku, quantity, price, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, itemColumns)

	var item inventory.Item
	err := r.db.GetContext(ctx, &item, query, opt.Name, opt.SKU, opt.Quantity, opt.Price, opt.Category)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return inventory.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem retrieves a single Item by ID.
// Returns zero-value Item (ID == 0) when not found - do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (inventory.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM inventory_items WHERE id = $1 LIMIT 1`, itemColumns)

	var item inventory.Item
	err := r.db.GetContext(ctx, &item, query, opt.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.Item{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return inventory.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems evaluates the requested predicate and returns a page of Items
// plus the total matching count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]inventory.Item, int, error) {
	// 1. Count total (without pagination)
	where, args := buildWhere(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM inventory_items WHERE %s", where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM inventory_items %s", itemColumns, mods)
	var items []inventory.Item
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpdateItem overwrites every mutable field of an Item and returns the
// updated entity. Returns zero-value Item when the row does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (inventory.Item, error) {
	query := fmt.Sprintf(`
		UPDATE inventory_items
		SET name = $1, sku = $2, quantity = $3, price = $4, category = $5, updated_at = $6
		WHERE id = $7
		RETURNING %s`, itemColumns)

	var item inventory.Item
	err := r.db.GetContext(ctx, &item, query,
		opt.Name, opt.SKU, opt.Quantity, opt.Price, opt.Category, time.Now(), opt.ID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return inventory.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return inventory.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// DeleteItem removes an Item by ID. Deleting an absent ID is a no-op.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	const query = `DELETE FROM inventory_items WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
