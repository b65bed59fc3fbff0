package repository

import (
	"context"

	"inventory-management/internal/inventory"
)

// Repository is the composed interface for the inventory domain data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (inventory.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (inventory.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]inventory.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (inventory.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
