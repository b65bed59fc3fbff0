package inventory

import "time"

// --- Item Domain Model ---

// Item is the inventory record managed by this module.
// Quantity and Price are never negative for a persisted item; Name, SKU and
// Category are never blank. Both are enforced at the API boundary.
type Item struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	SKU       string    `db:"sku"`
	Quantity  int       `db:"quantity"`
	Price     float64   `db:"price"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name     string
	SKU      string
	Quantity int
	Price    float64
	Category string
}

// ListItemsInput carries the optional filters plus pagination and sorting.
// Page is zero-based; Size must be positive (the delivery layer defaults it).
type ListItemsInput struct {
	SearchTerm string
	Category   string
	Page       int
	Size       int
	SortField  string
	SortOrder  string
}

// UpdateItemInput replaces every mutable field wholesale - there is no
// field-by-field merge.
type UpdateItemInput struct {
	ID       int64
	Name     string
	SKU      string
	Quantity int
	Price    float64
	Category string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items      []Item
	Total      int
	TotalPages int
	Page       int
	Size       int
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}
