package repository

// FilterKind enumerates the predicates the store knows how to evaluate.
// The use case picks exactly one per query; there is no dynamic predicate
// composition beyond this list.
type FilterKind int

const (
	// FilterAll matches every item.
	FilterAll FilterKind = iota
	// FilterCategory matches items whose category contains Category
	// (case-insensitive).
	FilterCategory
	// FilterNameExact matches items whose name equals SearchTerm
	// (case-insensitive).
	FilterNameExact
	// FilterNameOrSKU matches items whose name or SKU contains SearchTerm
	// (case-insensitive).
	FilterNameOrSKU
	// FilterCategoryAndName matches items whose category contains Category
	// AND whose name contains SearchTerm (both case-insensitive).
	FilterCategoryAndName
)

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name     string
	SKU      string
	Quantity int
	Price    float64
	Category string
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID int64
}

// ListItemsOptions holds the predicate, pagination and sorting parameters
// for listing Items. SortField must be a whitelisted column name and
// SortOrder either "ASC" or "DESC" - both are normalized by the use case
// before reaching the store.
type ListItemsOptions struct {
	Filter     FilterKind
	SearchTerm string
	Category   string

	Limit     int
	Offset    int
	SortField string
	SortOrder string
}

// UpdateItemOptions holds parameters for updating an existing Item.
// Every field is written; omitted values are intentional overwrites.
type UpdateItemOptions struct {
	ID       int64
	Name     string
	SKU      string
	Quantity int
	Price    float64
	Category string
}
