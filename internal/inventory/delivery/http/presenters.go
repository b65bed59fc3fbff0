package http

import (
	"strings"
	"time"

	"inventory-management/internal/inventory"
)

// --- Request DTOs ---

type createReq struct {
	Name     string   `json:"name"     binding:"required,min=1,max=255"`
	SKU      string   `json:"sku"      binding:"required,min=1,max=64"`
	Quantity *int     `json:"quantity" binding:"required,gte=0"`
	Price    *float64 `json:"price"    binding:"required,gte=0"`
	Category string   `json:"category" binding:"required,min=1,max=255"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() inventory.CreateItemInput {
	return inventory.CreateItemInput{
		Name:     r.Name,
		SKU:      r.SKU,
		Quantity: *r.Quantity,
		Price:    *r.Price,
		Category: r.Category,
	}
}

// ---

type listReq struct {
	SearchTerm string `form:"searchTerm"`
	Name       string `form:"name"`
	SKU        string `form:"sku"`
	Category   string `form:"category"`
	Page       int    `form:"page"`
	Size       int    `form:"size"`
	SortField  string `form:"sortField"`
	SortOrder  string `form:"sortOrder"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() inventory.ListItemsInput {
	// name and sku are accepted as looser aliases for searchTerm; the
	// resolver searches both columns anyway.
	searchTerm := r.SearchTerm
	if strings.TrimSpace(searchTerm) == "" {
		searchTerm = r.Name
	}
	if strings.TrimSpace(searchTerm) == "" {
		searchTerm = r.SKU
	}

	size := r.Size
	if size <= 0 || size > 100 {
		size = 20
	}
	page := r.Page
	if page < 0 {
		page = 0
	}

	return inventory.ListItemsInput{
		SearchTerm: searchTerm,
		Category:   r.Category,
		Page:       page,
		Size:       size,
		SortField:  r.SortField,
		SortOrder:  r.SortOrder,
	}
}

// ---

type updateReq struct {
	ID       int64    `json:"-"` // populated from URI param
	Name     string   `json:"name"     binding:"required,min=1,max=255"`
	SKU      string   `json:"sku"      binding:"required,min=1,max=64"`
	Quantity *int     `json:"quantity" binding:"required,gte=0"`
	Price    *float64 `json:"price"    binding:"required,gte=0"`
	Category string   `json:"category" binding:"required,min=1,max=255"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() inventory.UpdateItemInput {
	return inventory.UpdateItemInput{
		ID:       r.ID,
		Name:     r.Name,
		SKU:      r.SKU,
		Quantity: *r.Quantity,
		Price:    *r.Price,
		Category: r.Category,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newItemResp(item inventory.Item) itemResp {
	return itemResp{
		ID:        item.ID,
		Name:      item.Name,
		SKU:       item.SKU,
		Quantity:  item.Quantity,
		Price:     item.Price,
		Category:  item.Category,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out inventory.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items      []itemResp `json:"items"`
	Total      int        `json:"total"`
	TotalPages int        `json:"total_pages"`
	Page       int        `json:"page"`
	Size       int        `json:"size"`
}

func (h *handler) newListResp(out inventory.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{
		Items:      items,
		Total:      out.Total,
		TotalPages: out.TotalPages,
		Page:       out.Page,
		Size:       out.Size,
	}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out inventory.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out inventory.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}
