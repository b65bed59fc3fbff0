package usecase

import (
	"context"

	"inventory-management/internal/inventory"
	repo "inventory-management/internal/inventory/repository"
)

// Create persists a new Item. The store assigns the identifier; no
// duplicate-SKU check is performed here - SKU uniqueness is the store's
// concern if the schema enforces it.
func (uc *implUseCase) Create(ctx context.Context, input inventory.CreateItemInput) (inventory.CreateItemOutput, error) {
	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:     input.Name,
		SKU:      input.SKU,
		Quantity: input.Quantity,
		Price:    input.Price,
		Category: input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return inventory.CreateItemOutput{}, err
	}

	return inventory.CreateItemOutput{Item: item}, nil
}
