package usecase

import (
	"context"

	"inventory-management/internal/inventory"
	repo "inventory-management/internal/inventory/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (inventory.DetailItemOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return inventory.DetailItemOutput{}, err
	}
	if item.ID == 0 {
		return inventory.DetailItemOutput{}, inventory.ErrItemNotFound
	}
	return inventory.DetailItemOutput{Item: item}, nil
}

// Update replaces every mutable field of an existing Item wholesale.
// Returns ErrItemNotFound when not found. Partial updates are not
// supported: an omitted field in the input is an intentional overwrite.
func (uc *implUseCase) Update(ctx context.Context, input inventory.UpdateItemInput) (inventory.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return inventory.UpdateItemOutput{}, err
	}
	if existing.ID == 0 {
		return inventory.UpdateItemOutput{}, inventory.ErrItemNotFound
	}

	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:       input.ID,
		Name:     input.Name,
		SKU:      input.SKU,
		Quantity: input.Quantity,
		Price:    input.Price,
		Category: input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return inventory.UpdateItemOutput{}, err
	}
	if item.ID == 0 {
		// Row vanished between the read and the write.
		return inventory.UpdateItemOutput{}, inventory.ErrItemNotFound
	}
	return inventory.UpdateItemOutput{Item: item}, nil
}

// Delete removes an Item by ID. Deleting an absent ID is not an error:
// the operation is idempotent, matching the store's delete-by-key semantics.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
