package usecase_test

import (
	"context"

	"inventory-management/internal/inventory"
	repo "inventory-management/internal/inventory/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository with per-method hooks and call recording.
type mockRepository struct {
	createFunc func(opt repo.CreateItemOptions) (inventory.Item, error)
	getOneFunc func(opt repo.GetOneItemOptions) (inventory.Item, error)
	listFunc   func(opt repo.ListItemsOptions) ([]inventory.Item, int, error)
	updateFunc func(opt repo.UpdateItemOptions) (inventory.Item, error)
	deleteFunc func(id int64) error

	listCalls   []repo.ListItemsOptions
	updateCalls int
	deleteCalls int
}

func (m *mockRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inventory.Item, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return inventory.Item{}, nil
}

func (m *mockRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (inventory.Item, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return inventory.Item{}, nil
}

func (m *mockRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]inventory.Item, int, error) {
	m.listCalls = append(m.listCalls, opt)
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (inventory.Item, error) {
	m.updateCalls++
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return inventory.Item{}, nil
}

func (m *mockRepository) DeleteItem(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}
