package mocks

import (
	"context"
	"errors"

	"github.com/godilite/grade-calculator/internal/repository/models"
)

// MockItemRepository is a mock implementation of the ItemRepository interface
// for testing the service layer.
type MockItemRepository struct {
	CreateItemFunc func(ctx context.Context, item models.Item) (int64, error)
	GetItemFunc    func(ctx context.Context, id int64) (*models.Item, error)
}

// CreateItem implements the ItemRepository interface
func (m *MockItemRepository) CreateItem(ctx context.Context, item models.Item) (int64, error) {
	if m.CreateItemFunc != nil {
		return m.CreateItemFunc(ctx, item)
	}
	return 0, errors.New("CreateItemFunc not implemented")
}

// GetItem implements the ItemRepository interface
func (m *MockItemRepository) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(ctx, id)
	}
	return nil, errors.New("GetItemFunc not implemented")
}
