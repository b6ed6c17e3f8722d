package mocks

import (
	"context"
	"errors"

	"github.com/godilite/grade-calculator/internal/service"
)

// MockItemService is a function-based mock of the handlers' ItemService.
type MockItemService struct {
	CreateItemFunc func(ctx context.Context, in service.ItemInput) (service.Item, error)
	GetItemFunc    func(ctx context.Context, id int64) (service.Item, error)
}

func (m *MockItemService) CreateItem(ctx context.Context, in service.ItemInput) (service.Item, error) {
	if m.CreateItemFunc != nil {
		return m.CreateItemFunc(ctx, in)
	}
	return service.Item{}, errors.New("CreateItemFunc not implemented")
}

func (m *MockItemService) GetItem(ctx context.Context, id int64) (service.Item, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(ctx, id)
	}
	return service.Item{}, errors.New("GetItemFunc not implemented")
}
