package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/godilite/grade-calculator/internal/repository/models"
	"go.uber.org/zap"
)

const (
	dbTimeout = 1 * time.Second

	maxItemNameLength        = 100
	maxItemDescriptionLength = 255
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrInvalidItem    = errors.New("invalid item")
	ErrStorageFailure = errors.New("storage failure")
)

// ItemService is the demo item catalogue. It shares nothing with grading.
type ItemService struct {
	storage ItemRepository
	logger  *zap.Logger
}

// NewItemService creates a new ItemService instance.
func NewItemService(storage ItemRepository, logger *zap.Logger) *ItemService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &ItemService{
		storage: storage,
		logger:  logger.Named("items"),
	}
}

func validateItem(in ItemInput) error {
	if n := utf8.RuneCountInString(in.Name); n < 1 || n > maxItemNameLength {
		return fmt.Errorf("%w: name must be 1 to %d characters", ErrInvalidItem, maxItemNameLength)
	}
	if !(in.Price > 0) {
		return fmt.Errorf("%w: price must be greater than 0", ErrInvalidItem)
	}
	if in.Description != nil && utf8.RuneCountInString(*in.Description) > maxItemDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidItem, maxItemDescriptionLength)
	}
	return nil
}

// CreateItem stores a new item and returns it with its assigned identifier.
func (s *ItemService) CreateItem(ctx context.Context, in ItemInput) (Item, error) {
	if err := validateItem(in); err != nil {
		return Item{}, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	id, err := s.storage.CreateItem(dbCtx, models.Item{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
	})
	if err != nil {
		return Item{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("item created", zap.Int64("id", id), zap.String("name", in.Name))

	return Item{
		ID:          id,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
	}, nil
}

// GetItem returns ErrItemNotFound for unknown identifiers.
func (s *ItemService) GetItem(ctx context.Context, id int64) (Item, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	row, err := s.storage.GetItem(dbCtx, id)
	if err != nil {
		return Item{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if row == nil {
		return Item{}, ErrItemNotFound
	}

	return Item{
		ID:          row.ID,
		Name:        row.Name,
		Price:       row.Price,
		Description: row.Description,
	}, nil
}
