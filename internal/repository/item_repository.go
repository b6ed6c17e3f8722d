package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/godilite/grade-calculator/internal/repository/models"
)

// ItemsSchema creates the items table. INTEGER PRIMARY KEY makes SQLite assign
// max(id)+1, starting at 1.
const ItemsSchema = `
	CREATE TABLE IF NOT EXISTS items (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		description TEXT
	);`

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// CreateItem inserts item and returns its assigned identifier. item.ID is ignored.
func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (int64, error) {
	const query = `INSERT INTO items (name, price, description) VALUES (?, ?, ?)`

	var description sql.NullString
	if item.Description != nil {
		description = sql.NullString{String: *item.Description, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query, item.Name, item.Price, description)
	if err != nil {
		return 0, fmt.Errorf("insert CreateItem: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id CreateItem: %w", err)
	}
	return id, nil
}

// GetItem returns nil without error when no item has the given id.
func (r *ItemRepository) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	const query = `SELECT id, name, price, description FROM items WHERE id = ?`

	var (
		item        models.Item
		description sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Price, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query GetItem: %w", err)
	}

	if description.Valid {
		item.Description = &description.String
	}
	return &item, nil
}
