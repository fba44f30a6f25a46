package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	"github.com/stickjunkey/stickjunkey-backend/internal/utils"
)

type ItemRepository interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	GetItemByName(ctx context.Context, name string) (*models.Item, error)
	ListItems(ctx context.Context, category string, page, size int) ([]models.Item, int64, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	CountItems(ctx context.Context) (int64, error)
}

type itemRepository struct {
	DB *sql.DB
}

func NewItemRepo(db *sql.DB) ItemRepository {
	return &itemRepository{DB: db}
}

func (r *itemRepository) CreateItem(ctx context.Context, item *models.Item) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO items (id, name, description, category, price, stock_quantity, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query,
		item.ID, item.Name, item.Description, item.Category,
		item.Price, item.StockQuantity, item.ImageURL).
		Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

func (r *itemRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, description, category, price, stock_quantity, image_url, created_at, updated_at
		FROM items
		WHERE id = $1
	`

	item := &models.Item{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Category,
		&item.Price, &item.StockQuantity, &item.ImageURL,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

func (r *itemRepository) GetItemByName(ctx context.Context, name string) (*models.Item, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, description, category, price, stock_quantity, image_url, created_at, updated_at
		FROM items
		WHERE name = $1
	`

	item := &models.Item{}

	err := r.DB.QueryRowContext(dbCtx, query, name).Scan(
		&item.ID, &item.Name, &item.Description, &item.Category,
		&item.Price, &item.StockQuantity, &item.ImageURL,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get item by name: %w", err)
	}

	return item, nil
}

// ListItems pages through the catalog, optionally scoped to a category.
func (r *itemRepository) ListItems(ctx context.Context, category string, page, size int) ([]models.Item, int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int64

	countQuery := `SELECT COUNT(*) FROM items WHERE ($1 = '' OR category = $1)`

	if err := r.DB.QueryRowContext(dbCtx, countQuery, category).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	offset := (page - 1) * size

	query := `
		SELECT id, name, description, category, price, stock_quantity, image_url, created_at, updated_at
		FROM items
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, category, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}

	defer rows.Close()

	var items []models.Item

	for rows.Next() {
		var item models.Item

		err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Category,
			&item.Price, &item.StockQuantity, &item.ImageURL,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, total, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *models.Item) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE items
		SET name = $2, description = $3, category = $4, price = $5, stock_quantity = $6, image_url = $7, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(dbCtx, query,
		item.ID, item.Name, item.Description, item.Category,
		item.Price, item.StockQuantity, item.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM items WHERE id = $1`

	result, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *itemRepository) CountItems(ctx context.Context) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int64

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM items`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}

	return total, nil
}
