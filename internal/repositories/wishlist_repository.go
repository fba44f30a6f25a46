package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	"github.com/stickjunkey/stickjunkey-backend/internal/utils"
)

type WishlistRepository interface {
	AddEntry(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
	DeleteEntry(ctx context.Context, userID, itemID uuid.UUID) error
	ListEntries(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
	Contains(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
	Clear(ctx context.Context, userID uuid.UUID) (int64, error)
}

type wishlistRepository struct {
	DB *sql.DB
}

func NewWishlistRepo(db *sql.DB) WishlistRepository {
	return &wishlistRepository{DB: db}
}

// AddEntry inserts the (user, item) pair; a duplicate insert is a no-op
// and reports false so the caller can answer AlreadyExists.
func (r *wishlistRepository) AddEntry(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO wishlist_entries (user_id, item_id, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, item_id) DO NOTHING
	`

	result, err := r.DB.ExecContext(dbCtx, query, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to add wishlist entry: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get inserted rows: %w", err)
	}

	return inserted > 0, nil
}

func (r *wishlistRepository) DeleteEntry(ctx context.Context, userID, itemID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM wishlist_entries WHERE user_id = $1 AND item_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist entry: %w", err)
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

func (r *wishlistRepository) ListEntries(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT w.added_at,
		       i.id, i.name, i.description, i.category, i.price, i.stock_quantity, i.image_url, i.created_at, i.updated_at
		FROM wishlist_entries w
		JOIN items i ON i.id = w.item_id
		WHERE w.user_id = $1
		ORDER BY w.added_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist entries: %w", err)
	}

	defer rows.Close()

	var items []models.WishlistItem

	for rows.Next() {
		var w models.WishlistItem

		err := rows.Scan(
			&w.AddedAt,
			&w.Item.ID, &w.Item.Name, &w.Item.Description, &w.Item.Category,
			&w.Item.Price, &w.Item.StockQuantity, &w.Item.ImageURL,
			&w.Item.CreatedAt, &w.Item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wishlist entry: %w", err)
		}

		items = append(items, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wishlist entries: %w", err)
	}

	return items, nil
}

// Contains never treats absence as an error.
func (r *wishlistRepository) Contains(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT EXISTS (SELECT 1 FROM wishlist_entries WHERE user_id = $1 AND item_id = $2)`

	var exists bool

	if err := r.DB.QueryRowContext(dbCtx, query, userID, itemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check wishlist entry: %w", err)
	}

	return exists, nil
}

// Clear reports how many entries were removed; zero is a valid result.
func (r *wishlistRepository) Clear(ctx context.Context, userID uuid.UUID) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM wishlist_entries WHERE user_id = $1`

	result, err := r.DB.ExecContext(dbCtx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear wishlist: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get deleted rows: %w", err)
	}

	return deleted, nil
}
