package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	"github.com/stickjunkey/stickjunkey-backend/internal/utils"
)

type CartRepository interface {
	UpsertLine(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.CartLine, error)
	SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.CartLine, error)
	DeleteLine(ctx context.Context, userID, itemID uuid.UUID) error
	ListLines(ctx context.Context, userID uuid.UUID) ([]models.CartLineDetail, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

// UpsertLine inserts the (user, item) line or increments its quantity in
// one statement. Concurrent calls for the same pair must net to the sum
// of their increments, so the accumulation happens inside the database,
// never as a read-modify-write in Go.
func (r *cartRepository) UpsertLine(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_lines (user_id, item_id, quantity, added_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, item_id)
		DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING user_id, item_id, quantity, added_at, updated_at
	`

	line := &models.CartLine{}

	err := r.DB.QueryRowContext(dbCtx, query, userID, itemID, quantity).
		Scan(&line.UserID, &line.ItemID, &line.Quantity, &line.AddedAt, &line.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cart line: %w", err)
	}

	return line, nil
}

// SetQuantity overwrites the quantity of an existing line. A missing
// line surfaces as sql.ErrNoRows; it is never created here.
func (r *cartRepository) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_lines
		SET quantity = $3, updated_at = NOW()
		WHERE user_id = $1 AND item_id = $2
		RETURNING user_id, item_id, quantity, added_at, updated_at
	`

	line := &models.CartLine{}

	err := r.DB.QueryRowContext(dbCtx, query, userID, itemID, quantity).
		Scan(&line.UserID, &line.ItemID, &line.Quantity, &line.AddedAt, &line.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to update cart line: %w", err)
	}

	return line, nil
}

func (r *cartRepository) DeleteLine(ctx context.Context, userID, itemID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_lines WHERE user_id = $1 AND item_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
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

func (r *cartRepository) ListLines(ctx context.Context, userID uuid.UUID) ([]models.CartLineDetail, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.user_id, c.item_id, c.quantity, c.added_at, c.updated_at,
		       i.id, i.name, i.description, i.category, i.price, i.stock_quantity, i.image_url, i.created_at, i.updated_at
		FROM cart_lines c
		JOIN items i ON i.id = c.item_id
		WHERE c.user_id = $1
		ORDER BY c.added_at
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}

	defer rows.Close()

	var details []models.CartLineDetail

	for rows.Next() {
		var d models.CartLineDetail

		err := rows.Scan(
			&d.UserID, &d.ItemID, &d.Quantity, &d.AddedAt, &d.UpdatedAt,
			&d.Item.ID, &d.Item.Name, &d.Item.Description, &d.Item.Category,
			&d.Item.Price, &d.Item.StockQuantity, &d.Item.ImageURL,
			&d.Item.CreatedAt, &d.Item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}

		d.LineTotal = float64(d.Quantity) * d.Item.Price

		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart lines: %w", err)
	}

	return details, nil
}

func (r *cartRepository) ClearCart(ctx context.Context, userID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_lines WHERE user_id = $1`

	if _, err := r.DB.ExecContext(dbCtx, query, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
