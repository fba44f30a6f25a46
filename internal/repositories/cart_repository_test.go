package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	repository "github.com/stickjunkey/stickjunkey-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCartRepo(db)
	assert.NotNil(t, repo, "NewCartRepo should return a non-nil repository")
}

func TestCartRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCartRepo(db)
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	upsertSQL := regexp.QuoteMeta(`DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity`)

	t.Run("UpsertLine_InsertsNewLine", func(t *testing.T) {
		// Arrange
		now := time.Now()
		rows := sqlmock.NewRows([]string{"user_id", "item_id", "quantity", "added_at", "updated_at"}).
			AddRow(userID, itemID, 2, now, now)
		mock.ExpectQuery(upsertSQL).
			WithArgs(userID, itemID, 2).
			WillReturnRows(rows)

		// Act
		line, err := repo.UpsertLine(ctx, userID, itemID, 2)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, userID, line.UserID)
		assert.Equal(t, itemID, line.ItemID)
		assert.Equal(t, 2, line.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpsertLine_IncrementsExistingLine", func(t *testing.T) {
		// Arrange: database returns the summed quantity, not the increment
		now := time.Now()
		rows := sqlmock.NewRows([]string{"user_id", "item_id", "quantity", "added_at", "updated_at"}).
			AddRow(userID, itemID, 5, now.Add(-time.Hour), now)
		mock.ExpectQuery(upsertSQL).
			WithArgs(userID, itemID, 3).
			WillReturnRows(rows)

		// Act
		line, err := repo.UpsertLine(ctx, userID, itemID, 3)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 5, line.Quantity, "quantity should reflect the accumulated value")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpsertLine_DatabaseError", func(t *testing.T) {
		// Arrange
		dbError := errors.New("connection refused")
		mock.ExpectQuery(upsertSQL).
			WithArgs(userID, itemID, 1).
			WillReturnError(dbError)

		// Act
		line, err := repo.UpsertLine(ctx, userID, itemID, 1)

		// Assert
		require.Error(t, err)
		assert.Nil(t, line)
		assert.ErrorIs(t, err, dbError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SetQuantity_Success", func(t *testing.T) {
		// Arrange
		now := time.Now()
		expectedSQL := regexp.QuoteMeta(`UPDATE cart_lines`)
		rows := sqlmock.NewRows([]string{"user_id", "item_id", "quantity", "added_at", "updated_at"}).
			AddRow(userID, itemID, 7, now.Add(-time.Hour), now)
		mock.ExpectQuery(expectedSQL).
			WithArgs(userID, itemID, 7).
			WillReturnRows(rows)

		// Act
		line, err := repo.SetQuantity(ctx, userID, itemID, 7)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 7, line.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SetQuantity_LineNotFound", func(t *testing.T) {
		// Arrange: updating a line that was never added
		expectedSQL := regexp.QuoteMeta(`UPDATE cart_lines`)
		mock.ExpectQuery(expectedSQL).
			WithArgs(userID, itemID, 4).
			WillReturnError(sql.ErrNoRows)

		// Act
		line, err := repo.SetQuantity(ctx, userID, itemID, 4)

		// Assert
		require.Error(t, err)
		assert.Equal(t, sql.ErrNoRows, err)
		assert.Nil(t, line)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteLine_Success", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`DELETE FROM cart_lines WHERE user_id = $1 AND item_id = $2`)
		mock.ExpectExec(expectedSQL).
			WithArgs(userID, itemID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.DeleteLine(ctx, userID, itemID)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteLine_NotFound", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`DELETE FROM cart_lines WHERE user_id = $1 AND item_id = $2`)
		mock.ExpectExec(expectedSQL).
			WithArgs(userID, itemID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.DeleteLine(ctx, userID, itemID)

		// Assert
		require.Error(t, err)
		assert.Equal(t, sql.ErrNoRows, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListLines_Success", func(t *testing.T) {
		// Arrange
		now := time.Now()
		expectedSQL := regexp.QuoteMeta(`JOIN items i ON i.id = c.item_id`)
		rows := sqlmock.NewRows([]string{
			"user_id", "item_id", "quantity", "added_at", "updated_at",
			"id", "name", "description", "category", "price", "stock_quantity", "image_url", "created_at", "updated_at",
		}).
			AddRow(userID, itemID, 3, now.Add(-time.Hour), now,
				itemID, "Holographic Cat", "A shiny cat sticker", "animals", 4.50, 100, "https://cdn.example.com/cat.png", now, now)
		mock.ExpectQuery(expectedSQL).
			WithArgs(userID).
			WillReturnRows(rows)

		// Act
		lines, err := repo.ListLines(ctx, userID)

		// Assert
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
		assert.Equal(t, "Holographic Cat", lines[0].Item.Name)
		assert.Equal(t, 13.50, lines[0].LineTotal, "line total should be quantity times unit price")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListLines_Empty", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`JOIN items i ON i.id = c.item_id`)
		rows := sqlmock.NewRows([]string{
			"user_id", "item_id", "quantity", "added_at", "updated_at",
			"id", "name", "description", "category", "price", "stock_quantity", "image_url", "created_at", "updated_at",
		})
		mock.ExpectQuery(expectedSQL).
			WithArgs(userID).
			WillReturnRows(rows)

		// Act
		lines, err := repo.ListLines(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, lines)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ClearCart_Success", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`DELETE FROM cart_lines WHERE user_id = $1`)
		mock.ExpectExec(expectedSQL).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 4))

		// Act
		err := repo.ClearCart(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
