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

func TestWishlistRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewWishlistRepo(db)
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	addSQL := regexp.QuoteMeta(`ON CONFLICT (user_id, item_id) DO NOTHING`)

	t.Run("AddEntry_Inserted", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(addSQL).
			WithArgs(userID, itemID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		inserted, err := repo.AddEntry(ctx, userID, itemID)

		// Assert
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AddEntry_Duplicate", func(t *testing.T) {
		// Arrange: conflicting insert affects zero rows
		mock.ExpectExec(addSQL).
			WithArgs(userID, itemID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		inserted, err := repo.AddEntry(ctx, userID, itemID)

		// Assert
		require.NoError(t, err, "a duplicate add is not a database error")
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AddEntry_DatabaseError", func(t *testing.T) {
		// Arrange
		dbError := errors.New("connection reset")
		mock.ExpectExec(addSQL).
			WithArgs(userID, itemID).
			WillReturnError(dbError)

		// Act
		inserted, err := repo.AddEntry(ctx, userID, itemID)

		// Assert
		require.Error(t, err)
		assert.False(t, inserted)
		assert.ErrorIs(t, err, dbError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteEntry_Success", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`DELETE FROM wishlist_entries WHERE user_id = $1 AND item_id = $2`)
		mock.ExpectExec(expectedSQL).
			WithArgs(userID, itemID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.DeleteEntry(ctx, userID, itemID)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteEntry_NotFound", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`DELETE FROM wishlist_entries WHERE user_id = $1 AND item_id = $2`)
		mock.ExpectExec(expectedSQL).
			WithArgs(userID, itemID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.DeleteEntry(ctx, userID, itemID)

		// Assert
		require.Error(t, err)
		assert.Equal(t, sql.ErrNoRows, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListEntries_Success", func(t *testing.T) {
		// Arrange
		now := time.Now()
		expectedSQL := regexp.QuoteMeta(`JOIN items i ON i.id = w.item_id`)
		rows := sqlmock.NewRows([]string{
			"added_at",
			"id", "name", "description", "category", "price", "stock_quantity", "image_url", "created_at", "updated_at",
		}).
			AddRow(now, itemID, "Retro Gameboy", "Pixel art sticker", "gaming", 3.25, 40, "https://cdn.example.com/gb.png", now, now)
		mock.ExpectQuery(expectedSQL).
			WithArgs(userID).
			WillReturnRows(rows)

		// Act
		items, err := repo.ListEntries(ctx, userID)

		// Assert
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Retro Gameboy", items[0].Item.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Contains_Present", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM wishlist_entries WHERE user_id = $1 AND item_id = $2)`)
		mock.ExpectQuery(expectedSQL).
			WithArgs(userID, itemID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		// Act
		exists, err := repo.Contains(ctx, userID, itemID)

		// Assert
		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Contains_Absent", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM wishlist_entries WHERE user_id = $1 AND item_id = $2)`)
		mock.ExpectQuery(expectedSQL).
			WithArgs(userID, itemID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		// Act
		exists, err := repo.Contains(ctx, userID, itemID)

		// Assert
		require.NoError(t, err, "absence is an answer, not an error")
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Clear_ReturnsDeletedCount", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`DELETE FROM wishlist_entries WHERE user_id = $1`)
		mock.ExpectExec(expectedSQL).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 3))

		// Act
		deleted, err := repo.Clear(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Clear_EmptyWishlist", func(t *testing.T) {
		// Arrange
		expectedSQL := regexp.QuoteMeta(`DELETE FROM wishlist_entries WHERE user_id = $1`)
		mock.ExpectExec(expectedSQL).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		deleted, err := repo.Clear(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
