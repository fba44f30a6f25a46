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
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	repository "github.com/stickjunkey/stickjunkey-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_CreateOrder(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepo(db)
	ctx := context.Background()

	insertOrderSQL := regexp.QuoteMeta(`INSERT INTO orders`)
	stockSQL := regexp.QuoteMeta(`WHERE id = $1 AND stock_quantity >= $2`)
	insertItemSQL := regexp.QuoteMeta(`INSERT INTO order_items`)

	newOrder := func() *models.Order {
		return &models.Order{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			TotalAmount: 17.25,
			Status:      models.OrderStatusPending,
			Items: []models.OrderItem{
				{ItemID: uuid.New(), Name: "Holographic Cat", ImageURL: "https://cdn.example.com/cat.png", Quantity: 3, UnitPrice: 4.50},
				{ItemID: uuid.New(), Name: "Retro Gameboy", ImageURL: "https://cdn.example.com/gb.png", Quantity: 1, UnitPrice: 3.75},
			},
		}
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		order := newOrder()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WithArgs(order.ID, order.UserID, order.TotalAmount, order.Status).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		for _, item := range order.Items {
			mock.ExpectExec(stockSQL).
				WithArgs(item.ItemID, item.Quantity).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(insertItemSQL).
				WithArgs(order.ID, item.ItemID, item.Name, item.ImageURL, item.Quantity, item.UnitPrice).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}

		mock.ExpectCommit()

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		require.NoError(t, err)
		assert.WithinDuration(t, now, order.CreatedAt, time.Second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsufficientStock_RollsBack", func(t *testing.T) {
		// Arrange: the conditional stock decrement matches zero rows
		order := newOrder()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WithArgs(order.ID, order.UserID, order.TotalAmount, order.Status).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec(stockSQL).
			WithArgs(order.Items[0].ItemID, order.Items[0].Quantity).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertError_RollsBack", func(t *testing.T) {
		// Arrange
		order := newOrder()
		dbError := errors.New("constraint violation")

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrderSQL).
			WithArgs(order.ID, order.UserID, order.TotalAmount, order.Status).
			WillReturnError(dbError)
		mock.ExpectRollback()

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, dbError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrderByID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepo(db)
	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()

	orderSQL := regexp.QuoteMeta(`JOIN users u ON u.id = o.user_id`)
	itemsSQL := regexp.QuoteMeta(`FROM order_items`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		now := time.Now()
		orderRows := sqlmock.NewRows([]string{
			"id", "user_id", "name", "email", "total_amount", "status", "tracking_number", "created_at", "updated_at",
		}).
			AddRow(orderID, userID, "Test User", "test@example.com", 9.00, "shipped", "TRACK123", now, now)
		itemRows := sqlmock.NewRows([]string{"item_id", "name", "image_url", "quantity", "unit_price"}).
			AddRow(uuid.New(), "Holographic Cat", "https://cdn.example.com/cat.png", 2, 4.50)

		mock.ExpectQuery(orderSQL).WithArgs(orderID).WillReturnRows(orderRows)
		mock.ExpectQuery(itemsSQL).WithArgs(orderID).WillReturnRows(itemRows)

		// Act
		order, err := repo.GetOrderByID(ctx, orderID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, orderID, order.ID)
		assert.Equal(t, "Test User", order.UserName)
		assert.Equal(t, models.OrderStatusShipped, order.Status)
		assert.Equal(t, "TRACK123", order.TrackingNumber)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 2, order.Items[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(orderSQL).WithArgs(orderID).WillReturnError(sql.ErrNoRows)

		// Act
		order, err := repo.GetOrderByID(ctx, orderID)

		// Assert
		require.Error(t, err)
		assert.Equal(t, sql.ErrNoRows, err)
		assert.Nil(t, order)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepo(db)
	ctx := context.Background()
	orderID := uuid.New()

	updateSQL := regexp.QuoteMeta(`tracking_number = COALESCE(NULLIF($3, ''), tracking_number)`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(updateSQL).
			WithArgs(orderID, models.OrderStatusShipped, "TRACK456").
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusShipped, "TRACK456")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyTrackingNumberKeepsExisting", func(t *testing.T) {
		// Arrange: the COALESCE/NULLIF pair handles this in SQL; the
		// repository just passes the empty string through
		mock.ExpectExec(updateSQL).
			WithArgs(orderID, models.OrderStatusDelivered, "").
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusDelivered, "")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(updateSQL).
			WithArgs(orderID, models.OrderStatusShipped, "").
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusShipped, "")

		// Assert
		require.Error(t, err)
		assert.Equal(t, sql.ErrNoRows, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_DashboardQueries(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewOrderRepo(db)
	ctx := context.Background()

	t.Run("CountOrders", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM orders`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		// Act
		total, err := repo.CountOrders(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(42), total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RevenueByStatus_NoOrders", func(t *testing.T) {
		// Arrange: COALESCE turns the empty SUM into zero
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = $1`)).
			WithArgs(models.OrderStatusDelivered).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

		// Act
		revenue, err := repo.RevenueByStatus(ctx, models.OrderStatusDelivered)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 0.0, revenue)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CountOrdersByStatus", func(t *testing.T) {
		// Arrange
		rows := sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 3).
			AddRow("shipped", 1)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, COUNT(*) FROM orders GROUP BY status`)).
			WillReturnRows(rows)

		// Act
		counts, err := repo.CountOrdersByStatus(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3), counts[models.OrderStatusPending])
		assert.Equal(t, int64(1), counts[models.OrderStatusShipped])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
