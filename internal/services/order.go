package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stickjunkey/stickjunkey-backend/internal/api/middleware"
	appErrors "github.com/stickjunkey/stickjunkey-backend/internal/errors"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	repository "github.com/stickjunkey/stickjunkey-backend/internal/repositories"
	"github.com/stickjunkey/stickjunkey-backend/pkg/sendgrid"
)

type OrderService interface {
	Checkout(ctx context.Context, userID uuid.UUID) (*models.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page, size int) (*models.OrderListResponse, error)
	AdminGetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	AdminListOrders(ctx context.Context, statusFilter string, page, size int) (*models.OrderListResponse, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	itemRepo  repository.ItemRepository
	userRepo  repository.UserRepository
	email     sendgrid.EmailService
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, itemRepo repository.ItemRepository, userRepo repository.UserRepository, email sendgrid.EmailService) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		itemRepo:  itemRepo,
		userRepo:  userRepo,
		email:     email,
	}
}

// Checkout snapshots the cart into an immutable order. Prices and item
// display data are copied at this moment; later catalog edits never
// touch the order. Stock is decremented inside the order transaction,
// then the cart is cleared.
func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID) (*models.Order, error) {
	lines, err := s.cartRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(lines) == 0 {
		return nil, appErrors.BadRequestError("Cannot create order from an empty cart")
	}

	order := &models.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ItemID:    line.ItemID,
			Name:      line.Item.Name,
			ImageURL:  line.Item.ImageURL,
			Quantity:  line.Quantity,
			UnitPrice: line.Item.Price,
		})

		order.TotalAmount += float64(line.Quantity) * line.Item.Price
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, appErrors.BadRequestError("Insufficient stock for one or more items").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create order").WithError(err)
	}

	// The order is already committed; a failed clear only leaves a
	// stale cart behind.
	if err := s.cartRepo.ClearCart(ctx, userID); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to clear cart after checkout",
			slog.String("orderId", order.ID.String()), slog.Any("error", err))
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	// Another user's order looks like a missing one.
	if order.UserID != userID {
		return nil, appErrors.NotFoundError("Order not found")
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, page, size int) (*models.OrderListResponse, error) {
	page, size = normalizePage(page, size)

	orders, total, err := s.orderRepo.ListOrdersByUser(ctx, userID, page, size)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return &models.OrderListResponse{Orders: orders, Total: total, Page: page, Size: size}, nil
}

func (s *orderService) AdminGetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

// AdminListOrders accepts "all" or an empty filter for every order.
// "all" is only a filter value here; it is never a status.
func (s *orderService) AdminListOrders(ctx context.Context, statusFilter string, page, size int) (*models.OrderListResponse, error) {
	page, size = normalizePage(page, size)

	var status models.OrderStatus

	if statusFilter != "" && statusFilter != "all" {
		status = models.OrderStatus(statusFilter)
		if !status.Valid() {
			return nil, appErrors.ValidationError(fmt.Sprintf("Invalid status filter: %s", statusFilter))
		}
	}

	orders, total, err := s.orderRepo.ListOrders(ctx, status, page, size)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return &models.OrderListResponse{Orders: orders, Total: total, Page: page, Size: size}, nil
}

// UpdateStatus validates the target against the status machine before
// persisting. Terminal orders and backward moves are rejected.
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	target := models.OrderStatus(req.Status)
	if !target.Valid() {
		return nil, appErrors.ValidationError(fmt.Sprintf("Invalid order status: %s", req.Status))
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, appErrors.ValidationError(fmt.Sprintf("Cannot transition order from %s to %s", order.Status, target))
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, target, req.TrackingNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	updated, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch updated order").WithError(err)
	}

	if target == models.OrderStatusShipped || target == models.OrderStatusDelivered {
		s.notifyStatusChange(ctx, updated)
	}

	return updated, nil
}

// notifyStatusChange emails the order's owner. Best effort: a delivery
// failure is logged and never fails the transition.
func (s *orderService) notifyStatusChange(ctx context.Context, order *models.Order) {
	if s.email == nil || order.UserEmail == "" {
		return
	}

	req := &models.EmailNotificationRequest{
		To:      order.UserEmail,
		Subject: fmt.Sprintf("Your order is %s", order.Status),
		Content: fmt.Sprintf("Hi %s, your order %s is now %s.", order.UserName, order.ID, order.Status),
	}

	if order.TrackingNumber != "" {
		req.Content += fmt.Sprintf(" Tracking number: %s.", order.TrackingNumber)
	}

	if err := s.email.Send(ctx, req); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to send order status email",
			slog.String("orderId", order.ID.String()), slog.Any("error", err))
	}
}

func (s *orderService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	totalOrders, err := s.orderRepo.CountOrders(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to count orders").WithError(err)
	}

	totalUsers, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to count users").WithError(err)
	}

	totalItems, err := s.itemRepo.CountItems(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to count items").WithError(err)
	}

	revenue, err := s.orderRepo.RevenueByStatus(ctx, models.OrderStatusDelivered)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to sum revenue").WithError(err)
	}

	byStatus, err := s.orderRepo.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to count orders by status").WithError(err)
	}

	recent, err := s.orderRepo.ListRecentOrders(ctx, 5)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch recent orders").WithError(err)
	}

	return &models.DashboardStats{
		TotalOrders:    totalOrders,
		TotalUsers:     totalUsers,
		TotalItems:     totalItems,
		TotalRevenue:   revenue,
		OrdersByStatus: byStatus,
		RecentOrders:   recent,
	}, nil
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}

	if size < 1 || size > 50 {
		size = 10
	}

	return page, size
}
