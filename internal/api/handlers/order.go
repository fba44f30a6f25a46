package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stickjunkey/stickjunkey-backend/internal/api/middleware"
	"github.com/stickjunkey/stickjunkey-backend/internal/errors"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	service "github.com/stickjunkey/stickjunkey-backend/internal/services"
	"github.com/stickjunkey/stickjunkey-backend/internal/utils"
	"github.com/stickjunkey/stickjunkey-backend/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// Checkout godoc
//	@Summary		Create an order from the current cart
//	@Description	Snapshots the cart lines at their current prices, decrements stock and empties the cart.
//	@Tags			Orders
//	@Produce		json
//	@Success		201	{object}	models.Order
//	@Failure		400	{object}	response.ErrorResponse	"Empty cart or insufficient stock"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		order, err := h.orderService.Checkout(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order created", slog.String("orderId", order.ID.String()), slog.Float64("total", order.TotalAmount))
		response.Success(w, http.StatusCreated, order)
	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated order access")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		orderID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid order id"))

			return
		}

		order, err := h.orderService.GetOrder(r.Context(), claims.UserID, orderID)
		if err != nil {
			logger.Error("Failed to fetch order", slog.String("orderId", orderID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated order list")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		page, size := parsePagination(r)

		orders, err := h.orderService.ListOrders(r.Context(), claims.UserID, page, size)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// AdminListOrders accepts ?status= as a filter; "all" and an empty
// value both mean no filter.
func (h *OrderHandler) AdminListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		page, size := parsePagination(r)
		status := r.URL.Query().Get("status")

		orders, err := h.orderService.AdminListOrders(r.Context(), status, page, size)
		if err != nil {
			logger.Error("Failed to list orders", slog.String("status", status), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

func (h *OrderHandler) AdminGetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid order id"))

			return
		}

		order, err := h.orderService.AdminGetOrder(r.Context(), orderID)
		if err != nil {
			logger.Error("Failed to fetch order", slog.String("orderId", orderID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// UpdateStatus godoc
//	@Summary	Transition an order's fulfillment status
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Order ID"
//	@Param		body	body		models.UpdateOrderStatusRequest	true	"Target status and optional tracking number"
//	@Success	200		{object}	models.Order
//	@Failure	400		{object}	response.ErrorResponse	"Unknown status or disallowed transition"
//	@Failure	404		{object}	response.ErrorResponse	"Order not found"
//	@Security	BearerAuth
//	@Router		/admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid order id"))

			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateStatus(r.Context(), orderID, &req)
		if err != nil {
			logger.Error("Failed to update order status",
				slog.String("orderId", orderID.String()), slog.String("status", req.Status), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order status updated", slog.String("orderId", orderID.String()), slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		stats, err := h.orderService.DashboardStats(r.Context())
		if err != nil {
			logger.Error("Failed to build dashboard stats", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}

func parsePagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	return page, size
}
