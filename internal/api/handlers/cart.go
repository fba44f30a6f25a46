package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stickjunkey/stickjunkey-backend/internal/api/middleware"
	"github.com/stickjunkey/stickjunkey-backend/internal/errors"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	service "github.com/stickjunkey/stickjunkey-backend/internal/services"
	"github.com/stickjunkey/stickjunkey-backend/internal/utils"
	"github.com/stickjunkey/stickjunkey-backend/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary	List the current user's cart
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	models.CartResponse
//	@Security	BearerAuth
//	@Router		/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated cart access")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to fetch cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary	Add an item to the cart, or increment its quantity
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		itemId	path		string						true	"Item ID"
//	@Param		body	body		models.AddCartItemRequest	false	"Quantity (defaults to 1)"
//	@Success	201		{object}	models.CartLineDetail
//	@Security	BearerAuth
//	@Router		/cart/{itemId} [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated cart add")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		itemID, err := uuid.Parse(r.PathValue("itemId"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid item id"))

			return
		}

		// The body is optional here: an absent body means quantity 1.
		req := models.AddCartItemRequest{}
		if r.ContentLength > 0 {
			if !utils.ParseAndValidate(r, w, &req, h.validator) {
				return
			}
		}

		line, err := h.cartService.AddItem(r.Context(), claims.UserID, itemID, &req)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.String("itemId", itemID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Item added to cart", slog.String("itemId", itemID.String()), slog.Int("quantity", line.Quantity))
		response.Success(w, http.StatusCreated, line)
	}
}

// UpdateQuantity overwrites the line's quantity, it never increments.
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated cart update")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		itemID, err := uuid.Parse(r.PathValue("itemId"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid item id"))

			return
		}

		var req models.UpdateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		line, err := h.cartService.UpdateQuantity(r.Context(), claims.UserID, itemID, &req)
		if err != nil {
			logger.Error("Failed to update cart", slog.String("itemId", itemID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, line)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated cart remove")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		itemID, err := uuid.Parse(r.PathValue("itemId"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid item id"))

			return
		}

		if err := h.cartService.RemoveItem(r.Context(), claims.UserID, itemID); err != nil {
			logger.Error("Failed to remove item from cart", slog.String("itemId", itemID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
	}
}
