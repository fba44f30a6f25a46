package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/stickjunkey/stickjunkey-backend/internal/api/middleware"
	"github.com/stickjunkey/stickjunkey-backend/internal/errors"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	service "github.com/stickjunkey/stickjunkey-backend/internal/services"
	"github.com/stickjunkey/stickjunkey-backend/internal/utils/response"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

func (h *WishlistHandler) GetWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated wishlist access")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		wishlist, err := h.wishlistService.GetWishlist(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to fetch wishlist", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, wishlist)
	}
}

// AddItem answers 400 on a repeat add; the wishlist never accumulates.
func (h *WishlistHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated wishlist add")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		itemID, err := uuid.Parse(r.PathValue("itemId"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid item id"))

			return
		}

		item, err := h.wishlistService.AddItem(r.Context(), claims.UserID, itemID)
		if err != nil {
			logger.Error("Failed to add item to wishlist", slog.String("itemId", itemID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Item added to wishlist", slog.String("itemId", itemID.String()))
		response.Success(w, http.StatusCreated, item)
	}
}

func (h *WishlistHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated wishlist remove")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		itemID, err := uuid.Parse(r.PathValue("itemId"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid item id"))

			return
		}

		if err := h.wishlistService.RemoveItem(r.Context(), claims.UserID, itemID); err != nil {
			logger.Error("Failed to remove item from wishlist", slog.String("itemId", itemID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "Item removed from wishlist"})
	}
}

// Check never errors on absence.
func (h *WishlistHandler) Check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated wishlist check")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		itemID, err := uuid.Parse(r.PathValue("itemId"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid item id"))

			return
		}

		exists, err := h.wishlistService.Contains(r.Context(), claims.UserID, itemID)
		if err != nil {
			logger.Error("Failed to check wishlist", slog.String("itemId", itemID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.WishlistCheckResponse{IsInWishlist: exists})
	}
}

func (h *WishlistHandler) Clear() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated wishlist clear")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		removed, err := h.wishlistService.Clear(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to clear wishlist", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Wishlist cleared", slog.Int64("removed", removed))
		response.Success(w, http.StatusOK, models.ClearWishlistResponse{Removed: removed})
	}
}
