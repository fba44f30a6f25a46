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

type ItemHandler struct {
	itemService service.ItemService
	validator   *validator.Validate
}

func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService, validator: validator.New()}
}

func (h *ItemHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		itemID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid item id"))

			return
		}

		item, err := h.itemService.GetItem(r.Context(), itemID)
		if err != nil {
			logger.Error("Failed to fetch item", slog.String("itemId", itemID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

// ListItems serves both the public catalog (?category=) and the admin
// listing; an empty category means everything.
func (h *ItemHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		page, size := parsePagination(r)
		category := r.URL.Query().Get("category")

		items, err := h.itemService.ListItems(r.Context(), category, page, size)
		if err != nil {
			logger.Error("Failed to list items", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

func (h *ItemHandler) CreateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.itemService.CreateItem(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create item", slog.String("name", req.Name), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Item created", slog.String("itemId", item.ID.String()))
		response.Success(w, http.StatusCreated, item)
	}
}

func (h *ItemHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		itemID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid item id"))

			return
		}

		var req models.UpdateItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.itemService.UpdateItem(r.Context(), itemID, &req)
		if err != nil {
			logger.Error("Failed to update item", slog.String("itemId", itemID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Item updated", slog.String("itemId", item.ID.String()))
		response.Success(w, http.StatusOK, item)
	}
}

func (h *ItemHandler) DeleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		itemID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.ValidationError("Invalid item id"))

			return
		}

		if err := h.itemService.DeleteItem(r.Context(), itemID); err != nil {
			logger.Error("Failed to delete item", slog.String("itemId", itemID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Item deleted", slog.String("itemId", itemID.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "Item deleted"})
	}
}
