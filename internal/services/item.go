package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stickjunkey/stickjunkey-backend/internal/api/middleware"
	"github.com/stickjunkey/stickjunkey-backend/internal/cache"
	appErrors "github.com/stickjunkey/stickjunkey-backend/internal/errors"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	repository "github.com/stickjunkey/stickjunkey-backend/internal/repositories"
)

const itemCachePrefix = "item"

type ItemService interface {
	CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error)
	ListItems(ctx context.Context, category string, page, size int) (*models.ListItemsResponse, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req *models.UpdateItemRequest) (*models.Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type itemService struct {
	repo      repository.ItemRepository
	cache     cache.Cache
	sanitizer *bluemonday.Policy
}

func NewItemService(repo repository.ItemRepository, itemCache cache.Cache) ItemService {
	return &itemService{
		repo:      repo,
		cache:     itemCache,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// CreateItem rejects a duplicate name; catalog text fields are stripped
// of markup before they are stored.
func (s *itemService) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.Item, error) {
	name := s.sanitizer.Sanitize(req.Name)

	existing, _ := s.repo.GetItemByName(ctx, name)
	if existing != nil {
		return nil, appErrors.DuplicateEntryError("Item already exists")
	}

	item := &models.Item{
		ID:            uuid.New(),
		Name:          name,
		Description:   s.sanitizer.Sanitize(req.Description),
		Category:      s.sanitizer.Sanitize(req.Category),
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, appErrors.DatabaseError("Failed to create item").WithError(err)
	}

	return item, nil
}

// GetItem reads through the cache; a cache failure degrades to the
// database, it never fails the request.
func (s *itemService) GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	key := cache.Key(itemCachePrefix, id.String())

	var cached models.Item

	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Item cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	if hit {
		return &cached, nil
	}

	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch item").WithError(err)
	}

	if err := s.cache.Set(ctx, key, item, 0); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Item cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, category string, page, size int) (*models.ListItemsResponse, error) {
	page, size = normalizePage(page, size)

	items, total, err := s.repo.ListItems(ctx, category, page, size)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch items").WithError(err)
	}

	return &models.ListItemsResponse{Items: items, Total: total, Page: page, Size: size}, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id uuid.UUID, req *models.UpdateItemRequest) (*models.Item, error) {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch item").WithError(err)
	}

	if req.Name != nil {
		item.Name = s.sanitizer.Sanitize(*req.Name)
	}

	if req.Description != nil {
		item.Description = s.sanitizer.Sanitize(*req.Description)
	}

	if req.Category != nil {
		item.Category = s.sanitizer.Sanitize(*req.Category)
	}

	if req.Price != nil {
		item.Price = *req.Price
	}

	if req.StockQuantity != nil {
		item.StockQuantity = *req.StockQuantity
	}

	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update item").WithError(err)
	}

	s.invalidate(ctx, id)

	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Item not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete item").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *itemService) invalidate(ctx context.Context, id uuid.UUID) {
	key := cache.Key(itemCachePrefix, id.String())

	if err := s.cache.Delete(ctx, key); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Item cache invalidation failed", slog.String("key", key), slog.Any("error", err))
	}
}
