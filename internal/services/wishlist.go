package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	appErrors "github.com/stickjunkey/stickjunkey-backend/internal/errors"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	repository "github.com/stickjunkey/stickjunkey-backend/internal/repositories"
)

type WishlistService interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) (*models.WishlistResponse, error)
	AddItem(ctx context.Context, userID, itemID uuid.UUID) (*models.WishlistItem, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	Contains(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
	Clear(ctx context.Context, userID uuid.UUID) (int64, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	itemRepo     repository.ItemRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, itemRepo repository.ItemRepository) WishlistService {
	return &wishlistService{wishlistRepo: wishlistRepo, itemRepo: itemRepo}
}

func (s *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) (*models.WishlistResponse, error) {
	items, err := s.wishlistRepo.ListEntries(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch wishlist").WithError(err)
	}

	return &models.WishlistResponse{
		Items: items,
		Count: len(items),
	}, nil
}

// AddItem saves the item once; a repeat add is an error, unlike the
// cart's accumulate-on-repeat behavior.
func (s *wishlistService) AddItem(ctx context.Context, userID, itemID uuid.UUID) (*models.WishlistItem, error) {
	item, err := s.itemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch item").WithError(err)
	}

	inserted, err := s.wishlistRepo.AddEntry(ctx, userID, itemID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to add item to wishlist").WithError(err)
	}

	if !inserted {
		return nil, appErrors.DuplicateEntryError("Item already in wishlist")
	}

	return &models.WishlistItem{
		Item:    *item,
		AddedAt: time.Now(),
	}, nil
}

func (s *wishlistService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	err := s.wishlistRepo.DeleteEntry(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Item not found in wishlist").WithError(err)
		}

		return appErrors.DatabaseError("Failed to remove item from wishlist").WithError(err)
	}

	return nil
}

// Contains is a pure query; absence is a false, not an error.
func (s *wishlistService) Contains(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	exists, err := s.wishlistRepo.Contains(ctx, userID, itemID)
	if err != nil {
		return false, appErrors.DatabaseError("Failed to check wishlist").WithError(err)
	}

	return exists, nil
}

// Clear succeeds on an empty wishlist and reports zero removed.
func (s *wishlistService) Clear(ctx context.Context, userID uuid.UUID) (int64, error) {
	removed, err := s.wishlistRepo.Clear(ctx, userID)
	if err != nil {
		return 0, appErrors.DatabaseError("Failed to clear wishlist").WithError(err)
	}

	return removed, nil
}
