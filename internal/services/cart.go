package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	appErrors "github.com/stickjunkey/stickjunkey-backend/internal/errors"
	"github.com/stickjunkey/stickjunkey-backend/internal/models"
	repository "github.com/stickjunkey/stickjunkey-backend/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.CartResponse, error)
	AddItem(ctx context.Context, userID, itemID uuid.UUID, req *models.AddCartItemRequest) (*models.CartLineDetail, error)
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, req *models.UpdateCartItemRequest) (*models.CartLineDetail, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
}

type cartService struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
}

func NewCartService(cartRepo repository.CartRepository, itemRepo repository.ItemRepository) CartService {
	return &cartService{cartRepo: cartRepo, itemRepo: itemRepo}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.CartResponse, error) {
	lines, err := s.cartRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	resp := &models.CartResponse{
		Items: lines,
		Count: len(lines),
	}

	for _, line := range lines {
		resp.Total += line.LineTotal
	}

	return resp, nil
}

// AddItem accumulates: adding the same item twice sums the quantities.
// Overwriting is UpdateQuantity's job.
func (s *cartService) AddItem(ctx context.Context, userID, itemID uuid.UUID, req *models.AddCartItemRequest) (*models.CartLineDetail, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if quantity < 1 {
		return nil, appErrors.ValidationError("Quantity must be at least 1")
	}

	item, err := s.itemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch item").WithError(err)
	}

	line, err := s.cartRepo.UpsertLine(ctx, userID, itemID, quantity)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	return &models.CartLineDetail{
		CartLine:  *line,
		Item:      *item,
		LineTotal: float64(line.Quantity) * item.Price,
	}, nil
}

// UpdateQuantity overwrites the line's quantity. A quantity below one is
// rejected before anything is touched; the line is never deleted here.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, req *models.UpdateCartItemRequest) (*models.CartLineDetail, error) {
	if req.Quantity < 1 {
		return nil, appErrors.ValidationError("Quantity must be at least 1")
	}

	item, err := s.itemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch item").WithError(err)
	}

	line, err := s.cartRepo.SetQuantity(ctx, userID, itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Item not found in cart").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update cart").WithError(err)
	}

	return &models.CartLineDetail{
		CartLine:  *line,
		Item:      *item,
		LineTotal: float64(line.Quantity) * item.Price,
	}, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	err := s.cartRepo.DeleteLine(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Item not found in cart").WithError(err)
		}

		return appErrors.DatabaseError("Failed to remove item from cart").WithError(err)
	}

	return nil
}
