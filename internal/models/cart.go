package models

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is the (user, item) join record. At most one line exists per
// pair; quantity stays >= 1, a line never persists at zero.
type CartLine struct {
	UserID    uuid.UUID `json:"user_id"`
	ItemID    uuid.UUID `json:"item_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CartLineDetail struct {
	CartLine
	Item      Item    `json:"item"`
	LineTotal float64 `json:"line_total"`
}

type AddCartItemRequest struct {
	Quantity int `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type CartResponse struct {
	Items []CartLineDetail `json:"items"`
	Total float64          `json:"total"`
	Count int              `json:"count"`
}
