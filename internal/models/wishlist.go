package models

import (
	"time"
)

// WishlistItem pairs the saved item with when it was saved. The
// underlying entry is existence-only, there is nothing else to carry.
type WishlistItem struct {
	Item    Item      `json:"item"`
	AddedAt time.Time `json:"added_at"`
}

type WishlistResponse struct {
	Items []WishlistItem `json:"items"`
	Count int            `json:"count"`
}

type WishlistCheckResponse struct {
	IsInWishlist bool `json:"is_in_wishlist"`
}

type ClearWishlistResponse struct {
	Removed int64 `json:"removed"`
}
