package storage

import (
	"context"

	"github.com/iudanet/gophshop/internal/models"
)

//go:generate moq -out wishlist_mock.go . WishlistStorage

// WishlistStorage defines interface for the locally persisted wishlist
type WishlistStorage interface {
	// SaveItem stores or updates a wishlist item
	SaveItem(ctx context.Context, item *models.WishlistItem) error

	// GetItem retrieves a wishlist item by its local ID
	// Returns ErrItemNotFound if item doesn't exist
	GetItem(ctx context.Context, id string) (*models.WishlistItem, error)

	// FindByKey retrieves a wishlist item by its (productID, type) key
	// Returns ErrItemNotFound if item doesn't exist
	FindByKey(ctx context.Context, key models.ItemKey) (*models.WishlistItem, error)

	// ListItems returns all wishlist items in insertion order
	ListItems(ctx context.Context) ([]*models.WishlistItem, error)

	// DeleteItem removes a wishlist item by its local ID
	// Returns ErrItemNotFound if item doesn't exist
	DeleteItem(ctx context.Context, id string) error

	// Clear removes all wishlist items
	Clear(ctx context.Context) error
}
