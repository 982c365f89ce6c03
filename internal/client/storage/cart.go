package storage

import (
	"context"

	"github.com/iudanet/gophshop/internal/models"
)

//go:generate moq -out cart_mock.go . CartStorage

// CartStorage defines interface for the locally persisted cart.
// Локальная корзина — источник правды для UI; серверная копия
// догоняет её через очередь операций.
type CartStorage interface {
	// SaveItem stores or updates a cart item
	SaveItem(ctx context.Context, item *models.CartItem) error

	// GetItem retrieves a cart item by its local ID
	// Returns ErrItemNotFound if item doesn't exist
	GetItem(ctx context.Context, id string) (*models.CartItem, error)

	// FindByKey retrieves a cart item by its (productID, type) key
	// Returns ErrItemNotFound if item doesn't exist
	FindByKey(ctx context.Context, key models.ItemKey) (*models.CartItem, error)

	// ListItems returns all cart items in insertion order
	ListItems(ctx context.Context) ([]*models.CartItem, error)

	// DeleteItem removes a cart item by its local ID
	// Returns ErrItemNotFound if item doesn't exist
	DeleteItem(ctx context.Context, id string) error

	// Clear removes all cart items
	Clear(ctx context.Context) error
}
