package storage

import (
	"context"

	"github.com/iudanet/gophshop/internal/models"
)

//go:generate moq -out cart_mock.go . CartStorage

// CartStorage defines interface for server-side cart persistence.
// Все мутации идемпотентны: клиент повторяет операции из очереди,
// и повтор не должен приводить к ошибке или дубликату.
type CartStorage interface {
	// AddItem merges the item into the user's cart.
	// Existing position with the same (product_id, type) gets its
	// quantity increased, clamped to models.DefaultMaxQuantity.
	AddItem(ctx context.Context, userID string, item models.ServerCartItem) error

	// SetQuantity sets the absolute quantity of a position,
	// creating it if absent.
	SetQuantity(ctx context.Context, userID string, item models.ServerCartItem) error

	// RemoveItem deletes a position. Deleting an absent position
	// is not an error.
	RemoveItem(ctx context.Context, userID, productID string, itemType models.ItemType) error

	// ListItems returns all cart positions in insertion order
	ListItems(ctx context.Context, userID string) ([]models.ServerCartItem, error)
}
