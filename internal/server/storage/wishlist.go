package storage

import (
	"context"

	"github.com/iudanet/gophshop/internal/models"
)

//go:generate moq -out wishlist_mock.go . WishlistStorage

// WishlistStorage defines interface for server-side wishlist persistence.
// Мутации идемпотентны по тем же причинам, что и у корзины.
type WishlistStorage interface {
	// AddItem adds the item to the user's wishlist.
	// Adding an already present (product_id, type) is a no-op.
	AddItem(ctx context.Context, userID string, item models.ServerWishlistItem) error

	// RemoveItem deletes a position. Deleting an absent position
	// is not an error.
	RemoveItem(ctx context.Context, userID, productID string, itemType models.ItemType) error

	// ListItems returns all wishlist positions in insertion order
	ListItems(ctx context.Context, userID string) ([]models.ServerWishlistItem, error)
}
