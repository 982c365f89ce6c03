package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/gophshop/internal/models"
	"github.com/iudanet/gophshop/internal/server/storage"
)

type wishlistStore struct {
	s *Storage
}

// Wishlist returns the wishlist view of the storage
func (s *Storage) Wishlist() storage.WishlistStorage {
	return &wishlistStore{s: s}
}

// AddItem добавляет позицию в избранное пользователя.
// Повторное добавление того же (product_id, type) игнорируется.
func (w *wishlistStore) AddItem(ctx context.Context, userID string, item models.ServerWishlistItem) error {
	query := `
		INSERT OR IGNORE INTO wishlist_items (user_id, product_id, type, name)
		VALUES (?, ?, ?, ?)
	`

	_, err := w.s.db.ExecContext(ctx, query,
		userID,
		item.ProductID,
		string(item.Type),
		item.Name,
	)

	if err != nil {
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return nil
}

// RemoveItem удаляет позицию. Удаление отсутствующей позиции - не ошибка.
func (w *wishlistStore) RemoveItem(ctx context.Context, userID, productID string, itemType models.ItemType) error {
	query := `DELETE FROM wishlist_items WHERE user_id = ? AND product_id = ? AND type = ?`

	if _, err := w.s.db.ExecContext(ctx, query, userID, productID, string(itemType)); err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}

	return nil
}

// ListItems возвращает позиции избранного в порядке добавления
func (w *wishlistStore) ListItems(ctx context.Context, userID string) ([]models.ServerWishlistItem, error) {
	query := `
		SELECT product_id, type, name
		FROM wishlist_items
		WHERE user_id = ?
		ORDER BY rowid
	`

	rows, err := w.s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist items: %w", err)
	}
	defer rows.Close()

	items := []models.ServerWishlistItem{}
	for rows.Next() {
		var item models.ServerWishlistItem
		var itemType string
		if err := rows.Scan(&item.ProductID, &itemType, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		item.Type = models.ItemType(itemType)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wishlist items: %w", err)
	}

	return items, nil
}
