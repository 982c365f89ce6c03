package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/gophshop/internal/models"
	"github.com/iudanet/gophshop/internal/server/storage"
)

// cartStore отделяет методы корзины от методов избранного:
// оба набора живут на одном *Storage, но реализуют разные интерфейсы
type cartStore struct {
	s *Storage
}

// Cart returns the cart view of the storage
func (s *Storage) Cart() storage.CartStorage {
	return &cartStore{s: s}
}

// AddItem сливает позицию в корзину пользователя.
// Повторное добавление того же (product_id, type) увеличивает количество,
// но не выше models.DefaultMaxQuantity. rowid при upsert не меняется,
// поэтому позиция сохраняет место в порядке добавления.
func (c *cartStore) AddItem(ctx context.Context, userID string, item models.ServerCartItem) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, type, name, price, quantity)
		VALUES (?, ?, ?, ?, ?, MIN(?, ?))
		ON CONFLICT(user_id, product_id, type) DO UPDATE SET
			quantity = MIN(cart_items.quantity + excluded.quantity, ?),
			name = excluded.name,
			price = excluded.price
	`

	_, err := c.s.db.ExecContext(ctx, query,
		userID,
		item.ProductID,
		string(item.Type),
		item.Name,
		item.Price,
		item.Quantity,
		models.DefaultMaxQuantity,
		models.DefaultMaxQuantity,
	)

	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

// SetQuantity устанавливает абсолютное количество позиции.
// Отсутствующая позиция создается: клиент повторяет операции из очереди,
// и update после потерянного add не должен падать.
func (c *cartStore) SetQuantity(ctx context.Context, userID string, item models.ServerCartItem) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, type, name, price, quantity)
		VALUES (?, ?, ?, ?, ?, MIN(?, ?))
		ON CONFLICT(user_id, product_id, type) DO UPDATE SET
			quantity = MIN(excluded.quantity, ?)
	`

	_, err := c.s.db.ExecContext(ctx, query,
		userID,
		item.ProductID,
		string(item.Type),
		item.Name,
		item.Price,
		item.Quantity,
		models.DefaultMaxQuantity,
		models.DefaultMaxQuantity,
	)

	if err != nil {
		return fmt.Errorf("failed to set cart quantity: %w", err)
	}

	return nil
}

// RemoveItem удаляет позицию. Удаление отсутствующей позиции - не ошибка.
func (c *cartStore) RemoveItem(ctx context.Context, userID, productID string, itemType models.ItemType) error {
	query := `DELETE FROM cart_items WHERE user_id = ? AND product_id = ? AND type = ?`

	if _, err := c.s.db.ExecContext(ctx, query, userID, productID, string(itemType)); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	return nil
}

// ListItems возвращает позиции корзины в порядке добавления
func (c *cartStore) ListItems(ctx context.Context, userID string) ([]models.ServerCartItem, error) {
	query := `
		SELECT product_id, type, name, price, quantity
		FROM cart_items
		WHERE user_id = ?
		ORDER BY rowid
	`

	rows, err := c.s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := []models.ServerCartItem{}
	for rows.Next() {
		var item models.ServerCartItem
		var itemType string
		if err := rows.Scan(&item.ProductID, &itemType, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		item.Type = models.ItemType(itemType)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart items: %w", err)
	}

	return items, nil
}
