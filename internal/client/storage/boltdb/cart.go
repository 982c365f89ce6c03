package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophshop/internal/client/storage"
	"github.com/iudanet/gophshop/internal/models"
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

// SaveItem stores or updates a cart item
func (c *cartStore) SaveItem(ctx context.Context, item *models.CartItem) error {
	return c.s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart_items bucket not found")
		}
		return putItem(bucket, item.ID, item)
	})
}

// GetItem retrieves a cart item by its local ID
func (c *cartStore) GetItem(ctx context.Context, id string) (*models.CartItem, error) {
	var item *models.CartItem

	err := c.s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart_items bucket not found")
		}

		_, data, err := findItemByID(bucket, id)
		if err != nil {
			return err
		}

		item = &models.CartItem{}
		if err := json.Unmarshal(data, item); err != nil {
			return fmt.Errorf("failed to unmarshal cart item: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return item, nil
}

// FindByKey retrieves a cart item by its (productID, type) key
func (c *cartStore) FindByKey(ctx context.Context, key models.ItemKey) (*models.CartItem, error) {
	var item *models.CartItem

	err := c.s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart_items bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			if item != nil {
				return nil
			}
			candidate := &models.CartItem{}
			if err := json.Unmarshal(v, candidate); err != nil {
				return fmt.Errorf("failed to unmarshal cart item: %w", err)
			}
			if candidate.Key() == key {
				item = candidate
			}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, storage.ErrItemNotFound
	}

	return item, nil
}

// ListItems returns all cart items in insertion order
func (c *cartStore) ListItems(ctx context.Context) ([]*models.CartItem, error) {
	items := []*models.CartItem{}

	err := c.s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart_items bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			item := &models.CartItem{}
			if err := json.Unmarshal(v, item); err != nil {
				return fmt.Errorf("failed to unmarshal cart item: %w", err)
			}
			items = append(items, item)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return items, nil
}

// DeleteItem removes a cart item by its local ID
func (c *cartStore) DeleteItem(ctx context.Context, id string) error {
	return c.s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart_items bucket not found")
		}

		key, _, err := findItemByID(bucket, id)
		if err != nil {
			return err
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete cart item: %w", err)
		}
		return nil
	})
}

// Clear removes all cart items
func (c *cartStore) Clear(ctx context.Context) error {
	return c.s.clearBucket(bucketCart)
}

// clearBucket пересоздает bucket, сбрасывая и его sequence
func (s *Storage) clearBucket(name []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(name); err != nil {
			return fmt.Errorf("failed to delete %s bucket: %w", name, err)
		}
		if _, err := tx.CreateBucket(name); err != nil {
			return fmt.Errorf("failed to recreate %s bucket: %w", name, err)
		}
		return nil
	})
}

// itemEnvelope достает локальный ID из сериализованной позиции,
// не завися от конкретного типа (CartItem/WishlistItem)
type itemEnvelope struct {
	ID string `json:"id"`
}

// putItem кладет позицию в bucket: существующая позиция перезаписывается
// по своему старому ключу, новая получает следующий порядковый номер
func putItem(bucket *bbolt.Bucket, id string, item any) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	key, _, err := findItemByID(bucket, id)
	if err != nil {
		if !errors.Is(err, storage.ErrItemNotFound) {
			return err
		}
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}
		key = seqKey(seq)
	}

	if err := bucket.Put(key, data); err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

// findItemByID ищет позицию по локальному ID, возвращает ключ и значение
func findItemByID(bucket *bbolt.Bucket, id string) ([]byte, []byte, error) {
	cursor := bucket.Cursor()
	for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
		var env itemEnvelope
		if err := json.Unmarshal(v, &env); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		if env.ID == id {
			// Копируем: bolt переиспользует буферы курсора
			key := make([]byte, len(k))
			copy(key, k)
			val := make([]byte, len(v))
			copy(val, v)
			return key, val, nil
		}
	}
	return nil, nil, storage.ErrItemNotFound
}
