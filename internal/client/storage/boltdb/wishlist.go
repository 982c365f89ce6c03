package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophshop/internal/client/storage"
	"github.com/iudanet/gophshop/internal/models"
)

// wishlistStore отделяет методы избранного от методов корзины:
// оба набора живут на одном *Storage, но реализуют разные интерфейсы
type wishlistStore struct {
	s *Storage
}

// Wishlist returns the wishlist view of the storage
func (s *Storage) Wishlist() storage.WishlistStorage {
	return &wishlistStore{s: s}
}

// SaveItem stores or updates a wishlist item
func (w *wishlistStore) SaveItem(ctx context.Context, item *models.WishlistItem) error {
	return w.s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWishlist)
		if bucket == nil {
			return fmt.Errorf("wishlist_items bucket not found")
		}
		return putItem(bucket, item.ID, item)
	})
}

// GetItem retrieves a wishlist item by its local ID
func (w *wishlistStore) GetItem(ctx context.Context, id string) (*models.WishlistItem, error) {
	var item *models.WishlistItem

	err := w.s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWishlist)
		if bucket == nil {
			return fmt.Errorf("wishlist_items bucket not found")
		}

		_, data, err := findItemByID(bucket, id)
		if err != nil {
			return err
		}

		item = &models.WishlistItem{}
		if err := json.Unmarshal(data, item); err != nil {
			return fmt.Errorf("failed to unmarshal wishlist item: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return item, nil
}

// FindByKey retrieves a wishlist item by its (productID, type) key
func (w *wishlistStore) FindByKey(ctx context.Context, key models.ItemKey) (*models.WishlistItem, error) {
	var item *models.WishlistItem

	err := w.s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWishlist)
		if bucket == nil {
			return fmt.Errorf("wishlist_items bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			if item != nil {
				return nil
			}
			candidate := &models.WishlistItem{}
			if err := json.Unmarshal(v, candidate); err != nil {
				return fmt.Errorf("failed to unmarshal wishlist item: %w", err)
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

// ListItems returns all wishlist items in insertion order
func (w *wishlistStore) ListItems(ctx context.Context) ([]*models.WishlistItem, error) {
	items := []*models.WishlistItem{}

	err := w.s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWishlist)
		if bucket == nil {
			return fmt.Errorf("wishlist_items bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			item := &models.WishlistItem{}
			if err := json.Unmarshal(v, item); err != nil {
				return fmt.Errorf("failed to unmarshal wishlist item: %w", err)
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

// DeleteItem removes a wishlist item by its local ID
func (w *wishlistStore) DeleteItem(ctx context.Context, id string) error {
	return w.s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWishlist)
		if bucket == nil {
			return fmt.Errorf("wishlist_items bucket not found")
		}

		key, _, err := findItemByID(bucket, id)
		if err != nil {
			return err
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete wishlist item: %w", err)
		}
		return nil
	})
}

// Clear removes all wishlist items
func (w *wishlistStore) Clear(ctx context.Context) error {
	return w.s.clearBucket(bucketWishlist)
}
