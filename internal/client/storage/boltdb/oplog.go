package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophshop/internal/client/storage"
	"github.com/iudanet/gophshop/internal/models"
)

// Enqueue appends a pending operation to the tail of the log
func (s *Storage) Enqueue(ctx context.Context, op *models.PendingOperation) error {
	if err := op.Validate(); err != nil {
		return fmt.Errorf("refusing to enqueue invalid operation: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingOps)
		if bucket == nil {
			return fmt.Errorf("pending_ops bucket not found")
		}

		// Сериализуем операцию в JSON
		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		// Ключ — порядковый номер: он монотонно растет, так что
		// итерация по bucket'у возвращает операции в порядке постановки
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}

		if err := bucket.Put(seqKey(seq), data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}

		return nil
	})
}

// List returns all pending operations in enqueue order
func (s *Storage) List(ctx context.Context) ([]*models.PendingOperation, error) {
	var ops []*models.PendingOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingOps)
		if bucket == nil {
			return fmt.Errorf("pending_ops bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			op := &models.PendingOperation{}
			if err := json.Unmarshal(v, op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, op)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return ops, nil
}

// Remove deletes one operation by its ID
func (s *Storage) Remove(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingOps)
		if bucket == nil {
			return fmt.Errorf("pending_ops bucket not found")
		}

		key, _, err := findOperation(bucket, id)
		if err != nil {
			return err
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}

		return nil
	})
}

// UpdateRetry rewrites the retry counter of one operation in place
func (s *Storage) UpdateRetry(ctx context.Context, id string, retryCount int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingOps)
		if bucket == nil {
			return fmt.Errorf("pending_ops bucket not found")
		}

		key, op, err := findOperation(bucket, id)
		if err != nil {
			return err
		}

		// Переписываем счетчик на месте, ключ (а значит и позиция
		// в очереди) не меняется
		op.RetryCount = retryCount

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to update operation: %w", err)
		}

		return nil
	})
}

// Count returns the number of pending operations
func (s *Storage) Count(ctx context.Context) (int, error) {
	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingOps)
		if bucket == nil {
			return fmt.Errorf("pending_ops bucket not found")
		}
		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, err
	}

	return count, nil
}

// findOperation ищет операцию по ID, возвращает ее ключ и содержимое
func findOperation(bucket *bbolt.Bucket, id string) ([]byte, *models.PendingOperation, error) {
	cursor := bucket.Cursor()
	for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
		op := &models.PendingOperation{}
		if err := json.Unmarshal(v, op); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal operation: %w", err)
		}
		if op.ID == id {
			// Копируем ключ: bolt переиспользует буфер курсора
			key := make([]byte, len(k))
			copy(key, k)
			return key, op, nil
		}
	}
	return nil, nil, storage.ErrOperationNotFound
}
