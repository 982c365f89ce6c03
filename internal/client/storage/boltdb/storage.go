package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketAuth       = []byte("auth")
	bucketCart       = []byte("cart_items")
	bucketWishlist   = []byte("wishlist_items")
	bucketPendingOps = []byte("pending_ops")
)

// Storage represents BoltDB storage implementation for client.
// Каждая мутация выполняется внутри bbolt.Update-транзакции: bolt
// допускает одного писателя, поэтому read-modify-write по очереди
// операций сериализован на уровне хранилища.
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketCart, bucketWishlist, bucketPendingOps} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// seqKey кодирует порядковый номер bucket'а в big-endian ключ.
// Bolt обходит ключи в байтовом порядке, поэтому такие ключи дают
// стабильный порядок вставки (FIFO) при итерации.
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
