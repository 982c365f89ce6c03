package storage

import (
	"context"

	"github.com/iudanet/gophshop/internal/models"
)

//go:generate moq -out oplog_mock.go . OperationLog

// OperationLog defines interface for the durable queue of pending
// remote mutations. Очередь обходится строго в порядке постановки
// (FIFO), чтобы add и последующий remove одной позиции не поменялись
// местами на сервере.
type OperationLog interface {
	// Enqueue appends a new pending operation to the tail of the log
	Enqueue(ctx context.Context, op *models.PendingOperation) error

	// List returns all pending operations in enqueue order
	List(ctx context.Context) ([]*models.PendingOperation, error)

	// Remove deletes one operation by its ID
	// Returns ErrOperationNotFound if operation doesn't exist
	Remove(ctx context.Context, id string) error

	// UpdateRetry rewrites the retry counter of one operation in place
	// Returns ErrOperationNotFound if operation doesn't exist
	UpdateRetry(ctx context.Context, id string, retryCount int) error

	// Count returns the number of pending operations
	Count(ctx context.Context) (int, error)
}
