package storage

import (
	"context"

	"github.com/ivolkov/syncpad/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines interface for the durable mutation queue on client.
// Элемент очереди всегда находится ровно в одном из двух множеств:
// pending или failed. Переходы между множествами атомарны.
type QueueStorage interface {
	// SavePending stores or updates a pending queue item
	SavePending(ctx context.Context, item *models.QueueItem) error

	// GetPending retrieves a pending item by ID
	// Returns ErrItemNotFound if item doesn't exist
	GetPending(ctx context.Context, id string) (*models.QueueItem, error)

	// ListPending returns all pending items ordered by ascending timestamp
	ListPending(ctx context.Context) ([]*models.QueueItem, error)

	// DeletePending removes a pending item (after successful apply or keep-remote)
	// Returns ErrItemNotFound if item doesn't exist
	DeletePending(ctx context.Context, id string) error

	// MoveToFailed atomically moves an item from pending to the failed set,
	// persisting the updated retry count and error
	MoveToFailed(ctx context.Context, item *models.QueueItem) error

	// GetFailed retrieves a failed item by ID
	// Returns ErrItemNotFound if item doesn't exist
	GetFailed(ctx context.Context, id string) (*models.QueueItem, error)

	// ListFailed returns all failed items ordered by ascending timestamp
	ListFailed(ctx context.Context) ([]*models.QueueItem, error)

	// RequeueFailed atomically moves a failed item back to pending
	// with a fresh retry budget (RetryCount=0, Error cleared)
	// Returns ErrItemNotFound if item doesn't exist
	RequeueFailed(ctx context.Context, id string) (*models.QueueItem, error)

	// RequeueAllFailed moves all failed items back to pending
	// with fresh retry budgets, returns the requeued items
	RequeueAllFailed(ctx context.Context) ([]*models.QueueItem, error)

	// Clear removes all queue items from storage
	// Used for testing and full reset
	Clear(ctx context.Context) error
}
