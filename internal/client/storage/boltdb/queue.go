package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/ivolkov/syncpad/internal/client/storage"
	"github.com/ivolkov/syncpad/internal/models"
)

// SavePending stores or updates a pending queue item
func (s *Storage) SavePending(ctx context.Context, item *models.QueueItem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		// Сериализуем элемент в JSON
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal queue item: %w", err)
		}

		// Сохраняем по ID
		if err := bucket.Put([]byte(item.ID), data); err != nil {
			return fmt.Errorf("failed to save queue item: %w", err)
		}

		return nil
	})
}

// GetPending retrieves a pending item by ID
func (s *Storage) GetPending(ctx context.Context, id string) (*models.QueueItem, error) {
	return s.getItem(bucketPending, id)
}

// ListPending returns all pending items ordered by ascending timestamp
func (s *Storage) ListPending(ctx context.Context) ([]*models.QueueItem, error) {
	return s.listItems(bucketPending)
}

// DeletePending removes a pending item
func (s *Storage) DeletePending(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrItemNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete queue item: %w", err)
		}

		return nil
	})
}

// MoveToFailed atomically moves an item from pending to the failed set.
// Обе операции выполняются в одной транзакции: элемент никогда
// не наблюдается одновременно в двух множествах или ни в одном.
func (s *Storage) MoveToFailed(ctx context.Context, item *models.QueueItem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		pending := tx.Bucket(bucketPending)
		failed := tx.Bucket(bucketFailed)
		if pending == nil || failed == nil {
			return fmt.Errorf("queue buckets not found")
		}

		if pending.Get([]byte(item.ID)) == nil {
			return storage.ErrItemNotFound
		}

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal queue item: %w", err)
		}

		if err := pending.Delete([]byte(item.ID)); err != nil {
			return fmt.Errorf("failed to remove item from pending: %w", err)
		}

		if err := failed.Put([]byte(item.ID), data); err != nil {
			return fmt.Errorf("failed to save item to failed: %w", err)
		}

		return nil
	})
}

// GetFailed retrieves a failed item by ID
func (s *Storage) GetFailed(ctx context.Context, id string) (*models.QueueItem, error) {
	return s.getItem(bucketFailed, id)
}

// ListFailed returns all failed items ordered by ascending timestamp
func (s *Storage) ListFailed(ctx context.Context) ([]*models.QueueItem, error) {
	return s.listItems(bucketFailed)
}

// RequeueFailed atomically moves a failed item back to pending
// with a fresh retry budget
func (s *Storage) RequeueFailed(ctx context.Context, id string) (*models.QueueItem, error) {
	var item *models.QueueItem

	err := s.db.Update(func(tx *bbolt.Tx) error {
		requeued, err := requeueOne(tx, id)
		if err != nil {
			return err
		}
		item = requeued
		return nil
	})

	if err != nil {
		return nil, err
	}

	return item, nil
}

// RequeueAllFailed moves all failed items back to pending with fresh retry budgets
func (s *Storage) RequeueAllFailed(ctx context.Context) ([]*models.QueueItem, error) {
	var items []*models.QueueItem

	err := s.db.Update(func(tx *bbolt.Tx) error {
		failed := tx.Bucket(bucketFailed)
		if failed == nil {
			return fmt.Errorf("failed bucket not found")
		}

		// Собираем ID заранее: requeueOne удаляет ключи из bucket
		var ids []string
		if err := failed.ForEach(func(k, v []byte) error {
			ids = append(ids, string(k))
			return nil
		}); err != nil {
			return err
		}

		for _, id := range ids {
			item, err := requeueOne(tx, id)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp < items[j].Timestamp
	})

	return items, nil
}

// Clear removes all queue items from storage
func (s *Storage) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketPending, bucketFailed} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to delete bucket: %w", err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to recreate bucket: %w", err)
			}
		}
		return nil
	})
}

// requeueOne переносит один failed элемент обратно в pending
// со сброшенным retry budget. Вызывается внутри открытой транзакции.
func requeueOne(tx *bbolt.Tx, id string) (*models.QueueItem, error) {
	pending := tx.Bucket(bucketPending)
	failed := tx.Bucket(bucketFailed)
	if pending == nil || failed == nil {
		return nil, fmt.Errorf("queue buckets not found")
	}

	data := failed.Get([]byte(id))
	if data == nil {
		return nil, storage.ErrItemNotFound
	}

	item := &models.QueueItem{}
	if err := json.Unmarshal(data, item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal queue item: %w", err)
	}

	// Ручной retry — это новый бюджет попыток
	item.RetryCount = 0
	item.Error = ""
	item.NextRetryAt = time.Time{}

	updated, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal queue item: %w", err)
	}

	if err := failed.Delete([]byte(id)); err != nil {
		return nil, fmt.Errorf("failed to remove item from failed: %w", err)
	}

	if err := pending.Put([]byte(id), updated); err != nil {
		return nil, fmt.Errorf("failed to save item to pending: %w", err)
	}

	return item, nil
}

// getItem читает и десериализует элемент из указанного bucket
func (s *Storage) getItem(bucketName []byte, id string) (*models.QueueItem, error) {
	var item *models.QueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrItemNotFound
		}

		item = &models.QueueItem{}
		if err := json.Unmarshal(data, item); err != nil {
			return fmt.Errorf("failed to unmarshal queue item: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return item, nil
}

// listItems возвращает все элементы bucket, отсортированные по timestamp
func (s *Storage) listItems(bucketName []byte) ([]*models.QueueItem, error) {
	var items []*models.QueueItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			item := &models.QueueItem{}
			if err := json.Unmarshal(v, item); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}
			items = append(items, item)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	// Порядок по времени создания: основа per-entity упорядочивания
	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp < items[j].Timestamp
	})

	return items, nil
}
