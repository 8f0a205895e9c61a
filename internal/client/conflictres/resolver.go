// Package conflictres превращает обнаруженный конфликт и решение
// пользователя (keep-local / keep-remote / cancel) в терминальное
// состояние конфликта и сопутствующее действие над очередью.
package conflictres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ivolkov/syncpad/internal/models"
)

//go:generate moq -out source_mock.go . ConflictSource
//go:generate moq -out queuecontrol_mock.go . QueueControl

// ConflictSource exposes the registry of unresolved conflicts.
// Реализуется deltasync.Service.
type ConflictSource interface {
	// Get returns the conflict by ID
	Get(id string) (*models.Conflict, error)

	// Remove discards a conflict from the registry
	Remove(id string) error
}

// QueueControl is the slice of queue manager operations the resolver needs.
// Реализуется queue.Manager.
type QueueControl interface {
	// UpdateBaseVersion advances a pending item's base version
	UpdateBaseVersion(ctx context.Context, itemID string, baseVersion int64) error

	// Discard permanently removes a pending item
	Discard(ctx context.Context, itemID string) error
}

// Resolver applies user decisions to detected conflicts
type Resolver struct {
	conflicts ConflictSource
	queue     QueueControl
	logger    *slog.Logger
}

// New creates a conflict resolver
func New(conflicts ConflictSource, queue QueueControl, logger *slog.Logger) *Resolver {
	return &Resolver{
		conflicts: conflicts,
		queue:     queue,
		logger:    logger,
	}
}

// ResolveKeepLocal keeps the local change: the item's base version
// advances to the remote's current version, so the next push is not
// rejected for the same reason, and the conflict is removed —
// unblocking the entity's queue group.
func (r *Resolver) ResolveKeepLocal(ctx context.Context, conflictID string) error {
	conflict, err := r.conflicts.Get(conflictID)
	if err != nil {
		return fmt.Errorf("get conflict: %w", err)
	}

	if err := r.queue.UpdateBaseVersion(ctx, conflict.ItemID, conflict.RemoteVersion); err != nil {
		return fmt.Errorf("advance base version: %w", err)
	}

	if err := r.conflicts.Remove(conflictID); err != nil {
		return fmt.Errorf("remove conflict: %w", err)
	}

	r.logger.Info("conflict resolved keep-local",
		"conflict_id", conflictID,
		"item_id", conflict.ItemID,
		"base_version", conflict.RemoteVersion)

	return nil
}

// ResolveKeepRemote accepts the server's state: the original mutation
// is discarded permanently and the conflict removed. Обновить локальное
// состояние сущности значением сервера — ответственность вызывающего.
func (r *Resolver) ResolveKeepRemote(ctx context.Context, conflictID string) error {
	conflict, err := r.conflicts.Get(conflictID)
	if err != nil {
		return fmt.Errorf("get conflict: %w", err)
	}

	if err := r.queue.Discard(ctx, conflict.ItemID); err != nil {
		return fmt.Errorf("discard queue item: %w", err)
	}

	if err := r.conflicts.Remove(conflictID); err != nil {
		return fmt.Errorf("remove conflict: %w", err)
	}

	r.logger.Info("conflict resolved keep-remote",
		"conflict_id", conflictID,
		"item_id", conflict.ItemID)

	return nil
}

// Cancel defers the decision: конфликт остается неразрешенным, элемент
// очереди — заблокированным. Это явное не-решение, а не резолюция.
func (r *Resolver) Cancel(ctx context.Context, conflictID string) error {
	conflict, err := r.conflicts.Get(conflictID)
	if err != nil {
		return fmt.Errorf("get conflict: %w", err)
	}

	r.logger.Info("conflict resolution deferred",
		"conflict_id", conflictID,
		"item_id", conflict.ItemID)

	return nil
}
