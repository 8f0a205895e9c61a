package conflictres

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivolkov/syncpad/internal/client/deltasync"
	"github.com/ivolkov/syncpad/internal/client/queue"
	"github.com/ivolkov/syncpad/internal/client/storage/boltdb"
	"github.com/ivolkov/syncpad/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func testConflict() *models.Conflict {
	return &models.Conflict{
		ID:            "conflict-1",
		ItemID:        "item-1",
		EntityType:    "project",
		EntityID:      "project-1",
		ChangeType:    models.ActionUpdate,
		Fields:        []string{"title"},
		OldValue:      map[string]any{"title": "Remote"},
		NewValue:      map[string]any{"title": "Local"},
		RemoteVersion: 7,
	}
}

func TestResolveKeepLocal(t *testing.T) {
	source := &ConflictSourceMock{
		GetFunc:    func(id string) (*models.Conflict, error) { return testConflict(), nil },
		RemoveFunc: func(id string) error { return nil },
	}
	control := &QueueControlMock{
		UpdateBaseVersionFunc: func(ctx context.Context, itemID string, baseVersion int64) error { return nil },
	}
	resolver := New(source, control, testLogger())

	require.NoError(t, resolver.ResolveKeepLocal(context.Background(), "conflict-1"))

	// База элемента продвинута до версии сервера
	calls := control.UpdateBaseVersionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "item-1", calls[0].ItemID)
	assert.Equal(t, int64(7), calls[0].BaseVersion)

	// Конфликт снят
	removes := source.RemoveCalls()
	require.Len(t, removes, 1)
	assert.Equal(t, "conflict-1", removes[0].ID)

	assert.Empty(t, control.DiscardCalls())
}

func TestResolveKeepLocal_ConflictNotFound(t *testing.T) {
	source := &ConflictSourceMock{
		GetFunc: func(id string) (*models.Conflict, error) { return nil, deltasync.ErrConflictNotFound },
	}
	resolver := New(source, &QueueControlMock{}, testLogger())

	err := resolver.ResolveKeepLocal(context.Background(), "missing")
	assert.ErrorIs(t, err, deltasync.ErrConflictNotFound)
}

func TestResolveKeepLocal_QueueFailure_KeepsConflict(t *testing.T) {
	source := &ConflictSourceMock{
		GetFunc:    func(id string) (*models.Conflict, error) { return testConflict(), nil },
		RemoveFunc: func(id string) error { return nil },
	}
	control := &QueueControlMock{
		UpdateBaseVersionFunc: func(ctx context.Context, itemID string, baseVersion int64) error {
			return errors.New("storage closed")
		},
	}
	resolver := New(source, control, testLogger())

	err := resolver.ResolveKeepLocal(context.Background(), "conflict-1")
	require.Error(t, err)

	// При сбое очереди конфликт остается в реестре
	assert.Empty(t, source.RemoveCalls())
}

func TestResolveKeepRemote(t *testing.T) {
	source := &ConflictSourceMock{
		GetFunc:    func(id string) (*models.Conflict, error) { return testConflict(), nil },
		RemoveFunc: func(id string) error { return nil },
	}
	control := &QueueControlMock{
		DiscardFunc: func(ctx context.Context, itemID string) error { return nil },
	}
	resolver := New(source, control, testLogger())

	require.NoError(t, resolver.ResolveKeepRemote(context.Background(), "conflict-1"))

	// Исходная мутация выброшена навсегда
	discards := control.DiscardCalls()
	require.Len(t, discards, 1)
	assert.Equal(t, "item-1", discards[0].ItemID)

	assert.Len(t, source.RemoveCalls(), 1)
	assert.Empty(t, control.UpdateBaseVersionCalls())
}

func TestCancel_LeavesConflictOutstanding(t *testing.T) {
	source := &ConflictSourceMock{
		GetFunc: func(id string) (*models.Conflict, error) { return testConflict(), nil },
	}
	control := &QueueControlMock{}
	resolver := New(source, control, testLogger())

	require.NoError(t, resolver.Cancel(context.Background(), "conflict-1"))

	// Cancel — не-решение: ни очередь, ни реестр не тронуты
	assert.Empty(t, source.RemoveCalls())
	assert.Empty(t, control.DiscardCalls())
	assert.Empty(t, control.UpdateBaseVersionCalls())
}

// Интеграционный сценарий на живых компонентах: конфликт, keep-local,
// успешный повторный push без остаточного конфликта.
func TestKeepLocal_ThenSuccessfulRetry(t *testing.T) {
	ctx := context.Background()

	dbPath := filepath.Join(t.TempDir(), "queue.db")
	store, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	// Сервер отвергает все с base < 5
	applier := &deltasync.RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*deltasync.ApplyResult, error) {
			if baseVersion < 5 {
				return &deltasync.ApplyResult{
					Status:        deltasync.ApplyStatusConflict,
					RemoteVersion: 5,
					RemoteState:   map[string]any{"title": "Remote"},
				}, nil
			}
			return &deltasync.ApplyResult{Status: deltasync.ApplyStatusApplied, Version: 6}, nil
		},
	}

	service := deltasync.New(applier, testLogger())
	online := &queue.ConnectivityCheckerMock{IsOnlineFunc: func() bool { return true }}
	manager := queue.New(store, service, online, testLogger(), queue.Config{})
	resolver := New(service, manager, testLogger())

	_, err = manager.Enqueue(ctx, queue.EnqueueInput{
		Action:      models.ActionUpdate,
		EntityType:  "project",
		EntityID:    "project-1",
		Payload:     map[string]any{"title": "Local"},
		BaseVersion: 3,
	})
	require.NoError(t, err)

	// Первый прогон натыкается на конфликт
	result, err := manager.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Attempted())

	conflicts := service.GetPendingChanges()
	require.Len(t, conflicts, 1)
	assert.Equal(t, []string{"title"}, conflicts[0].Fields)

	// Keep-local и повторный прогон
	require.NoError(t, resolver.ResolveKeepLocal(ctx, conflicts[0].ID))

	result, err = manager.ProcessQueue(ctx)
	require.NoError(t, err)
	require.Len(t, result.Successful, 1)

	// Никаких остатков: ни конфликтов, ни pending элементов
	assert.Empty(t, service.GetPendingChanges())

	status, err := manager.GetStatus(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.Pending)
}

// Keep-remote выбрасывает мутацию навсегда: она не всплывает в
// последующих прогонах.
func TestKeepRemote_ItemNeverReappears(t *testing.T) {
	ctx := context.Background()

	dbPath := filepath.Join(t.TempDir(), "queue.db")
	store, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	applier := &deltasync.RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*deltasync.ApplyResult, error) {
			return &deltasync.ApplyResult{
				Status:        deltasync.ApplyStatusConflict,
				RemoteVersion: 9,
				RemoteState:   map[string]any{"title": "Remote"},
			}, nil
		},
	}

	service := deltasync.New(applier, testLogger())
	online := &queue.ConnectivityCheckerMock{IsOnlineFunc: func() bool { return true }}
	manager := queue.New(store, service, online, testLogger(), queue.Config{})
	resolver := New(service, manager, testLogger())

	_, err = manager.Enqueue(ctx, queue.EnqueueInput{
		Action:      models.ActionUpdate,
		EntityType:  "project",
		EntityID:    "project-1",
		Payload:     map[string]any{"title": "Local"},
		BaseVersion: 3,
	})
	require.NoError(t, err)

	_, err = manager.ProcessQueue(ctx)
	require.NoError(t, err)

	conflicts := service.GetPendingChanges()
	require.Len(t, conflicts, 1)

	require.NoError(t, resolver.ResolveKeepRemote(ctx, conflicts[0].ID))
	assert.Empty(t, service.GetPendingChanges())

	pushesBefore := len(applier.ApplyCalls())
	_, err = manager.ProcessQueue(ctx)
	require.NoError(t, err)

	// Мутация выброшена: повторных push нет
	assert.Len(t, applier.ApplyCalls(), pushesBefore)

	status, err := manager.GetStatus(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.Pending)
	assert.Zero(t, status.Failed)
}

// Cancel оставляет группу сущности заблокированной в следующих прогонах.
func TestCancel_GroupStaysBlocked(t *testing.T) {
	ctx := context.Background()

	dbPath := filepath.Join(t.TempDir(), "queue.db")
	store, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	applier := &deltasync.RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*deltasync.ApplyResult, error) {
			return &deltasync.ApplyResult{
				Status:        deltasync.ApplyStatusConflict,
				RemoteVersion: 9,
				RemoteState:   map[string]any{"title": "Remote"},
			}, nil
		},
	}

	service := deltasync.New(applier, testLogger())
	online := &queue.ConnectivityCheckerMock{IsOnlineFunc: func() bool { return true }}
	manager := queue.New(store, service, online, testLogger(), queue.Config{})
	resolver := New(service, manager, testLogger())

	_, err = manager.Enqueue(ctx, queue.EnqueueInput{
		Action:      models.ActionUpdate,
		EntityType:  "project",
		EntityID:    "project-1",
		Payload:     map[string]any{"title": "Local"},
		BaseVersion: 3,
	})
	require.NoError(t, err)

	_, err = manager.ProcessQueue(ctx)
	require.NoError(t, err)

	conflicts := service.GetPendingChanges()
	require.Len(t, conflicts, 1)

	require.NoError(t, resolver.Cancel(ctx, conflicts[0].ID))

	// Конфликт остался, группа заблокирована: повторных push нет
	require.Len(t, service.GetPendingChanges(), 1)

	pushesBefore := len(applier.ApplyCalls())
	_, err = manager.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Len(t, applier.ApplyCalls(), pushesBefore)

	status, err := manager.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.Pending)
}
