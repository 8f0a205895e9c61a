package deltasync

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivolkov/syncpad/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func testItem() *models.QueueItem {
	return &models.QueueItem{
		ID:          "item-1",
		Action:      models.ActionUpdate,
		EntityType:  "project",
		EntityID:    "project-1",
		Payload:     map[string]any{"title": "Local Title", "color": "blue"},
		BaseVersion: 3,
		Timestamp:   100,
		MaxRetries:  models.DefaultMaxRetries,
	}
}

func TestPush_Applied(t *testing.T) {
	applier := &RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error) {
			return &ApplyResult{Status: ApplyStatusApplied, Version: 4}, nil
		},
	}
	service := New(applier, testLogger())

	result := service.Push(context.Background(), testItem())

	assert.Equal(t, models.PushApplied, result.Outcome)
	assert.Equal(t, int64(4), result.NewVersion)
	assert.Nil(t, result.Conflict)
	assert.NoError(t, result.Err)

	// Аргументы дошли до applier без искажений
	calls := applier.ApplyCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "project", calls[0].EntityType)
	assert.Equal(t, "project-1", calls[0].EntityID)
	assert.Equal(t, int64(3), calls[0].BaseVersion)
}

func TestPush_TransientError(t *testing.T) {
	applier := &RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error) {
			return nil, errors.New("connection refused")
		},
	}
	service := New(applier, testLogger())

	result := service.Push(context.Background(), testItem())

	assert.Equal(t, models.PushTransient, result.Outcome)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "connection refused")
	assert.Nil(t, result.Conflict)

	// Transient сбой конфликтом не является
	assert.Empty(t, service.GetPendingChanges())
}

func TestPush_Conflict_DivergingFieldsOnly(t *testing.T) {
	applier := &RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error) {
			return &ApplyResult{
				Status:        ApplyStatusConflict,
				RemoteVersion: 7,
				RemoteState: map[string]any{
					"title": "Remote Title", // расходится
					"color": "blue",         // совпадает
					"owner": "bob",          // нет в payload — не участвует
				},
			}, nil
		},
	}
	service := New(applier, testLogger())

	item := testItem()
	result := service.Push(context.Background(), item)

	assert.Equal(t, models.PushConflict, result.Outcome)
	require.NotNil(t, result.Conflict)

	conflict := result.Conflict
	assert.NotEmpty(t, conflict.ID)
	assert.Equal(t, item.ID, conflict.ItemID)
	assert.Equal(t, "project", conflict.EntityType)
	assert.Equal(t, "project-1", conflict.EntityID)
	assert.Equal(t, models.ActionUpdate, conflict.ChangeType)
	assert.Equal(t, []string{"title"}, conflict.Fields)
	assert.Equal(t, int64(7), conflict.RemoteVersion)
	assert.Equal(t, "Remote Title", conflict.OldValue["title"])
	assert.Equal(t, "Local Title", conflict.NewValue["title"])

	// Конфликт зарегистрирован
	assert.True(t, service.HasConflictForItem(item.ID))
	pending := service.GetPendingChanges()
	require.Len(t, pending, 1)
	assert.Equal(t, conflict.ID, pending[0].ID)
}

func TestPush_Conflict_MissingRemoteField(t *testing.T) {
	applier := &RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error) {
			return &ApplyResult{
				Status:        ApplyStatusConflict,
				RemoteVersion: 5,
				// Поля color на сервере нет вовсе
				RemoteState: map[string]any{"title": "Local Title"},
			}, nil
		},
	}
	service := New(applier, testLogger())

	result := service.Push(context.Background(), testItem())

	require.Equal(t, models.PushConflict, result.Outcome)
	assert.Equal(t, []string{"color"}, result.Conflict.Fields)
}

func TestPush_EmptyDiff_TreatedAsApplied(t *testing.T) {
	applier := &RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error) {
			return &ApplyResult{
				Status:        ApplyStatusConflict,
				RemoteVersion: 9,
				// Все намеченные значения уже на сервере
				RemoteState: map[string]any{"title": "Local Title", "color": "blue", "extra": "x"},
			}, nil
		},
	}
	service := New(applier, testLogger())

	item := testItem()
	result := service.Push(context.Background(), item)

	assert.Equal(t, models.PushApplied, result.Outcome)
	assert.Equal(t, int64(9), result.NewVersion)
	assert.Nil(t, result.Conflict)
	assert.False(t, service.HasConflictForItem(item.ID))
}

func TestPush_NumericNormalization(t *testing.T) {
	applier := &RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error) {
			return &ApplyResult{
				Status:        ApplyStatusConflict,
				RemoteVersion: 2,
				// JSON декодирует числа в float64
				RemoteState: map[string]any{"count": float64(42)},
			}, nil
		},
	}
	service := New(applier, testLogger())

	item := testItem()
	item.Payload = map[string]any{"count": 42}

	result := service.Push(context.Background(), item)

	// int 42 и float64 42 — одно и то же значение
	assert.Equal(t, models.PushApplied, result.Outcome)
}

func TestPush_DeleteConflict(t *testing.T) {
	applier := &RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error) {
			return &ApplyResult{
				Status:        ApplyStatusConflict,
				RemoteVersion: 6,
				RemoteState:   map[string]any{"title": "Still Here", "color": "red"},
			}, nil
		},
	}
	service := New(applier, testLogger())

	item := testItem()
	item.Action = models.ActionDelete
	item.Payload = nil

	result := service.Push(context.Background(), item)

	// Delete конфликтует целиком: спор о существовании сущности
	require.Equal(t, models.PushConflict, result.Outcome)
	assert.Equal(t, models.ActionDelete, result.Conflict.ChangeType)
	assert.Equal(t, []string{"color", "title"}, result.Conflict.Fields)
	assert.Equal(t, "Still Here", result.Conflict.OldValue["title"])
}

func TestPush_Applied_ClearsStaleConflict(t *testing.T) {
	conflicted := true
	applier := &RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error) {
			if conflicted {
				return &ApplyResult{
					Status:        ApplyStatusConflict,
					RemoteVersion: 5,
					RemoteState:   map[string]any{"title": "Remote Title"},
				}, nil
			}
			return &ApplyResult{Status: ApplyStatusApplied, Version: 6}, nil
		},
	}
	service := New(applier, testLogger())

	item := testItem()
	first := service.Push(context.Background(), item)
	require.Equal(t, models.PushConflict, first.Outcome)
	require.True(t, service.HasConflictForItem(item.ID))

	// После keep-local элемент пушится заново с новой base version
	conflicted = false
	second := service.Push(context.Background(), item)
	require.Equal(t, models.PushApplied, second.Outcome)

	assert.False(t, service.HasConflictForItem(item.ID))
	assert.Empty(t, service.GetPendingChanges())
}

func TestPush_RepeatedConflict_ReplacesPrevious(t *testing.T) {
	version := int64(5)
	applier := &RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error) {
			return &ApplyResult{
				Status:        ApplyStatusConflict,
				RemoteVersion: version,
				RemoteState:   map[string]any{"title": "Remote Title"},
			}, nil
		},
	}
	service := New(applier, testLogger())

	item := testItem()
	first := service.Push(context.Background(), item)
	version = 8
	second := service.Push(context.Background(), item)

	require.NotEqual(t, first.Conflict.ID, second.Conflict.ID)

	// В реестре остался только свежий конфликт
	pending := service.GetPendingChanges()
	require.Len(t, pending, 1)
	assert.Equal(t, second.Conflict.ID, pending[0].ID)
	assert.Equal(t, int64(8), pending[0].RemoteVersion)

	_, err := service.Get(first.Conflict.ID)
	assert.ErrorIs(t, err, ErrConflictNotFound)
}

func TestGet_Remove(t *testing.T) {
	applier := &RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error) {
			return &ApplyResult{
				Status:        ApplyStatusConflict,
				RemoteVersion: 5,
				RemoteState:   map[string]any{"title": "Remote Title"},
			}, nil
		},
	}
	service := New(applier, testLogger())

	item := testItem()
	result := service.Push(context.Background(), item)
	require.Equal(t, models.PushConflict, result.Outcome)

	got, err := service.Get(result.Conflict.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Conflict.ID, got.ID)

	require.NoError(t, service.Remove(result.Conflict.ID))
	assert.False(t, service.HasConflictForItem(item.ID))

	_, err = service.Get(result.Conflict.ID)
	assert.ErrorIs(t, err, ErrConflictNotFound)

	// Повторное удаление — ошибка
	assert.ErrorIs(t, service.Remove(result.Conflict.ID), ErrConflictNotFound)
}

func TestSubscribeConflicts(t *testing.T) {
	applier := &RemoteApplierMock{
		ApplyFunc: func(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error) {
			return &ApplyResult{
				Status:        ApplyStatusConflict,
				RemoteVersion: 5,
				RemoteState:   map[string]any{"title": "Remote Title"},
			}, nil
		},
	}
	service := New(applier, testLogger())

	var received []*models.Conflict
	unsubscribe := service.SubscribeConflicts(func(c *models.Conflict) {
		received = append(received, c)
	})

	result := service.Push(context.Background(), testItem())
	require.Len(t, received, 1)
	assert.Equal(t, result.Conflict.ID, received[0].ID)

	unsubscribe()

	item := testItem()
	item.ID = "item-2"
	service.Push(context.Background(), item)
	assert.Len(t, received, 1, "после отписки события не приходят")
}
