// Package deltasync пушит отложенные мутации на сервер и детектирует
// конфликты на уровне полей. Конфликты держатся только в памяти:
// после рестарта клиента они заново вычисляются при следующем push.
package deltasync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ivolkov/syncpad/internal/models"
)

// ErrConflictNotFound возвращается при обращении к несуществующему конфликту
var ErrConflictNotFound = errors.New("conflict not found")

// Service detects and tracks field-level conflicts between local
// pending mutations and server state.
type Service struct {
	applier   RemoteApplier
	logger    *slog.Logger
	conflicts map[string]*models.Conflict  // conflict ID → конфликт
	byItem    map[string]string            // item ID → conflict ID
	subs      map[int]func(*models.Conflict)
	mu        sync.Mutex
	nextSub   int
}

// New creates a delta sync service
func New(applier RemoteApplier, logger *slog.Logger) *Service {
	return &Service{
		applier:   applier,
		logger:    logger,
		conflicts: make(map[string]*models.Conflict),
		byItem:    make(map[string]string),
		subs:      make(map[int]func(*models.Conflict)),
	}
}

// Push applies one queued mutation to the server and classifies the outcome.
// Transient ошибки (сеть, 5xx) возвращаются как PushTransient и тратят
// retry budget элемента; version mismatch возвращается как PushConflict
// и budget НЕ тратит. Mismatch, при котором значения полей на деле
// совпадают, засчитывается как успех.
func (s *Service) Push(ctx context.Context, item *models.QueueItem) *models.PushResult {
	applyRes, err := s.applier.Apply(ctx, item.EntityType, item.EntityID, item.Action, item.Payload, item.BaseVersion)
	if err != nil {
		return &models.PushResult{
			Outcome: models.PushTransient,
			Err:     fmt.Errorf("apply %s %s: %w", item.Action, item.EntityKey(), err),
		}
	}

	if applyRes.Status == ApplyStatusApplied {
		// Серверный отказ снят — прежний конфликт элемента больше не актуален
		s.removeByItem(item.ID)
		return &models.PushResult{Outcome: models.PushApplied, NewVersion: applyRes.Version}
	}

	fields := diffFields(item.Payload, applyRes.RemoteState)

	// Для delete расхождение версий само по себе конфликт: спор идет
	// о существовании сущности, а не об отдельных полях
	if item.Action == models.ActionDelete {
		fields = sortedKeys(applyRes.RemoteState)
	} else if len(fields) == 0 {
		// Версии разошлись, но все намеченные значения уже на сервере
		s.logger.Debug("version mismatch with no field divergence, treating as applied",
			"entity", item.EntityKey(), "remote_version", applyRes.RemoteVersion)
		s.removeByItem(item.ID)
		return &models.PushResult{Outcome: models.PushApplied, NewVersion: applyRes.RemoteVersion}
	}

	conflict := &models.Conflict{
		ID:            uuid.New().String(),
		ItemID:        item.ID,
		EntityType:    item.EntityType,
		EntityID:      item.EntityID,
		ChangeType:    item.Action,
		Fields:        fields,
		OldValue:      cloneMap(applyRes.RemoteState),
		NewValue:      cloneMap(item.Payload),
		RemoteVersion: applyRes.RemoteVersion,
		Timestamp:     time.Now().UnixNano(),
	}

	s.register(conflict)

	s.logger.Info("conflict detected",
		"conflict_id", conflict.ID,
		"entity", item.EntityKey(),
		"fields", conflict.Fields,
		"remote_version", conflict.RemoteVersion)

	return &models.PushResult{Outcome: models.PushConflict, Conflict: conflict.Clone()}
}

// Get returns the conflict with the given ID
func (s *Service) Get(id string) (*models.Conflict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conflict, ok := s.conflicts[id]
	if !ok {
		return nil, ErrConflictNotFound
	}
	return conflict.Clone(), nil
}

// GetPendingChanges returns a snapshot of unresolved conflicts
// ordered by detection time.
func (s *Service) GetPendingChanges() []*models.Conflict {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Conflict, 0, len(s.conflicts))
	for _, c := range s.conflicts {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// HasConflictForItem reports whether the queue item has an unresolved conflict
func (s *Service) HasConflictForItem(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.byItem[itemID]
	return ok
}

// Remove discards a conflict from the registry.
// Вызывается резолвером после keep-local / keep-remote.
func (s *Service) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conflict, ok := s.conflicts[id]
	if !ok {
		return ErrConflictNotFound
	}

	delete(s.conflicts, id)
	delete(s.byItem, conflict.ItemID)
	return nil
}

// SubscribeConflicts registers a listener for newly detected conflicts.
// Возвращает функцию отписки.
func (s *Service) SubscribeConflicts(callback func(*models.Conflict)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = callback

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// register кладет конфликт в реестр, вытесняя прежний конфликт того же
// элемента очереди, и уведомляет подписчиков
func (s *Service) register(conflict *models.Conflict) {
	s.mu.Lock()

	if oldID, ok := s.byItem[conflict.ItemID]; ok {
		delete(s.conflicts, oldID)
	}
	s.conflicts[conflict.ID] = conflict
	s.byItem[conflict.ItemID] = conflict.ID

	// Callbacks вызываются вне мьютекса
	callbacks := make([]func(*models.Conflict), 0, len(s.subs))
	for _, cb := range s.subs {
		callbacks = append(callbacks, cb)
	}

	s.mu.Unlock()

	for _, cb := range callbacks {
		cb(conflict.Clone())
	}
}

// removeByItem снимает конфликт элемента, если он был зарегистрирован
func (s *Service) removeByItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conflictID, ok := s.byItem[itemID]; ok {
		delete(s.conflicts, conflictID)
		delete(s.byItem, itemID)
	}
}

// diffFields возвращает отсортированный список полей payload, значения
// которых расходятся с серверным состоянием. Сравнение идет через JSON
// нормализацию, чтобы int/float64 после (де)сериализации не давали
// ложных расхождений.
func diffFields(payload, remote map[string]any) []string {
	fields := make([]string, 0, len(payload))
	for key, localVal := range payload {
		remoteVal, ok := remote[key]
		if !ok || !jsonEqual(localVal, remoteVal) {
			fields = append(fields, key)
		}
	}
	sort.Strings(fields)
	return fields
}

// jsonEqual сравнивает два значения по их JSON представлению
func jsonEqual(a, b any) bool {
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
