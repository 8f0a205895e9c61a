// Package queue реализует менеджер очереди отложенных мутаций:
// durable admission, планирование по приоритетам с жестким порядком
// внутри сущности, retry с backoff и single-flight обработку.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ivolkov/syncpad/internal/client/storage"
	"github.com/ivolkov/syncpad/internal/models"
)

//go:generate moq -out pusher_mock.go . Pusher
//go:generate moq -out connectivity_mock.go . ConnectivityChecker

// Pusher applies one queued mutation remotely and tracks conflicts.
// Реализуется deltasync.Service.
type Pusher interface {
	// Push attempts the mutation and classifies the outcome
	Push(ctx context.Context, item *models.QueueItem) *models.PushResult

	// HasConflictForItem reports whether the item is blocked by
	// an unresolved conflict
	HasConflictForItem(itemID string) bool
}

// ConnectivityChecker exposes current network state.
// Реализуется netmon.Monitor.
type ConnectivityChecker interface {
	IsOnline() bool
}

// Config содержит настройки менеджера очереди
type Config struct {
	MaxRetries   int           // лимит попыток для transient ошибок
	RetryBackoff time.Duration // базовая задержка повторов; 0 отключает backoff
	FanOut       int           // параллелизм обработки между сущностями
}

// DefaultConfig returns queue manager configuration defaults
func DefaultConfig() Config {
	return Config{
		MaxRetries:   models.DefaultMaxRetries,
		RetryBackoff: 2 * time.Second,
		FanOut:       4,
	}
}

// inflight — текущий прогон ProcessQueue, разделяемый между
// конкурентными вызовами
type inflight struct {
	result *models.SyncResult
	err    error
	done   chan struct{}
}

// Manager owns the durable mutation queue: admission, scheduling,
// retry and the single-flight processing run.
//
// Гарантии порядка: мутации одной сущности (entityType/entityID)
// применяются строго в порядке Timestamp; приоритет влияет только
// на порядок МЕЖДУ сущностями.
type Manager struct {
	store   storage.QueueStorage
	pusher  Pusher
	online  ConnectivityChecker
	logger  *slog.Logger
	subs    map[int]func(*models.QueueStatus)
	current *inflight
	cfg     Config
	mu      sync.Mutex
	nextSub int
	lastTS  int64
}

// New creates a queue manager
func New(store storage.QueueStorage, pusher Pusher, online ConnectivityChecker, logger *slog.Logger, cfg Config) *Manager {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = models.DefaultMaxRetries
	}
	if cfg.FanOut <= 0 {
		cfg.FanOut = DefaultConfig().FanOut
	}

	return &Manager{
		store:  store,
		pusher: pusher,
		online: online,
		logger: logger,
		cfg:    cfg,
		subs:   make(map[int]func(*models.QueueStatus)),
	}
}

// EnqueueInput параметры новой мутации
type EnqueueInput struct {
	Payload     map[string]any
	Action      models.Action
	EntityType  string
	EntityID    string
	Priority    models.Priority // пусто → normal
	BaseVersion int64           // версия сущности, на которой основано изменение
}

// Enqueue durably admits a mutation into the queue.
// Содержимое payload не валидируется: это ответственность вызывающего.
func (m *Manager) Enqueue(ctx context.Context, in EnqueueInput) (*models.QueueItem, error) {
	if in.Priority == "" {
		in.Priority = models.PriorityNormal
	}

	item := &models.QueueItem{
		ID:          uuid.New().String(),
		Action:      in.Action,
		EntityType:  in.EntityType,
		EntityID:    in.EntityID,
		Payload:     in.Payload,
		Priority:    in.Priority,
		BaseVersion: in.BaseVersion,
		Timestamp:   m.nextTimestamp(),
		MaxRetries:  m.cfg.MaxRetries,
	}

	if err := m.store.SavePending(ctx, item); err != nil {
		return nil, fmt.Errorf("save pending: %w", err)
	}

	m.logger.Debug("mutation enqueued",
		"item_id", item.ID,
		"action", item.Action,
		"entity", item.EntityKey(),
		"priority", item.Priority)

	m.notifyStatus(ctx)

	return item.Clone(), nil
}

// GetStatus returns the current queue snapshot.
// Чистая проекция из хранилища и монитора сети, без побочных эффектов.
func (m *Manager) GetStatus(ctx context.Context) (*models.QueueStatus, error) {
	pending, err := m.store.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	failed, err := m.store.ListFailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list failed: %w", err)
	}

	m.mu.Lock()
	processing := m.current != nil
	m.mu.Unlock()

	return &models.QueueStatus{
		Pending:      len(pending),
		Failed:       len(failed),
		IsProcessing: processing,
		IsOnline:     m.online.IsOnline(),
		Items:        pending,
		FailedItems:  failed,
	}, nil
}

// Subscribe registers a listener for queue status changes.
// Возвращает функцию отписки.
func (m *Manager) Subscribe(callback func(*models.QueueStatus)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subs[id] = callback

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// ProcessQueue runs one processing pass over the queue.
// Single-flight: конкурентные вызовы не порождают второй прогон,
// а дожидаются результата текущего.
func (m *Manager) ProcessQueue(ctx context.Context) (*models.SyncResult, error) {
	m.mu.Lock()
	if m.current != nil {
		call := m.current
		m.mu.Unlock()

		select {
		case <-call.done:
			return call.result, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	call := &inflight{done: make(chan struct{})}
	m.current = call
	m.mu.Unlock()

	result, err := m.run(ctx)

	m.mu.Lock()
	call.result, call.err = result, err
	m.current = nil
	m.mu.Unlock()
	close(call.done)

	m.notifyStatus(ctx)

	return result, err
}

// RetryFailed moves one failed item back to pending with a fresh
// retry budget.
func (m *Manager) RetryFailed(ctx context.Context, itemID string) (*models.QueueItem, error) {
	item, err := m.store.RequeueFailed(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("requeue failed item: %w", err)
	}

	m.logger.Info("failed item requeued", "item_id", itemID)
	m.notifyStatus(ctx)

	return item, nil
}

// RetryAllFailed moves all failed items back to pending with fresh
// retry budgets.
func (m *Manager) RetryAllFailed(ctx context.Context) ([]*models.QueueItem, error) {
	items, err := m.store.RequeueAllFailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("requeue all failed: %w", err)
	}

	m.logger.Info("failed items requeued", "count", len(items))
	m.notifyStatus(ctx)

	return items, nil
}

// UpdateBaseVersion advances a pending item's base version.
// Используется резолвером при keep-local, чтобы следующий push
// не был отвергнут по той же причине.
func (m *Manager) UpdateBaseVersion(ctx context.Context, itemID string, baseVersion int64) error {
	item, err := m.store.GetPending(ctx, itemID)
	if err != nil {
		return fmt.Errorf("get pending: %w", err)
	}

	item.BaseVersion = baseVersion

	if err := m.store.SavePending(ctx, item); err != nil {
		return fmt.Errorf("save pending: %w", err)
	}

	m.notifyStatus(ctx)
	return nil
}

// Discard permanently removes a pending item.
// Используется резолвером при keep-remote: мутация не будет применена.
func (m *Manager) Discard(ctx context.Context, itemID string) error {
	if err := m.store.DeletePending(ctx, itemID); err != nil {
		return fmt.Errorf("delete pending: %w", err)
	}

	m.logger.Info("queue item discarded", "item_id", itemID)
	m.notifyStatus(ctx)
	return nil
}

// run выполняет один прогон: выбирает готовые элементы, группирует по
// сущностям и применяет группы через пул воркеров
func (m *Manager) run(ctx context.Context) (*models.SyncResult, error) {
	result := &models.SyncResult{
		Successful: []*models.QueueItem{},
		Failed:     []*models.QueueItem{},
		Retrying:   []*models.QueueItem{},
	}

	if !m.online.IsOnline() {
		m.logger.Debug("skipping queue run: offline")
		return result, nil
	}

	items, err := m.store.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	groups := m.buildGroups(items)
	if len(groups) == 0 {
		return result, nil
	}

	m.logger.Info("queue run started", "pending", len(items), "groups", len(groups))

	workers := m.cfg.FanOut
	if workers > len(groups) {
		workers = len(groups)
	}

	groupCh := make(chan []*models.QueueItem)

	var (
		wg       sync.WaitGroup
		resultMu sync.Mutex
		stopped  atomic.Bool
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for group := range groupCh {
				if stopped.Load() {
					continue
				}
				m.processGroup(ctx, group, result, &resultMu, &stopped)
			}
		}()
	}

	for _, group := range groups {
		groupCh <- group
	}
	close(groupCh)
	wg.Wait()

	m.logger.Info("queue run finished",
		"successful", len(result.Successful),
		"failed", len(result.Failed),
		"retrying", len(result.Retrying))

	return result, nil
}

// buildGroups группирует pending элементы по сущностям и упорядочивает
// группы по приоритету головы (high → normal → low), при равенстве —
// по timestamp головы. Внутри группы порядок строго по timestamp
// (ListPending уже отдает его).
//
// Группа целиком пропускается, если ее голова ждет backoff или любой
// ее элемент заблокирован неразрешенным конфликтом.
func (m *Manager) buildGroups(items []*models.QueueItem) [][]*models.QueueItem {
	byKey := make(map[string][]*models.QueueItem)
	var order []string

	for _, item := range items {
		key := item.EntityKey()
		if _, ok := byKey[key]; !ok {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], item)
	}

	now := time.Now()
	groups := make([][]*models.QueueItem, 0, len(byKey))

	for _, key := range order {
		group := byKey[key]

		if head := group[0]; !head.NextRetryAt.IsZero() && head.NextRetryAt.After(now) {
			continue
		}

		blocked := false
		for _, item := range group {
			if m.pusher.HasConflictForItem(item.ID) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		groups = append(groups, group)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		hi, hj := groups[i][0], groups[j][0]
		if wi, wj := hi.Priority.Weight(), hj.Priority.Weight(); wi != wj {
			return wi > wj
		}
		return hi.Timestamp < hj.Timestamp
	})

	return groups
}

// processGroup применяет мутации одной сущности строго по порядку.
// Transient сбой или конфликт останавливает группу до конца прогона:
// порядок важнее прогресса. Терминальный отказ (исчерпан лимит попыток)
// группу НЕ останавливает.
func (m *Manager) processGroup(ctx context.Context, group []*models.QueueItem, result *models.SyncResult, resultMu *sync.Mutex, stopped *atomic.Bool) {
	for _, item := range group {
		if stopped.Load() || ctx.Err() != nil {
			return
		}

		// Сеть могла уйти в середине прогона: оставшиеся элементы
		// не трогаем, они остаются pending до следующего прогона
		if !m.online.IsOnline() {
			m.logger.Info("went offline mid-run, stopping")
			stopped.Store(true)
			return
		}

		if !item.NextRetryAt.IsZero() && item.NextRetryAt.After(time.Now()) {
			return
		}

		pushRes := m.pusher.Push(ctx, item)

		switch pushRes.Outcome {
		case models.PushApplied:
			if err := m.store.DeletePending(ctx, item.ID); err != nil {
				m.logger.Error("delete applied item", "item_id", item.ID, "error", err)
				return
			}

			resultMu.Lock()
			result.Successful = append(result.Successful, item)
			resultMu.Unlock()

		case models.PushConflict:
			// Конфликт не тратит retry budget; элемент остается pending
			// заблокированным до решения пользователя
			m.logger.Info("conflict detected, entity group blocked",
				"item_id", item.ID,
				"entity", item.EntityKey(),
				"conflict_id", pushRes.Conflict.ID)
			return

		case models.PushTransient:
			exhausted, err := m.recordFailure(ctx, item, pushRes.Err)
			if err != nil {
				m.logger.Error("record push failure", "item_id", item.ID, "error", err)
				return
			}

			resultMu.Lock()
			if exhausted {
				result.Failed = append(result.Failed, item)
			} else {
				result.Retrying = append(result.Retrying, item)
			}
			resultMu.Unlock()

			if !exhausted {
				return
			}
			// Терминальный отказ: следующий элемент группы может идти
		}
	}
}

// recordFailure фиксирует transient неудачу: инкремент счетчика,
// backoff, перенос в failed при исчерпании лимита.
// Возвращает true, если лимит попыток исчерпан.
func (m *Manager) recordFailure(ctx context.Context, item *models.QueueItem, pushErr error) (bool, error) {
	item.RetryCount++
	item.Error = pushErr.Error()

	if item.RetriesExhausted() {
		item.NextRetryAt = time.Time{}
		if err := m.store.MoveToFailed(ctx, item); err != nil {
			return false, fmt.Errorf("move to failed: %w", err)
		}

		m.logger.Warn("retries exhausted, item moved to failed",
			"item_id", item.ID,
			"entity", item.EntityKey(),
			"retry_count", item.RetryCount,
			"error", item.Error)
		return true, nil
	}

	if m.cfg.RetryBackoff > 0 {
		// Экспоненциальный backoff: base * 2^(retryCount-1)
		item.NextRetryAt = time.Now().Add(m.cfg.RetryBackoff << (item.RetryCount - 1))
	}

	if err := m.store.SavePending(ctx, item); err != nil {
		return false, fmt.Errorf("save retrying item: %w", err)
	}

	return false, nil
}

// nextTimestamp выдает строго возрастающий UnixNano.
// Монотонность несущая: порядок внутри сущности определяется timestamp.
func (m *Manager) nextTimestamp() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	ts := time.Now().UnixNano()
	if ts <= m.lastTS {
		ts = m.lastTS + 1
	}
	m.lastTS = ts
	return ts
}

// notifyStatus рассылает свежий снимок статуса подписчикам
func (m *Manager) notifyStatus(ctx context.Context) {
	m.mu.Lock()
	if len(m.subs) == 0 {
		m.mu.Unlock()
		return
	}
	callbacks := make([]func(*models.QueueStatus), 0, len(m.subs))
	for _, cb := range m.subs {
		callbacks = append(callbacks, cb)
	}
	m.mu.Unlock()

	status, err := m.GetStatus(ctx)
	if err != nil {
		m.logger.Warn("status snapshot for subscribers failed", "error", err)
		return
	}

	for _, cb := range callbacks {
		cb(status)
	}
}
