package netmon

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

//go:generate moq -out prober_mock.go . Prober

// Prober defines the connectivity capability probe.
// Возвращает nil, если сервер доступен.
type Prober interface {
	Probe(ctx context.Context) error
}

// Config содержит настройки монитора сети
type Config struct {
	ProbeInterval time.Duration // период опроса
	Debounce      time.Duration // задержка триггера после перехода offline → online
}

// DefaultConfig returns monitor configuration defaults
func DefaultConfig() Config {
	return Config{
		ProbeInterval: 30 * time.Second,
		Debounce:      2 * time.Second,
	}
}

// Monitor является единственным источником истины о состоянии сети.
// До первого успешного probe считает себя offline (fails closed),
// чтобы не порождать заведомо обреченные push попытки.
type Monitor struct {
	prober   Prober
	logger   *slog.Logger
	onOnline func()
	subs     map[int]func(online bool)
	debounce *time.Timer
	cfg      Config
	mu       sync.Mutex
	nextSub  int
	online   bool
}

// New creates a new network monitor.
// onOnline вызывается (с debounce) после каждого перехода offline → online;
// обычно это queue.Manager.ProcessQueue. Может быть nil.
func New(prober Prober, logger *slog.Logger, cfg Config, onOnline func()) *Monitor {
	if cfg.ProbeInterval <= 0 {
		cfg.ProbeInterval = DefaultConfig().ProbeInterval
	}

	return &Monitor{
		prober:   prober,
		logger:   logger,
		cfg:      cfg,
		onOnline: onOnline,
		subs:     make(map[int]func(online bool)),
	}
}

// IsOnline returns current connectivity state
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// OnChange registers a listener invoked on every connectivity transition
// (не на повторных одинаковых состояниях).
// Возвращает функцию отписки; отписка идемпотентна.
func (m *Monitor) OnChange(callback func(online bool)) func() {
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

// Run starts the probe loop. Blocks until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.ProbeInterval)
	defer ticker.Stop()

	// Первый probe сразу при старте
	m.CheckNow(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckNow(ctx)
		}
	}
}

// CheckNow performs a single connectivity probe and updates state.
// Ошибка probe трактуется как offline.
func (m *Monitor) CheckNow(ctx context.Context) {
	err := m.prober.Probe(ctx)
	online := err == nil

	if err != nil {
		m.logger.Debug("connectivity probe failed", "error", err)
	}

	m.setOnline(online)
}

// setOnline применяет новое состояние и рассылает события при переходе
func (m *Monitor) setOnline(online bool) {
	m.mu.Lock()

	if online == m.online {
		m.mu.Unlock()
		return
	}

	m.online = online

	// Копируем подписчиков: callbacks вызываются вне мьютекса
	callbacks := make([]func(bool), 0, len(m.subs))
	for _, cb := range m.subs {
		callbacks = append(callbacks, cb)
	}

	if online {
		m.scheduleTriggerLocked()
	} else if m.debounce != nil {
		// Ушли в offline до срабатывания — отменяем триггер
		m.debounce.Stop()
		m.debounce = nil
	}

	m.mu.Unlock()

	m.logger.Info("connectivity changed", "online", online)

	for _, cb := range callbacks {
		cb(online)
	}
}

// scheduleTriggerLocked планирует debounced вызов onOnline.
// Вызывается под мьютексом.
func (m *Monitor) scheduleTriggerLocked() {
	if m.onOnline == nil {
		return
	}

	if m.debounce != nil {
		m.debounce.Stop()
	}

	if m.cfg.Debounce <= 0 {
		// Без debounce триггерим сразу, но вне мьютекса
		go m.onOnline()
		return
	}

	m.debounce = time.AfterFunc(m.cfg.Debounce, m.onOnline)
}
