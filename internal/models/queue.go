package models

import "time"

// Action тип мутации в очереди
type Action string

// Action константы для типов мутаций
const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Priority приоритет обработки элемента очереди.
// Приоритет влияет на порядок обработки МЕЖДУ сущностями,
// но никогда не переупорядочивает мутации одной сущности.
type Priority string

// Priority константы
const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Weight возвращает числовой вес приоритета для сортировки (больше = раньше)
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 1
	case PriorityLow:
		return 0
	default:
		return 1
	}
}

// DefaultMaxRetries лимит попыток по умолчанию для transient ошибок
const DefaultMaxRetries = 3

// QueueItem представляет одну отложенную мутацию в очереди.
// Элемент живет в pending до успешного применения на сервере,
// переносится в failed после исчерпания лимита попыток.
type QueueItem struct {
	NextRetryAt time.Time      `json:"next_retry_at,omitzero"` // backoff: раньше этого времени не пытаемся
	Payload     map[string]any `json:"payload"`                // тело мутации (частичное или полное состояние)
	ID          string         `json:"id"`                     // UUID, назначается при enqueue
	Action      Action         `json:"action"`                 // create | update | delete
	EntityType  string         `json:"entity_type"`            // вид сущности (project, element, ...)
	EntityID    string         `json:"entity_id"`              // ID сущности; для create — клиентский временный ID
	Error       string         `json:"error,omitempty"`        // причина последней неудачи
	Priority    Priority       `json:"priority"`               // планирование между сущностями
	BaseVersion int64          `json:"base_version"`           // версия сущности, на которой основано изменение
	Timestamp   int64          `json:"timestamp"`              // UnixNano создания; порядок внутри сущности
	RetryCount  int            `json:"retry_count"`            // счетчик transient неудач
	MaxRetries  int            `json:"max_retries"`            // лимит попыток
}

// EntityKey возвращает ключ группы сущности (тип + ID).
// Мутации с одинаковым ключом применяются строго в порядке Timestamp.
func (i *QueueItem) EntityKey() string {
	return i.EntityType + "/" + i.EntityID
}

// RetriesExhausted проверяет, исчерпан ли лимит попыток
func (i *QueueItem) RetriesExhausted() bool {
	return i.RetryCount >= i.MaxRetries
}

// Clone создает глубокую копию элемента очереди
func (i *QueueItem) Clone() *QueueItem {
	clone := *i
	if i.Payload != nil {
		clone.Payload = make(map[string]any, len(i.Payload))
		for k, v := range i.Payload {
			clone.Payload[k] = v
		}
	}
	return &clone
}

// QueueStatus read-only снимок состояния очереди.
// Всегда вычисляется из хранилища и монитора сети, отдельно не хранится.
type QueueStatus struct {
	Pending      int          `json:"pending"`       // количество ожидающих элементов
	Failed       int          `json:"failed"`        // количество элементов с исчерпанными попытками
	IsProcessing bool         `json:"is_processing"` // идет ли сейчас processQueue
	IsOnline     bool         `json:"is_online"`     // текущее состояние сети
	Items        []*QueueItem `json:"items"`         // pending элементы
	FailedItems  []*QueueItem `json:"failed_items"`  // failed элементы
}

// SyncResult итог одного прогона processQueue.
// Списки не пересекаются: каждый предпринятый элемент попадает ровно в один.
type SyncResult struct {
	Successful []*QueueItem `json:"successful"` // применены и удалены из очереди
	Failed     []*QueueItem `json:"failed"`     // исчерпали лимит попыток
	Retrying   []*QueueItem `json:"retrying"`   // transient неудача, остались pending
}

// Attempted возвращает общее количество предпринятых элементов
func (r *SyncResult) Attempted() int {
	return len(r.Successful) + len(r.Failed) + len(r.Retrying)
}

// PushOutcome классификация результата push одной мутации
type PushOutcome int

// PushOutcome константы.
// Различие transient/conflict несущее: конфликт не тратит retry budget,
// transient ошибка — тратит.
const (
	// PushApplied сервер принял мутацию
	PushApplied PushOutcome = iota
	// PushConflict сервер отклонил по version mismatch
	PushConflict
	// PushTransient сетевая/серверная ошибка, можно повторить
	PushTransient
)

// PushResult результат push одной мутации через Delta Sync Service
type PushResult struct {
	Conflict   *Conflict   // заполнен только при Outcome == PushConflict
	Err        error       // заполнен только при Outcome == PushTransient
	NewVersion int64       // версия сущности после применения (при PushApplied)
	Outcome    PushOutcome // классификация исхода
}
