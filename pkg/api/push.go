package api

// PushStatus статус применения мутации на сервере
type PushStatus string

const (
	// PushStatusApplied мутация применена, base version совпала
	PushStatusApplied PushStatus = "applied"
	// PushStatusConflict мутация отклонена: remote version ушла вперед
	PushStatusConflict PushStatus = "conflict"
)

// PushRequest представляет запрос на применение одной мутации.
// BaseVersion — версия сущности, на которой основано локальное изменение
// (optimistic concurrency: сервер применяет мутацию только если его
// текущая версия совпадает с BaseVersion).
type PushRequest struct {
	Action      string         `json:"action"`       // create | update | delete
	Payload     map[string]any `json:"payload"`      // поля мутации
	BaseVersion int64          `json:"base_version"` // версия-основание
}

// PushResponse представляет ответ сервера на push.
// При status=conflict RemoteState и RemoteVersion содержат актуальное
// состояние сущности, чтобы клиент мог построить field-level diff.
type PushResponse struct {
	Status        PushStatus     `json:"status"`
	Version       int64          `json:"version"`                  // новая версия после применения
	RemoteState   map[string]any `json:"remote_state,omitempty"`   // только при конфликте
	RemoteVersion int64          `json:"remote_version,omitempty"` // только при конфликте
}

// EntityResponse представляет текущее состояние сущности на сервере
type EntityResponse struct {
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	State      map[string]any `json:"state"`
	Version    int64          `json:"version"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string `json:"status"`
}
