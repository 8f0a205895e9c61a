package deltasync

import (
	"context"

	"github.com/ivolkov/syncpad/internal/models"
)

//go:generate moq -out applier_mock.go . RemoteApplier

// ApplyStatus классификация ответа сервера на push мутации
type ApplyStatus string

// ApplyStatus константы
const (
	ApplyStatusApplied  ApplyStatus = "applied"
	ApplyStatusConflict ApplyStatus = "conflict"
)

// ApplyResult is the server's verdict on a single mutation.
// При Status == ApplyStatusConflict сервер возвращает свое актуальное
// состояние сущности, чтобы клиент мог построить field-level diff.
type ApplyResult struct {
	RemoteState   map[string]any // состояние сервера (только при conflict)
	Status        ApplyStatus    // applied | conflict
	Version       int64          // новая версия сущности (только при applied)
	RemoteVersion int64          // версия сервера (только при conflict)
}

// RemoteApplier pushes a single mutation to the server.
// Non-nil error означает transient сбой (сеть, 5xx): мутацию можно
// повторить позже. Отказ по версии transient НЕ является — он приходит
// как ApplyResult со Status == ApplyStatusConflict.
type RemoteApplier interface {
	Apply(ctx context.Context, entityType, entityID string, action models.Action, payload map[string]any, baseVersion int64) (*ApplyResult, error)
}
