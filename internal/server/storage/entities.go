package storage

import (
	"context"
	"time"

	"github.com/ivolkov/syncpad/internal/models"
)

//go:generate moq -out entities_mock.go . EntityStorage

// Entity представляет версионированное состояние сущности на сервере.
// Version монотонно растет с каждой примененной мутацией и служит
// основанием optimistic concurrency проверки при push.
type Entity struct {
	UpdatedAt  time.Time      `json:"updated_at"`
	State      map[string]any `json:"state"`
	UserID     string         `json:"user_id"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Version    int64          `json:"version"`
}

// Mutation представляет одну мутацию, присланную клиентом
type Mutation struct {
	Payload     map[string]any
	UserID      string
	EntityType  string
	EntityID    string
	Action      models.Action
	BaseVersion int64
}

// EntityStorage defines interface for the versioned entity store
type EntityStorage interface {
	// GetEntity retrieves the current entity state
	// Returns ErrEntityNotFound if entity doesn't exist
	GetEntity(ctx context.Context, userID, entityType, entityID string) (*Entity, error)

	// ApplyMutation applies a mutation with optimistic concurrency:
	// create требует отсутствия сущности, update/delete — совпадения
	// BaseVersion с текущей версией.
	// Returns the new version on success, ErrVersionMismatch on conflict,
	// ErrEntityNotFound when updating a missing entity.
	ApplyMutation(ctx context.Context, m *Mutation) (int64, error)
}
