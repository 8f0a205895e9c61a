package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ivolkov/syncpad/internal/models"
	"github.com/ivolkov/syncpad/internal/server/storage"
)

// GetEntity retrieves the current entity state
func (s *Storage) GetEntity(ctx context.Context, userID, entityType, entityID string) (*storage.Entity, error) {
	query := `
		SELECT state, version, updated_at
		FROM entities
		WHERE user_id = ? AND entity_type = ? AND entity_id = ?
	`

	entity := &storage.Entity{
		UserID:     userID,
		EntityType: entityType,
		EntityID:   entityID,
	}

	var stateJSON string

	err := s.db.QueryRowContext(ctx, query, userID, entityType, entityID).Scan(
		&stateJSON,
		&entity.Version,
		&entity.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	if err := json.Unmarshal([]byte(stateJSON), &entity.State); err != nil {
		return nil, fmt.Errorf("failed to decode entity state: %w", err)
	}

	return entity, nil
}

// ApplyMutation applies a mutation inside a single transaction with
// optimistic concurrency checks and returns the new entity version.
func (s *Storage) ApplyMutation(ctx context.Context, m *storage.Mutation) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback после commit безопасен

	var (
		stateJSON string
		version   int64
	)

	// Читаем текущую версию внутри транзакции
	err = tx.QueryRowContext(ctx,
		`SELECT state, version FROM entities WHERE user_id = ? AND entity_type = ? AND entity_id = ?`,
		m.UserID, m.EntityType, m.EntityID,
	).Scan(&stateJSON, &version)

	exists := true

	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("failed to get entity: %w", err)
		}
		exists = false
	}

	now := time.Now().UTC()

	var newVersion int64

	switch m.Action {
	case models.ActionCreate:
		// create требует отсутствия сущности
		if exists {
			return 0, storage.ErrVersionMismatch
		}

		newVersion = 1

		encoded, err := json.Marshal(m.Payload)
		if err != nil {
			return 0, fmt.Errorf("failed to encode entity state: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO entities (user_id, entity_type, entity_id, state, version, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			m.UserID, m.EntityType, m.EntityID, string(encoded), newVersion, now,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert entity: %w", err)
		}

	case models.ActionUpdate:
		if !exists {
			return 0, storage.ErrEntityNotFound
		}

		if version != m.BaseVersion {
			return 0, storage.ErrVersionMismatch
		}

		var state map[string]any
		if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
			return 0, fmt.Errorf("failed to decode entity state: %w", err)
		}

		// Накладываем поля мутации поверх текущего состояния
		for k, v := range m.Payload {
			state[k] = v
		}

		newVersion = version + 1

		encoded, err := json.Marshal(state)
		if err != nil {
			return 0, fmt.Errorf("failed to encode entity state: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE entities SET state = ?, version = ?, updated_at = ?
			 WHERE user_id = ? AND entity_type = ? AND entity_id = ?`,
			string(encoded), newVersion, now, m.UserID, m.EntityType, m.EntityID,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to update entity: %w", err)
		}

	case models.ActionDelete:
		// Удаление отсутствующей сущности идемпотентно
		if !exists {
			return m.BaseVersion, tx.Commit()
		}

		if version != m.BaseVersion {
			return 0, storage.ErrVersionMismatch
		}

		newVersion = version + 1

		_, err = tx.ExecContext(ctx,
			`DELETE FROM entities WHERE user_id = ? AND entity_type = ? AND entity_id = ?`,
			m.UserID, m.EntityType, m.EntityID,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to delete entity: %w", err)
		}

	default:
		return 0, fmt.Errorf("unknown action: %s", m.Action)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return newVersion, nil
}
