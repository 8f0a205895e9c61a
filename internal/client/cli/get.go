package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ivolkov/syncpad/internal/validation"
)

// runGet запрашивает актуальное состояние сущности с сервера:
// syncpad get <type> <id>
func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: get <type> <id>")
	}

	entityType, entityID := args[0], args[1]
	if err := validation.ValidateEntityType(entityType); err != nil {
		return err
	}
	if err := validation.ValidateEntityID(entityID); err != nil {
		return err
	}

	entity, err := c.apiClient.GetEntity(ctx, entityType, entityID)
	if err != nil {
		return err
	}

	state, err := json.MarshalIndent(entity.State, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format entity state: %w", err)
	}

	c.io.Printf("%s/%s (version %d)\n", entity.EntityType, entity.EntityID, entity.Version)
	c.io.Println(string(state))

	return nil
}
