package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/ivolkov/syncpad/internal/client/queue"
	"github.com/ivolkov/syncpad/internal/models"
	"github.com/ivolkov/syncpad/internal/validation"
)

// runAdd ставит мутацию в очередь:
// syncpad add [-priority low|normal|high] [-base N] <action> <type> <id> [key=value ...]
func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	priorityFlag := fs.String("priority", "normal", "queue priority: low, normal or high")
	baseVersion := fs.Int64("base", 0, "entity version the mutation is based on")

	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 3 {
		return fmt.Errorf("usage: add [-priority P] [-base N] <create|update|delete> <type> <id> [key=value ...]")
	}

	action := models.Action(rest[0])
	switch action {
	case models.ActionCreate, models.ActionUpdate, models.ActionDelete:
	default:
		return fmt.Errorf("invalid action %q: expected create, update or delete", rest[0])
	}

	entityType, entityID := rest[1], rest[2]
	if err := validation.ValidateEntityType(entityType); err != nil {
		return err
	}
	if err := validation.ValidateEntityID(entityID); err != nil {
		return err
	}

	priority, err := parsePriority(*priorityFlag)
	if err != nil {
		return err
	}

	payload, err := parsePayload(rest[3:])
	if err != nil {
		return err
	}

	if action != models.ActionDelete && len(payload) == 0 {
		return fmt.Errorf("%s requires at least one key=value pair", action)
	}

	item, err := c.queue.Enqueue(ctx, queue.EnqueueInput{
		Payload:     payload,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Priority:    priority,
		BaseVersion: *baseVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue mutation: %w", err)
	}

	c.io.Printf("Queued %s %s (item %s, priority %s)\n", item.Action, item.EntityKey(), item.ID, item.Priority)
	c.io.Println("Run 'syncpad sync' to push queued mutations.")

	return nil
}
