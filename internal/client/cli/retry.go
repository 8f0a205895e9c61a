package cli

import (
	"context"
	"fmt"
)

// runRetry возвращает failed мутации в очередь:
// syncpad retry <item-id|all>
func (c *Cli) runRetry(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: retry <item-id|all>")
	}

	if args[0] == "all" {
		items, err := c.queue.RetryAllFailed(ctx)
		if err != nil {
			return fmt.Errorf("failed to requeue mutations: %w", err)
		}

		c.io.Printf("Requeued %d mutation(s).\n", len(items))
		if len(items) > 0 {
			c.io.Println("Run 'syncpad sync' to push them.")
		}

		return nil
	}

	item, err := c.queue.RetryFailed(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to requeue mutation: %w", err)
	}

	c.io.Printf("Requeued %s %s (item %s).\n", item.Action, item.EntityKey(), item.ID)
	c.io.Println("Run 'syncpad sync' to push it.")

	return nil
}
