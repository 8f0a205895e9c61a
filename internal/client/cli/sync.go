package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Synchronizing...")

	result, err := c.queue.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Println()
	c.io.Printf("Applied: %d\n", len(result.Successful))
	for _, item := range result.Successful {
		c.io.Printf("  %s %s\n", item.Action, item.EntityKey())
	}

	if len(result.Retrying) > 0 {
		c.io.Printf("Will retry: %d\n", len(result.Retrying))
		for _, item := range result.Retrying {
			c.io.Printf("  %s %s (attempt %d/%d): %s\n",
				item.Action, item.EntityKey(), item.RetryCount, item.MaxRetries, item.Error)
		}
	}

	if len(result.Failed) > 0 {
		c.io.Printf("Failed permanently: %d\n", len(result.Failed))
		for _, item := range result.Failed {
			c.io.Printf("  %s %s: %s\n", item.Action, item.EntityKey(), item.Error)
		}
		c.io.Println("Run 'syncpad retry all' to requeue failed mutations.")
	}

	if conflicts := c.conflicts.GetPendingChanges(); len(conflicts) > 0 {
		c.io.Printf("Conflicts detected: %d\n", len(conflicts))
		c.io.Println("Run 'syncpad conflicts' to inspect and 'syncpad resolve' to resolve them.")
	}

	return nil
}
