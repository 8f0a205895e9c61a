package cli

import (
	"context"
	"time"
)

func (c *Cli) runConflicts(ctx context.Context) error {
	conflicts := c.conflicts.GetPendingChanges()

	if len(conflicts) == 0 {
		c.io.Println("No unresolved conflicts.")
		return nil
	}

	c.io.Printf("Unresolved conflicts: %d\n", len(conflicts))
	c.io.Println()

	for _, conflict := range conflicts {
		c.io.Printf("Conflict %s\n", conflict.ID)
		c.io.Printf("  Entity:         %s/%s (%s)\n", conflict.EntityType, conflict.EntityID, conflict.ChangeType)
		c.io.Printf("  Detected:       %s\n", time.Unix(0, conflict.Timestamp).Format(time.RFC3339))
		c.io.Printf("  Remote version: %d\n", conflict.RemoteVersion)
		c.io.Printf("  Local values:   %s\n", formatValues(conflict.NewValue, conflict.Fields))
		c.io.Printf("  Remote values:  %s\n", formatValues(conflict.OldValue, conflict.Fields))
		c.io.Println()
	}

	c.io.Println("Resolve with 'syncpad resolve <conflict-id> <keep-local|keep-remote|cancel>'.")

	return nil
}
