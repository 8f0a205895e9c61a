package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ivolkov/syncpad/internal/client/auth"
	"github.com/ivolkov/syncpad/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.authService.CurrentSession(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		c.io.Println("Session: not authenticated")
		c.io.Println("Run 'syncpad login' to authenticate.")
	case errors.Is(err, auth.ErrSessionExpired):
		c.io.Println("Session: expired")
		c.io.Println("Run 'syncpad login' to authenticate again.")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	default:
		c.io.Printf("Session: authenticated as %s\n", session.Username)
		if session.ExpiresAt > 0 {
			c.io.Printf("Token expires: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))
		}
	}

	status, err := c.queue.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to read queue status: %w", err)
	}

	c.io.Println()
	if status.IsOnline {
		c.io.Println("Network: online")
	} else {
		c.io.Println("Network: offline")
	}
	if status.IsProcessing {
		c.io.Println("Queue: sync in progress")
	}
	c.io.Printf("Pending mutations: %d\n", status.Pending)
	c.io.Printf("Failed mutations: %d\n", status.Failed)

	if conflicts := c.conflicts.GetPendingChanges(); len(conflicts) > 0 {
		c.io.Printf("Unresolved conflicts: %d\n", len(conflicts))
		c.io.Println("Run 'syncpad conflicts' to inspect them.")
	}

	return nil
}
