package cli

import (
	"context"
	"fmt"
)

// runResolve применяет выбранную стратегию к конфликту:
// syncpad resolve <conflict-id> <keep-local|keep-remote|cancel>
func (c *Cli) runResolve(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: resolve <conflict-id> <keep-local|keep-remote|cancel>")
	}

	conflictID, strategy := args[0], args[1]

	switch strategy {
	case "keep-local":
		if err := c.resolver.ResolveKeepLocal(ctx, conflictID); err != nil {
			return err
		}
		c.io.Println("Kept local changes. Run 'syncpad sync' to push them.")
	case "keep-remote":
		if err := c.resolver.ResolveKeepRemote(ctx, conflictID); err != nil {
			return err
		}
		c.io.Println("Kept remote state. Local mutation discarded.")
	case "cancel":
		if err := c.resolver.Cancel(ctx, conflictID); err != nil {
			return err
		}
		c.io.Println("Conflict left unresolved.")
	default:
		return fmt.Errorf("invalid strategy %q: expected keep-local, keep-remote or cancel", strategy)
	}

	return nil
}
