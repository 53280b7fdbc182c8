package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()
	c.io.Println("Starting synchronization with server...")

	result, err := c.syncService.Sync(ctx, c.owner)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed successfully!")
	c.io.Println()
	c.io.Printf("Pulled from server: %d countables\n", result.Pulled)
	c.io.Printf("Local before sync:  %d countables\n", result.Local)
	c.io.Printf("Added:              %d\n", result.Added)
	c.io.Printf("Replaced:           %d\n", result.Replaced)
	c.io.Printf("Kept:               %d\n", result.Kept)
	if result.Archived > 0 {
		c.io.Printf("Archived:           %d\n", result.Archived)
	}
	if result.Orphaned > 0 {
		c.io.Printf("Dropped (orphaned): %d\n", result.Orphaned)
	}
	c.io.Printf("Stored:             %d countables\n", result.Stored)

	return nil
}
