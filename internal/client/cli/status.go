package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	s, err := c.loadStore(ctx)
	if err != nil {
		return err
	}
	active, err := s.Active()
	if err != nil {
		return fmt.Errorf("failed to filter archived countables: %w", err)
	}
	roots, err := active.RootNodes()
	if err != nil {
		return fmt.Errorf("failed to list counters: %w", err)
	}

	c.io.Printf("Owner:      %s\n", c.owner)
	c.io.Printf("Countables: %d (%d archived)\n", s.Len(), s.Len()-active.Len())
	c.io.Printf("Counters:   %d active\n", len(roots))

	lastSync, err := c.syncService.GetLastSyncTime(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync time: %w", err)
	}
	if lastSync.IsZero() {
		c.io.Println("Last sync:  never")
	} else {
		c.io.Printf("Last sync:  %s\n", lastSync.Local().Format(time.DateTime))
	}

	// Получаем количество узлов, ожидающих синхронизации
	pendingCount, err := c.syncService.GetPendingSyncCount(ctx)
	if err != nil {
		// Не прерываем выполнение, только предупреждаем
		c.io.Printf("\nWarning: Failed to get pending sync count: %v\n", err)
		return nil
	}

	c.io.Println()
	if pendingCount > 0 {
		c.io.Printf("⚠️  Pending sync: %d countable(s) changed since the last sync\n", pendingCount)
		c.io.Println("Run 'tally sync' to synchronize with server.")
	} else {
		c.io.Println("✓ All data synchronized with server")
	}

	return nil
}
