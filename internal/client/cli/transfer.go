package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/pkg/api"
)

// stdioPath означает stdout для export и stdin для import
const stdioPath = "-"

// runExport writes the local tree as a snapshot to path, or to the terminal for "-"
func (c *Cli) runExport(ctx context.Context, path string) error {
	s, err := c.loadStore(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	snap := api.NewSnapshot(data, c.now())

	if path == stdioPath {
		return snap.Encode(c.io)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := snap.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	c.io.Printf("✓ Exported %d countables to %s\n", s.Len(), path)
	return nil
}

// runImport reads a snapshot from path (stdin for "-") and merges it into the
// local tree. With replace the local tree is overwritten instead.
func (c *Cli) runImport(ctx context.Context, path string, replace bool) error {
	r := c.stdin
	if path != stdioPath {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	snap, err := api.DecodeSnapshot(r)
	if err != nil {
		return err
	}

	imported := countable.New(c.owner)
	if err := json.Unmarshal(snap.Store, imported); err != nil {
		return err
	}
	if imported.Owner() != c.owner {
		return fmt.Errorf("%w: %s", ErrOwnerMismatch, imported.Owner())
	}

	if replace {
		return c.replaceWith(ctx, imported)
	}

	local, err := c.loadStore(ctx)
	if err != nil {
		return err
	}
	result, err := local.Merge(imported)
	if err != nil {
		return fmt.Errorf("failed to merge snapshot: %w", err)
	}

	// Списки детей восстанавливаются по ссылкам на родителя
	nodes, err := local.Nodes()
	if err != nil {
		return err
	}
	merged, err := countable.FromRecords(c.owner, nodes)
	if err != nil {
		return fmt.Errorf("failed to rebuild tree: %w", err)
	}
	if err := c.replaceWith(ctx, merged); err != nil {
		return err
	}

	c.io.Printf("Added: %d, replaced: %d, kept: %d, archived: %d\n",
		result.Added, result.Replaced, result.Kept, result.Archived)
	return nil
}

func (c *Cli) replaceWith(ctx context.Context, s *countable.Store) error {
	nodes, err := s.Nodes()
	if err != nil {
		return err
	}
	if err := c.countables.ReplaceAll(ctx, nodes); err != nil {
		return fmt.Errorf("failed to store imported tree: %w", err)
	}

	c.io.Printf("✓ Imported %d countables\n", len(nodes))
	return nil
}
