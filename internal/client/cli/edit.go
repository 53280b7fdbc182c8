package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
	"github.com/P3rtang/tallyWeb-sub000/internal/validation"
)

func (c *Cli) runRename(ctx context.Context, arg, name string) error {
	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	var id models.CountableID
	_, err := c.edit(ctx, func(s *countable.Store) error {
		var err error
		if id, err = resolveID(s, arg); err != nil {
			return err
		}
		return s.Level().SetName(id, name)
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Renamed %s to %s\n", shortID(id), name)
	return nil
}

// parseHuntType ищет тип охоты без учета регистра
func parseHuntType(value string) (models.HuntType, error) {
	for _, ht := range models.HuntTypes {
		if strings.EqualFold(string(ht), value) {
			return ht, nil
		}
	}

	names := make([]string, 0, len(models.HuntTypes))
	for _, ht := range models.HuntTypes {
		names = append(names, fmt.Sprintf("%s (%s)", ht, ht.Repr()))
	}
	return "", fmt.Errorf("%w: %q, use one of: %s", countable.ErrInvalidHuntType, value, strings.Join(names, ", "))
}

// runHuntType sets the hunt type of a phase, or of every phase below a counter
func (c *Cli) runHuntType(ctx context.Context, arg, value string) error {
	ht, err := parseHuntType(value)
	if err != nil {
		return err
	}

	var id models.CountableID
	_, err = c.edit(ctx, func(s *countable.Store) error {
		var err error
		if id, err = resolveID(s, arg); err != nil {
			return err
		}
		return s.Recursive().SetHuntType(id, ht)
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ %s: hunt type %s\n", shortID(id), ht.Repr())
	return nil
}

// runCharm switches the charm of a phase, or of every phase below a counter
func (c *Cli) runCharm(ctx context.Context, arg, value string) error {
	var hasCharm bool
	switch strings.ToLower(value) {
	case "on", "yes", "true":
		hasCharm = true
	case "off", "no", "false":
	default:
		return fmt.Errorf("invalid charm value %q, use on or off", value)
	}

	var id models.CountableID
	_, err := c.edit(ctx, func(s *countable.Store) error {
		var err error
		if id, err = resolveID(s, arg); err != nil {
			return err
		}
		return s.Recursive().SetCharm(id, hasCharm)
	})
	if err != nil {
		return err
	}

	state := "off"
	if hasCharm {
		state = "on"
	}
	c.io.Printf("✓ %s: charm %s\n", shortID(id), state)
	return nil
}

// runSuccess toggles the success flag of a phase
func (c *Cli) runSuccess(ctx context.Context, arg string) error {
	var id models.CountableID
	var success bool
	_, err := c.edit(ctx, func(s *countable.Store) error {
		var err error
		if id, err = resolveID(s, arg); err != nil {
			return err
		}

		kind, err := s.Level().Kind(id)
		if err != nil {
			return err
		}
		if kind != models.KindPhase {
			return fmt.Errorf("%s is a counter, mark one of its phases instead", shortID(id))
		}

		if err := s.Level().ToggleSuccess(id); err != nil {
			return err
		}
		success, err = s.Level().IsSuccess(id)
		return err
	})
	if err != nil {
		return err
	}

	if success {
		c.io.Printf("✓ %s marked as found\n", shortID(id))
	} else {
		c.io.Printf("✓ %s no longer marked as found\n", shortID(id))
	}
	return nil
}

// runArchive archives id with its subtree. Without yes the user confirms first.
func (c *Cli) runArchive(ctx context.Context, arg string, yes bool) error {
	s, err := c.loadStore(ctx)
	if err != nil {
		return err
	}

	id, err := resolveID(s, arg)
	if err != nil {
		return err
	}

	u := s.Recursive().Unchecked()
	if u.IsArchived(id) {
		c.io.Printf("%s is already archived\n", shortID(id))
		return nil
	}

	if !yes {
		prompt := fmt.Sprintf("Archive %s (%s)", u.Name(id), shortID(id))
		if n := len(u.Children(id)); n > 0 {
			prompt += fmt.Sprintf(" and %d countable(s) below it", n)
		}
		answer, err := c.io.ReadInput(prompt + "? [y/N]: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			c.io.Println("Archive cancelled.")
			return nil
		}
	}

	if err := s.Recursive().Archive(id); err != nil {
		return fmt.Errorf("failed to archive: %w", err)
	}
	if err := c.saveStore(ctx, s); err != nil {
		return err
	}

	c.io.Printf("✓ Archived %s\n", shortID(id))
	return nil
}
