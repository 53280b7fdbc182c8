package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
	"github.com/P3rtang/tallyWeb-sub000/internal/validation"
)

// parseKind принимает counter или phase
func parseKind(s string) (models.Kind, error) {
	switch models.Kind(s) {
	case models.KindCounter, models.KindPhase:
		return models.Kind(s), nil
	default:
		return "", fmt.Errorf("unknown kind %q, use counter or phase", s)
	}
}

// runNew creates a counter or a phase.
// A counter gets its first phase unless empty is set. A phase without a name is
// called "Phase N" and continues the hunt type and charm of its counter.
func (c *Cli) runNew(ctx context.Context, kind models.Kind, name, parentArg string, empty bool) error {
	if kind == models.KindCounter && name == "" {
		return fmt.Errorf("invalid name: name cannot be empty")
	}
	if name != "" {
		if err := validation.ValidateName(name); err != nil {
			return fmt.Errorf("invalid name: %w", err)
		}
	}

	var created []models.CountableID
	_, err := c.edit(ctx, func(s *countable.Store) error {
		var parent *models.CountableID
		if parentArg != "" {
			id, err := resolveID(s, parentArg)
			if err != nil {
				return err
			}
			parent = &id
		}

		if kind == models.KindCounter {
			id, err := s.NewCountable(name, kind, parent)
			if err != nil {
				return fmt.Errorf("failed to create counter: %w", err)
			}
			created = append(created, id)
			if empty {
				return nil
			}
			parent = &id
			name = ""
		}

		if parent == nil {
			return countable.ErrPhaseRequiresParent
		}
		id, err := newPhase(s, name, *parent)
		if err != nil {
			return err
		}
		created = append(created, id)
		return nil
	})
	if err != nil {
		return err
	}

	// Перечитываем имена для вывода
	s, err := c.loadStore(ctx)
	if err != nil {
		return err
	}
	u := s.Level().Unchecked()
	for _, id := range created {
		c.io.Printf("✓ Created %s %s (%s)\n", u.Kind(id), u.Name(id), shortID(id))
	}

	return nil
}

func newPhase(s *countable.Store, name string, parent models.CountableID) (models.CountableID, error) {
	level := s.Level()

	siblings, err := level.Children(parent)
	if err != nil && !errors.Is(err, countable.ErrNotFound) {
		return models.NilCountableID, err
	}
	if name == "" {
		name = fmt.Sprintf("Phase %d", len(siblings)+1)
	}

	// Тип охоты и шарм берем у счетчика, если он однозначен
	huntType, huntErr := s.Recursive().HuntType(parent)
	hasCharm, charmErr := s.Recursive().HasCharm(parent)

	id, err := s.NewCountable(name, models.KindPhase, &parent)
	if err != nil {
		return models.NilCountableID, fmt.Errorf("failed to create phase: %w", err)
	}

	if huntErr == nil && huntType.Valid() {
		if err := level.SetHuntType(id, huntType); err != nil {
			return models.NilCountableID, err
		}
	}
	if charmErr == nil && hasCharm && len(siblings) > 0 {
		if err := level.SetCharm(id, true); err != nil {
			return models.NilCountableID, err
		}
	}

	return id, nil
}
