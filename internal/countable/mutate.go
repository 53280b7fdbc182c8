package countable

import (
	"fmt"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// NewCountable creates a counter or a phase named name below parent and returns its id.
// A phase needs a parent, the parent must be a counter. The parent's last_edit is
// bumped so that a merge carries the new child link along with the node.
func (s *Store) NewCountable(name string, kind models.Kind, parent *models.CountableID) (models.CountableID, error) {
	if kind != models.KindCounter && kind != models.KindPhase {
		return models.NilCountableID, fmt.Errorf("%w: unknown kind %q", ErrInvalidCountable, kind)
	}
	if kind == models.KindPhase && parent == nil {
		return models.NilCountableID, ErrPhaseRequiresParent
	}

	var parentNode *Node
	if parent != nil {
		n, err := s.node(*parent)
		if err != nil {
			return models.NilCountableID, fmt.Errorf("parent %s: %w", *parent, err)
		}
		if n.Kind() != models.KindCounter {
			return models.NilCountableID, ErrCannotContainChildren
		}
		parentNode = n
	}

	now := s.meta.clock.Now()

	var c models.Countable
	if kind == models.KindCounter {
		c = models.FromCounter(models.NewCounter(name, s.owner, parent, now))
	} else {
		c = models.FromPhase(models.NewPhase(name, s.owner, *parent, now))
	}

	n, err := newNode(c)
	if err != nil {
		return models.NilCountableID, err
	}

	if parentNode != nil {
		err := parentNode.with(func(counter *models.Counter, _ *models.Phase) error {
			counter.Children = append(counter.Children, c.ID())
			counter.LastEdit = now
			return nil
		})
		if err != nil {
			return models.NilCountableID, err
		}
	}

	s.nodes[c.ID()] = n
	s.touch()
	return c.ID(), nil
}

// edit runs fn on id and stamps last_edit when fn reports a change.
func (s *Store) edit(id models.CountableID, fn func(c *models.Counter, p *models.Phase) (bool, error)) error {
	n, err := s.node(id)
	if err != nil {
		return err
	}

	now := s.meta.clock.Now()
	changed := false
	err = n.with(func(c *models.Counter, p *models.Phase) error {
		var err error
		changed, err = fn(c, p)
		if err != nil || !changed {
			return err
		}
		if c != nil {
			c.LastEdit = now
		} else {
			p.LastEdit = now
		}
		return nil
	})
	if err != nil {
		return err
	}
	if changed {
		s.touch()
	}
	return nil
}

// editSubtree runs edit on id and every node below it, archived ones included.
func (s *Store) editSubtree(id models.CountableID, fn func(c *models.Counter, p *models.Phase) (bool, error)) error {
	if err := s.edit(id, fn); err != nil {
		return err
	}

	below, err := s.descendants(id)
	if err != nil {
		return err
	}
	for _, child := range below {
		if err := s.edit(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// SetName renames id.
func (a Checked[D]) SetName(id models.CountableID, name string) error {
	return a.store.edit(id, func(c *models.Counter, p *models.Phase) (bool, error) {
		if c != nil {
			if c.Name == name {
				return false, nil
			}
			c.Name = name
			return true, nil
		}
		if p.Name == name {
			return false, nil
		}
		p.Name = name
		return true, nil
	})
}

// SetHuntType sets the hunt type of a phase, or of every phase below a counter.
// Mixed is rejected.
func (a Checked[D]) SetHuntType(id models.CountableID, ht models.HuntType) error {
	if !ht.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidHuntType, ht)
	}

	return a.store.editSubtree(id, func(_ *models.Counter, p *models.Phase) (bool, error) {
		if p == nil || p.HuntType == ht {
			return false, nil
		}
		p.HuntType = ht
		return true, nil
	})
}

// SetCharm sets the charm flag of a phase, or of every phase below a counter.
func (a Checked[D]) SetCharm(id models.CountableID, hasCharm bool) error {
	return a.store.editSubtree(id, func(_ *models.Counter, p *models.Phase) (bool, error) {
		if p == nil || p.HasCharm == hasCharm {
			return false, nil
		}
		p.HasCharm = hasCharm
		return true, nil
	})
}

// ToggleSuccess flips the success flag of a phase. Counters are left alone.
func (a Checked[D]) ToggleSuccess(id models.CountableID) error {
	return a.store.edit(id, func(_ *models.Counter, p *models.Phase) (bool, error) {
		if p == nil {
			return false, nil
		}
		p.Success = !p.Success
		return true, nil
	})
}

// Archive marks id and everything below it as archived.
// Archived nodes stay addressable and take part in merges.
func (a Checked[D]) Archive(id models.CountableID) error {
	return a.store.editSubtree(id, func(c *models.Counter, p *models.Phase) (bool, error) {
		if c != nil {
			if c.IsDeleted {
				return false, nil
			}
			c.IsDeleted = true
			return true, nil
		}
		if p.IsDeleted {
			return false, nil
		}
		p.IsDeleted = true
		return true, nil
	})
}
