package countable

import (
	"slices"
	"time"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// read runs fn under the lock of id.
func (s *Store) read(id models.CountableID, fn func(c *models.Counter, p *models.Phase) error) error {
	n, err := s.node(id)
	if err != nil {
		return err
	}
	return n.with(fn)
}

// directChildren returns the children of id that are present in s, in insertion order.
// Children filtered out of a view are skipped.
func (s *Store) directChildren(id models.CountableID) ([]models.CountableID, error) {
	n, err := s.node(id)
	if err != nil {
		return nil, err
	}
	children, err := n.children()
	if err != nil {
		return nil, err
	}

	present := children[:0]
	for _, child := range children {
		if s.Contains(child) {
			present = append(present, child)
		}
	}
	return present, nil
}

// descendants returns the direct children of id followed by the descendants of each child.
func (s *Store) descendants(id models.CountableID) ([]models.CountableID, error) {
	children, err := s.directChildren(id)
	if err != nil {
		return nil, err
	}

	all := slices.Clone(children)
	for _, child := range children {
		below, err := s.descendants(child)
		if err != nil {
			return nil, err
		}
		all = append(all, below...)
	}
	return all, nil
}

// parentOf returns the direct parent of id, if it has one.
func (s *Store) parentOf(id models.CountableID) (models.CountableID, bool, error) {
	var (
		parent models.CountableID
		ok     bool
	)
	err := s.read(id, func(c *models.Counter, p *models.Phase) error {
		if c != nil {
			if c.Parent != nil {
				parent, ok = *c.Parent, true
			}
			return nil
		}
		parent, ok = p.Parent, true
		return nil
	})
	return parent, ok, err
}

// ancestors returns the parents of id up to the root, nearest first.
// The walk stops at the first parent missing from s.
func (s *Store) ancestors(id models.CountableID) ([]models.CountableID, error) {
	var list []models.CountableID
	seen := map[models.CountableID]bool{id: true}

	current := id
	for {
		parent, ok, err := s.parentOf(current)
		if err != nil {
			return nil, err
		}
		if !ok || seen[parent] || !s.Contains(parent) {
			return list, nil
		}
		seen[parent] = true
		list = append(list, parent)
		current = parent
	}
}

// Kind returns whether id is a counter or a phase.
func (a Checked[D]) Kind(id models.CountableID) (models.Kind, error) {
	n, err := a.store.node(id)
	if err != nil {
		return "", err
	}
	return n.Kind(), nil
}

// Name returns the name of id.
func (a Checked[D]) Name(id models.CountableID) (string, error) {
	var name string
	err := a.store.read(id, func(c *models.Counter, p *models.Phase) error {
		if c != nil {
			name = c.Name
		} else {
			name = p.Name
		}
		return nil
	})
	return name, err
}

// CreatedAt returns the creation time of id.
func (a Checked[D]) CreatedAt(id models.CountableID) (time.Time, error) {
	var t time.Time
	err := a.store.read(id, func(c *models.Counter, p *models.Phase) error {
		if c != nil {
			t = c.CreatedAt
		} else {
			t = p.CreatedAt
		}
		return nil
	})
	return t, err
}

// LastEdit returns the last edit time of id.
func (a Checked[D]) LastEdit(id models.CountableID) (time.Time, error) {
	var t time.Time
	err := a.store.read(id, func(c *models.Counter, p *models.Phase) error {
		if c != nil {
			t = c.LastEdit
		} else {
			t = p.LastEdit
		}
		return nil
	})
	return t, err
}

// IsArchived reports whether id is archived.
func (a Checked[D]) IsArchived(id models.CountableID) (bool, error) {
	var archived bool
	err := a.store.read(id, func(c *models.Counter, p *models.Phase) error {
		if c != nil {
			archived = c.IsDeleted
		} else {
			archived = p.IsDeleted
		}
		return nil
	})
	return archived, err
}

// Children returns the direct children of id (Level) or every descendant (Recursive).
// Phases have no children.
func (a Checked[D]) Children(id models.CountableID) ([]models.CountableID, error) {
	if a.deep() {
		return a.store.descendants(id)
	}
	return a.store.directChildren(id)
}

// HasChild reports whether child is among Children(id).
func (a Checked[D]) HasChild(id, child models.CountableID) (bool, error) {
	children, err := a.Children(id)
	if err != nil {
		return false, err
	}
	return slices.Contains(children, child), nil
}

// LastChild returns the most recently added child of id.
//
// Level: the last direct child; ok is false for phases and empty counters.
// Recursive: follows the last child down to a leaf; a leaf returns itself.
func (a Checked[D]) LastChild(id models.CountableID) (models.CountableID, bool, error) {
	children, err := a.store.directChildren(id)
	if err != nil {
		return models.NilCountableID, false, err
	}

	if !a.deep() {
		if len(children) == 0 {
			return models.NilCountableID, false, nil
		}
		return children[len(children)-1], true, nil
	}

	if len(children) == 0 {
		return id, true, nil
	}
	return a.LastChild(children[len(children)-1])
}

// Parent returns the parent of id.
//
// Level: the direct parent; ok is false for root counters.
// Recursive: the root ancestor; a root returns itself.
func (a Checked[D]) Parent(id models.CountableID) (models.CountableID, bool, error) {
	if !a.deep() {
		return a.store.parentOf(id)
	}

	parents, err := a.store.ancestors(id)
	if err != nil {
		return models.NilCountableID, false, err
	}
	if len(parents) == 0 {
		return id, true, nil
	}
	return parents[len(parents)-1], true, nil
}

// AllParents returns every ancestor of id up to its root, nearest first,
// excluding id itself.
func (a Checked[D]) AllParents(id models.CountableID) ([]models.CountableID, error) {
	return a.store.ancestors(id)
}
