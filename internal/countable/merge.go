package countable

import (
	"slices"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// MergeResult counts what Merge did with every incoming node.
type MergeResult struct {
	Added    int `json:"added"`    // Added узлы, которых не было локально
	Replaced int `json:"replaced"` // Replaced локальные узлы, перезаписанные входящими
	Kept     int `json:"kept"`     // Kept локальные узлы, оставленные без изменений
	Archived int `json:"archived"` // Archived входящие архивные узлы (всегда перезаписывают)
	Relinked int `json:"relinked"` // Relinked дочерние узлы, восстановленные в списке children родителя
}

// Changed reports whether the merge modified the receiver.
func (r MergeResult) Changed() bool {
	return r.Added+r.Replaced+r.Archived+r.Relinked > 0
}

// Merge folds incoming into s, node by node, in identifier order:
//
//   - an archived incoming node always overwrites the local one;
//   - a local node that is newer or archived is kept;
//   - otherwise the incoming node overwrites the local one.
//
// Nodes are never merged field by field. Afterwards every merged node that is
// missing from the children of its (present) parent is appended to them, and
// the clock of s observes every incoming last_edit.
func (s *Store) Merge(incoming *Store) (MergeResult, error) {
	var result MergeResult
	var merged []models.Countable

	for _, id := range incoming.IDs() {
		inc, err := incoming.nodes[id].Snapshot()
		if err != nil {
			return result, err
		}
		s.meta.clock.Observe(inc.LastEdit())

		local, exists := s.nodes[id]
		if !exists {
			n, err := newNode(inc)
			if err != nil {
				return result, err
			}
			s.nodes[id] = n
			result.Added++
			merged = append(merged, inc)
			continue
		}

		if !inc.IsDeleted() {
			current, err := local.Snapshot()
			if err != nil {
				return result, err
			}
			if current.LastEdit().After(inc.LastEdit()) || current.IsDeleted() {
				result.Kept++
				continue
			}
		}

		if err := s.overwrite(local, inc); err != nil {
			return result, err
		}
		if inc.IsDeleted() {
			result.Archived++
		} else {
			result.Replaced++
		}
		merged = append(merged, inc)
	}

	relinked, err := s.relink(merged)
	if err != nil {
		return result, err
	}
	result.Relinked = relinked

	if result.Changed() {
		s.touch()
	}
	return result, nil
}

// overwrite replaces the contents of the node of c. A node whose kind changed
// gets a fresh cell, views holding the old cell keep the old contents.
func (s *Store) overwrite(local *Node, c models.Countable) error {
	if local.Kind() == c.Kind {
		return local.replace(c)
	}

	n, err := newNode(c)
	if err != nil {
		return err
	}
	s.nodes[c.ID()] = n
	return nil
}

// relink appends each node to the children of its parent when it is missing there,
// oldest first.
func (s *Store) relink(nodes []models.Countable) (int, error) {
	slices.SortStableFunc(nodes, byCreation)

	count := 0
	for _, c := range nodes {
		parent, ok := c.ParentID()
		if !ok {
			continue
		}
		pn, exists := s.nodes[parent]
		if !exists || pn.Kind() != models.KindCounter {
			continue
		}

		err := pn.with(func(counter *models.Counter, _ *models.Phase) error {
			if !slices.Contains(counter.Children, c.ID()) {
				counter.Children = append(counter.Children, c.ID())
				count++
			}
			return nil
		})
		if err != nil {
			return count, err
		}
	}
	return count, nil
}

// byCreation orders nodes by created_at, then by identifier.
func byCreation(a, b models.Countable) int {
	if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
		return c
	}
	return a.ID().Compare(b.ID())
}
