// Package countable implements the counter/phase tree: a flat store of lockable
// nodes keyed by identifier, aggregate queries computed bottom-up, writes that
// redistribute a new aggregate value down to the phases holding it, and the
// merge of two diverged snapshots of the same tree.
//
// The tree shape lives entirely in the parent and children fields of the nodes.
// Nodes never point at each other, which keeps merge and serialization a plain
// walk over the map.
//
// Queries go through the typed accessors returned by Store.Level and
// Store.Recursive. Checked accessors return errors, Unchecked accessors map
// ErrNotFound and ErrRequiresChild to defaults and panic on anything else.
package countable

import (
	"slices"

	"github.com/google/uuid"

	"github.com/P3rtang/tallyWeb-sub000/internal/clock"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// storeMeta is shared between a store and the views derived from it.
type storeMeta struct {
	clock   *clock.Clock
	changed bool
}

// Store maps identifiers to nodes.
// A Store is meant to be driven by a single goroutine; the per-node locks only
// guard the aliasing between a store and its views.
type Store struct {
	nodes map[models.CountableID]*Node
	meta  *storeMeta
	owner uuid.UUID
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp last_edit on every mutation.
func WithClock(c *clock.Clock) Option {
	return func(s *Store) {
		s.meta.clock = c
	}
}

// New creates an empty store for the given owner.
func New(owner uuid.UUID, opts ...Option) *Store {
	s := &Store{
		owner: owner,
		nodes: make(map[models.CountableID]*Node),
		meta:  &storeMeta{clock: clock.New()},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Owner returns the owner of the store.
func (s *Store) Owner() uuid.UUID {
	return s.owner
}

// Clock returns the edit clock of the store.
func (s *Store) Clock() *clock.Clock {
	return s.meta.clock
}

// Len returns the number of nodes, archived ones included.
func (s *Store) Len() int {
	return len(s.nodes)
}

// Contains reports whether id is present.
func (s *Store) Contains(id models.CountableID) bool {
	_, ok := s.nodes[id]
	return ok
}

// Node returns the shared cell for id.
func (s *Store) Node(id models.CountableID) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// node returns the cell for id or ErrNotFound.
func (s *Store) node(id models.CountableID) (*Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return n, nil
}

// Insert stores a deep copy of c under its own identifier, replacing whatever was there.
// It does not link c into its parent's children.
func (s *Store) Insert(c models.Countable) error {
	n, err := newNode(c)
	if err != nil {
		return err
	}
	s.nodes[c.ID()] = n
	s.touch()
	return nil
}

// Get returns a deep copy of the node stored under id.
func (s *Store) Get(id models.CountableID) (models.Countable, error) {
	n, err := s.node(id)
	if err != nil {
		return models.Countable{}, err
	}
	return n.Snapshot()
}

// IDs returns every identifier in ascending order.
func (s *Store) IDs() []models.CountableID {
	ids := make([]models.CountableID, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, models.CountableID.Compare)
	return ids
}

// Nodes returns deep copies of every node in identifier order.
func (s *Store) Nodes() ([]models.Countable, error) {
	out := make([]models.Countable, 0, len(s.nodes))
	for _, id := range s.IDs() {
		c, err := s.nodes[id].Snapshot()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// RootNodes returns the identifiers of nodes without a parent, in identifier order.
func (s *Store) RootNodes() ([]models.CountableID, error) {
	var roots []models.CountableID
	for _, id := range s.IDs() {
		isRoot := false
		err := s.nodes[id].with(func(c *models.Counter, _ *models.Phase) error {
			isRoot = c != nil && c.Parent == nil
			return nil
		})
		if err != nil {
			return nil, err
		}
		if isRoot {
			roots = append(roots, id)
		}
	}
	return roots, nil
}

// IsChanged reports whether the store was mutated since the last MarkSaved.
func (s *Store) IsChanged() bool {
	return s.meta.changed
}

// MarkSaved clears the changed flag, called by persistence after a successful save.
func (s *Store) MarkSaved() {
	s.meta.changed = false
}

func (s *Store) touch() {
	s.meta.changed = true
}

// View returns a shallow store holding the nodes accepted by keep.
// The view shares nodes, clock and changed flag with s: mutations through
// the view are visible in s.
func (s *Store) View(keep func(models.Countable) bool) (*Store, error) {
	view := &Store{
		owner: s.owner,
		nodes: make(map[models.CountableID]*Node),
		meta:  s.meta,
	}
	for id, n := range s.nodes {
		c, err := n.Snapshot()
		if err != nil {
			return nil, err
		}
		if keep(c) {
			view.nodes[id] = n
		}
	}
	return view, nil
}

// Filter is View plus every ancestor of a kept node, so the view stays a
// navigable tree.
func (s *Store) Filter(keep func(models.Countable) bool) (*Store, error) {
	view, err := s.View(keep)
	if err != nil {
		return nil, err
	}

	// добавляем недостающих родителей
	full := s.Recursive()
	for _, id := range view.IDs() {
		parents, err := full.AllParents(id)
		if err != nil {
			return nil, err
		}
		for _, p := range parents {
			if n, ok := s.nodes[p]; ok {
				view.nodes[p] = n
			}
		}
	}

	return view, nil
}

// Active returns a view without archived nodes.
func (s *Store) Active() (*Store, error) {
	return s.Filter(func(c models.Countable) bool {
		return !c.IsDeleted()
	})
}

// Clone returns a deep copy of s with its own nodes. The clock is shared,
// the changed flag is copied.
func (s *Store) Clone() (*Store, error) {
	clone := &Store{
		owner: s.owner,
		nodes: make(map[models.CountableID]*Node, len(s.nodes)),
		meta:  &storeMeta{clock: s.meta.clock, changed: s.meta.changed},
	}
	for id, n := range s.nodes {
		c, err := n.Snapshot()
		if err != nil {
			return nil, err
		}
		cn, err := newNode(c)
		if err != nil {
			return nil, err
		}
		clone.nodes[id] = cn
	}
	return clone, nil
}
