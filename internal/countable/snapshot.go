package countable

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/P3rtang/tallyWeb-sub000/internal/clock"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// snapshot is the structural encoding of a Store.
type snapshot struct {
	Nodes []models.Countable `json:"nodes"`
	Owner uuid.UUID          `json:"owner"`
}

// FromNodes builds a store from deep copies of nodes, kept exactly as given,
// children lists included. The clock observes every last_edit.
func FromNodes(owner uuid.UUID, nodes []models.Countable, opts ...Option) (*Store, error) {
	s := New(owner, opts...)
	for _, c := range nodes {
		n, err := newNode(c)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", c.ID(), err)
		}
		s.nodes[c.ID()] = n
		s.meta.clock.Observe(c.LastEdit())
	}
	return s, nil
}

// FromRecords builds a store from rows that only know their parent, as loaded
// from a relational store. Children lists are rebuilt by appending every node to
// its parent in created_at order. Nodes whose parent is missing or is a phase
// are skipped together with their subtree.
func FromRecords(owner uuid.UUID, records []models.Countable, opts ...Option) (*Store, error) {
	byID := make(map[models.CountableID]models.Countable, len(records))
	for _, rec := range records {
		c := rec.Clone()
		if c.Counter != nil {
			c.Counter.Children = []models.CountableID{}
		}
		if _, err := newNode(c); err != nil {
			return nil, fmt.Errorf("record %s: %w", c.ID(), err)
		}
		byID[c.ID()] = c
	}

	// убираем сирот, пока список не перестанет меняться
	for removed := true; removed; {
		removed = false
		for id, c := range byID {
			if c.Kind == models.KindCounter && c.Counter.Parent == nil {
				continue
			}
			parent, _ := c.ParentID()
			p, ok := byID[parent]
			if !ok || p.Kind != models.KindCounter {
				delete(byID, id)
				removed = true
			}
		}
	}

	ordered := make([]models.Countable, 0, len(byID))
	for _, c := range byID {
		ordered = append(ordered, c)
	}
	slices.SortFunc(ordered, byCreation)

	for _, c := range ordered {
		parent, ok := c.ParentID()
		if !ok {
			continue
		}
		p := byID[parent].Counter
		p.Children = append(p.Children, c.ID())
	}

	return FromNodes(owner, ordered, opts...)
}

// MarshalJSON encodes the store as its owner and every node in identifier order.
func (s *Store) MarshalJSON() ([]byte, error) {
	nodes, err := s.Nodes()
	if err != nil {
		return nil, err
	}
	return json.Marshal(snapshot{Owner: s.owner, Nodes: nodes})
}

// UnmarshalJSON replaces the contents of s with a decoded snapshot.
// The clock of s is kept and observes every decoded last_edit.
func (s *Store) UnmarshalJSON(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to decode store: %w", err)
	}

	c := clock.New()
	if s.meta != nil {
		c = s.meta.clock
	}

	decoded, err := FromNodes(snap.Owner, snap.Nodes, WithClock(c))
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}
