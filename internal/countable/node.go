package countable

import (
	"fmt"
	"sync"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// Node is a single lockable cell of a Store.
// Exactly one of counter and phase is set, fixed at creation.
//
// Locks are taken with TryLock: the engine never holds two node locks at once,
// so a lock that is already held means the single-lock discipline was broken
// and ErrLockFailed is reported instead of blocking.
type Node struct {
	counter *models.Counter
	phase   *models.Phase
	kind    models.Kind
	mu      sync.Mutex
}

// newNode takes ownership of a deep copy of c.
func newNode(c models.Countable) (*Node, error) {
	switch {
	case c.Kind == models.KindCounter && c.Counter != nil && c.Phase == nil:
		return &Node{kind: models.KindCounter, counter: c.Counter.Clone()}, nil
	case c.Kind == models.KindPhase && c.Phase != nil && c.Counter == nil:
		return &Node{kind: models.KindPhase, phase: c.Phase.Clone()}, nil
	default:
		return nil, fmt.Errorf("%w: kind %q does not match payload", ErrInvalidCountable, c.Kind)
	}
}

// Kind returns the variant of the node. It never changes, so no lock is needed.
func (n *Node) Kind() models.Kind {
	return n.kind
}

// with runs fn while holding the node lock.
// fn receives the counter or the phase, the other argument is nil.
// fn must not touch any other node.
func (n *Node) with(fn func(c *models.Counter, p *models.Phase) error) error {
	if !n.mu.TryLock() {
		return ErrLockFailed
	}
	defer n.mu.Unlock()

	return fn(n.counter, n.phase)
}

// Snapshot returns a deep copy of the node contents.
func (n *Node) Snapshot() (models.Countable, error) {
	var out models.Countable
	err := n.with(func(c *models.Counter, p *models.Phase) error {
		if c != nil {
			out = models.FromCounter(c.Clone())
		} else {
			out = models.FromPhase(p.Clone())
		}
		return nil
	})
	return out, err
}

// replace overwrites the node contents with a deep copy of c.
// The kind of the node is kept, a mismatching payload is rejected.
func (n *Node) replace(c models.Countable) error {
	fresh, err := newNode(c)
	if err != nil {
		return err
	}
	if fresh.kind != n.kind {
		return fmt.Errorf("%w: cannot replace %s with %s", ErrInvalidCountable, n.kind, c.Kind)
	}

	return n.with(func(counter *models.Counter, phase *models.Phase) error {
		if counter != nil {
			*counter = *fresh.counter
		} else {
			*phase = *fresh.phase
		}
		return nil
	})
}

// children returns a copy of the direct children. Phases have none.
func (n *Node) children() ([]models.CountableID, error) {
	var children []models.CountableID
	err := n.with(func(c *models.Counter, _ *models.Phase) error {
		if c != nil {
			children = make([]models.CountableID, len(c.Children))
			copy(children, c.Children)
		}
		return nil
	})
	return children, err
}
