package models

import (
	"time"

	"github.com/google/uuid"
)

// Kind is the variant tag of a Countable.
type Kind string

// Kind константы
const (
	KindCounter Kind = "counter"
	KindPhase   Kind = "phase"
)

// Counter is a container node. It holds no count or time of its own,
// everything is aggregated from its children.
type Counter struct {
	CreatedAt time.Time     `json:"created_at"` // CreatedAt время создания
	LastEdit  time.Time     `json:"last_edit"`  // LastEdit время последнего изменения, используется при слиянии
	Parent    *CountableID  `json:"parent"`     // Parent nil для корневых счетчиков
	Name      string        `json:"name"`
	Children  []CountableID `json:"children"` // Children в порядке добавления
	ID        CountableID   `json:"id"`
	OwnerID   uuid.UUID     `json:"owner_id"`
	IsDeleted bool          `json:"is_deleted"` // IsDeleted флаг архивации (soft delete)
}

// Phase is a leaf node. It is the only place where count and time are stored.
type Phase struct {
	CreatedAt time.Time     `json:"created_at"`
	LastEdit  time.Time     `json:"last_edit"`
	Name      string        `json:"name"`
	HuntType  HuntType      `json:"hunt_type"`
	Elapsed   time.Duration `json:"elapsed"`
	ID        CountableID   `json:"id"`
	OwnerID   uuid.UUID     `json:"owner_id"`
	Parent    CountableID   `json:"parent"` // Parent у фазы всегда есть
	Count     int32         `json:"count"`
	HasCharm  bool          `json:"has_charm"`
	Success   bool          `json:"success"`
	IsDeleted bool          `json:"is_deleted"`
}

// Countable is the flat, serializable form of a store node.
// Exactly one of Counter and Phase is set, according to Kind.
type Countable struct {
	Counter *Counter `json:"counter,omitempty"`
	Phase   *Phase   `json:"phase,omitempty"`
	Kind    Kind     `json:"kind"`
}

// NewCounter creates a counter stamped with now.
func NewCounter(name string, owner uuid.UUID, parent *CountableID, now time.Time) *Counter {
	var p *CountableID
	if parent != nil {
		id := *parent
		p = &id
	}

	return &Counter{
		ID:        NewCountableID(),
		OwnerID:   owner,
		Parent:    p,
		Children:  []CountableID{},
		Name:      name,
		CreatedAt: now,
		LastEdit:  now,
	}
}

// NewPhase creates a phase with zero count and time and the default hunt type.
func NewPhase(name string, owner uuid.UUID, parent CountableID, now time.Time) *Phase {
	return &Phase{
		ID:        NewCountableID(),
		OwnerID:   owner,
		Parent:    parent,
		Name:      name,
		HuntType:  DefaultHuntType,
		CreatedAt: now,
		LastEdit:  now,
	}
}

// Clone создает глубокую копию счетчика
func (c *Counter) Clone() *Counter {
	clone := *c

	if c.Parent != nil {
		parent := *c.Parent
		clone.Parent = &parent
	}

	clone.Children = make([]CountableID, len(c.Children))
	copy(clone.Children, c.Children)

	return &clone
}

// Clone создает копию фазы
func (p *Phase) Clone() *Phase {
	clone := *p
	return &clone
}

// FromCounter wraps a counter into a Countable.
func FromCounter(c *Counter) Countable {
	return Countable{Kind: KindCounter, Counter: c}
}

// FromPhase wraps a phase into a Countable.
func FromPhase(p *Phase) Countable {
	return Countable{Kind: KindPhase, Phase: p}
}

// ID returns the identifier of the wrapped node.
func (c Countable) ID() CountableID {
	switch {
	case c.Counter != nil:
		return c.Counter.ID
	case c.Phase != nil:
		return c.Phase.ID
	default:
		return NilCountableID
	}
}

// ParentID returns the parent of the wrapped node, if any.
func (c Countable) ParentID() (CountableID, bool) {
	switch {
	case c.Counter != nil:
		if c.Counter.Parent == nil {
			return NilCountableID, false
		}
		return *c.Counter.Parent, true
	case c.Phase != nil:
		return c.Phase.Parent, true
	default:
		return NilCountableID, false
	}
}

// Name returns the name of the wrapped node.
func (c Countable) Name() string {
	switch {
	case c.Counter != nil:
		return c.Counter.Name
	case c.Phase != nil:
		return c.Phase.Name
	default:
		return ""
	}
}

// CreatedAt returns the creation time of the wrapped node.
func (c Countable) CreatedAt() time.Time {
	switch {
	case c.Counter != nil:
		return c.Counter.CreatedAt
	case c.Phase != nil:
		return c.Phase.CreatedAt
	default:
		return time.Time{}
	}
}

// LastEdit returns the last edit time of the wrapped node.
func (c Countable) LastEdit() time.Time {
	switch {
	case c.Counter != nil:
		return c.Counter.LastEdit
	case c.Phase != nil:
		return c.Phase.LastEdit
	default:
		return time.Time{}
	}
}

// IsDeleted reports whether the wrapped node is archived.
func (c Countable) IsDeleted() bool {
	switch {
	case c.Counter != nil:
		return c.Counter.IsDeleted
	case c.Phase != nil:
		return c.Phase.IsDeleted
	default:
		return false
	}
}

// Clone создает глубокую копию узла
func (c Countable) Clone() Countable {
	clone := Countable{Kind: c.Kind}
	if c.Counter != nil {
		clone.Counter = c.Counter.Clone()
	}
	if c.Phase != nil {
		clone.Phase = c.Phase.Clone()
	}
	return clone
}
