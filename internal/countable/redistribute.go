package countable

import (
	"time"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// redistribute pushes diff down to the phases below id.
//
// A phase takes diff as is. A counter walks its children last-added first:
// a child that would drop to zero or below is zeroed and the rest of diff moves
// on to the previous child, the first child that can absorb diff takes it and
// the walk stops. Whatever is left once the children run out is dropped.
//
// Only one node lock is held at any step.
func redistribute[T number](s *Store, id models.CountableID, diff T, deep bool, f leafField[T]) error {
	if diff == 0 {
		return nil
	}

	n, err := s.node(id)
	if err != nil {
		return err
	}

	if n.Kind() == models.KindPhase {
		now := s.meta.clock.Now()
		err := n.with(func(_ *models.Counter, p *models.Phase) error {
			f.set(p, max(f.add(f.get(p), diff), 0))
			p.LastEdit = now
			return nil
		})
		if err != nil {
			return err
		}
		s.touch()
		return nil
	}

	children, err := s.aggregateChildren(id, deep)
	if err != nil {
		return err
	}

	for i := len(children) - 1; i >= 0 && diff != 0; i-- {
		child := children[i]

		current, err := sumLeaves(s, child, deep, f.leafSum)
		if err != nil {
			return err
		}

		if f.add(current, diff) <= 0 {
			if err := redistribute(s, child, -current, deep, f); err != nil {
				return err
			}
			diff += current
			continue
		}

		return redistribute(s, child, diff, deep, f)
	}

	return nil
}

// setValue moves the aggregate of id to target. Negative targets are treated as zero.
func setValue[T number](s *Store, id models.CountableID, target T, deep bool, f leafField[T]) error {
	target = max(target, 0)

	current, err := sumLeaves(s, id, deep, f.leafSum)
	if err != nil {
		return err
	}

	// a saturated sum hides part of the total, so repeat until the sum stops moving
	for current != target {
		if err := redistribute(s, id, target-current, deep, f); err != nil {
			return err
		}
		next, err := sumLeaves(s, id, deep, f.leafSum)
		if err != nil {
			return err
		}
		if next == current {
			return nil
		}
		current = next
	}
	return nil
}

// addValue is setValue with current + delta. A total past the field limit stays at the limit.
func addValue[T number](s *Store, id models.CountableID, delta T, deep bool, f leafField[T]) error {
	current, err := sumLeaves(s, id, deep, f.leafSum)
	if err != nil {
		return err
	}
	return setValue(s, id, f.add(current, delta), deep, f)
}

// SetCount sets the count of id, redistributing the difference over its phases.
// The result can stay below count when the phases run out of count to give.
func (a Checked[D]) SetCount(id models.CountableID, count int32) error {
	return setValue(a.store, id, count, a.deep(), countField)
}

// AddCount adds delta to the count of id.
func (a Checked[D]) AddCount(id models.CountableID, delta int32) error {
	return addValue(a.store, id, delta, a.deep(), countField)
}

// SetTime sets the elapsed time of id, redistributing the difference over its phases.
func (a Checked[D]) SetTime(id models.CountableID, elapsed time.Duration) error {
	return setValue(a.store, id, elapsed, a.deep(), timeField)
}

// AddTime adds delta to the elapsed time of id.
func (a Checked[D]) AddTime(id models.CountableID, delta time.Duration) error {
	return addValue(a.store, id, delta, a.deep(), timeField)
}
