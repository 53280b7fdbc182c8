package countable

import (
	"errors"
	"math"
	"time"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

// number covers the leaf values that are summed up the tree.
type number interface {
	~int | ~int32 | ~int64
}

// leafSum reads one summable value of a Phase. Sums saturate at limit.
type leafSum[T number] struct {
	get   func(p *models.Phase) T
	limit T
}

// add returns a+b, capped at limit. a is never negative.
func (l leafSum[T]) add(a, b T) T {
	if b > 0 && a > l.limit-b {
		return l.limit
	}
	return a + b
}

// leafField is a leafSum that can also be written.
type leafField[T number] struct {
	leafSum[T]
	set func(p *models.Phase, v T)
}

var (
	countField = leafField[int32]{
		leafSum: leafSum[int32]{
			get:   func(p *models.Phase) int32 { return p.Count },
			limit: math.MaxInt32,
		},
		set: func(p *models.Phase, v int32) { p.Count = v },
	}
	timeField = leafField[time.Duration]{
		leafSum: leafSum[time.Duration]{
			get:   func(p *models.Phase) time.Duration { return p.Elapsed },
			limit: math.MaxInt64,
		},
		set: func(p *models.Phase, v time.Duration) { p.Elapsed = v },
	}
	rollsSum     = leafSum[int]{get: phaseRolls, limit: math.MaxInt}
	completedSum = leafSum[int]{get: phaseCompleted, limit: math.MaxInt}
)

// phaseValue reads a value of id if it is a phase. ok is false for counters.
func phaseValue[T any](s *Store, id models.CountableID, get func(p *models.Phase) T) (v T, ok bool, err error) {
	err = s.read(id, func(_ *models.Counter, p *models.Phase) error {
		if p != nil {
			v, ok = get(p), true
		}
		return nil
	})
	return v, ok, err
}

// aggregateChildren returns the children a counter aggregate runs over.
// Without deep only phases are kept: a nested counter holds nothing at this level.
func (s *Store) aggregateChildren(id models.CountableID, deep bool) ([]models.CountableID, error) {
	children, err := s.directChildren(id)
	if err != nil || deep {
		return children, err
	}

	phases := children[:0]
	for _, child := range children {
		if s.nodes[child].Kind() == models.KindPhase {
			phases = append(phases, child)
		}
	}
	return phases, nil
}

// sumLeaves returns the own value of a phase, or the sum over the children of a counter.
func sumLeaves[T number](s *Store, id models.CountableID, deep bool, l leafSum[T]) (T, error) {
	own, isPhase, err := phaseValue(s, id, l.get)
	if err != nil || isPhase {
		return own, err
	}

	children, err := s.aggregateChildren(id, deep)
	if err != nil {
		return 0, err
	}

	var sum T
	for _, child := range children {
		v, err := sumLeaves(s, child, deep, l)
		if err != nil {
			return 0, err
		}
		sum = l.add(sum, v)
	}
	return sum, nil
}

func phaseRolls(p *models.Phase) int {
	return p.HuntType.Rolls(p.Count, p.HasCharm)
}

func phaseCompleted(p *models.Phase) int {
	if p.Success {
		return 1
	}
	return 0
}

// Count returns the encounter count of id.
func (a Checked[D]) Count(id models.CountableID) (int32, error) {
	return sumLeaves(a.store, id, a.deep(), countField.leafSum)
}

// Time returns the elapsed time of id.
func (a Checked[D]) Time(id models.CountableID) (time.Duration, error) {
	return sumLeaves(a.store, id, a.deep(), timeField.leafSum)
}

// Rolls returns the number of shiny rolls behind the count of id.
func (a Checked[D]) Rolls(id models.CountableID) (int, error) {
	return sumLeaves(a.store, id, a.deep(), rollsSum)
}

// Completed returns the number of successful phases below id, or 0/1 for a phase.
func (a Checked[D]) Completed(id models.CountableID) (int, error) {
	return sumLeaves(a.store, id, a.deep(), completedSum)
}

// HuntType returns the hunt type shared by every phase below id, HuntTypeMixed when
// they disagree, or ErrRequiresChild for a counter without phases.
// Empty nested counters are ignored. The whole subtree is always considered.
func (a Checked[D]) HuntType(id models.CountableID) (models.HuntType, error) {
	s := a.store

	own, isPhase, err := phaseValue(s, id, func(p *models.Phase) models.HuntType { return p.HuntType })
	if err != nil || isPhase {
		return own, err
	}

	children, err := s.directChildren(id)
	if err != nil {
		return "", err
	}

	var (
		result models.HuntType
		found  bool
	)
	for _, child := range children {
		ht, err := a.HuntType(child)
		if errors.Is(err, ErrRequiresChild) {
			continue
		}
		if err != nil {
			return "", err
		}
		if !found {
			result, found = ht, true
			continue
		}
		result = result.Combine(ht)
	}

	if !found {
		return "", ErrRequiresChild
	}
	return result, nil
}

// HasCharm reports whether every phase below id has the charm.
// A counter without phases reports true.
func (a Checked[D]) HasCharm(id models.CountableID) (bool, error) {
	s := a.store

	own, isPhase, err := phaseValue(s, id, func(p *models.Phase) bool { return p.HasCharm })
	if err != nil || isPhase {
		return own, err
	}

	children, err := s.directChildren(id)
	if err != nil {
		return false, err
	}
	for _, child := range children {
		charm, err := a.HasCharm(child)
		if err != nil {
			return false, err
		}
		if !charm {
			return false, nil
		}
	}
	return true, nil
}

// IsSuccess reports the success flag of a phase. A counter reports the flag
// of its last child, false when it has none.
func (a Checked[D]) IsSuccess(id models.CountableID) (bool, error) {
	own, isPhase, err := phaseValue(a.store, id, func(p *models.Phase) bool { return p.Success })
	if err != nil || isPhase {
		return own, err
	}

	last, ok, err := a.Level().LastChild(id)
	if err != nil || !ok {
		return false, err
	}
	return a.IsSuccess(last)
}

// Odds returns the denominator of the per-roll probability of id.
// For a counter it is the count-weighted average of its children:
// Σ(odds(child)·count(child)) / max(Σcount(child), 1).
// Empty nested counters carry no weight; a counter with nothing to weigh
// returns ErrRequiresChild.
func (a Checked[D]) Odds(id models.CountableID) (float64, error) {
	s := a.store

	own, isPhase, err := phaseValue(s, id, func(p *models.Phase) float64 { return p.HuntType.Odds() })
	if err != nil || isPhase {
		return own, err
	}

	children, err := s.aggregateChildren(id, a.deep())
	if err != nil {
		return 0, err
	}

	var (
		weighted float64
		total    int64
		counted  int
	)
	for _, child := range children {
		odds, err := a.Odds(child)
		if errors.Is(err, ErrRequiresChild) {
			continue
		}
		if err != nil {
			return 0, err
		}
		count, err := a.Count(child)
		if err != nil {
			return 0, err
		}
		weighted += odds * float64(count)
		total += int64(count)
		counted++
	}

	if counted == 0 {
		return 0, ErrRequiresChild
	}
	return weighted / float64(max(total, 1)), nil
}

// Progress returns the probability that the hunt at id should have succeeded by now.
//
// Phase: 1 - (1 - 1/odds)^rolls.
// Counter: the binomial tail 1 - Σ C(rolls,k)·p^k·(1-p)^(rolls-k) for k below
// min(completed+1, children), with p = 1/odds.
// Zero rolls give zero progress.
func (a Checked[D]) Progress(id models.CountableID) (float64, error) {
	kind, err := a.Kind(id)
	if err != nil {
		return 0, err
	}

	odds, err := a.Odds(id)
	if err != nil {
		return 0, err
	}
	rolls, err := a.Rolls(id)
	if err != nil {
		return 0, err
	}
	if rolls <= 0 || odds <= 0 {
		return 0, nil
	}
	p := 1 / odds

	if kind == models.KindPhase {
		return 1 - math.Pow(1-p, float64(rolls)), nil
	}

	completed, err := a.Completed(id)
	if err != nil {
		return 0, err
	}
	children, err := a.store.aggregateChildren(id, a.deep())
	if err != nil {
		return 0, err
	}

	return 1 - binomialCDF(rolls, min(completed+1, len(children)), p), nil
}
