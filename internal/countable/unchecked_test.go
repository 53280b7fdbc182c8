package countable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

func TestUnchecked_Defaults(t *testing.T) {
	s := newTestStore(t)
	missing := models.NewCountableID()
	u := s.Recursive().Unchecked()

	assert.Zero(t, u.Count(missing))
	assert.Zero(t, u.Time(missing))
	assert.Zero(t, u.Rolls(missing))
	assert.Zero(t, u.Completed(missing))
	assert.Zero(t, u.Odds(missing))
	assert.Zero(t, u.Progress(missing))
	assert.Empty(t, u.Name(missing))
	assert.Empty(t, u.Children(missing))
	assert.Empty(t, u.AllParents(missing))
	assert.False(t, u.HasCharm(missing))
	assert.False(t, u.IsArchived(missing))
	assert.Equal(t, models.HuntTypeMixed, u.HuntType(missing))

	parent, ok := u.Parent(missing)
	assert.True(t, ok)
	assert.Equal(t, missing, parent)

	last, ok := u.LastChild(missing)
	assert.True(t, ok)
	assert.Equal(t, missing, last)

	_, ok = u.Level().Parent(missing)
	assert.False(t, ok)
	_, ok = u.Level().LastChild(missing)
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		u.SetCount(missing, 1)
		u.AddTime(missing, time.Second)
		u.SetName(missing, "x")
		u.Archive(missing)
	})
}

func TestUnchecked_Values(t *testing.T) {
	s, c, p1, p2 := twoPhaseTree(t, 10, 0)
	u := s.Recursive().Unchecked()

	u.AddCount(c, 5)
	assert.Equal(t, int32(15), u.Count(c))
	assert.Equal(t, int32(5), u.Count(p2))

	u.SetTime(p1, time.Minute)
	assert.Equal(t, time.Minute, u.Time(c))

	u.SetHuntType(c, models.HuntTypeNewOdds)
	assert.Equal(t, models.HuntTypeNewOdds, u.HuntType(c))

	u.ToggleSuccess(p2)
	assert.True(t, u.IsSuccess(c))
	assert.Equal(t, 1, u.Completed(c))

	assert.Equal(t, []models.CountableID{p1, p2}, u.Children(c))
	assert.Equal(t, []models.CountableID{c}, u.Level().AllParents(p1))
	assert.Same(t, s, u.Checked().Store())
}

func TestUnchecked_PanicsOnLockFailure(t *testing.T) {
	s, c, _, p2 := twoPhaseTree(t, 1, 1)

	n, ok := s.Node(p2)
	require.True(t, ok)
	n.mu.Lock()
	defer n.mu.Unlock()

	u := s.Recursive().Unchecked()
	assert.Panics(t, func() { u.Count(c) })
	assert.Panics(t, func() { u.SetCount(p2, 4) })
	assert.Panics(t, func() { u.HuntType(c) })
}

func TestUnchecked_PanicsOnInvalidHuntType(t *testing.T) {
	s, _, p1, _ := twoPhaseTree(t, 1, 1)

	assert.Panics(t, func() {
		s.Level().Unchecked().SetHuntType(p1, models.HuntTypeMixed)
	})
}
