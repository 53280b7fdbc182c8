package countable

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

func TestSetCount_ReverseOrderAbsorption(t *testing.T) {
	s, c, a, b := twoPhaseTree(t, 5, 5)

	require.NoError(t, s.Recursive().SetCount(c, 3))

	assert.Equal(t, int32(3), phaseOf(t, s, a).Count)
	assert.Equal(t, int32(0), phaseOf(t, s, b).Count)

	total, err := s.Recursive().Count(c)
	require.NoError(t, err)
	assert.Equal(t, int32(3), total)
}

func TestAddCount_LastChildAbsorbs(t *testing.T) {
	s := newTestStore(t)
	c := addCounter(t, s, "C", nil)
	p1 := addPhase(t, s, "P1", c, 10, 60*time.Second)
	p2 := addPhase(t, s, "P2", c, 0, 0)

	require.NoError(t, s.Recursive().AddCount(c, 5))

	assert.Equal(t, int32(10), phaseOf(t, s, p1).Count)
	assert.Equal(t, int32(5), phaseOf(t, s, p2).Count)

	total, err := s.Recursive().Count(c)
	require.NoError(t, err)
	assert.Equal(t, int32(15), total)
}

func TestSetCount_Table(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int32
		target int32
		wantA  int32
		wantB  int32
	}{
		{name: "increase goes to the last child", a: 5, b: 5, target: 12, wantA: 5, wantB: 7},
		{name: "small decrease stays in the last child", a: 5, b: 5, target: 8, wantA: 5, wantB: 3},
		{name: "decrease exactly empties the last child", a: 5, b: 5, target: 5, wantA: 5, wantB: 0},
		{name: "decrease spills into the previous child", a: 5, b: 5, target: 3, wantA: 3, wantB: 0},
		{name: "zero empties everything", a: 5, b: 5, target: 0, wantA: 0, wantB: 0},
		{name: "negative target is treated as zero", a: 5, b: 5, target: -4, wantA: 0, wantB: 0},
		{name: "increase with empty last child", a: 10, b: 0, target: 15, wantA: 10, wantB: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c, a, b := twoPhaseTree(t, tt.a, tt.b)

			require.NoError(t, s.Recursive().SetCount(c, tt.target))

			assert.Equal(t, tt.wantA, phaseOf(t, s, a).Count)
			assert.Equal(t, tt.wantB, phaseOf(t, s, b).Count)

			total, err := s.Recursive().Count(c)
			require.NoError(t, err)
			assert.Equal(t, max(tt.target, 0), total, "enough budget: target reached exactly")
		})
	}
}

func TestAddCount_SaturatesAtLimit(t *testing.T) {
	tests := []struct {
		name  string
		a, b  int32
		delta int32
		wantA int32
		wantB int32
	}{
		{name: "large delta fills the last child", a: 10, b: 20, delta: math.MaxInt32 - 5, wantA: 10, wantB: math.MaxInt32 - 10},
		{name: "max delta on a non-empty counter", a: 1, b: 0, delta: math.MaxInt32, wantA: 1, wantB: math.MaxInt32 - 1},
		{name: "already at the limit", a: math.MaxInt32 - 1, b: 1, delta: 7, wantA: math.MaxInt32 - 1, wantB: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c, a, b := twoPhaseTree(t, tt.a, tt.b)

			require.NoError(t, s.Recursive().AddCount(c, tt.delta))

			assert.Equal(t, tt.wantA, phaseOf(t, s, a).Count)
			assert.Equal(t, tt.wantB, phaseOf(t, s, b).Count)

			total, err := s.Recursive().Count(c)
			require.NoError(t, err)
			assert.Equal(t, int32(math.MaxInt32), total)
		})
	}
}

func TestCount_SaturatedSum(t *testing.T) {
	s, c, a, b := twoPhaseTree(t, math.MaxInt32-1, 10)

	total, err := s.Recursive().Count(c)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), total)

	require.NoError(t, s.Recursive().AddCount(c, 1))
	assert.Equal(t, int32(math.MaxInt32-1), phaseOf(t, s, a).Count)
	assert.Equal(t, int32(10), phaseOf(t, s, b).Count)

	require.NoError(t, s.Recursive().SetCount(c, 5))
	assert.Equal(t, int32(5), phaseOf(t, s, a).Count)
	assert.Equal(t, int32(0), phaseOf(t, s, b).Count)

	total, err = s.Recursive().Count(c)
	require.NoError(t, err)
	assert.Equal(t, int32(5), total)
}

func TestSetCount_Idempotent(t *testing.T) {
	s, c, _, _ := twoPhaseTree(t, 5, 5)

	require.NoError(t, s.Recursive().SetCount(c, 3))
	first, err := s.MarshalJSON()
	require.NoError(t, err)

	s.MarkSaved()
	require.NoError(t, s.Recursive().SetCount(c, 3))
	second, err := s.MarshalJSON()
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
	assert.False(t, s.IsChanged(), "second call is a no-op")
}

func TestCount_NeverNegative(t *testing.T) {
	s, c, a, b := twoPhaseTree(t, 5, 5)
	acc := s.Recursive()

	ops := []func() error{
		func() error { return acc.AddCount(c, -3) },
		func() error { return acc.AddCount(b, -10) },
		func() error { return acc.SetCount(a, -1) },
		func() error { return acc.AddCount(c, 4) },
		func() error { return acc.AddCount(c, -100) },
		func() error { return acc.SetCount(c, -5) },
		func() error { return acc.AddCount(a, 2) },
		func() error { return acc.AddCount(c, -1) },
	}

	for i, op := range ops {
		require.NoError(t, op())
		for _, id := range []models.CountableID{a, b} {
			assert.GreaterOrEqual(t, phaseOf(t, s, id).Count, int32(0), "step %d", i)
		}
	}
}

func TestSetCount_Phase(t *testing.T) {
	s, _, a, _ := twoPhaseTree(t, 5, 0)
	before := phaseOf(t, s, a).LastEdit

	require.NoError(t, s.Level().SetCount(a, 9))

	p := phaseOf(t, s, a)
	assert.Equal(t, int32(9), p.Count)
	assert.True(t, p.LastEdit.After(before), "write stamps last_edit")
}

func TestSetCount_LevelSkipsNestedCounters(t *testing.T) {
	s, root, p, _, q := nestedTree(t)

	require.NoError(t, s.Level().SetCount(root, 10))
	assert.Equal(t, int32(10), phaseOf(t, s, p).Count)
	assert.Equal(t, int32(4), phaseOf(t, s, q).Count)
}

func TestSetCount_RecursiveDescends(t *testing.T) {
	s, root, p, _, q := nestedTree(t)

	// R = [P(3), N=[Q(4)]], N был добавлен последним
	require.NoError(t, s.Recursive().SetCount(root, 5))
	assert.Equal(t, int32(3), phaseOf(t, s, p).Count)
	assert.Equal(t, int32(2), phaseOf(t, s, q).Count)

	require.NoError(t, s.Recursive().SetCount(root, 1))
	assert.Equal(t, int32(1), phaseOf(t, s, p).Count)
	assert.Equal(t, int32(0), phaseOf(t, s, q).Count)
}

func TestSetTime(t *testing.T) {
	s := newTestStore(t)
	c := addCounter(t, s, "C", nil)
	p1 := addPhase(t, s, "P1", c, 10, 60*time.Second)
	p2 := addPhase(t, s, "P2", c, 0, 0)
	acc := s.Recursive()

	require.NoError(t, acc.SetTime(c, 90*time.Second))
	assert.Equal(t, 60*time.Second, phaseOf(t, s, p1).Elapsed)
	assert.Equal(t, 30*time.Second, phaseOf(t, s, p2).Elapsed)

	require.NoError(t, acc.SetTime(c, 20*time.Second))
	assert.Equal(t, 20*time.Second, phaseOf(t, s, p1).Elapsed)
	assert.Zero(t, phaseOf(t, s, p2).Elapsed)

	require.NoError(t, acc.AddTime(c, time.Second))
	assert.Equal(t, 20*time.Second, phaseOf(t, s, p1).Elapsed)
	assert.Equal(t, time.Second, phaseOf(t, s, p2).Elapsed)

	elapsed, err := acc.Time(c)
	require.NoError(t, err)
	assert.Equal(t, 21*time.Second, elapsed)
}

func TestSetCount_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.Recursive().SetCount(models.NewCountableID(), 1)
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Recursive().AddTime(models.NewCountableID(), time.Second)
	assert.ErrorIs(t, err, ErrNotFound)
}
