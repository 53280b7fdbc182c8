package countable

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/P3rtang/tallyWeb-sub000/internal/clock"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

var (
	testOwner = uuid.MustParse("6f1c2d9e-3b0a-4c55-9d1e-7a8b9c0d1e2f")
	testWall  = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(testOwner, WithClock(clock.NewWithSource(func() time.Time { return testWall })))
}

func addCounter(t *testing.T, s *Store, name string, parent *models.CountableID) models.CountableID {
	t.Helper()
	id, err := s.NewCountable(name, models.KindCounter, parent)
	require.NoError(t, err)
	return id
}

func addPhase(t *testing.T, s *Store, name string, parent models.CountableID, count int32, elapsed time.Duration) models.CountableID {
	t.Helper()
	id, err := s.NewCountable(name, models.KindPhase, &parent)
	require.NoError(t, err)
	require.NoError(t, s.Level().SetCount(id, count))
	require.NoError(t, s.Level().SetTime(id, elapsed))
	return id
}

func phaseOf(t *testing.T, s *Store, id models.CountableID) *models.Phase {
	t.Helper()
	c, err := s.Get(id)
	require.NoError(t, err)
	require.NotNil(t, c.Phase)
	return c.Phase
}

func counterOf(t *testing.T, s *Store, id models.CountableID) *models.Counter {
	t.Helper()
	c, err := s.Get(id)
	require.NoError(t, err)
	require.NotNil(t, c.Counter)
	return c.Counter
}

// twoPhaseTree builds counter C with children [P1, P2], P2 added last.
func twoPhaseTree(t *testing.T, p1, p2 int32) (s *Store, c, first, second models.CountableID) {
	t.Helper()
	s = newTestStore(t)
	c = addCounter(t, s, "C", nil)
	first = addPhase(t, s, "P1", c, p1, 0)
	second = addPhase(t, s, "P2", c, p2, 0)
	return s, c, first, second
}

// nestedTree builds R -> [P(3), N -> [Q(4)]].
func nestedTree(t *testing.T) (s *Store, root, p, nested, q models.CountableID) {
	t.Helper()
	s = newTestStore(t)
	root = addCounter(t, s, "R", nil)
	p = addPhase(t, s, "P", root, 3, time.Minute)
	nested = addCounter(t, s, "N", &root)
	q = addPhase(t, s, "Q", nested, 4, 2*time.Minute)
	return s, root, p, nested, q
}

func ptr(id models.CountableID) *models.CountableID {
	return &id
}
