package countable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/P3rtang/tallyWeb-sub000/internal/models"
)

func TestNewCountable(t *testing.T) {
	s := newTestStore(t)
	root := addCounter(t, s, "root", nil)
	phase := addPhase(t, s, "phase", root, 0, 0)

	tests := []struct {
		parent  *models.CountableID
		wantErr error
		name    string
		kind    models.Kind
	}{
		{name: "root counter", kind: models.KindCounter},
		{name: "nested counter", kind: models.KindCounter, parent: ptr(root)},
		{name: "phase", kind: models.KindPhase, parent: ptr(root)},
		{name: "phase without parent", kind: models.KindPhase, wantErr: ErrPhaseRequiresParent},
		{name: "missing parent", kind: models.KindPhase, parent: ptr(models.NewCountableID()), wantErr: ErrNotFound},
		{name: "phase as parent", kind: models.KindPhase, parent: ptr(phase), wantErr: ErrCannotContainChildren},
		{name: "counter below phase", kind: models.KindCounter, parent: ptr(phase), wantErr: ErrCannotContainChildren},
		{name: "unknown kind", kind: models.Kind("folder"), wantErr: ErrInvalidCountable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := s.Len()
			id, err := s.NewCountable(tt.name, tt.kind, tt.parent)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, s.Len(), "failed create must not insert")
				return
			}

			require.NoError(t, err)
			got, err := s.Get(id)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, got.Kind)

			name, err := s.Level().Name(id)
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)

			if tt.parent != nil {
				has, err := s.Level().HasChild(*tt.parent, id)
				require.NoError(t, err)
				assert.True(t, has)

				last, ok, err := s.Level().LastChild(*tt.parent)
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, id, last, "new child is appended last")
			}
		})
	}
}

func TestNewCountable_PhaseDefaults(t *testing.T) {
	s := newTestStore(t)
	root := addCounter(t, s, "root", nil)
	id := addPhase(t, s, "phase", root, 0, 0)

	p := phaseOf(t, s, id)
	assert.Equal(t, models.DefaultHuntType, p.HuntType)
	assert.Equal(t, testOwner, p.OwnerID)
	assert.Equal(t, root, p.Parent)
	assert.Zero(t, p.Count)
	assert.False(t, p.Success)
}

func TestSetName(t *testing.T) {
	s, c, _, _ := twoPhaseTree(t, 0, 0)
	before := counterOf(t, s, c).LastEdit

	require.NoError(t, s.Level().SetName(c, "renamed"))

	got := counterOf(t, s, c)
	assert.Equal(t, "renamed", got.Name)
	assert.True(t, got.LastEdit.After(before))

	// повторное переименование ничего не меняет
	s.MarkSaved()
	require.NoError(t, s.Level().SetName(c, "renamed"))
	assert.False(t, s.IsChanged())
	assert.Equal(t, got.LastEdit, counterOf(t, s, c).LastEdit)
}

func TestSetHuntType(t *testing.T) {
	s, root, p, _, q := nestedTree(t)

	require.NoError(t, s.Level().SetHuntType(root, models.HuntTypeMasudaGenV))
	assert.Equal(t, models.HuntTypeMasudaGenV, phaseOf(t, s, p).HuntType)
	assert.Equal(t, models.HuntTypeMasudaGenV, phaseOf(t, s, q).HuntType, "propagates to nested phases")

	for _, ht := range []models.HuntType{models.HuntTypeMixed, "Unknown"} {
		err := s.Level().SetHuntType(p, ht)
		assert.ErrorIs(t, err, ErrInvalidHuntType)
	}
	assert.Equal(t, models.HuntTypeMasudaGenV, phaseOf(t, s, p).HuntType)
}

func TestSetCharm(t *testing.T) {
	s, root, p, _, q := nestedTree(t)

	require.NoError(t, s.Level().SetCharm(root, true))
	assert.True(t, phaseOf(t, s, p).HasCharm)
	assert.True(t, phaseOf(t, s, q).HasCharm)

	require.NoError(t, s.Level().SetCharm(q, false))
	assert.True(t, phaseOf(t, s, p).HasCharm)
	assert.False(t, phaseOf(t, s, q).HasCharm)
}

func TestToggleSuccess(t *testing.T) {
	s, c, p1, _ := twoPhaseTree(t, 0, 0)

	require.NoError(t, s.Level().ToggleSuccess(p1))
	assert.True(t, phaseOf(t, s, p1).Success)

	require.NoError(t, s.Level().ToggleSuccess(p1))
	assert.False(t, phaseOf(t, s, p1).Success)

	s.MarkSaved()
	require.NoError(t, s.Level().ToggleSuccess(c))
	assert.False(t, s.IsChanged(), "counters have no success flag of their own")
}

func TestArchive_Recursive(t *testing.T) {
	s, root, p, nested, q := nestedTree(t)

	require.NoError(t, s.Level().Archive(nested))
	for id, want := range map[models.CountableID]bool{root: false, p: false, nested: true, q: true} {
		archived, err := s.Level().IsArchived(id)
		require.NoError(t, err)
		assert.Equal(t, want, archived)
	}

	require.NoError(t, s.Level().Archive(root))
	for _, id := range []models.CountableID{root, p, nested, q} {
		archived, err := s.Level().IsArchived(id)
		require.NoError(t, err)
		assert.True(t, archived)
	}
}
