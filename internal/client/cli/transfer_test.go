package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
	"github.com/P3rtang/tallyWeb-sub000/pkg/api"
)

func TestCli_runExport_File(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, func(s *countable.Store) { hunt(t, s) })
	path := filepath.Join(t.TempDir(), "backup.json")

	require.NoError(t, env.cli.runExport(context.Background(), path))
	assert.Contains(t, env.output(), "✓ Exported 3 countables to "+path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	snap, err := api.DecodeSnapshot(f)
	require.NoError(t, err)
	assert.Equal(t, api.SnapshotVersion, snap.Version)
	assert.Equal(t, testNow, snap.ExportedAt)

	decoded := countable.New(uuid.Nil)
	require.NoError(t, json.Unmarshal(snap.Store, decoded))
	assert.Equal(t, testOwner, decoded.Owner())

	nodes, err := decoded.Nodes()
	require.NoError(t, err)
	assert.Equal(t, env.cache, nodes)
}

func TestCli_runExport_Stdout(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, func(s *countable.Store) { hunt(t, s) })

	require.NoError(t, env.cli.runExport(context.Background(), "-"))

	snap, err := api.DecodeSnapshot(strings.NewReader(env.output()))
	require.NoError(t, err)
	assert.Contains(t, string(snap.Store), "Shiny Charizard")
	assert.NotEmpty(t, env.io.WriteCalls())
}

// exportTree пишет снимок дерева, построенного fn, в файл
func exportTree(t *testing.T, owner uuid.UUID, fn func(s *countable.Store)) string {
	t.Helper()
	s := countable.New(owner)
	fn(s)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, api.NewSnapshot(data, testNow).Encode(&buf))

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestCli_runImport_Merge(t *testing.T) {
	env := newTestEnv(t)
	var counter, first, second models.CountableID
	env.seed(t, func(s *countable.Store) { counter, first, second = hunt(t, s) })

	// снимок содержит локальное дерево с более новыми правками и новой фазой
	local := env.store(t)
	var added models.CountableID
	path := exportTree(t, testOwner, func(s *countable.Store) {
		nodes, err := local.Nodes()
		require.NoError(t, err)
		for _, n := range nodes {
			require.NoError(t, s.Insert(n))
		}
		s.Clock().Observe(local.Clock().Last())
		require.NoError(t, s.Level().SetCount(second, 40))
		added, err = s.NewCountable("Phase 3", models.KindPhase, &counter)
		require.NoError(t, err)
	})

	require.NoError(t, env.cli.runImport(context.Background(), path, false))

	s := env.store(t)
	u := s.Level().Unchecked()
	assert.Equal(t, []models.CountableID{first, second, added}, u.Children(counter))
	assert.Equal(t, int32(40), u.Count(second))
	assert.Equal(t, int32(50), u.Count(counter))
	assert.Contains(t, env.output(), "Added: 1, replaced: 3, kept: 0, archived: 0")
	assert.Contains(t, env.output(), "✓ Imported 4 countables")
}

func TestCli_runImport_Replace(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, func(s *countable.Store) { hunt(t, s) })

	var other models.CountableID
	path := exportTree(t, testOwner, func(s *countable.Store) {
		var err error
		other, err = s.NewCountable("Other", models.KindCounter, nil)
		require.NoError(t, err)
	})

	require.NoError(t, env.cli.runImport(context.Background(), path, true))

	s := env.store(t)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(other))
}

func TestCli_runImport_Stdin(t *testing.T) {
	env := newTestEnv(t)
	path := exportTree(t, testOwner, func(s *countable.Store) { hunt(t, s) })
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	env.cli.stdin = bytes.NewReader(data)

	require.NoError(t, env.cli.runImport(context.Background(), "-", false))
	assert.Equal(t, 3, env.store(t).Len())
}

func TestCli_runImport_Errors(t *testing.T) {
	foreign := exportTree(t, uuid.New(), func(s *countable.Store) { hunt(t, s) })

	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"version": 7, "store": {}}`), 0o600))

	tests := []struct {
		name    string
		path    string
		wantErr error
		errMsg  string
	}{
		{name: "foreign owner", path: foreign, wantErr: ErrOwnerMismatch},
		{name: "unsupported version", path: broken, wantErr: api.ErrUnsupportedVersion},
		{name: "missing file", path: filepath.Join(t.TempDir(), "missing.json"), errMsg: "failed to open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			err := env.cli.runImport(context.Background(), tt.path, false)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
			assert.Empty(t, env.storage.ReplaceAllCalls())
		})
	}
}
