package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/P3rtang/tallyWeb-sub000/internal/countable"
	"github.com/P3rtang/tallyWeb-sub000/internal/models"
	"github.com/P3rtang/tallyWeb-sub000/internal/server/storage/sqlite"
)

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	defer s.Close()

	owner := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	store := countable.New(owner)
	root, err := store.NewCountable("Hunt", models.KindCounter, nil)
	require.NoError(t, err)
	first, err := store.NewCountable("Phase 1", models.KindPhase, &root)
	require.NoError(t, err)
	second, err := store.NewCountable("Phase 2", models.KindPhase, &root)
	require.NoError(t, err)
	require.NoError(t, store.Level().SetCount(first, 30))
	require.NoError(t, store.Level().SetCount(second, 12))
	require.NoError(t, store.Level().SetTime(first, 90*time.Minute))
	require.NoError(t, store.Level().ToggleSuccess(first))

	nodes, err := store.Nodes()
	require.NoError(t, err)
	require.NoError(t, s.SaveCountables(ctx, owner, nodes))

	summaries, err := summarize(ctx, s)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, ownerSummary{
		Owner:     owner.String(),
		Nodes:     3,
		Counters:  1,
		Completed: 1,
		Count:     42,
		Elapsed:   "1:30:00",
	}, summaries[0])

	var buf bytes.Buffer
	require.NoError(t, printSummary(ctx, &buf, s))
	assert.Contains(t, buf.String(), "OWNER")
	assert.Contains(t, buf.String(), owner.String())
}

func TestPrintSummary_Empty(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	defer s.Close()

	var buf bytes.Buffer
	require.NoError(t, printSummary(ctx, &buf, s))
	assert.Equal(t, "No owners found.\n", buf.String())
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0:00:00", formatElapsed(0))
	assert.Equal(t, "2:03:04", formatElapsed(int64(2*time.Hour+3*time.Minute+4*time.Second)))
}

func TestVersion(t *testing.T) {
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Tally Server")
	assert.Contains(t, buf.String(), "Version:    dev")
}
