package api

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_EncodeDecode(t *testing.T) {
	exportedAt := time.Date(2024, 5, 1, 14, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	store := []byte(`{"nodes":[],"owner":"11111111-2222-3333-4444-555555555555"}`)

	var buf bytes.Buffer
	require.NoError(t, NewSnapshot(store, exportedAt).Encode(&buf))

	decoded, err := DecodeSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, decoded.Version)
	assert.True(t, exportedAt.Equal(decoded.ExportedAt))
	assert.JSONEq(t, string(store), string(decoded.Store))
}

func TestDecodeSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		input   string
	}{
		{name: "not json", input: "tally"},
		{name: "future version", input: `{"version": 2, "store": {}}`, wantErr: ErrUnsupportedVersion},
		{name: "missing version", input: `{"store": {}}`, wantErr: ErrUnsupportedVersion},
		{name: "missing store", input: `{"version": 1}`, wantErr: ErrEmptySnapshot},
		{name: "null store", input: `{"version": 1, "store": null}`, wantErr: ErrEmptySnapshot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSnapshot(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
