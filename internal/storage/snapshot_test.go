package storage

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prwatch/internal/core"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "state.json")
	return NewFileStore(path, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func sampleSnapshot() *core.Snapshot {
	snap := core.NewSnapshot()
	snap.Seen["https://github.com/acme/widget/pull/1"] = struct{}{}
	snap.Seen["https://github.com/acme/widget/pull/2"] = struct{}{}
	snap.CommentCounts["https://github.com/acme/widget/pull/1"] = 3
	snap.ReviewStates["https://github.com/acme/widget/pull/1"] = core.ReviewApproved
	snap.CIStates["https://github.com/acme/widget/pull/2"] = core.CIPending
	return snap
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	want := sampleSnapshot()

	require.NoError(t, store.Save(want))
	got := store.Load()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	snap := store.Load()
	require.NotNil(t, snap)
	assert.Empty(t, snap.Seen)
	assert.Empty(t, snap.CommentCounts)
	assert.Empty(t, snap.ReviewStates)
	assert.Empty(t, snap.CIStates)
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o755))
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o600))

	snap := store.Load()
	require.NotNil(t, snap)
	assert.Empty(t, snap.Seen)
}

func TestSaveReplacesPreviousContent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleSnapshot()))

	next := core.NewSnapshot()
	next.Seen["https://github.com/acme/widget/pull/9"] = struct{}{}
	require.NoError(t, store.Save(next))

	got := store.Load()
	assert.Len(t, got.Seen, 1)
	assert.Contains(t, got.Seen, "https://github.com/acme/widget/pull/9")
	assert.Empty(t, got.CommentCounts)
}

func TestSeenSerializedAsSortedList(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleSnapshot()))

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)

	var f struct {
		SeenURLs []string `json:"seen_urls"`
	}
	require.NoError(t, json.Unmarshal(data, &f))
	assert.Equal(t, []string{
		"https://github.com/acme/widget/pull/1",
		"https://github.com/acme/widget/pull/2",
	}, f.SeenURLs)
}
