package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/api/v1/files"})
	require.NoError(t, err)
	ctx := context.Background()

	err = store.Save(ctx, "videos/p1/clip.mp4", strings.NewReader("payload"), "video/mp4")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "videos/p1/clip.mp4")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := store.GetSize(ctx, "videos/p1/clip.mp4")
	require.NoError(t, err)
	assert.Equal(t, int64(len("payload")), size)

	rc, err := store.Get(ctx, "videos/p1/clip.mp4")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "payload", string(data))

	url, err := store.GetURL(ctx, "videos/p1/clip.mp4")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/videos/p1/clip.mp4", url)

	require.NoError(t, store.Delete(ctx, "videos/p1/clip.mp4"))
	exists, err = store.Exists(ctx, "videos/p1/clip.mp4")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "nope/missing.mp4"))
}
