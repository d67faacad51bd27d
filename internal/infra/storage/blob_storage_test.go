package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "allergo/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
)

func newTestStorage(t *testing.T) (*blobAvatarStorage, *blob.Bucket) {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return newBlobAvatarStorage(bucket, "https://cdn.example.com/", slog.New(slog.NewTextHandler(io.Discard, nil))), bucket
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestBlobAvatarStorage_StorePNG(t *testing.T) {
	s, bucket := newTestStorage(t)
	ctx := context.Background()
	data := pngBytes(t)

	url, err := s.Store(ctx, data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/images/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	key := strings.TrimPrefix(url, "https://cdn.example.com/")
	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	stored, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, data, stored)

	require.NoError(t, s.Delete(ctx, url))
	exists, err := bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobAvatarStorage_RejectsNonImages(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.Store(context.Background(), []byte("%PDF-1.7 not an avatar"))
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMedia)

	_, err = s.Store(context.Background(), []byte("GIF89a......"))
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedMedia)
}

func TestBlobAvatarStorage_DeleteIgnoresForeignAndMissing(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, s.Delete(ctx, ""))
	assert.NoError(t, s.Delete(ctx, "https://elsewhere.example.com/images/a.png"))
	assert.NoError(t, s.Delete(ctx, "https://cdn.example.com/images/missing.png"))
}
