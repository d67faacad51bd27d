// Package storage keeps avatar images in a gocloud bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"allergo/config"
	domainerrors "allergo/internal/domain/errors"
	"allergo/internal/domain/service"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const (
	imagePrefix  = "images/"
	cacheControl = "public, max-age=31536000, immutable"
)

// allowedImages maps sniffed MIME types to the stored file extension.
var allowedImages = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type blobAvatarStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket URL and closes it on shutdown.
func New(params Params) (service.AvatarStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newBlobAvatarStorage(bucket, cfg.PublicBaseURL, params.Logger), nil
}

func newBlobAvatarStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *blobAvatarStorage {
	return &blobAvatarStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *blobAvatarStorage) Store(ctx context.Context, data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	ext, ok := allowedImages[mtype.String()]
	if !ok {
		return "", domainerrors.ErrUnsupportedMedia.WithDetails(map[string]string{"detected": mtype.String()})
	}

	key := imagePrefix + uuid.NewString() + ext
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  mtype.String(),
		CacheControl: cacheControl,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *blobAvatarStorage) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFor(url)
	if !ok {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobAvatarStorage) keyFor(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.publicBaseURL+"/")
	if !ok || !strings.HasPrefix(key, imagePrefix) {
		return "", false
	}

	return key, true
}
