// Package media stores product images in a gocloud.dev blob bucket.
package media

import (
	"bytes"
	"context"
	"image"
	"io"
	"log/slog"
	"path"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/util"

	"github.com/disintegration/imaging"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

type blobImageStore struct {
	bucket         *blob.Bucket
	publicBaseURL  string
	maxUploadSize  int64
	thumbnailWidth int
	logger         *slog.Logger
}

// NewBlobImageStore wraps an open bucket.
func NewBlobImageStore(bucket *blob.Bucket, cfg *config.MediaConfig, logger *slog.Logger) service.ImageStore {
	return &blobImageStore{
		bucket:         bucket,
		publicBaseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxUploadSize:  cfg.MaxUploadSize,
		thumbnailWidth: cfg.ThumbnailWidth,
		logger:         logger,
	}
}

// Upload stores the original bytes and a resized thumbnail. Object names are
// derived from the content hash, so re-uploading the same file is idempotent.
func (s *blobImageStore) Upload(ctx context.Context, prefix string, r io.Reader) (*service.StoredImage, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxUploadSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if int64(len(data)) > s.maxUploadSize {
		return nil, domainerrors.ErrInvalidImage.WithDetails("image exceeds " + util.FormatBytes(s.maxUploadSize))
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, domainerrors.ErrInvalidImage.WrapMessage(err.Error())
	}
	contentType, ok := contentTypes[format]
	if !ok {
		return nil, domainerrors.ErrInvalidImage.WithDetails("unsupported format " + format)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, domainerrors.ErrInvalidImage.WrapMessage(err.Error())
	}

	sum, err := util.Checksum(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	base := path.Join(prefix, sum[:16])
	ext := "." + strings.Replace(format, "jpeg", "jpg", 1)

	originalKey := base + ext
	if err := s.write(ctx, originalKey, contentType, data); err != nil {
		return nil, err
	}

	thumbnail := imaging.Resize(img, s.thumbnailWidth, 0, imaging.Lanczos)
	var thumbBuf bytes.Buffer
	if err := imaging.Encode(&thumbBuf, thumbnail, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, errors.Wrap(err, "failed to encode thumbnail")
	}

	thumbKey := base + "_thumb.jpg"
	if err := s.write(ctx, thumbKey, "image/jpeg", thumbBuf.Bytes()); err != nil {
		return nil, err
	}

	s.logger.Info("Product image stored",
		slog.String("key", originalKey),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return &service.StoredImage{
		URL:          s.publicURL(originalKey),
		ThumbnailURL: s.publicURL(thumbKey),
		Size:         int64(len(data)),
	}, nil
}

// DeleteAll removes every object under prefix. Missing objects are ignored.
func (s *blobImageStore) DeleteAll(ctx context.Context, prefix string) error {
	iter := s.bucket.List(&blob.ListOptions{Prefix: strings.TrimSuffix(prefix, "/") + "/"})

	var errs []error
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to list images")
		}
		if err := s.bucket.Delete(ctx, obj.Key); err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to delete %s", obj.Key))
		}
	}

	return errors.Join(errs...)
}

func (s *blobImageStore) write(ctx context.Context, key, contentType string, data []byte) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})

	return errors.Wrapf(err, "failed to write %s", key)
}

func (s *blobImageStore) publicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// StoreParams holds the dependencies of NewImageStore.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured bucket and closes it on shutdown.
func NewImageStore(params StoreParams) (service.ImageStore, error) {
	cfg := params.Config.Media

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Media bucket opened", slog.String("bucket", cfg.BucketURL))

	return NewBlobImageStore(bucket, cfg, params.Logger), nil
}
