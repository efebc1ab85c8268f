package service

import (
	"context"
	"io"
)

// StoredImage locates an uploaded image and its thumbnail.
type StoredImage struct {
	URL          string
	ThumbnailURL string
	Size         int64
}

// ImageStore keeps product images in blob storage.
type ImageStore interface {
	// Upload decodes the image, stores the original and a thumbnail under prefix.
	Upload(ctx context.Context, prefix string, r io.Reader) (*StoredImage, error)

	// DeleteAll removes every object under prefix.
	DeleteAll(ctx context.Context, prefix string) error
}
