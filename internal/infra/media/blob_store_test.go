package media

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func createTestImageStore(t *testing.T, maxUploadSize int64) (*blobImageStore, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	store := NewBlobImageStore(bucket, &config.MediaConfig{
		PublicBaseURL:  "https://cdn.example.com/",
		MaxUploadSize:  maxUploadSize,
		ThumbnailWidth: 300,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return store.(*blobImageStore), bucket
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, x%h, color.NRGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestUploadStoresOriginalAndThumbnail(t *testing.T) {
	store, bucket := createTestImageStore(t, 5<<20)
	data := encodePNG(t, 1200, 600)

	stored, err := store.Upload(t.Context(), "products/p1", bytes.NewReader(data))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.URL, "https://cdn.example.com/products/p1/"))
	assert.True(t, strings.HasSuffix(stored.URL, ".png"))
	assert.True(t, strings.HasSuffix(stored.ThumbnailURL, "_thumb.jpg"))
	assert.Equal(t, int64(len(data)), stored.Size)

	originalKey := strings.TrimPrefix(stored.URL, "https://cdn.example.com/")
	original, err := bucket.ReadAll(t.Context(), originalKey)
	require.NoError(t, err)
	assert.Equal(t, data, original)

	attrs, err := bucket.Attributes(t.Context(), originalKey)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	thumbKey := strings.TrimPrefix(stored.ThumbnailURL, "https://cdn.example.com/")
	thumbData, err := bucket.ReadAll(t.Context(), thumbKey)
	require.NoError(t, err)
	thumb, err := imaging.Decode(bytes.NewReader(thumbData))
	require.NoError(t, err)
	assert.Equal(t, 300, thumb.Bounds().Dx())
	assert.Equal(t, 150, thumb.Bounds().Dy())
}

func TestUploadSameContentReusesKeys(t *testing.T) {
	store, _ := createTestImageStore(t, 5<<20)
	data := encodePNG(t, 400, 400)

	first, err := store.Upload(t.Context(), "products/p1", bytes.NewReader(data))
	require.NoError(t, err)
	second, err := store.Upload(t.Context(), "products/p1", bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, first.URL, second.URL)
}

func TestUploadRejectsInvalidImages(t *testing.T) {
	var gifBuf bytes.Buffer
	require.NoError(t, gif.Encode(&gifBuf, image.NewPaletted(image.Rect(0, 0, 10, 10), []color.Color{color.Black}), nil))

	tests := []struct {
		name    string
		maxSize int64
		data    []byte
	}{
		{"not an image", 5 << 20, []byte("hello")},
		{"unsupported format", 5 << 20, gifBuf.Bytes()},
		{"too large", 64, encodePNG(t, 100, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := createTestImageStore(t, tt.maxSize)

			_, err := store.Upload(t.Context(), "products/p1", bytes.NewReader(tt.data))
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidImage), "got %v", err)
		})
	}
}

func TestDeleteAll(t *testing.T) {
	store, bucket := createTestImageStore(t, 5<<20)

	_, err := store.Upload(t.Context(), "products/p1", bytes.NewReader(encodePNG(t, 50, 50)))
	require.NoError(t, err)
	require.NoError(t, bucket.WriteAll(t.Context(), "products/p10/keep.png", []byte("x"), nil))

	require.NoError(t, store.DeleteAll(t.Context(), "products/p1"))

	iter := bucket.List(&blob.ListOptions{Prefix: "products/"})
	var keys []string
	for {
		obj, err := iter.Next(t.Context())
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		keys = append(keys, obj.Key)
	}
	assert.Equal(t, []string{"products/p10/keep.png"}, keys)
}
