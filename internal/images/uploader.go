package images

import (
	"context"
	"fmt"
	"strings"

	"github.com/akshayraj-industries/website-backend/config"
	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/google/uuid"
)

// Uploader validates product images and stores the original plus a JPEG
// thumbnail. The returned ImageRef always carries an absolute URL.
type Uploader struct {
	storage    ObjectStorage
	baseURL    string
	maxSize    int64
	thumbWidth int
	newID      func() string
}

func NewUploader(storage ObjectStorage, cfg config.UploadConfig) *Uploader {
	return &Uploader{
		storage:    storage,
		baseURL:    strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxSize:    cfg.MaxSizeBytes,
		thumbWidth: cfg.ThumbnailWidth,
		newID:      func() string { return uuid.NewString() },
	}
}

// UploadProductImage stores the image for a product and returns the public
// reference. The thumbnail failing to store is logged but not fatal; the
// original is the record of truth.
func (u *Uploader) UploadProductImage(ctx context.Context, productID int64, data []byte) (types.ImageRef, error) {
	if int64(len(data)) > u.maxSize {
		return types.ImageRef{}, fmt.Errorf("image exceeds maximum size of %d bytes", u.maxSize)
	}

	contentType, ext, err := Sniff(data)
	if err != nil {
		return types.ImageRef{}, err
	}

	id := u.newID()
	key := fmt.Sprintf("products/%d/%s%s", productID, id, ext)
	if err := u.storage.Put(ctx, key, data, contentType); err != nil {
		return types.ImageRef{}, err
	}

	thumb, err := Thumbnail(data, u.thumbWidth)
	if err != nil {
		logger.GetLogger().Warnw("Thumbnail generation failed", "error", err, "key", key)
	} else {
		thumbKey := fmt.Sprintf("products/%d/thumbs/%s.jpg", productID, id)
		if err := u.storage.Put(ctx, thumbKey, thumb, "image/jpeg"); err != nil {
			logger.GetLogger().Warnw("Thumbnail upload failed", "error", err, "key", thumbKey)
		}
	}

	return types.ImageRef{
		Kind:  types.ImageKindURL,
		Value: u.baseURL + "/" + key,
	}, nil
}
