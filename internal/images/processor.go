// Package images validates, resizes and stores product images.
package images

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Sniff detects the content type from the file bytes and returns it with the
// canonical extension. The client-supplied filename and Content-Type are
// never trusted.
func Sniff(data []byte) (contentType, ext string, err error) {
	mtype := mimetype.Detect(data)
	ext, ok := allowedTypes[mtype.String()]
	if !ok {
		return "", "", fmt.Errorf("unsupported image type %q", mtype.String())
	}
	return mtype.String(), ext, nil
}

// Thumbnail scales the image down to the given width, preserving aspect
// ratio, and re-encodes it as JPEG. Images already narrower than width are
// re-encoded without scaling.
func Thumbnail(data []byte, width int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() > width {
		height := bounds.Dy() * width / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
