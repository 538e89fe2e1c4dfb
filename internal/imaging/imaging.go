// Package imaging decodes tile artwork and resamples it for display.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/rjcampbel/DisneyMagic/internal/domain"
)

// Decode turns image bytes into a drawable image. The format is sniffed from
// the data (png, jpeg, gif, webp).
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", domain.ErrNoVisual)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoVisual, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: %s image has zero size", domain.ErrNoVisual, format)
	}
	return img, nil
}

// ScaledSize returns the pixel size of an image drawn at scale, never below 1x1
func ScaledSize(native image.Point, scale domain.Scale) image.Point {
	w := int(math.Round(float64(native.X) * scale.X))
	h := int(math.Round(float64(native.Y) * scale.Y))
	return image.Pt(max(w, 1), max(h, 1))
}

// Resample scales src to exactly size using bilinear filtering
func Resample(src image.Image, size image.Point) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
