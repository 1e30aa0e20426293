package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// Portraits are capped at this edge; larger uploads are downscaled
	// preserving aspect ratio.
	MaxEdge = 800

	quality = 85
)

// NormalizeToWebP decodes a JPEG, PNG or WebP upload and re-encodes it
// as a bounded WebP. Anything undecodable is rejected.
func NormalizeToWebP(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// image.Decode only knows registered formats; try webp directly.
		src, err = webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("unsupported image: %w", err)
		}
	}

	src = downscale(src, MaxEdge)

	var out bytes.Buffer
	if err := webp.Encode(&out, src, &webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return out.Bytes(), nil
}

func downscale(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
