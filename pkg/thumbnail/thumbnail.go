// Package thumbnail renders bounded JPEG previews of uploaded images.
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	// Decoders for the formats users upload.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	MaxWidth  = 300
	MaxHeight = 300
	Quality   = 80
)

// IsImage reports whether a preview should be attempted for the MIME type.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// Fit returns the largest size with the source aspect ratio that fits in
// maxW×maxH. Images already inside the box keep their size.
func Fit(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	// Compare w/maxW with h/maxH without floating point.
	if w*maxH >= h*maxW {
		nh := h * maxW / w
		return maxW, max(nh, 1)
	}
	nw := w * maxH / h
	return max(nw, 1), maxH
}

// Generate decodes src and encodes a JPEG no larger than 300×300.
func Generate(src []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), MaxWidth, MaxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
