//go:build gocv

// Package opencv wraps the few OpenCV calls used for display scaling. It is only
// built with the gocv build tag, which requires a local OpenCV installation.
package opencv

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// ResizeArea scales img to w x h using INTER_AREA interpolation
func ResizeArea(img image.Image, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", w, h)
	}

	src, err := gocv.ImageToMatRGBA(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to Mat: %w", err)
	}
	defer src.Close()

	if src.Empty() {
		return nil, fmt.Errorf("empty Mat")
	}

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.Resize(src, &dst, image.Pt(w, h), 0, 0, gocv.InterpolationArea)

	out, err := dst.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert resized Mat to image: %w", err)
	}
	return out, nil
}
