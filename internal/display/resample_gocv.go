//go:build gocv

package display

import (
	"image"

	"image-transcriber/internal/opencv"

	"golang.org/x/image/draw"
)

// ResamplerName identifies the filter used by Resample
const ResamplerName = "opencv-area"

// Resample scales src to exactly w x h pixels with OpenCV's area filter. If the
// conversion through OpenCV fails the Catmull-Rom filter is used for that frame.
func Resample(src image.Image, w, h int) image.Image {
	if out, err := opencv.ResizeArea(src, w, h); err == nil {
		return out
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
