//go:build !gocv

package display

import (
	"image"

	"golang.org/x/image/draw"
)

// ResamplerName identifies the filter used by Resample
const ResamplerName = "catmull-rom"

// Resample scales src to exactly w x h pixels with a Catmull-Rom filter
func Resample(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
