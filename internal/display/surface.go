// Package display renders a decoded image scaled to fit a resizable viewport.
package display

import (
	"errors"
	"image"
	"math"

	"image-transcriber/internal/models"
)

// Decoder turns an image path into pixels
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// RenderFunc receives every frame the surface draws. A nil image means the
// surface was cleared.
type RenderFunc func(img image.Image)

// Surface owns one decoded image and redraws it whenever the viewport changes.
// It knows nothing about the toolkit; the widget that embeds it supplies the
// viewport size in pixels and puts rendered frames on screen.
type Surface struct {
	decoder Decoder
	render  RenderFunc

	path   string
	source image.Image

	viewport image.Point
	drawn    image.Point
}

// NewSurface creates an empty surface
func NewSurface(decoder Decoder, render RenderFunc) *Surface {
	return &Surface{decoder: decoder, render: render}
}

// SetImage decodes path and draws it at the current viewport size. On failure
// the previously shown image is left untouched and a *models.DecodeError is
// returned.
func (s *Surface) SetImage(path string) error {
	img, err := s.decoder.Decode(path)
	if err != nil {
		var decodeErr *models.DecodeError
		if !errors.As(err, &decodeErr) {
			err = &models.DecodeError{Path: path, Err: err}
		}
		return err
	}

	s.path = path
	s.source = img
	s.drawn = image.Point{}
	s.draw()
	return nil
}

// Clear drops the stored image and blanks the view
func (s *Surface) Clear() {
	s.path = ""
	s.source = nil
	s.drawn = image.Point{}
	s.render(nil)
}

// Resize records a new viewport size in pixels and redraws the stored image to
// fit it. Without an image it only records the size.
func (s *Surface) Resize(width, height int) {
	s.viewport = image.Pt(width, height)
	if s.source == nil {
		return
	}
	s.draw()
}

// Path returns the path of the stored image, or "" when empty
func (s *Surface) Path() string {
	return s.path
}

// ImageSize returns the pixel size of the stored image, zero when empty
func (s *Surface) ImageSize() image.Point {
	if s.source == nil {
		return image.Point{}
	}
	return s.source.Bounds().Size()
}

// Viewport returns the last recorded viewport size in pixels
func (s *Surface) Viewport() image.Point {
	return s.viewport
}

func (s *Surface) draw() {
	// Not laid out yet; the first Resize draws.
	if s.viewport.X <= 0 || s.viewport.Y <= 0 {
		return
	}

	bounds := s.source.Bounds()
	w, h := FitSize(bounds.Dx(), bounds.Dy(), s.viewport.X, s.viewport.Y)
	target := image.Pt(w, h)
	if target == s.drawn {
		return
	}

	s.drawn = target
	s.render(Resample(s.source, w, h))
}

// FitSize scales an image of imgW x imgH to the largest size that fits inside
// viewW x viewH with the same aspect ratio. Each side is at least one pixel.
func FitSize(imgW, imgH, viewW, viewH int) (int, int) {
	if imgW <= 0 || imgH <= 0 {
		return 1, 1
	}

	ratio := math.Min(float64(viewW)/float64(imgW), float64(viewH)/float64(imgH))
	w := int(math.Floor(float64(imgW) * ratio))
	h := int(math.Floor(float64(imgH) * ratio))
	return max(w, 1), max(h, 1)
}
