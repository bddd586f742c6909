package display

import (
	"errors"
	"image"
	"io/fs"
	"testing"

	"image-transcriber/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDecoder struct {
	images map[string]image.Image
	err    error
}

func (f *fakeDecoder) Decode(path string) (image.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	img, ok := f.images[path]
	if !ok {
		return nil, &models.DecodeError{Path: path, Err: fs.ErrNotExist}
	}
	return img, nil
}

type frames struct {
	sizes []image.Point
}

func (f *frames) render(img image.Image) {
	if img == nil {
		f.sizes = append(f.sizes, image.Point{})
		return
	}
	f.sizes = append(f.sizes, img.Bounds().Size())
}

func newTestSurface() (*Surface, *frames) {
	decoder := &fakeDecoder{images: map[string]image.Image{
		"wide.png": image.NewRGBA(image.Rect(0, 0, 400, 100)),
		"tall.png": image.NewRGBA(image.Rect(0, 0, 100, 400)),
		"line.png": image.NewRGBA(image.Rect(0, 0, 1000, 2)),
	}}
	f := &frames{}
	return NewSurface(decoder, f.render), f
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		name                     string
		imgW, imgH, viewW, viewH int
		wantW, wantH             int
	}{
		{"width bound", 400, 100, 200, 200, 200, 50},
		{"height bound", 100, 400, 200, 200, 50, 200},
		{"upscale", 10, 20, 100, 100, 50, 100},
		{"exact", 300, 200, 300, 200, 300, 200},
		{"floors fractions", 3, 3, 10, 11, 10, 10},
		{"clamps to one pixel", 1000, 2, 100, 100, 100, 1},
		{"zero viewport", 100, 100, 0, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitSize(tt.imgW, tt.imgH, tt.viewW, tt.viewH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestSurfaceResizeWithoutImageIsNoop(t *testing.T) {
	s, f := newTestSurface()

	s.Resize(300, 200)

	assert.Empty(t, f.sizes)
	assert.Equal(t, image.Pt(300, 200), s.Viewport())
}

func TestSurfaceSetImageRendersAtViewport(t *testing.T) {
	s, f := newTestSurface()
	s.Resize(200, 200)

	require.NoError(t, s.SetImage("wide.png"))

	assert.Equal(t, []image.Point{{200, 50}}, f.sizes)
	assert.Equal(t, "wide.png", s.Path())
	assert.Equal(t, image.Pt(400, 100), s.ImageSize())
}

func TestSurfaceDefersRenderUntilLaidOut(t *testing.T) {
	s, f := newTestSurface()

	require.NoError(t, s.SetImage("tall.png"))
	assert.Empty(t, f.sizes)

	s.Resize(100, 100)
	assert.Equal(t, []image.Point{{25, 100}}, f.sizes)
}

func TestSurfaceRerendersOnResize(t *testing.T) {
	s, f := newTestSurface()
	s.Resize(200, 200)
	require.NoError(t, s.SetImage("wide.png"))

	s.Resize(800, 100)
	s.Resize(800, 100)
	s.Resize(40, 40)

	assert.Equal(t, []image.Point{{200, 50}, {400, 100}, {40, 10}}, f.sizes)
}

func TestSurfaceNeverRendersEmptyFrames(t *testing.T) {
	s, f := newTestSurface()
	s.Resize(50, 50)

	require.NoError(t, s.SetImage("line.png"))

	assert.Equal(t, []image.Point{{50, 1}}, f.sizes)
}

func TestSurfaceDecodeErrorKeepsPreviousImage(t *testing.T) {
	s, f := newTestSurface()
	s.Resize(100, 100)
	require.NoError(t, s.SetImage("wide.png"))

	err := s.SetImage("missing.png")

	var decodeErr *models.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "missing.png", decodeErr.Path)
	assert.Equal(t, "wide.png", s.Path())
	assert.Len(t, f.sizes, 1)
}

func TestSurfaceWrapsForeignDecodeErrors(t *testing.T) {
	cause := errors.New("boom")
	s := NewSurface(&fakeDecoder{err: cause}, func(image.Image) {})

	err := s.SetImage("x.png")

	var decodeErr *models.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.ErrorIs(t, err, cause)
}

func TestSurfaceClear(t *testing.T) {
	s, f := newTestSurface()
	s.Resize(100, 100)
	require.NoError(t, s.SetImage("tall.png"))

	s.Clear()
	s.Resize(200, 200)

	assert.Equal(t, []image.Point{{25, 100}, {}}, f.sizes)
	assert.Empty(t, s.Path())
	assert.Equal(t, image.Point{}, s.ImageSize())
}

func TestResampleProducesRequestedSize(t *testing.T) {
	src := image.NewGray(image.Rect(10, 10, 110, 60))

	out := Resample(src, 37, 18)

	assert.Equal(t, image.Rect(0, 0, 37, 18), out.Bounds())
	assert.NotEmpty(t, ResamplerName)
}
