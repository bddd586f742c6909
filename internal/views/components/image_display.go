package components

import (
	"image"
	"image/color"

	"image-transcriber/internal/display"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	ImageAreaMinWidth  = 320
	ImageAreaMinHeight = 240
)

// ImageDisplay is a widget that shows one image scaled to fit its current size.
// The scaling itself is done by a display.Surface in device pixels, so the
// frame stays sharp on high-density screens.
type ImageDisplay struct {
	widget.BaseWidget

	surface    *display.Surface
	raster     *canvas.Image
	background *canvas.Rectangle

	// frame is the size of the last rendered frame in canvas units
	frame fyne.Size
}

// NewImageDisplay creates an empty image display that decodes with decoder
func NewImageDisplay(decoder display.Decoder) *ImageDisplay {
	id := &ImageDisplay{}

	id.raster = canvas.NewImageFromImage(nil)
	id.raster.FillMode = canvas.ImageFillStretch
	id.raster.ScaleMode = canvas.ImageScaleSmooth

	id.background = canvas.NewRectangle(color.NRGBA{R: 240, G: 240, B: 240, A: 255})
	id.surface = display.NewSurface(decoder, id.showFrame)

	id.ExtendBaseWidget(id)
	return id
}

// SetImage loads path and shows it, returning its size in pixels
func (id *ImageDisplay) SetImage(path string) (image.Point, error) {
	if err := id.surface.SetImage(path); err != nil {
		return image.Point{}, err
	}
	return id.surface.ImageSize(), nil
}

// Clear removes the image from the display
func (id *ImageDisplay) Clear() {
	id.surface.Clear()
}

// Path returns the path of the displayed image
func (id *ImageDisplay) Path() string {
	return id.surface.Path()
}

// Frame returns the on-screen image size in canvas units
func (id *ImageDisplay) Frame() fyne.Size {
	return id.frame
}

// Image returns the frame currently drawn, nil when blank
func (id *ImageDisplay) Image() image.Image {
	return id.raster.Image
}

func (id *ImageDisplay) CreateRenderer() fyne.WidgetRenderer {
	return &imageDisplayRenderer{
		display: id,
		objects: []fyne.CanvasObject{id.background, id.raster},
	}
}

func (id *ImageDisplay) showFrame(img image.Image) {
	id.raster.Image = img
	if img == nil {
		id.frame = fyne.Size{}
	} else {
		scale := id.pixelScale()
		bounds := img.Bounds()
		id.frame = fyne.NewSize(float32(bounds.Dx())/scale, float32(bounds.Dy())/scale)
	}
	id.placeFrame(id.Size())
	id.raster.Refresh()
}

func (id *ImageDisplay) placeFrame(size fyne.Size) {
	id.raster.Resize(id.frame)
	id.raster.Move(fyne.NewPos((size.Width-id.frame.Width)/2, (size.Height-id.frame.Height)/2))
}

func (id *ImageDisplay) viewportResized(size fyne.Size) {
	scale := id.pixelScale()
	id.surface.Resize(int(size.Width*scale), int(size.Height*scale))
}

// pixelScale is the number of device pixels per canvas unit
func (id *ImageDisplay) pixelScale() float32 {
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(id); c != nil && c.Scale() > 0 {
			return c.Scale()
		}
	}
	return 1
}

type imageDisplayRenderer struct {
	display *ImageDisplay
	objects []fyne.CanvasObject
}

func (r *imageDisplayRenderer) Layout(size fyne.Size) {
	r.display.background.Resize(size)
	r.display.viewportResized(size)
	r.display.placeFrame(size)
}

func (r *imageDisplayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ImageAreaMinWidth, ImageAreaMinHeight)
}

func (r *imageDisplayRenderer) Refresh() {
	r.display.background.Refresh()
	r.display.raster.Refresh()
}

func (r *imageDisplayRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *imageDisplayRenderer) Destroy() {}
