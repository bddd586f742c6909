package components

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"image-transcriber/internal/models"
	"image-transcriber/internal/services"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: uint8(x), B: uint8(y), A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestToolbarHandlers(t *testing.T) {
	test.NewTempApp(t)

	toolbar := NewToolbar()
	var saved, next, previous int
	toolbar.SetSaveHandler(func() { saved++ })
	toolbar.SetNextHandler(func() { next++ })
	toolbar.SetPreviousHandler(func() { previous++ })

	toolbar.SetActions(models.Actions{Save: true, SkipNext: true, SkipPrevious: true})
	test.Tap(toolbar.saveButton)
	test.Tap(toolbar.nextButton)
	test.Tap(toolbar.nextButton)
	test.Tap(toolbar.previousButton)

	assert.Equal(t, 1, saved)
	assert.Equal(t, 2, next)
	assert.Equal(t, 1, previous)
}

func TestToolbarSetActions(t *testing.T) {
	test.NewTempApp(t)

	toolbar := NewToolbar()
	assert.Equal(t, models.Actions{}, toolbar.Actions(), "everything starts disabled")

	toolbar.SetActions(models.DeriveActions(""))
	assert.Equal(t, models.Actions{SkipNext: true, SkipPrevious: true}, toolbar.Actions())

	toolbar.SetActions(models.DeriveActions("text"))
	assert.Equal(t, models.Actions{Save: true}, toolbar.Actions())

	var saved bool
	toolbar.SetSaveHandler(func() { saved = true })
	toolbar.SetActions(models.Actions{})
	test.Tap(toolbar.saveButton)
	assert.False(t, saved, "disabled button must not fire")
}

func TestStatusPanel(t *testing.T) {
	test.NewTempApp(t)

	panel := NewStatusPanel()
	assert.Equal(t, "Loading...", panel.GetCurrent())
	assert.Equal(t, "Loading...", panel.GetProgress())

	panel.SetCurrent("/scans/a.jpg")
	panel.SetProgress("1 complete | 2 incomplete")
	assert.Equal(t, "/scans/a.jpg", panel.GetCurrent())
	assert.Equal(t, "1 complete | 2 incomplete", panel.GetProgress())
	assert.Len(t, panel.GetContainer().Objects, 2)
}

func TestImageDisplayFitsFrame(t *testing.T) {
	test.NewTempApp(t)

	path := filepath.Join(t.TempDir(), "wide.png")
	writePNG(t, path, 200, 100)

	display := NewImageDisplay(services.NewImageService())
	w := test.NewWindow(display)
	defer w.Close()

	display.Resize(fyne.NewSize(100, 100))
	size, err := display.SetImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(200, 100), size)
	assert.Equal(t, path, display.Path())
	assert.Equal(t, fyne.NewSize(100, 50), display.Frame())
	require.NotNil(t, display.Image())

	display.Resize(fyne.NewSize(50, 200))
	assert.Equal(t, fyne.NewSize(50, 25), display.Frame())

	display.Clear()
	assert.Nil(t, display.Image())
	assert.Equal(t, fyne.Size{}, display.Frame())
	assert.Empty(t, display.Path())
}

func TestImageDisplayDecodeError(t *testing.T) {
	test.NewTempApp(t)

	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	display := NewImageDisplay(services.NewImageService())
	w := test.NewWindow(display)
	defer w.Close()
	display.Resize(fyne.NewSize(100, 100))

	_, err := display.SetImage(path)
	var decodeErr *models.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, path, decodeErr.Path)
	assert.Nil(t, display.Image())
}

func TestImageDisplayMinSize(t *testing.T) {
	test.NewTempApp(t)

	display := NewImageDisplay(services.NewImageService())
	assert.Equal(t, fyne.NewSize(ImageAreaMinWidth, ImageAreaMinHeight), display.MinSize())
}

func TestTranscriptEditorShortcuts(t *testing.T) {
	test.NewTempApp(t)

	editor := NewTranscriptEditor()
	w := test.NewWindow(editor)
	defer w.Close()

	saves := 0
	save := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
	editor.AddShortcut(save, func(fyne.Shortcut) { saves++ })

	test.Type(editor, "hello")
	editor.TypedShortcut(save)
	assert.Equal(t, 1, saves)
	assert.Equal(t, "hello", editor.Text, "a handled shortcut does not reach the entry")

	editor.TypedShortcut(&fyne.ShortcutSelectAll{})
	assert.Equal(t, "hello", editor.SelectedText(), "other shortcuts keep their entry behaviour")
	assert.Equal(t, 1, saves)
}
