package views

import (
	"image"
	"path/filepath"

	"image-transcriber/internal/display"
	"image-transcriber/internal/models"
	"image-transcriber/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	AppTitle = "Image Transcriber"

	// splitOffset is the share of the window width given to the image
	splitOffset = 0.6
)

var (
	SaveShortcut     = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
	NextShortcut     = &desktop.CustomShortcut{KeyName: fyne.KeyRight, Modifier: fyne.KeyModifierAlt}
	PreviousShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyLeft, Modifier: fyne.KeyModifierAlt}
)

// MainView is the transcription window. It forwards user input to the
// registered handlers and renders whatever snapshot it is given.
type MainView struct {
	// UI Components
	window       fyne.Window
	status       *components.StatusPanel
	imageDisplay *components.ImageDisplay
	editor       *components.TranscriptEditor
	toolbar      *components.Toolbar

	// Event handlers - connected to controller
	textChangedHandler func(string)
	saveHandler        func()
	nextHandler        func()
	previousHandler    func()

	// rendering suppresses editor change events caused by Render itself
	rendering bool
}

// NewMainView creates the main view inside window. Images are decoded with
// decoder.
func NewMainView(window fyne.Window, decoder display.Decoder) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(decoder)
	view.buildLayout()
	view.setupEventHandlers()
	view.setupShortcuts()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents(decoder display.Decoder) {
	mv.status = components.NewStatusPanel()
	mv.imageDisplay = components.NewImageDisplay(decoder)
	mv.editor = components.NewTranscriptEditor()
	mv.editor.Disable()
	mv.toolbar = components.NewToolbar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	imageArea := container.NewBorder(
		mv.status.GetContainer(), // top
		nil,                      // bottom
		nil,                      // left
		nil,                      // right
		mv.imageDisplay,          // center
	)

	editorArea := container.NewBorder(
		nil,
		mv.toolbar.GetContainer(),
		nil,
		nil,
		mv.editor,
	)

	split := container.NewHSplit(imageArea, editorArea)
	split.Offset = splitOffset

	mv.window.SetContent(container.NewStack(split))
	mv.window.SetTitle(AppTitle)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.editor.OnChanged = func(text string) {
		if mv.rendering {
			return
		}
		if mv.textChangedHandler != nil {
			mv.textChangedHandler(text)
		}
	}

	mv.toolbar.SetSaveHandler(mv.requestSave)
	mv.toolbar.SetNextHandler(mv.requestNext)
	mv.toolbar.SetPreviousHandler(mv.requestPrevious)
}

// setupShortcuts binds the keyboard shortcuts on the window and on the
// editor, which otherwise consumes them while focused
func (mv *MainView) setupShortcuts() {
	bindings := []struct {
		shortcut fyne.Shortcut
		action   func()
	}{
		{SaveShortcut, mv.requestSave},
		{NextShortcut, mv.requestNext},
		{PreviousShortcut, mv.requestPrevious},
	}

	for _, b := range bindings {
		action := b.action
		handler := func(fyne.Shortcut) { action() }
		mv.window.Canvas().AddShortcut(b.shortcut, handler)
		mv.editor.AddShortcut(b.shortcut, handler)
	}
}

func (mv *MainView) requestSave() {
	if mv.saveHandler != nil {
		mv.saveHandler()
	}
}

func (mv *MainView) requestNext() {
	if mv.nextHandler != nil {
		mv.nextHandler()
	}
}

func (mv *MainView) requestPrevious() {
	if mv.previousHandler != nil {
		mv.previousHandler()
	}
}

// Event handler setters - called during wiring

// SetTextChangedHandler sets the handler called on every edit of the transcript
func (mv *MainView) SetTextChangedHandler(handler func(string)) {
	mv.textChangedHandler = handler
}

// SetSaveHandler sets the handler for save requests
func (mv *MainView) SetSaveHandler(handler func()) {
	mv.saveHandler = handler
}

// SetNextHandler sets the handler for next image requests
func (mv *MainView) SetNextHandler(handler func()) {
	mv.nextHandler = handler
}

// SetPreviousHandler sets the handler for previous image requests
func (mv *MainView) SetPreviousHandler(handler func()) {
	mv.previousHandler = handler
}

// UI update methods - called by controller

// Render brings every widget in line with state
func (mv *MainView) Render(state models.Snapshot) {
	mv.rendering = true
	defer func() { mv.rendering = false }()

	mv.status.SetCurrent(state.CurrentLabel())
	mv.status.SetProgress(state.ProgressLabel())
	mv.toolbar.SetActions(state.Actions)

	if mv.editor.Text != state.Buffer {
		mv.editor.SetText(state.Buffer)
	}

	if state.State == models.StateActive {
		mv.editor.Enable()
		if mv.window.Canvas().Focused() == nil {
			mv.window.Canvas().Focus(mv.editor)
		}
	} else {
		mv.editor.Disable()
	}

	mv.window.SetTitle(windowTitle(state))
}

// ShowImage displays the image at path and returns its size in pixels
func (mv *MainView) ShowImage(path string) (image.Point, error) {
	return mv.imageDisplay.SetImage(path)
}

// ClearImage shows the empty placeholder instead of an image
func (mv *MainView) ClearImage() {
	mv.imageDisplay.Clear()
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// ViewState is a read-only summary of what the window currently shows
type ViewState struct {
	Title        string
	CurrentLabel string
	ProgressText string
	Transcript   string
	EditorActive bool
	ImagePath    string
	Actions      models.Actions
}

// GetViewState returns the current view state
func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		Title:        mv.window.Title(),
		CurrentLabel: mv.status.GetCurrent(),
		ProgressText: mv.status.GetProgress(),
		Transcript:   mv.editor.Text,
		EditorActive: !mv.editor.Disabled(),
		ImagePath:    mv.imageDisplay.Path(),
		Actions:      mv.toolbar.Actions(),
	}
}

func windowTitle(state models.Snapshot) string {
	switch state.State {
	case models.StateActive:
		return filepath.Base(state.Current) + " - " + AppTitle
	case models.StateComplete:
		return "Complete - " + AppTitle
	default:
		return AppTitle
	}
}
