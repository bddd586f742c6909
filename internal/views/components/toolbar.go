package components

import (
	"image-transcriber/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the save and navigation buttons
type Toolbar struct {
	container      *fyne.Container
	saveButton     *widget.Button
	previousButton *widget.Button
	nextButton     *widget.Button

	// Event handlers
	saveHandler     func()
	previousHandler func()
	nextHandler     func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.saveButton = widget.NewButtonWithIcon("Save transcript", theme.DocumentSaveIcon(), nil)
	t.saveButton.Importance = widget.HighImportance
	t.saveButton.Disable()

	t.previousButton = widget.NewButtonWithIcon("Prev image", theme.NavigateBackIcon(), nil)
	t.previousButton.Disable()

	t.nextButton = widget.NewButtonWithIcon("Next image", theme.NavigateNextIcon(), nil)
	t.nextButton.IconPlacement = widget.ButtonIconTrailingText
	t.nextButton.Disable()
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.saveButton,
		layout.NewSpacer(),
		t.previousButton,
		t.nextButton,
	)
}

// setupEventHandlers connects button events
func (t *Toolbar) setupEventHandlers() {
	t.saveButton.OnTapped = func() {
		if t.saveHandler != nil {
			t.saveHandler()
		}
	}

	t.previousButton.OnTapped = func() {
		if t.previousHandler != nil {
			t.previousHandler()
		}
	}

	t.nextButton.OnTapped = func() {
		if t.nextHandler != nil {
			t.nextHandler()
		}
	}
}

// SetSaveHandler sets the save handler
func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

// SetPreviousHandler sets the previous image handler
func (t *Toolbar) SetPreviousHandler(handler func()) {
	t.previousHandler = handler
}

// SetNextHandler sets the next image handler
func (t *Toolbar) SetNextHandler(handler func()) {
	t.nextHandler = handler
}

// SetActions enables exactly the buttons whose actions are permitted
func (t *Toolbar) SetActions(actions models.Actions) {
	setEnabled(t.saveButton, actions.Save)
	setEnabled(t.previousButton, actions.SkipPrevious)
	setEnabled(t.nextButton, actions.SkipNext)
}

// Actions reports which buttons are currently enabled
func (t *Toolbar) Actions() models.Actions {
	return models.Actions{
		Save:         !t.saveButton.Disabled(),
		SkipNext:     !t.nextButton.Disabled(),
		SkipPrevious: !t.previousButton.Disabled(),
	}
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled == !b.Disabled() {
		return
	}
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}
