package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusPanel shows which image is being transcribed and how far along the
// session is
type StatusPanel struct {
	container     *fyne.Container
	currentLabel  *widget.Label
	progressLabel *widget.Label
}

// NewStatusPanel creates a new status panel component
func NewStatusPanel() *StatusPanel {
	sp := &StatusPanel{}
	sp.createComponents()
	sp.buildLayout()
	return sp
}

// createComponents initializes status panel components
func (sp *StatusPanel) createComponents() {
	sp.currentLabel = widget.NewLabel("Loading...")
	sp.currentLabel.Alignment = fyne.TextAlignCenter
	sp.currentLabel.Truncation = fyne.TextTruncateEllipsis
	sp.currentLabel.TextStyle = fyne.TextStyle{Bold: true}

	sp.progressLabel = widget.NewLabel("Loading...")
	sp.progressLabel.Alignment = fyne.TextAlignCenter
}

// buildLayout constructs the status panel layout
func (sp *StatusPanel) buildLayout() {
	sp.container = container.NewVBox(
		sp.currentLabel,
		sp.progressLabel,
	)
}

// SetCurrent updates the current image label
func (sp *StatusPanel) SetCurrent(text string) {
	if sp.currentLabel.Text != text {
		sp.currentLabel.SetText(text)
	}
}

// GetCurrent returns the current image label text
func (sp *StatusPanel) GetCurrent() string {
	return sp.currentLabel.Text
}

// SetProgress updates the progress label
func (sp *StatusPanel) SetProgress(text string) {
	if sp.progressLabel.Text != text {
		sp.progressLabel.SetText(text)
	}
}

// GetProgress returns the progress label text
func (sp *StatusPanel) GetProgress() string {
	return sp.progressLabel.Text
}

// GetContainer returns the status panel container
func (sp *StatusPanel) GetContainer() *fyne.Container {
	return sp.container
}
