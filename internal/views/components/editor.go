package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// TranscriptEditor is a multi-line entry that also answers window-level
// shortcuts while it holds focus. A focused entry swallows every shortcut, so
// the ones registered here are handled before the entry's own bindings.
type TranscriptEditor struct {
	widget.Entry

	shortcuts fyne.ShortcutHandler
	names     map[string]struct{}
}

// NewTranscriptEditor creates an empty word-wrapping editor
func NewTranscriptEditor() *TranscriptEditor {
	e := &TranscriptEditor{names: make(map[string]struct{})}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.PlaceHolder = "Type the transcription here"
	e.ExtendBaseWidget(e)
	return e
}

// AddShortcut registers a shortcut that takes precedence over the entry's own
func (e *TranscriptEditor) AddShortcut(shortcut fyne.Shortcut, handler func(fyne.Shortcut)) {
	e.names[shortcut.ShortcutName()] = struct{}{}
	e.shortcuts.AddShortcut(shortcut, handler)
}

func (e *TranscriptEditor) TypedShortcut(shortcut fyne.Shortcut) {
	if _, ok := e.names[shortcut.ShortcutName()]; ok {
		e.shortcuts.TypedShortcut(shortcut)
		return
	}
	e.Entry.TypedShortcut(shortcut)
}
