package controllers

// Event is a discrete user action delivered to the controller
type Event interface {
	eventName() string
}

// ImagesAdded supplies newly discovered image paths
type ImagesAdded struct {
	Paths []string
}

// TextChanged carries the full editor contents after a keystroke
type TextChanged struct {
	Text string
}

// SaveRequested asks to commit the current transcription
type SaveRequested struct{}

// NextRequested asks to move to the next untranscribed image
type NextRequested struct{}

// PreviousRequested asks to move to the previous untranscribed image
type PreviousRequested struct{}

func (ImagesAdded) eventName() string       { return "images_added" }
func (TextChanged) eventName() string       { return "text_changed" }
func (SaveRequested) eventName() string     { return "save_requested" }
func (NextRequested) eventName() string     { return "next_requested" }
func (PreviousRequested) eventName() string { return "previous_requested" }
