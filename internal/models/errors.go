package models

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTranscription is returned when saving a blank or whitespace-only buffer
	ErrEmptyTranscription = errors.New("cannot submit empty transcription")
	// ErrNoCurrentImage is returned when an operation needs a current image and none is selected
	ErrNoCurrentImage = errors.New("no image selected")
	// ErrUnknownImage is returned when the current image is not part of the known image list
	ErrUnknownImage = errors.New("image is not part of this session")
	// ErrAlreadyTranscribed is returned when the current image already has a sidecar transcription
	ErrAlreadyTranscribed = errors.New("image is already transcribed")
)

// DecodeError reports an image that could not be opened or decoded for display
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot display %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// WriteError reports a sidecar transcription file that could not be written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write transcription %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
