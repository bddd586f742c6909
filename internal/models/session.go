package models

import (
	"fmt"
	"slices"
	"strings"
)

// SidecarSuffix is appended to an image path to name its transcription file
const SidecarSuffix = ".txt"

// SidecarPath returns the transcription file path for an image
func SidecarPath(imagePath string) string {
	return imagePath + SidecarSuffix
}

// SidecarStore reports and persists the transcription files stored next to images
type SidecarStore interface {
	Exists(imagePath string) bool
	Write(imagePath, content string) error
}

// SessionState is the lifecycle stage of a transcription session
type SessionState int

const (
	StateLoading SessionState = iota
	StateActive
	StateComplete
)

func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// Session holds everything a transcription run knows: the images supplied so far,
// which of them already have sidecar files, the image being worked on and the
// text typed for it. It is not safe for concurrent use; the UI event loop owns it.
type Session struct {
	store SidecarStore

	images      []string
	known       map[string]struct{}
	transcribed map[string]struct{}
	loaded      bool

	current string
	buffer  string
}

// NewSession creates an empty session in the loading state
func NewSession(store SidecarStore) *Session {
	return &Session{
		store:       store,
		known:       make(map[string]struct{}),
		transcribed: make(map[string]struct{}),
	}
}

// AddImages appends paths to the known image list, refreshes which images are
// transcribed and, if nothing is selected yet, picks the first available image.
// A current image that gained a sidecar file in the meantime is replaced by the
// next available one. It reports whether a new image was selected.
func (s *Session) AddImages(paths []string) bool {
	s.images = append(s.images, paths...)
	for _, p := range paths {
		s.known[p] = struct{}{}
	}
	s.loaded = true
	s.refreshTranscribed()

	if s.current == "" {
		return s.selectImage(0)
	}
	if s.IsTranscribed(s.current) {
		return s.selectImage(1)
	}
	return false
}

// SetBuffer replaces the in-progress transcription text
func (s *Session) SetBuffer(text string) {
	s.buffer = text
}

// Buffer returns the in-progress transcription text as typed
func (s *Session) Buffer() string {
	return s.buffer
}

// Current returns the selected image path, or "" when nothing is selected
func (s *Session) Current() string {
	return s.current
}

// IsTranscribed reports whether the image was found to have a sidecar file at the
// last refresh
func (s *Session) IsTranscribed(path string) bool {
	_, ok := s.transcribed[path]
	return ok
}

// State returns the lifecycle stage derived from the current fields
func (s *Session) State() SessionState {
	switch {
	case !s.loaded:
		return StateLoading
	case s.current != "":
		return StateActive
	default:
		return StateComplete
	}
}

// Progress returns the transcribed count and the remaining count. Remaining is
// measured against the raw image list, so duplicate paths count twice.
func (s *Session) Progress() (transcribed, remaining int) {
	transcribed = len(s.transcribed)
	return transcribed, len(s.images) - transcribed
}

// Available returns the untranscribed images, de-duplicated and in natural order
func (s *Session) Available() []string {
	available := make([]string, 0, len(s.known))
	for p := range s.known {
		if _, done := s.transcribed[p]; !done {
			available = append(available, p)
		}
	}
	SortNatural(available)
	return available
}

// Save writes the trimmed buffer to the current image's sidecar file and moves on
// to the first remaining image. Nothing changes when it returns an error.
func (s *Session) Save() (bool, error) {
	content := strings.TrimSpace(s.buffer)
	if content == "" {
		return false, ErrEmptyTranscription
	}
	if s.current == "" {
		return false, ErrNoCurrentImage
	}
	if _, ok := s.known[s.current]; !ok {
		return false, fmt.Errorf("%s: %w", s.current, ErrUnknownImage)
	}
	if _, done := s.transcribed[s.current]; done {
		return false, fmt.Errorf("%s: %w", s.current, ErrAlreadyTranscribed)
	}

	if err := s.store.Write(s.current, content+"\n"); err != nil {
		return false, &WriteError{Path: SidecarPath(s.current), Err: err}
	}

	s.transcribed[s.current] = struct{}{}
	s.current = ""
	s.refreshTranscribed()
	return s.selectImage(0), nil
}

// SkipNext moves to the next available image, wrapping at the end. It does
// nothing while the buffer holds unsaved text.
func (s *Session) SkipNext() bool {
	return s.skip(1)
}

// SkipPrevious moves to the previous available image, wrapping at the start. It
// does nothing while the buffer holds unsaved text.
func (s *Session) SkipPrevious() bool {
	return s.skip(-1)
}

func (s *Session) skip(direction int) bool {
	if strings.TrimSpace(s.buffer) != "" {
		return false
	}
	return s.selectImage(direction)
}

// selectImage picks the next current image. A zero direction takes the first
// available image; otherwise the selection steps from the previous image and
// wraps. When the previous image is no longer available the step starts from
// the place it would occupy in natural order.
func (s *Session) selectImage(direction int) bool {
	available := s.Available()
	if len(available) == 0 {
		s.current = ""
		s.buffer = ""
		return false
	}

	if s.current == "" || direction == 0 {
		s.current = available[0]
		s.buffer = ""
		return true
	}

	n := len(available)
	idx := slices.Index(available, s.current)
	if idx < 0 {
		pos, _ := slices.BinarySearchFunc(available, s.current, CompareNatural)
		if direction > 0 {
			idx = pos - 1
		} else {
			idx = pos
		}
	}

	s.current = available[((idx+direction)%n+n)%n]
	s.buffer = ""
	return true
}

func (s *Session) refreshTranscribed() {
	transcribed := make(map[string]struct{}, len(s.transcribed))
	for p := range s.known {
		if s.store.Exists(p) {
			transcribed[p] = struct{}{}
		}
	}
	s.transcribed = transcribed
}
