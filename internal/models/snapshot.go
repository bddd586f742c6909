package models

import (
	"fmt"
	"strings"
)

// Actions lists which user actions are currently permitted
type Actions struct {
	Save         bool
	SkipNext     bool
	SkipPrevious bool
}

// DeriveActions computes permitted actions from the buffer alone: navigation is
// only offered while there is no unsaved text, and saving only when there is.
func DeriveActions(buffer string) Actions {
	empty := strings.TrimSpace(buffer) == ""
	return Actions{
		Save:         !empty,
		SkipNext:     empty,
		SkipPrevious: empty,
	}
}

// Snapshot is a read-only projection of a session used to render the UI
type Snapshot struct {
	State       SessionState
	Current     string
	Buffer      string
	Transcribed int
	Remaining   int
	Actions     Actions
}

// Snapshot captures the session's current state for rendering
func (s *Session) Snapshot() Snapshot {
	transcribed, remaining := s.Progress()
	return Snapshot{
		State:       s.State(),
		Current:     s.current,
		Buffer:      s.buffer,
		Transcribed: transcribed,
		Remaining:   remaining,
		Actions:     DeriveActions(s.buffer),
	}
}

// CurrentLabel is the text shown for the current image
func (s Snapshot) CurrentLabel() string {
	switch s.State {
	case StateLoading:
		return "Loading..."
	case StateComplete:
		return "Complete"
	default:
		return s.Current
	}
}

// ProgressLabel formats the progress counts as "<done> complete | <left> incomplete"
func (s Snapshot) ProgressLabel() string {
	if s.State == StateLoading {
		return "Loading..."
	}
	return fmt.Sprintf("%d complete | %d incomplete", s.Transcribed, s.Remaining)
}
