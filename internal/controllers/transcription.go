package controllers

import (
	"errors"
	"fmt"
	"image"

	"image-transcriber/internal/logger"
	"image-transcriber/internal/models"
)

const component = "TranscriptionController"

// View is what the controller needs from the UI. Implementations render the
// snapshot they are given and never change session state themselves.
type View interface {
	Render(state models.Snapshot)
	ShowImage(path string) (image.Point, error)
	ClearImage()
	ShowError(err error)
}

// TranscriptionController applies user events to a session and keeps the view
// in step with it. All calls must come from the UI event loop.
type TranscriptionController struct {
	session *models.Session
	view    View
	logger  logger.Logger
}

// NewTranscriptionController creates a controller for session
func NewTranscriptionController(session *models.Session, log logger.Logger) *TranscriptionController {
	return &TranscriptionController{
		session: session,
		logger:  log,
	}
}

// SetView attaches the view and renders the current state into it
func (tc *TranscriptionController) SetView(view View) {
	tc.view = view
	tc.render()
}

// Session returns the controlled session
func (tc *TranscriptionController) Session() *models.Session {
	return tc.session
}

// Dispatch applies one event. Errors are already shown to the user and logged
// by the time they are returned; the return value exists for callers that
// want to react further.
func (tc *TranscriptionController) Dispatch(ev Event) error {
	var err error

	switch e := ev.(type) {
	case ImagesAdded:
		err = tc.addImages(e.Paths)
	case TextChanged:
		tc.session.SetBuffer(e.Text)
	case SaveRequested:
		err = tc.save()
	case NextRequested:
		err = tc.skip(tc.session.SkipNext, "next")
	case PreviousRequested:
		err = tc.skip(tc.session.SkipPrevious, "previous")
	default:
		err = fmt.Errorf("unsupported event %T", ev)
		tc.logger.Error(component, err, nil)
	}

	tc.render()
	return err
}

func (tc *TranscriptionController) addImages(paths []string) error {
	selected := tc.session.AddImages(paths)

	transcribed, remaining := tc.session.Progress()
	tc.logger.Info(component, "images added", map[string]interface{}{
		"added":       len(paths),
		"transcribed": transcribed,
		"remaining":   remaining,
		"state":       tc.session.State().String(),
	})

	if selected {
		return tc.showCurrent()
	}
	if tc.session.Current() == "" {
		tc.clearImage()
	}
	return nil
}

func (tc *TranscriptionController) save() error {
	current := tc.session.Current()

	selected, err := tc.session.Save()
	if err != nil {
		if errors.Is(err, models.ErrEmptyTranscription) {
			tc.logger.Debug(component, "empty transcription rejected", map[string]interface{}{
				"image": current,
			})
		} else {
			tc.logger.Error(component, err, map[string]interface{}{
				"image": current,
			})
		}
		tc.showError(err)
		return err
	}

	transcribed, remaining := tc.session.Progress()
	tc.logger.Info(component, "transcription saved", map[string]interface{}{
		"image":       current,
		"sidecar":     models.SidecarPath(current),
		"transcribed": transcribed,
		"remaining":   remaining,
	})

	if selected {
		return tc.showCurrent()
	}
	tc.clearImage()
	return nil
}

func (tc *TranscriptionController) skip(step func() bool, direction string) error {
	if !tc.session.Snapshot().Actions.SkipNext {
		tc.logger.Debug(component, "navigation ignored with unsaved text", map[string]interface{}{
			"direction": direction,
		})
		return nil
	}

	if !step() {
		return nil
	}

	tc.logger.Debug(component, "image skipped", map[string]interface{}{
		"direction": direction,
		"image":     tc.session.Current(),
	})
	return tc.showCurrent()
}

// showCurrent puts the current image on screen. A decode failure blanks the
// display and is reported, but the image stays current so it can be skipped.
func (tc *TranscriptionController) showCurrent() error {
	path := tc.session.Current()
	if tc.view == nil || path == "" {
		return nil
	}

	size, err := tc.view.ShowImage(path)
	if err != nil {
		tc.logger.Error(component, err, map[string]interface{}{
			"image": path,
		})
		tc.view.ClearImage()
		tc.view.ShowError(err)
		return err
	}

	tc.logger.Debug(component, "image shown", map[string]interface{}{
		"image":  path,
		"width":  size.X,
		"height": size.Y,
	})
	return nil
}

func (tc *TranscriptionController) clearImage() {
	if tc.view != nil {
		tc.view.ClearImage()
	}
}

func (tc *TranscriptionController) showError(err error) {
	if tc.view != nil {
		tc.view.ShowError(err)
	}
}

func (tc *TranscriptionController) render() {
	if tc.view != nil {
		tc.view.Render(tc.session.Snapshot())
	}
}

// Shutdown logs where the session ended
func (tc *TranscriptionController) Shutdown() {
	transcribed, remaining := tc.session.Progress()
	fields := map[string]interface{}{
		"transcribed": transcribed,
		"remaining":   remaining,
		"state":       tc.session.State().String(),
	}
	if tc.session.Buffer() != "" {
		fields["unsaved_image"] = tc.session.Current()
	}
	tc.logger.Info(component, "session closed", fields)
}
