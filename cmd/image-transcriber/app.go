package main

import (
	"context"
	"runtime"

	"image-transcriber/internal/config"
	"image-transcriber/internal/controllers"
	"image-transcriber/internal/display"
	"image-transcriber/internal/logger"
	"image-transcriber/internal/models"
	"image-transcriber/internal/services"
	"image-transcriber/internal/shutdown"
	"image-transcriber/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppID     = "io.github.image-transcriber"
	component = "Application"
)

// Application owns the window and everything wired into it for one run
type Application struct {
	config  config.Config
	logger  *logger.ZerologAdapter
	closeFn func() error

	fyneApp fyne.App
	window  fyne.Window

	// lastTitle is read by shutdown steps, which run off the UI thread
	lastTitle string

	controller *controllers.TranscriptionController
	view       *views.MainView
	shutdown   *shutdown.Manager
}

// NewApplication creates the application. closeLog is called once the window
// has closed and every shutdown step has run.
func NewApplication(cfg config.Config, log *logger.ZerologAdapter, closeLog func() error) *Application {
	return &Application{
		config:  cfg,
		logger:  log,
		closeFn: closeLog,
	}
}

// Run discovers images from args, opens the window and blocks until it closes
// or ctx is cancelled
func (a *Application) Run(ctx context.Context, args []string) error {
	a.logger.Info(component, "application starting", map[string]interface{}{
		"version":     version,
		"go_version":  runtime.Version(),
		"config_file": a.config.Source,
		"resampler":   display.ResamplerName,
		"arguments":   len(args),
	})

	a.fyneApp = app.NewWithID(AppID)
	a.window = a.fyneApp.NewWindow(views.AppTitle)
	a.window.Resize(fyne.NewSize(a.config.WindowWidth, a.config.WindowHeight))
	a.window.CenterOnScreen()
	a.window.SetMaster()

	a.wire()
	a.setupShutdown(ctx)
	a.window.SetOnClosed(a.beginShutdown)

	paths, err := services.DiscoverImages(args)
	if err != nil {
		a.logger.Warning(component, "some arguments were skipped", map[string]interface{}{
			"error": err.Error(),
		})
	}
	a.logger.Debug(component, "images discovered", map[string]interface{}{
		"count": len(paths),
	})
	_ = a.controller.Dispatch(controllers.ImagesAdded{Paths: paths})

	a.window.ShowAndRun()

	a.beginShutdown()
	return a.closeFn()
}

// wire connects the session, controller and view
func (a *Application) wire() {
	session := models.NewSession(services.NewSidecarStore())
	a.controller = controllers.NewTranscriptionController(session, a.logger)
	a.view = views.NewMainView(a.window, services.NewImageService())

	dispatch := func(ev controllers.Event) {
		_ = a.controller.Dispatch(ev)
	}

	a.view.SetTextChangedHandler(func(text string) {
		dispatch(controllers.TextChanged{Text: text})
	})
	a.view.SetSaveHandler(func() { dispatch(controllers.SaveRequested{}) })
	a.view.SetNextHandler(func() { dispatch(controllers.NextRequested{}) })
	a.view.SetPreviousHandler(func() { dispatch(controllers.PreviousRequested{}) })

	a.controller.SetView(a.view)
}

// setupShutdown registers the shutdown steps and turns a cancelled ctx into a
// request to quit. The log file outlives the manager and is closed by Run.
func (a *Application) setupShutdown(ctx context.Context) {
	a.shutdown = shutdown.NewManager(a.logger)
	a.shutdown.Register("session", a.controller)
	a.shutdown.Register("window", shutdown.Func(func() {
		a.logger.Debug(component, "window closed", map[string]interface{}{
			"title": a.lastTitle,
		})
	}))

	a.shutdown.Watch(ctx, func() {
		fyne.Do(a.fyneApp.Quit)
	})
}

// beginShutdown runs the shutdown steps. It must be called from the UI thread
// so the window can still be read before the steps start.
func (a *Application) beginShutdown() {
	select {
	case <-a.shutdown.Done():
		return
	default:
	}
	a.lastTitle = a.window.Title()
	a.shutdown.Shutdown()
}
