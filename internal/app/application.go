package app

import (
	"errors"
	"fmt"

	"photo-editor/internal/config"
	"photo-editor/internal/controllers"
	"photo-editor/internal/dialogs"
	"photo-editor/internal/filters"
	"photo-editor/internal/logger"
	"photo-editor/internal/models"
	"photo-editor/internal/services"
	"photo-editor/internal/shutdown"
	"photo-editor/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Photo Editor"
	AppID      = "com.example.photoeditor"
	AppVersion = "1.0.0"

	// windowChrome leaves room for the toolbar and status bar around the
	// viewport.
	windowChrome = 120
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     *config.Config
	logger     logger.Logger
	session    *models.EditSession
	view       *views.MainView
	controller *controllers.EditController
	shutdown   *shutdown.Manager
}

// New builds the whole editor on a real Fyne app.
func New(cfg *config.Config, log logger.Logger) (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	return NewWithApp(app.NewWithID(AppID), cfg, log)
}

// NewWithApp wires the editor onto an existing Fyne app, such as a test app.
func NewWithApp(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	filterSet, err := filters.NewSetFromEngineName(cfg.Engine, cfg.BlurRadius)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter set: %w", err)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(
		float32(cfg.ViewportWidth+windowChrome*3),
		float32(cfg.ViewportHeight+windowChrome),
	))
	window.CenterOnScreen()
	window.SetMaster()

	a := &Application{
		fyneApp:  fyneApp,
		window:   window,
		config:   cfg,
		logger:   log,
		session:  models.NewEditSession(),
		shutdown: shutdown.NewManager(log, shutdown.DefaultComponentTimeout),
	}

	a.view = views.NewMainView(window, cfg.ViewportWidth, cfg.ViewportHeight, cfg.Background)

	a.controller = controllers.NewEditController(
		a.session,
		services.NewImageService(cfg.JPEGQuality, log),
		filterSet,
		a.newPicker(),
		a.view,
		a.Quit,
		log,
	)

	a.view.SetActionHandler(a.handleAction)
	window.SetCloseIntercept(a.Quit)

	a.registerShutdown()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":        AppVersion,
		"engine":         filterSet.Engine().Name(),
		"native_dialogs": cfg.NativeDialogs,
		"viewport":       fmt.Sprintf("%dx%d", cfg.ViewportWidth, cfg.ViewportHeight),
	})

	return a, nil
}

func (a *Application) newPicker() dialogs.Picker {
	if a.config.NativeDialogs {
		return dialogs.NewNativePicker(services.OpenExtensions, services.SaveExtensions)
	}
	return dialogs.NewFynePicker(a.window, services.OpenExtensions, services.SaveExtensions)
}

// handleAction is the toolbar's single entry into the controller. Failures
// the user already saw are only logged at debug level.
func (a *Application) handleAction(action models.Action, payload interface{}) {
	err := a.controller.Dispatch(action, payload)
	if err == nil {
		return
	}

	if errors.Is(err, controllers.ErrUnknownAction) || errors.Is(err, controllers.ErrInvalidPayload) {
		a.logger.Error("Application", "action rejected", err, map[string]interface{}{
			"action": action.String(),
		})
		return
	}

	a.logger.Debug("Application", "action failed", map[string]interface{}{
		"action": action.String(),
		"error":  err.Error(),
	})
}

// Run shows the window and blocks in the event loop.
func (a *Application) Run() error {
	a.shutdown.Listen()

	a.logger.Info("Application", "GUI displayed", nil)
	a.window.ShowAndRun()

	a.shutdown.Shutdown()
	return nil
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) Controller() *controllers.EditController {
	return a.controller
}

func (a *Application) Session() *models.EditSession {
	return a.session
}
