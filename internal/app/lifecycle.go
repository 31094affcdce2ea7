package app

import (
	"photo-editor/internal/shutdown"

	"fyne.io/fyne/v2"
)

// registerShutdown orders teardown: the session is dropped first and the
// Fyne event loop is stopped last.
func (a *Application) registerShutdown() {
	a.shutdown.Register("fyne", shutdown.Func(func() {
		fyne.Do(a.fyneApp.Quit)
	}))
	a.shutdown.Register("session", a.session)
}

// Quit tears the editor down. It is safe to call more than once.
func (a *Application) Quit() {
	a.logger.Info("Application", "shutdown requested", nil)
	a.shutdown.Shutdown()
}

// Done is closed once teardown has started.
func (a *Application) Done() <-chan struct{} {
	return a.shutdown.Done()
}
