package views

import (
	"image/color"

	"photo-editor/internal/models"
	"photo-editor/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView is the editor window's content: toolbar on top, the image
// viewport in the middle and a status bar at the bottom.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	imageDisplay  *components.ImageDisplay
	statusBar     *components.StatusBar
}

func NewMainView(window fyne.Window, viewportWidth, viewportHeight int, background color.Color) *MainView {
	view := &MainView{
		window:       window,
		toolbar:      components.NewToolbar(),
		imageDisplay: components.NewImageDisplay(viewportWidth, viewportHeight, background),
		statusBar:    components.NewStatusBar(),
	}

	view.mainContainer = container.NewBorder(
		view.toolbar.GetContainer(),
		view.statusBar.GetContainer(),
		nil,
		nil,
		container.NewCenter(view.imageDisplay.GetContainer()),
	)
	window.SetContent(view.mainContainer)

	return view
}

// SetActionHandler routes every toolbar click to handler.
func (mv *MainView) SetActionHandler(handler components.ActionHandler) {
	mv.toolbar.SetActionHandler(handler)
}

// ShowImage replaces the viewport content; nil shows the placeholder.
func (mv *MainView) ShowImage(data *models.ImageData) {
	if data.IsEmpty() {
		mv.imageDisplay.Show(nil)
		mv.statusBar.SetImageInfo("", 0, 0, "")
		mv.toolbar.SetImageLoaded(false)
		return
	}

	mv.imageDisplay.Show(data.Image)
	mv.statusBar.SetImageInfo(data.SourcePath, data.Width, data.Height, data.Format)
	mv.toolbar.SetImageLoaded(true)
}

func (mv *MainView) ShowError(title string, err error) {
	mv.statusBar.SetStatus(title)
	dialog.ShowError(err, mv.window)
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

func (mv *MainView) GetImageDisplay() *components.ImageDisplay {
	return mv.imageDisplay
}

func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}
