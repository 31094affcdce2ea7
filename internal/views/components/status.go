package components

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	StatusReady   = "Ready"
	NoImageLoaded = "No image loaded"
)

// StatusBar displays the last action's outcome and the image's metadata.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	imageInfo   *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.statusLabel = widget.NewLabel(StatusReady)
	sb.imageInfo = widget.NewLabel(NoImageLoaded)
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.imageInfo,
	)
	return sb
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetImageInfo shows name, size and format; an empty name clears it.
func (sb *StatusBar) SetImageInfo(name string, width, height int, format string) {
	if name == "" {
		sb.imageInfo.SetText(NoImageLoaded)
		return
	}
	sb.imageInfo.SetText(fmt.Sprintf("%s: %dx%d, %s", filepath.Base(name), width, height, format))
}

func (sb *StatusBar) GetImageInfo() string {
	return sb.imageInfo.Text
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
