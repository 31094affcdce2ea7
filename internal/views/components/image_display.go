package components

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/nfnt/resize"
)

const (
	DefaultViewportWidth  = 400
	DefaultViewportHeight = 300
	PlaceholderText       = "No Image"
)

// ImageDisplay shows one image scaled into a fixed viewport. Every Show call
// replaces whatever was displayed before.
type ImageDisplay struct {
	container  *fyne.Container
	content    *fyne.Container
	background *canvas.Rectangle

	viewportWidth  int
	viewportHeight int

	current  fyne.CanvasObject
	hasImage bool
}

// NewImageDisplay creates a display for a width×height viewport. Non-positive
// sizes fall back to 400×300.
func NewImageDisplay(width, height int, background color.Color) *ImageDisplay {
	if width <= 0 || height <= 0 {
		width, height = DefaultViewportWidth, DefaultViewportHeight
	}
	if background == nil {
		background = color.NRGBA{R: 252, G: 252, B: 252, A: 255}
	}

	display := &ImageDisplay{
		viewportWidth:  width,
		viewportHeight: height,
	}
	display.createComponents(background)
	display.Show(nil)
	return display
}

func (id *ImageDisplay) createComponents(background color.Color) {
	id.background = canvas.NewRectangle(background)
	id.background.SetMinSize(fyne.NewSize(float32(id.viewportWidth), float32(id.viewportHeight)))

	id.content = container.NewCenter()
	id.container = container.NewStack(id.background, id.content)
}

// Show renders img scaled to fit the viewport, or the placeholder when img
// is nil or has no pixels.
func (id *ImageDisplay) Show(img image.Image) {
	var obj fyne.CanvasObject

	if img == nil || img.Bounds().Empty() {
		obj = widget.NewLabelWithStyle(PlaceholderText, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		id.hasImage = false
	} else {
		scaled := ScaleToFit(img, id.viewportWidth, id.viewportHeight)
		b := scaled.Bounds()

		canvasImg := canvas.NewImageFromImage(scaled)
		canvasImg.FillMode = canvas.ImageFillContain
		canvasImg.ScaleMode = canvas.ImageScaleSmooth
		canvasImg.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
		obj = canvasImg
		id.hasImage = true
	}

	id.content.RemoveAll()
	id.content.Add(obj)
	id.current = obj
	id.content.Refresh()
}

// HasImage reports whether an image, not the placeholder, is shown.
func (id *ImageDisplay) HasImage() bool {
	return id.hasImage
}

// Content returns the object currently inside the viewport.
func (id *ImageDisplay) Content() fyne.CanvasObject {
	return id.current
}

// ChildCount is the number of objects in the viewport; always 1.
func (id *ImageDisplay) ChildCount() int {
	return len(id.content.Objects)
}

func (id *ImageDisplay) ViewportSize() (int, int) {
	return id.viewportWidth, id.viewportHeight
}

func (id *ImageDisplay) GetContainer() *fyne.Container {
	return id.container
}

// FitSize returns the largest size with the aspect ratio of w×h that fits
// inside maxW×maxH. Both results are at least 1.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}

	ratio := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	fw := int(math.Round(float64(w) * ratio))
	fh := int(math.Round(float64(h) * ratio))

	return max(1, min(fw, maxW)), max(1, min(fh, maxH))
}

// ScaleToFit resizes img, up or down, to fit inside maxW×maxH while keeping
// its aspect ratio. Images that already fit exactly are returned unchanged.
func ScaleToFit(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if w == 0 || (w == b.Dx() && h == b.Dy()) {
		return img
	}
	return resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
}
