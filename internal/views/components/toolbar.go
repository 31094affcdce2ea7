package components

import (
	"photo-editor/internal/filters"
	"photo-editor/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ActionHandler receives every toolbar click as an action with its payload.
type ActionHandler func(action models.Action, payload interface{})

type toolbarButton struct {
	label      string
	action     models.Action
	payload    interface{}
	needsImage bool
	button     *widget.Button
}

// Toolbar is the row of editing buttons.
type Toolbar struct {
	container *fyne.Container
	buttons   []*toolbarButton
	handler   ActionHandler
}

var filterLabels = map[filters.Kind]string{
	filters.KindRotate90:       "Rotate 90°",
	filters.KindFlipHorizontal: "Flip Left/Right",
	filters.KindFlipVertical:   "Flip Up/Down",
	filters.KindGrayscale:      "Grayscale",
	filters.KindBlur:           "Blur",
	filters.KindSharpen:        "Sharpen",
}

func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.createComponents()
	t.buildLayout()
	t.SetImageLoaded(false)
	return t
}

func (t *Toolbar) createComponents() {
	t.add("Open", theme.FolderOpenIcon(), models.ActionOpen, nil, false)
	for _, kind := range filters.Kinds {
		t.add(filterLabels[kind], nil, models.ActionApplyFilter, kind, true)
	}
	t.add("Undo", theme.ContentUndoIcon(), models.ActionUndo, nil, true)
	t.add("Save", theme.DocumentSaveIcon(), models.ActionSave, nil, true)
	t.add("Cancel", theme.CancelIcon(), models.ActionCancel, nil, false)
}

func (t *Toolbar) add(label string, icon fyne.Resource, action models.Action, payload interface{}, needsImage bool) {
	tb := &toolbarButton{
		label:      label,
		action:     action,
		payload:    payload,
		needsImage: needsImage,
	}
	tb.button = widget.NewButtonWithIcon(label, icon, func() {
		if t.handler != nil {
			t.handler(tb.action, tb.payload)
		}
	})
	if action == models.ActionOpen || action == models.ActionSave {
		tb.button.Importance = widget.HighImportance
	}
	t.buttons = append(t.buttons, tb)
}

func (t *Toolbar) buildLayout() {
	objects := make([]fyne.CanvasObject, 0, len(t.buttons)+3)
	prev := models.ActionOpen
	for _, tb := range t.buttons {
		if tb.action != prev {
			objects = append(objects, widget.NewSeparator())
			prev = tb.action
		}
		objects = append(objects, tb.button)
	}
	t.container = container.NewHBox(objects...)
}

func (t *Toolbar) SetActionHandler(handler ActionHandler) {
	t.handler = handler
}

// SetImageLoaded enables the buttons that need an image.
func (t *Toolbar) SetImageLoaded(loaded bool) {
	for _, tb := range t.buttons {
		if !tb.needsImage {
			continue
		}
		if loaded {
			tb.button.Enable()
		} else {
			tb.button.Disable()
		}
	}
}

// Button returns the button with the given label, or nil.
func (t *Toolbar) Button(label string) *widget.Button {
	for _, tb := range t.buttons {
		if tb.label == label {
			return tb.button
		}
	}
	return nil
}

// FilterLabel is the button label used for kind.
func FilterLabel(kind filters.Kind) string {
	return filterLabels[kind]
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
