package dialogs

import (
	"errors"

	"fyne.io/fyne/v2"
	"github.com/sqweek/dialog"
)

// NativePicker uses the operating system's file dialogs. They block, so
// each one runs on its own goroutine and reports back through fyne.Do.
type NativePicker struct {
	openExtensions []string
	saveExtensions []string
	run            func(func())
}

func NewNativePicker(openExtensions, saveExtensions []string) *NativePicker {
	return &NativePicker{
		openExtensions: trimDots(openExtensions),
		saveExtensions: trimDots(saveExtensions),
		run:            func(f func()) { go f() },
	}
}

func (p *NativePicker) PickOpen(cb PathCallback) {
	p.run(func() {
		path, err := dialog.File().
			Title("Open Image").
			Filter("Image Files", p.openExtensions...).
			Load()
		deliver(cb, path, err)
	})
}

func (p *NativePicker) PickSave(suggestedName string, cb PathCallback) {
	p.run(func() {
		builder := dialog.File().
			Title("Save Image").
			Filter("Image Files", p.saveExtensions...)
		if suggestedName != "" {
			builder = builder.SetStartFile(suggestedName)
		}
		path, err := builder.Save()
		deliver(cb, path, err)
	})
}

func deliver(cb PathCallback, path string, err error) {
	if errors.Is(err, dialog.ErrCancelled) {
		path, err = "", nil
	}
	fyne.Do(func() {
		cb(path, err)
	})
}
