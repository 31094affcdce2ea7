package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// FynePicker uses Fyne's built-in file dialogs inside the main window.
type FynePicker struct {
	window         fyne.Window
	openExtensions []string
	saveExtensions []string
}

func NewFynePicker(window fyne.Window, openExtensions, saveExtensions []string) *FynePicker {
	return &FynePicker{
		window:         window,
		openExtensions: openExtensions,
		saveExtensions: saveExtensions,
	}
}

func (p *FynePicker) PickOpen(cb PathCallback) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			cb("", err)
			return
		}
		if reader == nil {
			cb("", nil)
			return
		}
		path := reader.URI().Path()
		reader.Close()
		cb(path, nil)
	}, p.window)

	d.SetFilter(storage.NewExtensionFileFilter(p.openExtensions))
	d.Show()
}

// PickSave closes the writer Fyne hands back before reporting the path, so
// the caller owns the file from then on.
func (p *FynePicker) PickSave(suggestedName string, cb PathCallback) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			cb("", err)
			return
		}
		if writer == nil {
			cb("", nil)
			return
		}
		path := writer.URI().Path()
		if err := writer.Close(); err != nil {
			cb("", err)
			return
		}
		cb(path, nil)
	}, p.window)

	d.SetFilter(storage.NewExtensionFileFilter(p.saveExtensions))
	if suggestedName != "" {
		d.SetFileName(suggestedName)
	}
	d.Show()
}
