package dialogs

import (
	"strings"
)

// PathCallback receives the chosen path. An empty path with a nil error
// means the user cancelled.
type PathCallback func(path string, err error)

// Picker asks the user for a file to open or a destination to save to.
// Callbacks run on the UI goroutine.
type Picker interface {
	PickOpen(cb PathCallback)
	PickSave(suggestedName string, cb PathCallback)
}

// trimDots turns ".png" into "png" for pickers that want bare extensions.
func trimDots(extensions []string) []string {
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	return out
}
