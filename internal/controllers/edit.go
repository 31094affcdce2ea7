package controllers

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"photo-editor/internal/dialogs"
	"photo-editor/internal/filters"
	"photo-editor/internal/logger"
	"photo-editor/internal/models"
	"photo-editor/internal/services"
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidPayload = errors.New("invalid payload")
)

const ioTimeout = 30 * time.Second

// View is what the controller needs from the window.
type View interface {
	ShowImage(data *models.ImageData)
	ShowError(title string, err error)
	UpdateStatus(status string)
}

// EditController turns user actions into session changes and display
// refreshes. All calls are expected on the UI goroutine.
type EditController struct {
	session      *models.EditSession
	imageService *services.ImageService
	filterSet    *filters.Set
	picker       dialogs.Picker
	view         View
	quit         func()
	logger       logger.Logger
}

func NewEditController(
	session *models.EditSession,
	imageService *services.ImageService,
	filterSet *filters.Set,
	picker dialogs.Picker,
	view View,
	quit func(),
	log logger.Logger,
) *EditController {
	return &EditController{
		session:      session,
		imageService: imageService,
		filterSet:    filterSet,
		picker:       picker,
		view:         view,
		quit:         quit,
		logger:       log,
	}
}

// Dispatch performs one user action. Load, filter and save failures are
// shown to the user and also returned; picker-driven actions report their
// outcome later through the view.
func (ec *EditController) Dispatch(action models.Action, payload interface{}) error {
	ec.logger.Debug("EditController", "dispatch", map[string]interface{}{
		"action": action.String(),
		"state":  ec.session.State().String(),
	})

	switch action {
	case models.ActionOpen:
		return ec.handleOpen(payload)
	case models.ActionApplyFilter:
		return ec.handleApplyFilter(payload)
	case models.ActionUndo:
		return ec.handleUndo()
	case models.ActionSave:
		return ec.handleSave(payload)
	case models.ActionCancel:
		ec.handleCancel()
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

func (ec *EditController) State() models.SessionState {
	return ec.session.State()
}

func (ec *EditController) handleOpen(payload interface{}) error {
	path, err := optionalPath(payload)
	if err != nil {
		return err
	}
	if path != "" {
		return ec.openPath(path)
	}
	if ec.picker == nil {
		return fmt.Errorf("%w: open needs a path", ErrInvalidPayload)
	}

	ec.picker.PickOpen(func(path string, err error) {
		if err != nil {
			ec.handleError("Open failed", err)
			return
		}
		if path == "" {
			return
		}
		ec.openPath(path)
	})
	return nil
}

func (ec *EditController) openPath(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()

	data, err := ec.imageService.LoadFile(ctx, path)
	if err != nil {
		ec.handleError("Open failed", err)
		return err
	}
	if err := ec.session.Load(data); err != nil {
		ec.handleError("Open failed", err)
		return err
	}

	ec.view.ShowImage(ec.session.Current())
	ec.view.UpdateStatus(fmt.Sprintf("Opened %s", filepath.Base(path)))

	ec.logger.Info("EditController", "image opened", map[string]interface{}{
		"path":   path,
		"width":  data.Width,
		"height": data.Height,
	})
	return nil
}

func (ec *EditController) handleApplyFilter(payload interface{}) error {
	var kind filters.Kind
	switch v := payload.(type) {
	case filters.Kind:
		kind = v
	case string:
		kind = filters.Kind(v)
	default:
		return fmt.Errorf("%w: apply_filter needs a filter kind, got %T", ErrInvalidPayload, payload)
	}

	filter, err := ec.filterSet.Get(kind)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if ec.session.State() == models.StateEmpty {
		return nil
	}

	start := time.Now()
	result, err := ec.session.Apply(func(src *image.NRGBA) (*image.NRGBA, error) {
		return filter.Apply(context.Background(), src)
	})
	if errors.Is(err, models.ErrNotLoaded) {
		return nil
	}
	if err != nil {
		ec.handleError("Filter failed", err)
		return err
	}

	ec.view.ShowImage(result)
	ec.view.UpdateStatus(fmt.Sprintf("Applied %s", filter.Name()))

	ec.logger.Debug("EditController", "filter applied", map[string]interface{}{
		"filter":   filter.Name(),
		"duration": time.Since(start).String(),
	})
	return nil
}

func (ec *EditController) handleUndo() error {
	restored, err := ec.session.Undo()
	if errors.Is(err, models.ErrNotLoaded) {
		return nil
	}
	if err != nil {
		return err
	}

	ec.view.ShowImage(restored)
	ec.view.UpdateStatus("Reverted to original")
	return nil
}

func (ec *EditController) handleSave(payload interface{}) error {
	path, err := optionalPath(payload)
	if err != nil {
		return err
	}
	if ec.session.State() == models.StateEmpty {
		return nil
	}
	if path != "" {
		return ec.saveTo(path)
	}
	if ec.picker == nil {
		return fmt.Errorf("%w: save needs a path", ErrInvalidPayload)
	}

	var suggested string
	if current := ec.session.Current(); current != nil && current.SourcePath != "" {
		suggested = filepath.Base(current.SourcePath)
	}

	ec.picker.PickSave(suggested, func(path string, err error) {
		if err != nil {
			ec.handleError("Save failed", err)
			return
		}
		if path == "" {
			return
		}
		ec.saveTo(path)
	})
	return nil
}

func (ec *EditController) saveTo(path string) error {
	current := ec.session.Current()
	if current.IsEmpty() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()

	written, err := ec.imageService.SaveFile(ctx, path, current.Image)
	if err != nil {
		ec.handleError("Save failed", err)
		return err
	}

	ec.view.UpdateStatus(fmt.Sprintf("Saved %s", filepath.Base(written)))
	return nil
}

func (ec *EditController) handleCancel() {
	ec.logger.Info("EditController", "cancel requested", nil)
	if ec.quit != nil {
		ec.quit()
	}
}

func (ec *EditController) handleError(title string, err error) {
	ec.logger.Error("EditController", title, err, nil)
	ec.view.ShowError(title, err)
}

// optionalPath accepts a nil payload or a path string.
func optionalPath(payload interface{}) (string, error) {
	switch v := payload.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("%w: expected a file path, got %T", ErrInvalidPayload, payload)
	}
}
