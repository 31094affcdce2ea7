package models

import (
	"errors"
	"fmt"
	"image"
	"sync"
)

// ErrNotLoaded is returned by editing operations before any image is open.
var ErrNotLoaded = errors.New("no image loaded")

// TransformFunc produces a new raster from the original one.
type TransformFunc func(src *image.NRGBA) (*image.NRGBA, error)

// EditSession holds the original image and the single current edit of it.
// Every transform is computed from the original, so edits never compound.
type EditSession struct {
	mu       sync.RWMutex
	original *ImageData
	current  *ImageData
}

func NewEditSession() *EditSession {
	return &EditSession{}
}

// Load replaces both slots: original becomes data, current a copy of it.
func (s *EditSession) Load(data *ImageData) error {
	if data.IsEmpty() {
		return fmt.Errorf("cannot load empty image")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.original = data
	s.current = data.Clone()
	return nil
}

// Apply sets current to fn(original) and returns it. On error the session
// is left untouched.
func (s *EditSession) Apply(fn TransformFunc) (*ImageData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.original == nil {
		return nil, ErrNotLoaded
	}

	result, err := fn(s.original.Image)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("transform returned no image")
	}

	s.current = s.original.withImage(result)
	return s.current, nil
}

// Undo discards the current edit.
func (s *EditSession) Undo() (*ImageData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.original == nil {
		return nil, ErrNotLoaded
	}

	s.current = s.original.Clone()
	return s.current, nil
}

// Current returns the image being shown and saved, or nil.
func (s *EditSession) Current() *ImageData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Original returns the image as opened, or nil.
func (s *EditSession) Original() *ImageData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.original
}

func (s *EditSession) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.original == nil {
		return StateEmpty
	}
	return StateLoaded
}

// Reset drops both slots.
func (s *EditSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.original = nil
	s.current = nil
}

// Shutdown releases the images on application teardown.
func (s *EditSession) Shutdown() {
	s.Reset()
}
