package filters

import (
	"fmt"
)

// Set is the editor's filter catalogue bound to one convolution engine.
type Set struct {
	engine  Engine
	filters map[Kind]Filter
}

func NewSet(engine Engine, blurRadius float64) *Set {
	if blurRadius <= 0 {
		blurRadius = DefaultBlurRadius
	}

	return &Set{
		engine: engine,
		filters: map[Kind]Filter{
			KindGrayscale:      &GrayscaleFilter{},
			KindRotate90:       &Rotate90Filter{},
			KindFlipHorizontal: &FlipHorizontalFilter{},
			KindFlipVertical:   &FlipVerticalFilter{},
			KindBlur:           NewBlurFilter(engine, blurRadius),
			KindSharpen:        NewSharpenFilter(engine),
		},
	}
}

// NewSetFromEngineName resolves a registered engine and builds the catalogue.
func NewSetFromEngineName(name string, blurRadius float64) (*Set, error) {
	engine, err := NewEngine(name)
	if err != nil {
		return nil, err
	}
	return NewSet(engine, blurRadius), nil
}

func (s *Set) Get(kind Kind) (Filter, error) {
	f, ok := s.filters[kind]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q", kind)
	}
	return f, nil
}

func (s *Set) Engine() Engine {
	return s.engine
}
