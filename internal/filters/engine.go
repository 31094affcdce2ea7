package filters

import (
	"fmt"
	"image"
	"sort"
	"sync"
)

// Engine is the convolution backend behind blur and sharpen.
type Engine interface {
	Name() string
	// Blur smooths the color channels of src with the given radius in
	// pixels, replicating border pixels and keeping alpha.
	Blur(src image.Image, radius float64) (*image.NRGBA, error)
	// Convolve3x3 applies a row-major 3x3 kernel to the color channels,
	// clamping to 0..255, replicating border pixels and keeping alpha.
	Convolve3x3(src image.Image, kernel [9]float64) (*image.NRGBA, error)
}

type EngineFactory func() Engine

var (
	enginesMu sync.RWMutex
	engines   = make(map[string]EngineFactory)
)

// RegisterEngine makes an engine available by name. Registering the same
// name twice panics.
func RegisterEngine(name string, factory EngineFactory) {
	enginesMu.Lock()
	defer enginesMu.Unlock()

	if _, exists := engines[name]; exists {
		panic(fmt.Sprintf("filters: engine %q registered twice", name))
	}
	engines[name] = factory
}

// NewEngine returns the engine registered under name.
func NewEngine(name string) (Engine, error) {
	enginesMu.RLock()
	factory, ok := engines[name]
	enginesMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown engine %q (available: %v)", name, EngineNames())
	}
	return factory(), nil
}

// EngineNames lists registered engines in sorted order.
func EngineNames() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()

	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterEngine(ImagingEngineName, func() Engine { return NewImagingEngine() })
	RegisterEngine(BildEngineName, func() Engine { return NewBildEngine() })
}
