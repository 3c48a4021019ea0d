package geodesy

import (
	"sort"
	"sync"
)

// Registry is a read-only set of named ellipsoids. Its contents are built
// once, on first use, and never change afterwards.
type Registry struct {
	once       sync.Once
	build      func() map[string]*Ellipsoid[float64]
	ellipsoids map[string]*Ellipsoid[float64]
}

// NewRegistry returns a Registry whose contents are produced by build. build
// is called at most once, by the first Lookup or Names call. The returned map
// must not be modified afterwards.
func NewRegistry(build func() map[string]*Ellipsoid[float64]) *Registry {
	return &Registry{build: build}
}

func (r *Registry) init() {
	r.once.Do(func() {
		if r.build != nil {
			r.ellipsoids = r.build()
		}
	})
}

// Lookup returns the ellipsoid registered under name. The second result is
// false if there is none.
func (r *Registry) Lookup(name string) (*Ellipsoid[float64], bool) {
	r.init()
	e, ok := r.ellipsoids[name]
	return e, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.init()
	names := make([]string, 0, len(r.ellipsoids))
	for name := range r.ellipsoids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry(func() map[string]*Ellipsoid[float64] {
	return map[string]*Ellipsoid[float64]{
		"wgs84": WGS84,
	}
})

// Default returns the process-wide registry. It contains only "wgs84".
func Default() *Registry {
	return defaultRegistry
}

// Lookup looks name up in the default registry.
func Lookup(name string) (*Ellipsoid[float64], bool) {
	return defaultRegistry.Lookup(name)
}
