package layout

import (
	"fmt"
	"sort"

	"github.com/npillmayer/uistyle/style"
)

// Factory creates a fresh engine instance.
type Factory func() Engine

type entry struct {
	factory Factory
	keys    []style.Key
}

// Registry maps engine names to factories.
type Registry struct {
	engines map[string]entry
}

// NewRegistry creates a registry holding the built-in engines.
func NewRegistry() *Registry {
	r := &Registry{engines: make(map[string]entry)}
	r.Register(AbsoluteName, AbsoluteKeys(), NewAbsolute)
	r.Register(GridName, GridKeys(), NewGrid)
	return r
}

// Register adds an engine. keys are the style keys the engine consumes,
// for itself or for its children. Registering a name twice replaces the
// earlier entry.
func (r *Registry) Register(name string, keys []style.Key, factory Factory) {
	if r.Has(name) {
		tracer().Infof("layout engine %q re-registered", name)
	}
	r.engines[name] = entry{factory: factory, keys: keys}
}

// New creates an engine by name.
func (r *Registry) New(name string) (Engine, error) {
	e, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout engine %q", name)
	}
	return e.factory(), nil
}

// Has is true if an engine of that name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.engines[name]
	return ok
}

// Keys returns the style keys of all registered engines.
func (r *Registry) Keys() []style.Key {
	var keys []style.Key
	for _, e := range r.engines {
		keys = append(keys, e.keys...)
	}
	return keys
}

// Names returns the registered engine names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.engines))
	for n := range r.engines {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
