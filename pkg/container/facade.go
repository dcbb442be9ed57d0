package container

import "sync"

// Facade is a typed static-call proxy that forwards to a
// container-resolved instance. Bind it once during bootstrap, then call
// Use anywhere without threading the container through call sites.
//
//	var Cache = &container.Facade[*cache.Memory[string]]{}
//
//	// during boot:
//	Cache.Connect(app.Container(), "cache")
//
//	// at a call site:
//	store, err := Cache.Use()
type Facade[T any] struct {
	container *Container
	name      string
	mu        sync.RWMutex
}

// Connect binds the facade to a container and binding name.
func (f *Facade[T]) Connect(c *Container, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.container = c
	f.name = name
}

// Disconnect detaches the facade; subsequent Use calls fail with
// ErrFacadeUnbound. Intended for test teardown.
func (f *Facade[T]) Disconnect() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.container = nil
	f.name = ""
}

// Use resolves the underlying service. Resolution happens per call, so
// non-singleton bindings produce fresh instances.
func (f *Facade[T]) Use() (T, error) {
	f.mu.RLock()
	c, name := f.container, f.name
	f.mu.RUnlock()

	if c == nil {
		var zero T
		return zero, ErrFacadeUnbound
	}
	return Resolve[T](c, name)
}

// MustUse is Use but panics on error.
func (f *Facade[T]) MustUse() T {
	v, err := f.Use()
	if err != nil {
		panic(err)
	}
	return v
}
