package container

import (
	"fmt"
	"sync"
)

// Factory builds a service instance. It receives the container so the
// factory can resolve its own dependencies.
type Factory func(c *Container) (any, error)

// binding is a registered service definition.
type binding struct {
	factory  Factory
	instance any
	shared   bool
	resolved bool
}

// Container is a named-binding service container.
// Safe for concurrent use.
type Container struct {
	bindings map[string]*binding
	aliases  map[string]string
	mu       sync.RWMutex
}

// New creates an empty container.
func New() *Container {
	return &Container{
		bindings: make(map[string]*binding),
		aliases:  make(map[string]string),
	}
}

// Bind registers a factory that produces a fresh instance per resolve.
func (c *Container) Bind(name string, factory Factory) error {
	return c.register(name, factory, false)
}

// Singleton registers a factory whose result is memoized after the
// first resolve.
func (c *Container) Singleton(name string, factory Factory) error {
	return c.register(name, factory, true)
}

func (c *Container) register(name string, factory Factory, shared bool) error {
	if factory == nil {
		return ErrNilFactory
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[name] = &binding{factory: factory, shared: shared}
	delete(c.aliases, name)
	return nil
}

// Instance registers an already-built value as a shared binding.
func (c *Container) Instance(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[name] = &binding{instance: value, shared: true, resolved: true}
	delete(c.aliases, name)
}

// Alias points an alternative name at an existing binding.
// The target does not need to exist yet; it is checked at resolve time.
func (c *Container) Alias(alias, target string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aliases[alias] = target
	delete(c.bindings, alias)
}

// Has reports whether a binding or alias exists for name.
func (c *Container) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, err := c.canonical(name)
	if err != nil {
		return false
	}
	_, ok := c.bindings[name]
	return ok
}

// Resolve returns the service bound to name, following aliases and
// building via the factory as needed.
func (c *Container) Resolve(name string) (any, error) {
	c.mu.RLock()
	canonical, err := c.canonical(name)
	if err != nil {
		c.mu.RUnlock()
		return nil, err
	}
	b, ok := c.bindings[canonical]
	if !ok {
		c.mu.RUnlock()
		return nil, fmt.Errorf("%w: %q", ErrNotBound, name)
	}
	if b.resolved && b.shared {
		instance := b.instance
		c.mu.RUnlock()
		return instance, nil
	}
	c.mu.RUnlock()

	// Build outside the lock so factories can resolve other bindings.
	instance, err := b.factory(c)
	if err != nil {
		return nil, &BindingError{Name: canonical, Err: err}
	}

	if b.shared {
		c.mu.Lock()
		if !b.resolved {
			b.instance = instance
			b.resolved = true
		}
		instance = b.instance
		c.mu.Unlock()
	}
	return instance, nil
}

// canonical follows the alias chain to the underlying binding name.
// Callers must hold at least a read lock.
func (c *Container) canonical(name string) (string, error) {
	seen := map[string]bool{}
	for {
		target, ok := c.aliases[name]
		if !ok {
			return name, nil
		}
		if seen[name] {
			return "", fmt.Errorf("%w: %q", ErrAliasCycle, name)
		}
		seen[name] = true
		name = target
	}
}

// Forget removes a binding or alias.
func (c *Container) Forget(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bindings, name)
	delete(c.aliases, name)
}

// Flush removes all bindings and aliases.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings = make(map[string]*binding)
	c.aliases = make(map[string]string)
}

// Resolve returns the service bound to name asserted to type T.
func Resolve[T any](c *Container, name string) (T, error) {
	var zero T
	v, err := c.Resolve(name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T", ErrTypeMismatch, name, v)
	}
	return typed, nil
}

// MustResolve is Resolve but panics on error. Intended for boot-time
// wiring where a missing binding is a programming error.
func MustResolve[T any](c *Container, name string) T {
	v, err := Resolve[T](c, name)
	if err != nil {
		panic(err)
	}
	return v
}
