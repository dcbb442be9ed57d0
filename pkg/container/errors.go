package container

import (
	"errors"
	"fmt"
)

var (
	ErrNotBound      = errors.New("container: binding not found")
	ErrTypeMismatch  = errors.New("container: resolved value has unexpected type")
	ErrAliasCycle    = errors.New("container: alias cycle detected")
	ErrNilFactory    = errors.New("container: factory must not be nil")
	ErrFacadeUnbound = errors.New("container: facade is not bound to a container")
)

// BindingError wraps a factory failure with the binding name.
type BindingError struct {
	Err  error
	Name string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("container: building %q: %v", e.Name, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}
