package validation

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRule = errors.New("validation: unknown rule")
	ErrBadParams   = errors.New("validation: invalid rule parameters")
	ErrBadPattern  = errors.New("validation: invalid regex pattern")
	ErrEmptyRule   = errors.New("validation: empty rule segment")
)

// DefinitionError reports a malformed rule declaration for a field.
type DefinitionError struct {
	Err   error
	Field string
	Rule  string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("validation: field %q rule %q: %v", e.Field, e.Rule, e.Err)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}
