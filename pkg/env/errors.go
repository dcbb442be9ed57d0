package env

import (
	"errors"
	"fmt"
)

var (
	ErrOpenFile     = errors.New("env: failed to open file")
	ErrInvalidKey   = errors.New("env: invalid variable name")
	ErrDecodeValue  = errors.New("env: failed to decode prefixed value")
	ErrApplyProcess = errors.New("env: failed to export variable to process environment")
)

// ParseError reports a malformed line in an env file.
type ParseError struct {
	Text string
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("env: parse error on line %d: %q", e.Line, e.Text)
}
