package config

import "errors"

var (
	ErrOpenFile      = errors.New("config: failed to open config file")
	ErrParseFile     = errors.New("config: failed to parse config file")
	ErrMissingAppEnv = errors.New("config: required key app.env is missing")
	ErrInvalidAppEnv = errors.New("config: app.env must be one of development, production, test")
	ErrBadTimezone   = errors.New("config: app.timezone is not a valid location")
)
