package redis

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	ErrParseURL           = errors.New("redis: failed to parse connection URL")
	ErrOpenConnection     = errors.New("redis: failed to establish connection")
	ErrHealthcheck        = errors.New("redis: healthcheck failed")
)
