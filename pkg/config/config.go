// Package config loads application configuration from YAML files with
// dot-path access and environment variable interpolation.
//
// The required key app.env is constrained to development, production, or
// test. app.debug and app.timezone are read by the framework during boot.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/swilenhq/swilen/pkg/env"
)

// Environment names accepted for app.env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config is an immutable tree of configuration values with dot-path access.
type Config struct {
	values   map[string]any
	location *time.Location
}

// Load reads a YAML config file, interpolates ${VAR} references against
// the given env store, and validates the app section.
func Load(path string, environ *env.Store) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrOpenFile, err)
	}
	return Parse(data, environ)
}

// Parse builds a Config from raw YAML content.
func Parse(data []byte, environ *env.Store) (*Config, error) {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.Join(ErrParseFile, err)
	}
	if values == nil {
		values = make(map[string]any)
	}

	interpolateTree(values, environ)

	c := &Config{values: values}
	if err := c.validateApp(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validateApp() error {
	appEnv, ok := c.Lookup("app.env")
	if !ok {
		return ErrMissingAppEnv
	}
	switch appEnv {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return ErrInvalidAppEnv
	}

	c.location = time.UTC
	if tz := c.String("app.timezone", ""); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return errors.Join(ErrBadTimezone, err)
		}
		c.location = loc
	}
	return nil
}

// Lookup resolves a dot-separated path and reports whether it exists.
func (c *Config) Lookup(path string) (any, bool) {
	var current any = c.values
	for part := range strings.SplitSeq(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Get resolves a dot-separated path, returning nil if absent.
func (c *Config) Get(path string) any {
	v, _ := c.Lookup(path)
	return v
}

// Has reports whether the path exists.
func (c *Config) Has(path string) bool {
	_, ok := c.Lookup(path)
	return ok
}

// String returns the value at path as a string, or def.
func (c *Config) String(path, def string) string {
	v, ok := c.Lookup(path)
	if !ok {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return def
}

// Bool returns the value at path as a bool, or def.
func (c *Config) Bool(path string, def bool) bool {
	v, ok := c.Lookup(path)
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
	}
	return def
}

// Int returns the value at path as an int, or def.
func (c *Config) Int(path string, def int) int {
	v, ok := c.Lookup(path)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}
	return def
}

// Duration returns the value at path parsed as a time.Duration, or def.
func (c *Config) Duration(path string, def time.Duration) time.Duration {
	v, ok := c.Lookup(path)
	if !ok {
		return def
	}
	switch d := v.(type) {
	case string:
		if parsed, err := time.ParseDuration(d); err == nil {
			return parsed
		}
	case int:
		return time.Duration(d) * time.Second
	}
	return def
}

// Environment returns the validated app.env value.
func (c *Config) Environment() string {
	return c.String("app.env", "")
}

// IsProduction reports whether app.env is production.
func (c *Config) IsProduction() bool {
	return c.Environment() == EnvProduction
}

// IsDebug reports whether app.debug is enabled.
func (c *Config) IsDebug() bool {
	return c.Bool("app.debug", false)
}

// Location returns the time.Location resolved from app.timezone.
// Defaults to UTC.
func (c *Config) Location() *time.Location {
	return c.location
}

// interpolateTree rewrites ${VAR} references in every string scalar.
// Nil environ leaves values untouched.
func interpolateTree(values map[string]any, environ *env.Store) {
	if environ == nil {
		return
	}
	for k, v := range values {
		values[k] = interpolateValue(v, environ)
	}
}

func interpolateValue(v any, environ *env.Store) any {
	switch val := v.(type) {
	case string:
		return interpolateString(val, environ)
	case map[string]any:
		interpolateTree(val, environ)
		return val
	case []any:
		for i, item := range val {
			val[i] = interpolateValue(item, environ)
		}
		return val
	}
	return v
}

func interpolateString(s string, environ *env.Store) string {
	if !strings.Contains(s, "${") {
		return s
	}
	var b strings.Builder
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			b.WriteString(s)
			break
		}
		end := strings.IndexByte(s[start:], '}')
		if end < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:start])
		b.WriteString(environ.Get(s[start+2 : start+end]))
		s = s[start+end+1:]
	}
	return b.String()
}
