package sanitizer

import (
	"errors"
	"reflect"
	"strings"
)

// ErrNotStructPointer is returned when SanitizeStruct receives anything
// other than a non-nil pointer to a struct.
var ErrNotStructPointer = errors.New("sanitizer: expected non-nil struct pointer")

// sanitizeFunc transforms a single string value.
type sanitizeFunc func(string) string

var sanitizers = map[string]sanitizeFunc{
	"trim":  Trim,
	"strip": StripHTML,
	"html":  SanitizeHTML,
}

// SanitizeStruct rewrites string fields in place according to their
// `sanitize` struct tag. Tags chain left to right, e.g. `sanitize:"trim,strip"`.
// Unknown sanitizer names are ignored. Nested structs, struct pointers,
// string slices, and maps with string values are walked recursively.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	sanitizeValue(rv.Elem(), nil)
	return nil
}

func sanitizeValue(rv reflect.Value, chain []sanitizeFunc) {
	switch rv.Kind() {
	case reflect.String:
		if len(chain) > 0 && rv.CanSet() {
			s := rv.String()
			for _, fn := range chain {
				s = fn(s)
			}
			rv.SetString(s)
		}
	case reflect.Pointer:
		if !rv.IsNil() {
			sanitizeValue(rv.Elem(), chain)
		}
	case reflect.Struct:
		rt := rv.Type()
		for i := range rt.NumField() {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			sanitizeValue(rv.Field(i), parseChain(field.Tag.Get("sanitize")))
		}
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			sanitizeValue(rv.Index(i), chain)
		}
	case reflect.Map:
		if rv.Type().Elem().Kind() != reflect.String {
			return
		}
		for _, key := range rv.MapKeys() {
			s := rv.MapIndex(key).String()
			for _, fn := range chain {
				s = fn(s)
			}
			rv.SetMapIndex(key, reflect.ValueOf(s))
		}
	}
}

func parseChain(tag string) []sanitizeFunc {
	if tag == "" || tag == "-" {
		return nil
	}
	var chain []sanitizeFunc
	for name := range strings.SplitSeq(tag, ",") {
		if fn, ok := sanitizers[strings.TrimSpace(name)]; ok {
			chain = append(chain, fn)
		}
	}
	return chain
}
