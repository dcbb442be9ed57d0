package validation

import (
	"fmt"
	"reflect"
	"strings"
)

// Struct builds a validator from a struct's `validate` tags. Field names
// come from the `json` tag when present, otherwise from the lowercased
// Go field name. Nil pointer fields are treated as absent; non-nil
// pointers are dereferenced.
//
//	type CreateUser struct {
//	    Email string `json:"email" validate:"required|email"`
//	    Age   int    `json:"age"   validate:"integer|between:18,120"`
//	}
func Struct(v any) (*Validator, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("validation: cannot validate nil %T", v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("validation: expected struct, got %T", v)
	}

	data := make(map[string]any)
	rules := make(map[string]string)
	collectFields(rv, data, rules)
	return New(data, rules), nil
}

func collectFields(rv reflect.Value, data map[string]any, rules map[string]string) {
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		// Flatten embedded structs into the parent namespace.
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			collectFields(rv.Field(i), data, rules)
			continue
		}

		rule := sf.Tag.Get("validate")
		if rule == "" || rule == "-" {
			continue
		}

		name := fieldName(sf)
		rules[name] = rule

		fv := rv.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue // absent
			}
			fv = fv.Elem()
		}
		data[name] = fv.Interface()
	}
}

func fieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag != "" {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(sf.Name)
}
