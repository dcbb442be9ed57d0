package internal

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// maxFormMemory bounds in-memory parsing of multipart bodies.
const maxFormMemory = 10 << 20 // 10MB

// bindForm decodes urlencoded or multipart form data into v.
func bindForm(r *http.Request, v any) error {
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return err
		}
	} else if err := r.ParseForm(); err != nil {
		return err
	}
	return bindValues(r.PostForm, v)
}

// bindValues decodes url.Values into the struct pointed to by v.
// Field names come from the `form` tag, then the `json` tag, then the
// lowercased Go field name. Supported kinds: string, bool, integers,
// floats, pointers to those, and slices of those.
func bindValues(values url.Values, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("binding destination must be a non-nil struct pointer, got %T", v)
	}
	return bindStruct(values, rv.Elem())
}

func bindStruct(values url.Values, rv reflect.Value) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			if err := bindStruct(values, rv.Field(i)); err != nil {
				return err
			}
			continue
		}

		name := bindFieldName(sf)
		if name == "-" {
			continue
		}
		vals, ok := values[name]
		if !ok || len(vals) == 0 {
			continue
		}

		if err := setBoundField(rv.Field(i), vals); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}

func bindFieldName(sf reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		if t := sf.Tag.Get(tag); t != "" {
			name, _, _ := strings.Cut(t, ",")
			if name != "" {
				return name
			}
		}
	}
	return strings.ToLower(sf.Name)
}

func setBoundField(fv reflect.Value, vals []string) error {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}

	if fv.Kind() == reflect.Slice {
		slice := reflect.MakeSlice(fv.Type(), len(vals), len(vals))
		for i, raw := range vals {
			if err := setScalar(slice.Index(i), raw); err != nil {
				return err
			}
		}
		fv.Set(slice)
		return nil
	}

	return setScalar(fv, vals[0])
}

func setScalar(fv reflect.Value, raw string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", fv.Kind())
	}
	return nil
}
