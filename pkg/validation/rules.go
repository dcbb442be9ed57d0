package validation

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// checkFunc evaluates one rule against a field value.
// Returns whether the value passes, or an error for malformed parameters.
type checkFunc func(v *Validator, field string, value any, params []string) (bool, error)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Accepted layouts for the date rule, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ruleTable is the fixed dispatch table. Presence rules (required,
// nullable) are handled by the validator loop, not here.
var ruleTable = map[string]checkFunc{
	"string": func(_ *Validator, _ string, value any, _ []string) (bool, error) {
		_, ok := value.(string)
		return ok, nil
	},
	"numeric": func(_ *Validator, _ string, value any, _ []string) (bool, error) {
		_, ok := toFloat(value)
		return ok, nil
	},
	"integer": func(_ *Validator, _ string, value any, _ []string) (bool, error) {
		f, ok := toFloat(value)
		return ok && f == float64(int64(f)), nil
	},
	"boolean": func(_ *Validator, _ string, value any, _ []string) (bool, error) {
		switch v := value.(type) {
		case bool:
			return true, nil
		case string:
			switch v {
			case "true", "false", "0", "1":
				return true, nil
			}
		case int, int64, float64:
			f, _ := toFloat(value)
			return f == 0 || f == 1, nil
		}
		return false, nil
	},
	"array": func(_ *Validator, _ string, value any, _ []string) (bool, error) {
		k := reflect.ValueOf(value).Kind()
		return k == reflect.Slice || k == reflect.Array || k == reflect.Map, nil
	},
	"email": func(_ *Validator, _ string, value any, _ []string) (bool, error) {
		s, ok := value.(string)
		return ok && emailPattern.MatchString(s), nil
	},
	"url": func(_ *Validator, _ string, value any, _ []string) (bool, error) {
		s, ok := value.(string)
		if !ok {
			return false, nil
		}
		u, err := url.Parse(s)
		return err == nil && u.Scheme != "" && u.Host != "", nil
	},
	"uuid": func(_ *Validator, _ string, value any, _ []string) (bool, error) {
		s, ok := value.(string)
		if !ok {
			return false, nil
		}
		_, err := uuid.Parse(s)
		return err == nil, nil
	},
	"date": func(_ *Validator, _ string, value any, _ []string) (bool, error) {
		s, ok := value.(string)
		if !ok {
			return false, nil
		}
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true, nil
			}
		}
		return false, nil
	},
	"min":      checkMin,
	"max":      checkMax,
	"between":  checkBetween,
	"size":     checkSize,
	"in":       checkIn,
	"not_in":   checkNotIn,
	"regex":    checkRegex,
	"confirmed": func(v *Validator, field string, value any, _ []string) (bool, error) {
		other, ok := v.data[field+"_confirmation"]
		return ok && stringify(other) == stringify(value), nil
	},
	"same": func(v *Validator, _ string, value any, params []string) (bool, error) {
		if len(params) != 1 {
			return false, ErrBadParams
		}
		other, ok := v.data[params[0]]
		return ok && stringify(other) == stringify(value), nil
	},
	"different": func(v *Validator, _ string, value any, params []string) (bool, error) {
		if len(params) != 1 {
			return false, ErrBadParams
		}
		other, ok := v.data[params[0]]
		return !ok || stringify(other) != stringify(value), nil
	},
	"starts_with": func(_ *Validator, _ string, value any, params []string) (bool, error) {
		if len(params) == 0 {
			return false, ErrBadParams
		}
		s, ok := value.(string)
		if !ok {
			return false, nil
		}
		for _, p := range params {
			if strings.HasPrefix(s, p) {
				return true, nil
			}
		}
		return false, nil
	},
	"ends_with": func(_ *Validator, _ string, value any, params []string) (bool, error) {
		if len(params) == 0 {
			return false, ErrBadParams
		}
		s, ok := value.(string)
		if !ok {
			return false, nil
		}
		for _, p := range params {
			if strings.HasSuffix(s, p) {
				return true, nil
			}
		}
		return false, nil
	},
}

func checkMin(_ *Validator, _ string, value any, params []string) (bool, error) {
	limit, err := singleFloatParam(params)
	if err != nil {
		return false, err
	}
	size, ok := valueSize(value)
	return ok && size >= limit, nil
}

func checkMax(_ *Validator, _ string, value any, params []string) (bool, error) {
	limit, err := singleFloatParam(params)
	if err != nil {
		return false, err
	}
	size, ok := valueSize(value)
	return ok && size <= limit, nil
}

func checkBetween(_ *Validator, _ string, value any, params []string) (bool, error) {
	if len(params) != 2 {
		return false, ErrBadParams
	}
	lo, err1 := strconv.ParseFloat(params[0], 64)
	hi, err2 := strconv.ParseFloat(params[1], 64)
	if err1 != nil || err2 != nil {
		return false, ErrBadParams
	}
	size, ok := valueSize(value)
	return ok && size >= lo && size <= hi, nil
}

func checkSize(_ *Validator, _ string, value any, params []string) (bool, error) {
	want, err := singleFloatParam(params)
	if err != nil {
		return false, err
	}
	size, ok := valueSize(value)
	return ok && size == want, nil
}

func checkIn(_ *Validator, _ string, value any, params []string) (bool, error) {
	if len(params) == 0 {
		return false, ErrBadParams
	}
	s := stringify(value)
	for _, p := range params {
		if s == p {
			return true, nil
		}
	}
	return false, nil
}

func checkNotIn(v *Validator, field string, value any, params []string) (bool, error) {
	ok, err := checkIn(v, field, value, params)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func checkRegex(_ *Validator, _ string, value any, params []string) (bool, error) {
	if len(params) != 1 || params[0] == "" {
		return false, ErrBadParams
	}
	re, err := regexp.Compile(params[0])
	if err != nil {
		return false, ErrBadPattern
	}
	s, ok := value.(string)
	return ok && re.MatchString(s), nil
}

func singleFloatParam(params []string) (float64, error) {
	if len(params) != 1 {
		return 0, ErrBadParams
	}
	f, err := strconv.ParseFloat(params[0], 64)
	if err != nil {
		return 0, ErrBadParams
	}
	return f, nil
}

// valueSize maps a value onto the size axis used by min/max/between/size:
// numerics by value, strings by rune count, slices/arrays/maps by length.
func valueSize(value any) (float64, bool) {
	if f, ok := toFloat(value); ok {
		return f, true
	}
	switch v := value.(type) {
	case string:
		return float64(utf8.RuneCountInString(v)), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return float64(rv.Len()), true
	}
	return 0, false
}

// toFloat converts numeric types (not numeric strings) to float64.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
