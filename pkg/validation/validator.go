package validation

import (
	"reflect"
	"strings"
)

// Validator checks a data map against per-field rule strings.
// Not safe for concurrent use; build one per request.
type Validator struct {
	data      map[string]any
	rules     map[string]string
	custom    map[string]string
	bag       *MessageBag
	err       error
	validated bool
}

// New creates a validator for the given data and rules.
func New(data map[string]any, rules map[string]string) *Validator {
	return &Validator{
		data:   data,
		rules:  rules,
		custom: make(map[string]string),
		bag:    NewMessageBag(),
	}
}

// WithMessage overrides the message template for a field.rule pair,
// e.g. WithMessage("email", "required", "We need your email address.").
func (v *Validator) WithMessage(field, rule, template string) *Validator {
	v.custom[field+"."+rule] = template
	return v
}

// Validate runs all rules once. It returns an error only for malformed
// rule definitions; rule failures land in the message bag.
func (v *Validator) Validate() error {
	if v.validated {
		return v.err
	}
	v.validated = true

	for field, ruleStr := range v.rules {
		if err := v.validateField(field, ruleStr); err != nil {
			v.err = err
			return err
		}
	}
	return nil
}

func (v *Validator) validateField(field, ruleStr string) error {
	rules, err := parseRules(ruleStr)
	if err != nil {
		return &DefinitionError{Field: field, Rule: ruleStr, Err: err}
	}

	value, present := v.data[field]
	required := hasRule(rules, "required")

	// Absent and nil values short-circuit: required fails, everything
	// else (nullable or plain optional) skips the remaining rules.
	if !present || value == nil {
		if required {
			v.bag.Add(field, v.message(field, Rule{Name: "required"}))
		}
		return nil
	}

	if required && isEmpty(value) {
		v.bag.Add(field, v.message(field, Rule{Name: "required"}))
		return nil
	}

	for _, r := range rules {
		if r.Name == "required" || r.Name == "nullable" {
			continue
		}

		check, ok := ruleTable[r.Name]
		if !ok {
			return &DefinitionError{Field: field, Rule: r.Name, Err: ErrUnknownRule}
		}

		passed, err := check(v, field, value, r.Params)
		if err != nil {
			return &DefinitionError{Field: field, Rule: r.Name, Err: err}
		}
		if !passed {
			v.bag.Add(field, v.message(field, r))
		}
	}
	return nil
}

// Fails reports whether validation produced any failure. Definition
// errors also count as failure; inspect Err for the cause.
func (v *Validator) Fails() bool {
	if err := v.Validate(); err != nil {
		return true
	}
	return !v.bag.IsEmpty()
}

// Passes is the inverse of Fails.
func (v *Validator) Passes() bool {
	return !v.Fails()
}

// Errors returns the accumulated message bag.
func (v *Validator) Errors() *MessageBag {
	_ = v.Validate()
	return v.bag
}

// Err returns the definition error encountered during validation, if any.
func (v *Validator) Err() error {
	_ = v.Validate()
	return v.err
}

func hasRule(rules []Rule, name string) bool {
	for _, r := range rules {
		if r.Name == name {
			return true
		}
	}
	return false
}

// isEmpty reports values that required treats as missing: blank strings
// and zero-length collections.
func isEmpty(value any) bool {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}
