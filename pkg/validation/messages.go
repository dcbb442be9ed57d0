package validation

import "strings"

// defaultMessages maps rule names to message templates. Placeholders:
// :attribute (humanized field name), :value (first param), :min, :max.
var defaultMessages = map[string]string{
	"required":    "The :attribute field is required.",
	"string":      "The :attribute must be a string.",
	"numeric":     "The :attribute must be a number.",
	"integer":     "The :attribute must be an integer.",
	"boolean":     "The :attribute must be true or false.",
	"array":       "The :attribute must be an array.",
	"email":       "The :attribute must be a valid email address.",
	"url":         "The :attribute must be a valid URL.",
	"uuid":        "The :attribute must be a valid UUID.",
	"date":        "The :attribute is not a valid date.",
	"min":         "The :attribute must be at least :min.",
	"max":         "The :attribute may not be greater than :max.",
	"between":     "The :attribute must be between :min and :max.",
	"size":        "The :attribute must be :value.",
	"in":          "The selected :attribute is invalid.",
	"not_in":      "The selected :attribute is invalid.",
	"regex":       "The :attribute format is invalid.",
	"confirmed":   "The :attribute confirmation does not match.",
	"same":        "The :attribute and :value must match.",
	"different":   "The :attribute and :value must be different.",
	"starts_with": "The :attribute must start with one of: :value.",
	"ends_with":   "The :attribute must end with one of: :value.",
}

const fallbackMessage = "The :attribute is invalid."

// message renders the failure message for a field and rule, preferring a
// custom "field.rule" override.
func (v *Validator) message(field string, r Rule) string {
	tpl, ok := v.custom[field+"."+r.Name]
	if !ok {
		tpl, ok = defaultMessages[r.Name]
		if !ok {
			tpl = fallbackMessage
		}
	}

	replacements := []string{":attribute", humanize(field)}
	if len(r.Params) > 0 {
		replacements = append(replacements, ":value", strings.Join(r.Params, ", "))
	}
	switch r.Name {
	case "min", "max", "size":
		if len(r.Params) == 1 {
			replacements = append(replacements, ":min", r.Params[0], ":max", r.Params[0])
		}
	case "between":
		if len(r.Params) == 2 {
			replacements = append(replacements, ":min", r.Params[0], ":max", r.Params[1])
		}
	}
	return strings.NewReplacer(replacements...).Replace(tpl)
}

// humanize turns snake_case field names into readable attribute names.
func humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
