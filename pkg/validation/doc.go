// Package validation implements a table-driven input validator.
//
// Rules are declared as strings, pipe-separated, each rule optionally
// carrying colon-prefixed parameters:
//
//	v := validation.New(
//	    map[string]any{"email": "a@b.co", "age": 17},
//	    map[string]string{
//	        "email": "required|email",
//	        "age":   "required|integer|between:18,120",
//	    },
//	)
//	if v.Fails() {
//	    for field, msgs := range v.Errors().All() { ... }
//	}
//
// Rule failures accumulate into a MessageBag and are never returned as
// errors; only malformed rule definitions (unknown rule name, bad
// numeric parameter, invalid regex) surface through Validate or Err.
package validation
