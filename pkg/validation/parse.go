package validation

import "strings"

// Rule is a parsed rule name with its parameters.
// "between:1,10" parses to {Name: "between", Params: ["1", "10"]}.
type Rule struct {
	Name   string
	Params []string
}

// parseRules splits a pipe-separated rule string into parsed rules.
// The regex rule keeps everything after the colon verbatim so commas
// inside the pattern survive.
func parseRules(ruleStr string) ([]Rule, error) {
	segments := strings.Split(ruleStr, "|")
	rules := make([]Rule, 0, len(segments))

	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return nil, ErrEmptyRule
		}

		name, rest, hasParams := strings.Cut(seg, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrEmptyRule
		}

		r := Rule{Name: name}
		if hasParams {
			if name == "regex" {
				r.Params = []string{rest}
			} else {
				for _, p := range strings.Split(rest, ",") {
					r.Params = append(r.Params, strings.TrimSpace(p))
				}
			}
		}
		rules = append(rules, r)
	}
	return rules, nil
}
