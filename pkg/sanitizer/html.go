package sanitizer

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()

		// SafePolicy allows basic formatting for user-generated content
		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)
	})
}

// StripHTML removes all HTML tags and returns plain text.
// Use for fields that must never carry markup (names, titles, search terms).
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTML allows safe formatting tags (p, a, strong, em, lists, code).
// Use for user-generated content that needs basic HTML formatting.
// Strips all dangerous elements and attributes including scripts, event handlers,
// and javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}

// Trim collapses surrounding whitespace. Applied before other sanitizers
// so quoted padding does not survive a strip.
func Trim(s string) string {
	return strings.TrimSpace(s)
}
