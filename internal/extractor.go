package internal

import "strings"

// ExtractorSource extracts a value from the request context.
// Returns ("", false) when the source has nothing.
type ExtractorSource = func(Context) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor over the given sources.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value across the sources.
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromHeader reads from a request header.
func FromHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Header(name)
		return v, v != ""
	}
}

// FromQuery reads from a query parameter.
func FromQuery(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Query(name)
		return v, v != ""
	}
}

// FromCookie reads from a request cookie.
func FromCookie(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v, err := c.Cookie(name)
		if err != nil || v == "" {
			return "", false
		}
		return v, true
	}
}

// FromParam reads from a URL parameter.
func FromParam(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Param(name)
		return v, v != ""
	}
}

// FromForm reads from a form field.
func FromForm(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Form(name)
		return v, v != ""
	}
}

// FromBearerToken reads a Bearer token from the Authorization header.
// The "Bearer " prefix is matched case-insensitively.
func FromBearerToken() ExtractorSource {
	return func(c Context) (string, bool) {
		auth := c.Header("Authorization")
		if len(auth) < 7 || !strings.EqualFold(auth[:7], "bearer ") {
			return "", false
		}
		token := auth[7:]
		return token, token != ""
	}
}
