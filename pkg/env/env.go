package env

import (
	"bufio"
	"encoding/base64"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
)

// Value prefixes recognized during parsing.
const (
	prefixBase64 = "base64:"
	prefixSwilen = "swilen:"
)

// Store holds loaded environment variables.
// Keys are immutable once set unless the loaded entry carries the
// replaceable marker (trailing "!" on the key).
type Store struct {
	values map[string]string
	mu     sync.RWMutex
}

// New creates an empty store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// FromProcess creates a store pre-populated with the process environment.
// Process values take precedence over file entries, matching deployment
// practice where the orchestrator overrides the checked-in .env defaults.
func FromProcess() *Store {
	s := New()
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			s.values[k] = v
		}
	}
	return s
}

// Lookup returns the value for key and whether it is present.
func (s *Store) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Get returns the value for key, or the empty string if absent.
func (s *Store) Get(key string) string {
	v, _ := s.Lookup(key)
	return v
}

// GetDefault returns the value for key, or def if absent.
func (s *Store) GetDefault(key, def string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return def
}

// Set stores a value, respecting immutability: an existing key is kept
// unless replace is true.
func (s *Store) Set(key, value string, replace bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.values[key]; exists && !replace {
		return false
	}
	s.values[key] = value
	return true
}

// All returns a copy of the stored values.
func (s *Store) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Apply exports every stored value into the process environment.
func (s *Store) Apply() error {
	for k, v := range s.All() {
		if err := os.Setenv(k, v); err != nil {
			return errors.Join(ErrApplyProcess, err)
		}
	}
	return nil
}

// LoadFile parses the file at path into the store.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Join(ErrOpenFile, err)
	}
	defer f.Close()
	return s.Load(f)
}

// Load parses .env content from r into the store. Entries for keys that
// already exist are skipped unless marked replaceable. Parsing stops at
// the first malformed line.
func (s *Store) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		entry, err := parseLine(raw, line)
		if err != nil {
			return err
		}

		val, err := s.expand(entry)
		if err != nil {
			return err
		}
		s.Set(entry.key, val, entry.replace)
	}
	return scanner.Err()
}

// entry is a single parsed KEY=VALUE line.
type entry struct {
	key     string
	value   string
	quote   byte // 0, '\'' or '"'
	replace bool
}

func parseLine(raw string, line int) (entry, error) {
	raw = strings.TrimPrefix(raw, "export ")

	key, rest, ok := strings.Cut(raw, "=")
	if !ok {
		return entry{}, &ParseError{Line: line, Text: raw}
	}

	key = strings.TrimSpace(key)
	e := entry{}
	if strings.HasSuffix(key, "!") {
		e.replace = true
		key = strings.TrimSuffix(key, "!")
	}
	if !validKey(key) {
		return entry{}, &ParseError{Line: line, Text: raw}
	}
	e.key = key

	val, quote, err := parseValue(strings.TrimSpace(rest), raw, line)
	if err != nil {
		return entry{}, err
	}
	e.value = val
	e.quote = quote
	return e, nil
}

// parseValue handles quoting, escapes, and trailing comments.
func parseValue(rest, raw string, line int) (string, byte, error) {
	if rest == "" {
		return "", 0, nil
	}

	switch rest[0] {
	case '\'':
		end := strings.IndexByte(rest[1:], '\'')
		if end < 0 {
			return "", 0, &ParseError{Line: line, Text: raw}
		}
		return rest[1 : end+1], '\'', nil

	case '"':
		var b strings.Builder
		escaped := false
		for i := 1; i < len(rest); i++ {
			ch := rest[i]
			if escaped {
				switch ch {
				case 'n':
					b.WriteByte('\n')
				case 't':
					b.WriteByte('\t')
				case '"', '\\':
					b.WriteByte(ch)
				default:
					b.WriteByte('\\')
					b.WriteByte(ch)
				}
				escaped = false
				continue
			}
			switch ch {
			case '\\':
				escaped = true
			case '"':
				return b.String(), '"', nil
			default:
				b.WriteByte(ch)
			}
		}
		return "", 0, &ParseError{Line: line, Text: raw}

	default:
		// Unquoted: strip trailing comment, then surrounding whitespace.
		if i := strings.IndexByte(rest, '#'); i >= 0 {
			rest = rest[:i]
		}
		return strings.TrimSpace(rest), 0, nil
	}
}

// expand resolves ${VAR} references and decodes value prefixes.
// Single-quoted values are taken verbatim.
func (s *Store) expand(e entry) (string, error) {
	val := e.value
	if e.quote != '\'' {
		val = s.interpolate(val)
	}

	switch {
	case strings.HasPrefix(val, prefixBase64):
		decoded, err := base64.StdEncoding.DecodeString(val[len(prefixBase64):])
		if err != nil {
			return "", errors.Join(ErrDecodeValue, err)
		}
		return string(decoded), nil
	case strings.HasPrefix(val, prefixSwilen):
		decoded, err := base64.URLEncoding.DecodeString(val[len(prefixSwilen):])
		if err != nil {
			return "", errors.Join(ErrDecodeValue, err)
		}
		return string(decoded), nil
	}
	return val, nil
}

// interpolate substitutes ${VAR} references from the store, falling back
// to the process environment. Unknown variables become empty strings.
func (s *Store) interpolate(val string) string {
	if !strings.Contains(val, "${") {
		return val
	}

	var b strings.Builder
	for {
		start := strings.Index(val, "${")
		if start < 0 {
			b.WriteString(val)
			break
		}
		end := strings.IndexByte(val[start:], '}')
		if end < 0 {
			b.WriteString(val)
			break
		}

		b.WriteString(val[:start])
		name := val[start+2 : start+end]
		if v, ok := s.Lookup(name); ok {
			b.WriteString(v)
		} else {
			b.WriteString(os.Getenv(name))
		}
		val = val[start+end+1:]
	}
	return b.String()
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
