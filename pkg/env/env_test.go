package env_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swilenhq/swilen/pkg/env"
)

func load(t *testing.T, content string) *env.Store {
	t.Helper()
	s := env.New()
	require.NoError(t, s.Load(strings.NewReader(content)))
	return s
}

func TestLoadBasic(t *testing.T) {
	t.Parallel()

	t.Run("plain assignments", func(t *testing.T) {
		t.Parallel()
		s := load(t, "APP_NAME=swilen\nAPP_PORT=8080\n")
		require.Equal(t, "swilen", s.Get("APP_NAME"))
		require.Equal(t, "8080", s.Get("APP_PORT"))
	})

	t.Run("export prefix tolerated", func(t *testing.T) {
		t.Parallel()
		s := load(t, "export APP_ENV=test\n")
		require.Equal(t, "test", s.Get("APP_ENV"))
	})

	t.Run("empty value", func(t *testing.T) {
		t.Parallel()
		s := load(t, "EMPTY=\n")
		v, ok := s.Lookup("EMPTY")
		require.True(t, ok)
		require.Empty(t, v)
	})

	t.Run("whitespace around key and value", func(t *testing.T) {
		t.Parallel()
		s := load(t, "  SPACED  =  padded value  \n")
		require.Equal(t, "padded value", s.Get("SPACED"))
	})
}

func TestLoadComments(t *testing.T) {
	t.Parallel()

	t.Run("full-line comments and blanks skipped", func(t *testing.T) {
		t.Parallel()
		s := load(t, "# leading comment\n\nKEY=value\n  # indented comment\n")
		require.Equal(t, "value", s.Get("KEY"))
	})

	t.Run("trailing comment stripped from unquoted value", func(t *testing.T) {
		t.Parallel()
		s := load(t, "KEY=value # comment\n")
		require.Equal(t, "value", s.Get("KEY"))
	})

	t.Run("hash inside quotes preserved", func(t *testing.T) {
		t.Parallel()
		s := load(t, `PASSWORD="p#ss" # real comment`)
		require.Equal(t, "p#ss", s.Get("PASSWORD"))
	})
}

func TestLoadQuoting(t *testing.T) {
	t.Parallel()

	t.Run("double quotes process escapes", func(t *testing.T) {
		t.Parallel()
		s := load(t, `MULTILINE="line1\nline2\t\"quoted\""`)
		require.Equal(t, "line1\nline2\t\"quoted\"", s.Get("MULTILINE"))
	})

	t.Run("single quotes are literal", func(t *testing.T) {
		t.Parallel()
		s := load(t, `RAW='${NOT_EXPANDED}\n'`)
		require.Equal(t, `${NOT_EXPANDED}\n`, s.Get("RAW"))
	})

	t.Run("unterminated double quote fails", func(t *testing.T) {
		t.Parallel()
		err := env.New().Load(strings.NewReader(`BROKEN="no end`))
		var perr *env.ParseError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, 1, perr.Line)
	})

	t.Run("unterminated single quote fails", func(t *testing.T) {
		t.Parallel()
		err := env.New().Load(strings.NewReader("BROKEN='no end"))
		var perr *env.ParseError
		require.ErrorAs(t, err, &perr)
	})
}

func TestLoadInterpolation(t *testing.T) {
	t.Run("reference to earlier entry", func(t *testing.T) {
		t.Parallel()
		s := load(t, "HOST=localhost\nURL=http://${HOST}:8080\n")
		require.Equal(t, "http://localhost:8080", s.Get("URL"))
	})

	t.Run("reference inside double quotes", func(t *testing.T) {
		t.Parallel()
		s := load(t, "NAME=swilen\nGREETING=\"hello ${NAME}\"\n")
		require.Equal(t, "hello swilen", s.Get("GREETING"))
	})

	t.Run("unknown variable becomes empty", func(t *testing.T) {
		t.Parallel()
		s := load(t, "URL=http://${SWILEN_TEST_MISSING_HOST}/path\n")
		require.Equal(t, "http:///path", s.Get("URL"))
	})

	t.Run("process environment fallback", func(t *testing.T) {
		t.Setenv("SWILEN_TEST_FALLBACK", "from-process")
		s := load(t, "VAL=${SWILEN_TEST_FALLBACK}\n")
		require.Equal(t, "from-process", s.Get("VAL"))
	})

	t.Run("unclosed reference left verbatim", func(t *testing.T) {
		t.Parallel()
		s := load(t, "VAL=${UNCLOSED\n")
		require.Equal(t, "${UNCLOSED", s.Get("VAL"))
	})
}

func TestLoadPrefixedValues(t *testing.T) {
	t.Parallel()

	t.Run("base64 prefix decoded", func(t *testing.T) {
		t.Parallel()
		s := load(t, "APP_KEY=base64:c2VjcmV0LWtleQ==\n")
		require.Equal(t, "secret-key", s.Get("APP_KEY"))
	})

	t.Run("swilen prefix decoded url-safe", func(t *testing.T) {
		t.Parallel()
		s := load(t, "TOKEN=swilen:c3dpbGVuLXRva2Vu\n")
		require.Equal(t, "swilen-token", s.Get("TOKEN"))
	})

	t.Run("invalid base64 payload fails", func(t *testing.T) {
		t.Parallel()
		err := env.New().Load(strings.NewReader("APP_KEY=base64:!!!not-base64!!!\n"))
		require.ErrorIs(t, err, env.ErrDecodeValue)
	})
}

func TestImmutability(t *testing.T) {
	t.Parallel()

	t.Run("first definition wins", func(t *testing.T) {
		t.Parallel()
		s := load(t, "KEY=first\nKEY=second\n")
		require.Equal(t, "first", s.Get("KEY"))
	})

	t.Run("replaceable marker overrides", func(t *testing.T) {
		t.Parallel()
		s := load(t, "KEY=first\nKEY!=second\n")
		require.Equal(t, "second", s.Get("KEY"))
	})

	t.Run("pre-seeded store value kept", func(t *testing.T) {
		t.Parallel()
		s := env.New()
		s.Set("APP_ENV", "production", false)
		require.NoError(t, s.Load(strings.NewReader("APP_ENV=development\n")))
		require.Equal(t, "production", s.Get("APP_ENV"))
	})

	t.Run("Set respects existing keys", func(t *testing.T) {
		t.Parallel()
		s := env.New()
		require.True(t, s.Set("K", "v1", false))
		require.False(t, s.Set("K", "v2", false))
		require.Equal(t, "v1", s.Get("K"))
		require.True(t, s.Set("K", "v3", true))
		require.Equal(t, "v3", s.Get("K"))
	})
}

func TestInvalidLines(t *testing.T) {
	t.Parallel()

	t.Run("missing equals sign", func(t *testing.T) {
		t.Parallel()
		err := env.New().Load(strings.NewReader("JUSTAKEY\n"))
		var perr *env.ParseError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("invalid key characters", func(t *testing.T) {
		t.Parallel()
		err := env.New().Load(strings.NewReader("BAD-KEY=value\n"))
		var perr *env.ParseError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("key starting with digit", func(t *testing.T) {
		t.Parallel()
		err := env.New().Load(strings.NewReader("1KEY=value\n"))
		var perr *env.ParseError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("error reports the line number", func(t *testing.T) {
		t.Parallel()
		err := env.New().Load(strings.NewReader("GOOD=1\n# fine\nbroken line\n"))
		var perr *env.ParseError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, 3, perr.Line)
	})
}

func TestGetDefault(t *testing.T) {
	t.Parallel()
	s := load(t, "PRESENT=yes\n")
	require.Equal(t, "yes", s.GetDefault("PRESENT", "no"))
	require.Equal(t, "no", s.GetDefault("ABSENT", "no"))
}
