package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

func TestEmail(t *testing.T) {
	t.Run("passes simple addresses", func(t *testing.T) {
		for _, v := range []string{"a@b.com", "user.name+tag@sub.example.org"} {
			_, err := validator.Email(v, "email")
			require.NoError(t, err, "value %q", v)
		}
	})

	t.Run("fails for malformed addresses", func(t *testing.T) {
		for _, v := range []string{"not@valid", "plain", "a b@c.com", "@b.com", "a@@b.com", "", "a\vb@c.de", "a\u00a0b@c.de", "a@c\u2028d.de", "\ufeffa@c.de"} {
			_, err := validator.Email(v, "email")
			assert.EqualError(t, err, "email: invalid email format", "value %q", v)
		}
	})

	t.Run("propagates string failure", func(t *testing.T) {
		_, err := validator.Email(nil, "email")
		assert.EqualError(t, err, "email: expected a string")
	})
}

func TestURL(t *testing.T) {
	t.Run("passes absolute urls", func(t *testing.T) {
		for _, v := range []string{"https://example.com", "http://x.com/path?q=1", "mailto:a@b.com", "ftp://files.example.com/a.txt"} {
			_, err := validator.URL(v, "url")
			require.NoError(t, err, "value %q", v)
		}
	})

	t.Run("fails for relative and host-less urls", func(t *testing.T) {
		for _, v := range []string{"notaurl", "/relative/path", "http://", "http:///", " http:// ", ""} {
			_, err := validator.URL(v, "url")
			assert.EqualError(t, err, "url: invalid URL format", "value %q", v)
		}
	})

	t.Run("accepts slashless hosts and surrounding spaces", func(t *testing.T) {
		for _, v := range []string{"http:example.com", "https:/example.com", "https:///x", "  https://example.com \n"} {
			got, err := validator.URL(v, "url")
			require.NoError(t, err, "value %q", v)
			assert.Equal(t, v, got)
		}
	})

	t.Run("propagates string failure", func(t *testing.T) {
		_, err := validator.URL(42, "url")
		assert.EqualError(t, err, "url: expected a string")
	})
}

func TestPhoneNumber(t *testing.T) {
	for _, v := range []string{"+1234567890", "12", "491711234567"} {
		_, err := validator.PhoneNumber(v, "phone")
		require.NoError(t, err, "value %q", v)
	}

	for _, v := range []string{"abc", "+0123", "1", "+1234567890123456", "123-456"} {
		_, err := validator.PhoneNumber(v, "phone")
		assert.EqualError(t, err, "phone: invalid phone number format", "value %q", v)
	}
}
