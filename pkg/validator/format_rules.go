package validator

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// Simple local@domain.tld shape, no RFC 5322 parsing. Any Unicode space
	// or the byte order mark breaks a part.
	emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

	// Phone number regex - international format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// Schemes that cannot be used without a host.
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

func Email(value any, path string) (any, error) {
	value, err := String(value, path)
	if err != nil {
		return nil, err
	}
	if s, _ := stringValue(value); !emailRegex.MatchString(s) {
		return fail(path, "invalid email format")
	}
	return value, nil
}

// URL passes absolute URLs. Leading and trailing control characters and
// spaces are ignored. Network schemes such as http must carry a host, which
// may follow the scheme without slashes ("http:example.com"); opaque ones
// such as mailto need only the scheme.
func URL(value any, path string) (any, error) {
	value, err := String(value, path)
	if err != nil {
		return nil, err
	}
	s, _ := stringValue(value)
	s = strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return fail(path, "invalid URL format")
	}
	if hostSchemes[strings.ToLower(u.Scheme)] && u.Host == "" && !hasHostAfterScheme(u.Scheme, s) {
		return fail(path, "invalid URL format")
	}
	return value, nil
}

// hasHostAfterScheme reparses s with any run of slashes after the scheme
// replaced by "//" and reports whether a host comes out.
func hasHostAfterScheme(scheme, s string) bool {
	rest := strings.TrimLeft(s[len(scheme)+1:], `/\`)
	if rest == "" {
		return false
	}
	u, err := url.Parse(scheme + "://" + rest)
	return err == nil && u.Host != ""
}

func PhoneNumber(value any, path string) (any, error) {
	value, err := String(value, path)
	if err != nil {
		return nil, err
	}
	if s, _ := stringValue(value); !phoneRegex.MatchString(s) {
		return fail(path, "invalid phone number format")
	}
	return value, nil
}
