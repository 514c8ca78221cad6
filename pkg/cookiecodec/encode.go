package cookiecodec

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// EpochExpiry is the expiry written by removals.
const EpochExpiry = "Thu, 01 Jan 1970 00:00:00 GMT"

const upperhex = "0123456789ABCDEF"

// EncodeExpiry returns the "expires=<date>;" clause for v.
//
// A string is taken to be a valid date already and is used verbatim; a
// time.Time is formatted in UTC with the HTTP date layout. The literal
// false yields ErrFalseExpiry, any other type ErrExpiryType.
func EncodeExpiry(v any) (string, error) {
	if b, ok := v.(bool); ok && !b {
		return "", ErrFalseExpiry
	}
	switch x := v.(type) {
	case string:
		return "expires=" + x + ";", nil
	case time.Time:
		return "expires=" + x.UTC().Format(http.TimeFormat) + ";", nil
	case *time.Time:
		if x != nil {
			return "expires=" + x.UTC().Format(http.TimeFormat) + ";", nil
		}
	}
	return "", fmt.Errorf("%w: got %T", ErrExpiryType, v)
}

// EncodeEntry returns the line that writes key=value with attrs.
//
// Clauses follow the pair in a fixed order: expires, domain, path, secure,
// max-age. Each is present only when its attribute is set.
func EncodeEntry(key, value string, attrs Attributes) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(escape(key))
	b.WriteByte('=')
	b.WriteString(escape(value))
	b.WriteByte(';')
	if expirySet(attrs.Expires) {
		clause, err := EncodeExpiry(attrs.Expires)
		if err != nil {
			return "", err
		}
		b.WriteString(clause)
	}
	if attrs.Domain != "" {
		b.WriteString("domain=" + attrs.Domain + ";")
	}
	if attrs.Path != "" {
		b.WriteString("path=" + attrs.Path + ";")
	}
	if attrs.Secure {
		b.WriteString("secure=true;")
	}
	if attrs.MaxAge != 0 {
		b.WriteString("max-age=" + strconv.Itoa(attrs.MaxAge) + ";")
	}
	return b.String(), nil
}

// EncodeRemoval returns the line that expires key. domain and path must be
// the ones the entry was written with, otherwise the browser keeps the
// original entry.
func EncodeRemoval(key, domain, path string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	line := escape(key) + "=; expires=" + EpochExpiry
	if domain != "" {
		line += "; domain=" + domain
	}
	if path != "" {
		line += "; path=" + path
	}
	return line, nil
}

// escape percent-encodes s the way encodeURIComponent does, except that
// '(' and ')' are escaped as well so the result is a valid cookie-name
// token.
func escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !shouldEscape(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func shouldEscape(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'':
		return false
	}
	return true
}

// unescape reverses escape. Text that is not valid percent-encoding, such
// as a value written by a server, is returned unchanged.
func unescape(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}
	v, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return v
}
