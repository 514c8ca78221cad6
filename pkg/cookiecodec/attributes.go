package cookiecodec

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// reservedKeys are attribute names that may not be used as data keys.
var reservedKeys = [...]string{"expires", "max-age", "path", "domain", "secure"}

// Attributes is the set of clauses a cookie write may carry.
type Attributes struct {
	// Path scopes the cookie. Defaults to "/".
	Path string
	// Domain scopes the cookie to a host and its subdomains. Empty means
	// host-only.
	Domain string
	// Secure restricts delivery to secure origins.
	Secure bool
	// HTTPOnly is kept for parity with server-side attribute sets. It is
	// never emitted: a script cannot set it.
	HTTPOnly bool
	// Expires is a date string (used verbatim), a time.Time or a
	// *time.Time. Nil, "", false, numeric zero and the zero time mean no
	// expires clause.
	Expires any
	// MaxAge in seconds. Zero means no max-age clause.
	MaxAge int
}

// DefaultAttributes returns the attribute set applied when a write carries
// no overrides.
func DefaultAttributes() Attributes {
	return Attributes{
		Path:     "/",
		Secure:   true,
		HTTPOnly: true,
	}
}

// IsReserved reports whether key equals, ignoring case, one of the
// reserved attribute names.
func IsReserved(key string) bool {
	for _, r := range reservedKeys {
		if strings.EqualFold(key, r) {
			return true
		}
	}
	return false
}

// ValidateKey rejects empty and reserved keys.
func ValidateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if IsReserved(key) {
		return fmt.Errorf("%w: %q", ErrReservedKey, key)
	}
	return nil
}

// expirySet reports whether v should produce an expires clause.
func expirySet(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case time.Time:
		return !x.IsZero()
	case *time.Time:
		return x != nil && !x.IsZero()
	}
	// Numeric zero of any width is falsy.
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return !rv.IsZero()
	}
	return true
}
