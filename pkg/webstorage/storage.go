package webstorage

import "github.com/warpdl/warpstore/pkg/cookiecodec"

// Storage is the operation set every backend exposes.
type Storage interface {
	// SetItem stores value under key. Options only affect cookie writes.
	SetItem(key, value string, opts ...Option) error
	// GetItem returns the value for key, or false when absent.
	GetItem(key string) (string, bool)
	// RemoveItem deletes key. Options only affect cookie removals.
	RemoveItem(key string, opts ...Option) error
	// Key returns the key at index, or false when out of range.
	Key(index int) (string, bool)
	// Length returns the number of entries (approximated for cookies).
	Length() int
	// HasOwnProperty reports whether key is present.
	HasOwnProperty(key string) bool
	// Clear removes every entry.
	Clear() error
}

// RawCookies is read/write access to the flattened cookie string, the
// equivalent of document.cookie. SetCookie receives one write line
// (pair plus attribute clauses); Cookie returns the visible pairs only.
type RawCookies interface {
	Cookie() string
	SetCookie(line string)
}

// NativeStorage is a browser-provided key-value handle such as
// localStorage or sessionStorage.
type NativeStorage interface {
	SetItem(key, value string) error
	GetItem(key string) (string, bool)
	RemoveItem(key string) error
	Key(index int) (string, bool)
	Length() int
	Clear() error
}

// Option adjusts the attribute set of a cookie write or removal.
type Option func(*cookiecodec.Attributes)

// WithPath sets the path attribute.
func WithPath(path string) Option {
	return func(a *cookiecodec.Attributes) { a.Path = path }
}

// WithDomain sets the domain attribute.
func WithDomain(domain string) Option {
	return func(a *cookiecodec.Attributes) { a.Domain = domain }
}

// WithSecure toggles the secure attribute (on by default).
func WithSecure(secure bool) Option {
	return func(a *cookiecodec.Attributes) { a.Secure = secure }
}

// WithHTTPOnly toggles the httpOnly attribute. It is never emitted.
func WithHTTPOnly(httpOnly bool) Option {
	return func(a *cookiecodec.Attributes) { a.HTTPOnly = httpOnly }
}

// WithExpires sets the expiry: a date string or a time.Time.
func WithExpires(expires any) Option {
	return func(a *cookiecodec.Attributes) { a.Expires = expires }
}

// WithMaxAge sets max-age in seconds.
func WithMaxAge(seconds int) Option {
	return func(a *cookiecodec.Attributes) { a.MaxAge = seconds }
}

// WithAttributes replaces the whole attribute set.
func WithAttributes(attrs cookiecodec.Attributes) Option {
	return func(a *cookiecodec.Attributes) { *a = attrs }
}

func buildAttributes(base cookiecodec.Attributes, opts []Option) cookiecodec.Attributes {
	for _, apply := range opts {
		if apply != nil {
			apply(&base)
		}
	}
	return base
}
