package webstorage

import (
	"fmt"

	"github.com/warpdl/warpstore/pkg/cookiecodec"
)

// CookieStore implements Storage on top of a RawCookies provider. It keeps
// no state of its own: every call reads or writes the raw string.
type CookieStore struct {
	raw RawCookies
}

// NewCookieStore returns a CookieStore over raw.
func NewCookieStore(raw RawCookies) *CookieStore {
	return &CookieStore{raw: raw}
}

// SetItem writes key=value with the default attributes (path "/",
// secure, httpOnly) overridden by opts.
func (c *CookieStore) SetItem(key, value string, opts ...Option) error {
	attrs := buildAttributes(cookiecodec.DefaultAttributes(), opts)
	line, err := cookiecodec.EncodeEntry(key, value, attrs)
	if err != nil {
		return err
	}
	c.raw.SetCookie(line)
	return nil
}

// GetItem returns the decoded value for key. An entry with an empty value
// reads as absent.
func (c *CookieStore) GetItem(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	v, ok := cookiecodec.FindValue(c.raw.Cookie(), key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// RemoveItem expires key. The path (default "/") and domain given in opts
// must match the ones used when the cookie was written, otherwise the
// browser leaves the cookie in place. This is cookie semantics and is not
// corrected here.
func (c *CookieStore) RemoveItem(key string, opts ...Option) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !c.HasOwnProperty(key) {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	attrs := buildAttributes(cookiecodec.Attributes{Path: "/"}, opts)
	line, err := cookiecodec.EncodeRemoval(key, attrs.Domain, attrs.Path)
	if err != nil {
		return err
	}
	c.raw.SetCookie(line)
	return nil
}

// Key returns the decoded key at index in the order the raw string lists
// entries. That order is up to the environment.
func (c *CookieStore) Key(index int) (string, bool) {
	keys := cookiecodec.Keys(c.raw.Cookie())
	if index < 0 || index >= len(keys) {
		return "", false
	}
	return keys[index], true
}

// Length returns the number of '=' in the raw string. It overcounts when a
// value holds a literal '=' (values written by this package never do,
// they are percent-encoded).
func (c *CookieStore) Length() int {
	return cookiecodec.Count(c.raw.Cookie())
}

// HasOwnProperty reports whether key is present in the raw string.
func (c *CookieStore) HasOwnProperty(key string) bool {
	if key == "" {
		return false
	}
	return cookiecodec.HasKey(c.raw.Cookie(), key)
}

// Clear removes every key currently present, using the default path.
func (c *CookieStore) Clear() error {
	seen := make(map[string]bool)
	for _, key := range cookiecodec.Keys(c.raw.Cookie()) {
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if !c.HasOwnProperty(key) {
			continue
		}
		if err := c.RemoveItem(key); err != nil {
			return err
		}
	}
	return nil
}

var _ Storage = (*CookieStore)(nil)
