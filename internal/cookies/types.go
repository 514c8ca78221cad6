package cookies

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// Format identifies the format of a browser cookie store.
type Format int

const (
	FormatUnknown Format = iota
	FormatFirefox
	FormatChrome
	FormatNetscape
)

func (f Format) String() string {
	switch f {
	case FormatFirefox:
		return "Firefox"
	case FormatChrome:
		return "Chrome"
	case FormatNetscape:
		return "Netscape"
	}
	return "unknown"
}

var (
	// ErrUnsupportedFormat is returned for files that are not a known
	// cookie store.
	ErrUnsupportedFormat = errors.New("cookies: unsupported cookie store")
	// ErrEmptyStore is returned for empty files.
	ErrEmptyStore = errors.New("cookies: cookie store is empty")
)

// Cookie is one cookie read from a browser store. Value is sensitive.
type Cookie struct {
	Name   string
	Value  string
	Domain string
	Path   string
	// Expiry is zero for session cookies.
	Expiry   time.Time
	Secure   bool
	HTTPOnly bool
}

// HostOnly reports whether the cookie is bound to exactly its host.
// Browsers mark domain cookies with a leading dot.
func (c Cookie) HostOnly() bool {
	return !strings.HasPrefix(c.Domain, ".")
}

// Matches reports whether the cookie would be sent to host.
func (c Cookie) Matches(host string) bool {
	d := strings.ToLower(strings.TrimPrefix(c.Domain, "."))
	host = strings.ToLower(host)
	if c.HostOnly() {
		return host == d
	}
	return host == d || strings.HasSuffix(host, "."+d)
}

// Line returns the document.cookie write that recreates c. Values are
// written as the browser stored them.
func (c Cookie) Line() string {
	var b strings.Builder
	b.WriteString(c.Name + "=" + c.Value + ";")
	if !c.Expiry.IsZero() {
		b.WriteString("expires=" + c.Expiry.UTC().Format(http.TimeFormat) + ";")
	}
	if !c.HostOnly() {
		b.WriteString("domain=" + strings.TrimPrefix(c.Domain, ".") + ";")
	}
	if c.Path != "" {
		b.WriteString("path=" + c.Path + ";")
	}
	if c.Secure {
		b.WriteString("secure=true;")
	}
	return b.String()
}

// Source describes where cookies were imported from.
type Source struct {
	Path   string
	Format Format
}
