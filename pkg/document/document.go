// Package document emulates the document.cookie accessor of a page.
//
// Writes are parsed like a browser parses a script cookie write and are
// applied to a net/http/cookiejar for the page URL, so expiry, max-age,
// path, domain and secure scoping behave as they do in a browser. Reads
// return the visible cookies as "name=value; name2=value2".
package document

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/net/publicsuffix"

	"github.com/warpdl/warpstore/pkg/logger"
)

// DefaultURL is the page URL used when none is configured.
const DefaultURL = "https://localhost/"

var (
	// ErrInvalidURL is returned for URLs that are not absolute http(s) URLs.
	ErrInvalidURL = errors.New("document: url must be an absolute http or https url")
	// ErrMultiline is returned for write lines containing line breaks.
	ErrMultiline = errors.New("document: cookie line contains a line break")
)

// Document is a page with a cookie jar. It satisfies
// webstorage.RawCookies and is safe for concurrent use.
type Document struct {
	u   *url.URL
	jar *cookiejar.Jar
	log logger.Logger

	mu      sync.Mutex
	fs      afero.Fs
	journal string
	now     func() time.Time
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used for rejected writes and journal errors.
func WithLogger(l logger.Logger) Option {
	return func(d *Document) {
		d.log = logger.OrNop(l)
	}
}

// WithJournal persists every accepted write to path on fs and replays the
// file when the Document is created.
func WithJournal(fs afero.Fs, path string) Option {
	return func(d *Document) {
		d.fs = fs
		d.journal = path
	}
}

// New creates a Document for rawURL.
func New(rawURL string, opts ...Option) (*Document, error) {
	if rawURL == "" {
		rawURL = DefaultURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("document: parse url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("document: create jar: %w", err)
	}
	d := &Document{
		u:   u,
		jar: jar,
		log: logger.NewNopLogger(),
		now: time.Now,
	}
	for _, apply := range opts {
		apply(d)
	}
	if d.fs != nil {
		if err := d.replay(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// URL returns the page URL.
func (d *Document) URL() string {
	return d.u.String()
}

// Cookie returns the cookies visible to the page.
func (d *Document) Cookie() string {
	cookies := d.jar.Cookies(d.u)
	if len(cookies) == 0 {
		return ""
	}
	parts := make([]string, len(cookies))
	for i, c := range cookies {
		parts[i] = c.Name + "=" + c.Value
	}
	return strings.Join(parts, "; ")
}

// SetCookie applies one write line. Lines a browser would ignore are
// ignored and logged by cookie name only.
func (d *Document) SetCookie(line string) {
	if err := d.apply(line); err != nil {
		d.log.Warning("document: ignored cookie write: %v", err)
		return
	}
	if d.fs == nil {
		return
	}
	if err := d.appendJournal(d.now(), line); err != nil {
		d.log.Error("document: journal %s: %v", d.journal, err)
	}
}

func (d *Document) apply(line string) error {
	c, err := parseLine(line)
	if err != nil {
		return err
	}
	d.jar.SetCookies(d.u, []*http.Cookie{c})
	return nil
}

func parseLine(line string) (*http.Cookie, error) {
	if strings.ContainsAny(line, "\r\n") {
		return nil, ErrMultiline
	}
	return http.ParseSetCookie(line)
}
