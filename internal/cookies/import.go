package cookies

import (
	"fmt"
	"os"
	"time"

	"github.com/warpdl/warpstore/pkg/logger"
)

// Writer receives document.cookie writes. *document.Document satisfies it.
type Writer interface {
	SetCookie(line string)
}

// Result summarises an import.
type Result struct {
	Source Source
	// Imported counts the cookies written to the page.
	Imported int
	// HTTPOnly counts matching cookies skipped because scripts cannot see them.
	HTTPOnly int
	// Expired counts matching cookies skipped because they already expired.
	Expired int
}

// Read detects the format of the store at path and returns all of its
// cookies.
func Read(path string, l logger.Logger) ([]Cookie, Source, error) {
	src := Source{Path: path}
	format, err := Detect(path)
	if err != nil {
		return nil, src, err
	}
	src.Format = format

	if format == FormatNetscape {
		f, err := os.Open(path)
		if err != nil {
			return nil, src, fmt.Errorf("error: cannot open Netscape cookie file: %w", err)
		}
		defer f.Close()
		cookies, err := ReadNetscape(f, l)
		return cookies, src, err
	}

	s, ok := schemaFor(format)
	if !ok {
		return nil, src, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	copied, cleanup, err := snapshot(path)
	if err != nil {
		return nil, src, err
	}
	defer cleanup()
	cookies, err := readSQLite(copied, s)
	return cookies, src, err
}

// Apply writes the cookies visible to scripts on host into w and
// reports what was skipped. Cookies for other hosts are ignored silently.
func Apply(w Writer, host string, cookies []Cookie, now time.Time) Result {
	var res Result
	for _, c := range cookies {
		if c.Name == "" || !c.Matches(host) {
			continue
		}
		switch {
		case c.HTTPOnly:
			res.HTTPOnly++
		case !c.Expiry.IsZero() && !c.Expiry.After(now):
			res.Expired++
		default:
			w.SetCookie(c.Line())
			res.Imported++
		}
	}
	return res
}

// Import reads the store at path and applies it to w for host.
func Import(w Writer, host, path string, l logger.Logger) (Result, error) {
	l = logger.OrNop(l)
	cookies, src, err := Read(path, l)
	if err != nil {
		return Result{Source: src}, err
	}
	res := Apply(w, host, cookies, time.Now())
	res.Source = src
	l.Info("cookies: imported %d of %d %s cookies for %s", res.Imported, len(cookies), src.Format, host)
	return res, nil
}
