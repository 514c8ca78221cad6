package cookies

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/warpdl/warpstore/pkg/logger"
)

const httpOnlyPrefix = "#HttpOnly_"

// ReadNetscape reads a Netscape cookie file (the curl and wget format).
// Comment lines are skipped except #HttpOnly_ entries. Malformed lines
// are logged by line number and skipped.
func ReadNetscape(r io.Reader, l logger.Logger) ([]Cookie, error) {
	l = logger.OrNop(l)
	var out []Cookie
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		httpOnly := strings.HasPrefix(line, httpOnlyPrefix)
		if httpOnly {
			line = line[len(httpOnlyPrefix):]
		} else if strings.HasPrefix(line, "#") {
			continue
		}

		// domain, include-subdomains, path, secure, expiry, name, value
		f := strings.Split(line, "\t")
		if len(f) != 7 {
			l.Warning("cookies: skipping malformed line %d", n)
			continue
		}
		expiry, err := strconv.ParseInt(f[4], 10, 64)
		if err != nil {
			l.Warning("cookies: skipping line %d: invalid expiry", n)
			continue
		}
		c := Cookie{
			Name:     f[5],
			Value:    f[6],
			Domain:   f[0],
			Path:     f[2],
			Secure:   strings.EqualFold(f[3], "TRUE"),
			HTTPOnly: httpOnly,
		}
		if expiry > 0 {
			c.Expiry = time.Unix(expiry, 0)
		}
		if strings.EqualFold(f[1], "TRUE") && c.HostOnly() {
			c.Domain = "." + c.Domain
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to read Netscape cookie file: %w", err)
	}
	return out, nil
}
