package cookies

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Seconds between 1601-01-01 and 1970-01-01 UTC.
const chromeEpochOffset int64 = 11_644_473_600

// schema describes how one browser lays out its cookie table.
type schema struct {
	format Format
	table  string
	query  string
	expiry func(int64) time.Time
}

var schemas = []schema{
	{
		format: FormatFirefox,
		table:  "moz_cookies",
		query: `SELECT name, value, host, path, expiry, isSecure, isHttpOnly
			FROM moz_cookies ORDER BY id`,
		expiry: firefoxExpiry,
	},
	{
		// Encrypted Chrome cookies have an empty value column.
		format: FormatChrome,
		table:  "cookies",
		query: `SELECT name, value, host_key, path, expires_utc, is_secure, is_httponly
			FROM cookies WHERE value != '' ORDER BY creation_utc`,
		expiry: chromeExpiry,
	},
}

func firefoxExpiry(v int64) time.Time {
	if v <= 0 {
		return time.Time{}
	}
	// Recent Firefox builds store milliseconds.
	if v > 1e11 {
		return time.UnixMilli(v)
	}
	return time.Unix(v, 0)
}

// chromeExpiry converts microseconds since 1601 to a time. Zero marks a
// session cookie.
func chromeExpiry(v int64) time.Time {
	if v <= 0 {
		return time.Time{}
	}
	return time.Unix(v/1_000_000-chromeEpochOffset, 0)
}

func schemaFor(f Format) (schema, bool) {
	for _, s := range schemas {
		if s.format == f {
			return s, true
		}
	}
	return schema{}, false
}

// readSQLite reads every cookie from a copied, not in-use, database.
func readSQLite(path string, s schema) ([]Cookie, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?immutable=1")
	if err != nil {
		return nil, fmt.Errorf("error: cannot open %s cookie database: %w", s.format, err)
	}
	defer db.Close()

	rows, err := db.Query(s.query)
	if err != nil {
		return nil, fmt.Errorf("error: failed to query %s cookies: %w", s.format, err)
	}
	defer rows.Close()

	var out []Cookie
	for rows.Next() {
		var (
			c                Cookie
			expiry           int64
			secure, httpOnly int
		)
		if err := rows.Scan(&c.Name, &c.Value, &c.Domain, &c.Path, &expiry, &secure, &httpOnly); err != nil {
			return nil, fmt.Errorf("error: failed to scan %s cookie row: %w", s.format, err)
		}
		c.Expiry = s.expiry(expiry)
		c.Secure = secure != 0
		c.HTTPOnly = httpOnly != 0
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to iterate %s cookie rows: %w", s.format, err)
	}
	return out, nil
}
