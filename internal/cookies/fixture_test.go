package cookies

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

const (
	firefoxDDL = `CREATE TABLE moz_cookies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		value TEXT NOT NULL,
		host TEXT NOT NULL,
		path TEXT NOT NULL DEFAULT '/',
		expiry INTEGER NOT NULL DEFAULT 0,
		isSecure INTEGER NOT NULL DEFAULT 0,
		isHttpOnly INTEGER NOT NULL DEFAULT 0
	)`
	firefoxInsert = `INSERT INTO moz_cookies (name, value, host, path, expiry, isSecure, isHttpOnly)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	chromeDDL = `CREATE TABLE cookies (
		creation_utc INTEGER NOT NULL,
		host_key TEXT NOT NULL,
		name TEXT NOT NULL,
		value TEXT NOT NULL,
		encrypted_value BLOB DEFAULT '',
		path TEXT NOT NULL,
		expires_utc INTEGER NOT NULL,
		is_secure INTEGER NOT NULL,
		is_httponly INTEGER NOT NULL
	)`
	chromeInsert = `INSERT INTO cookies (name, value, host_key, path, expires_utc, is_secure, is_httponly, creation_utc)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
)

type row struct {
	name, value, host, path string
	expiry                  int64
	secure, httpOnly        int
}

// writeDB creates a SQLite file named file in a temp dir from ddl and rows.
func writeDB(t *testing.T, file, ddl, insert string, rows []row) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), file)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(ddl); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	for i, r := range rows {
		args := []any{r.name, r.value, r.host, r.path, r.expiry, r.secure, r.httpOnly}
		if insert == chromeInsert {
			args = append(args, i+1)
		}
		if _, err := db.Exec(insert, args...); err != nil {
			t.Fatalf("failed to insert row: %v", err)
		}
	}
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// recorder collects document.cookie writes.
type recorder struct {
	lines []string
}

func (r *recorder) SetCookie(line string) {
	r.lines = append(r.lines, line)
}
