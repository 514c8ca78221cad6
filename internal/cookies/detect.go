package cookies

import (
	"bufio"
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

var sqliteMagic = []byte("SQLite format 3\x00")

// Detect reports the format of the cookie store at path.
func Detect(path string) (Format, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cookie store not found: %w", err)
	}
	if info.IsDir() {
		return FormatUnknown, fmt.Errorf("error: %s is a directory, expected a cookie store", path)
	}
	if info.Size() == 0 {
		return FormatUnknown, fmt.Errorf("%w: %s", ErrEmptyStore, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cannot open cookie store: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	head, _ := r.Peek(len(sqliteMagic))
	if bytes.Equal(head, sqliteMagic) {
		return detectTable(path)
	}
	first, _ := r.ReadString('\n')
	switch strings.TrimRight(first, "\r\n") {
	case "# Netscape HTTP Cookie File", "# HTTP Cookie File":
		return FormatNetscape, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

func detectTable(path string) (Format, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cannot open SQLite database: %w", err)
	}
	defer db.Close()

	for _, s := range schemas {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, s.table).Scan(&name)
		if err == nil {
			return s.format, nil
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}
