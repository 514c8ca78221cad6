package document

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// The journal holds one accepted write per line, prefixed with the Unix
// time of the write and a tab: "1700000000\tsid=abc;path=/;".

const journalFileMode = 0600

type journalEntry struct {
	written time.Time
	line    string
	cookie  *http.Cookie
}

func parseJournalLine(s string) (journalEntry, error) {
	ts, line, ok := strings.Cut(s, "\t")
	if !ok {
		return journalEntry{}, fmt.Errorf("document: journal line without timestamp")
	}
	secs, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return journalEntry{}, fmt.Errorf("document: journal timestamp: %w", err)
	}
	c, err := parseLine(line)
	if err != nil {
		return journalEntry{}, err
	}
	written := time.Unix(secs, 0)
	// max-age counts from the original write, not from the replay.
	if c.MaxAge > 0 {
		c.Expires = written.Add(time.Duration(c.MaxAge) * time.Second)
		c.MaxAge = 0
	}
	return journalEntry{written: written, line: line, cookie: c}, nil
}

func (e journalEntry) live(now time.Time) bool {
	return e.cookie.MaxAge >= 0 && (e.cookie.Expires.IsZero() || e.cookie.Expires.After(now))
}

// cookieID names the jar slot c occupies on the page: a missing domain
// means the page host and a missing or relative path means the default
// path of the page url, as in net/http/cookiejar.
func (d *Document) cookieID(c *http.Cookie) string {
	domain := strings.ToLower(strings.TrimPrefix(c.Domain, "."))
	if domain == "" {
		domain = strings.ToLower(d.u.Hostname())
	}
	path := c.Path
	if path == "" || path[0] != '/' {
		path = defaultPath(d.u.Path)
	}
	return c.Name + "\x00" + domain + "\x00" + path
}

// defaultPath is the RFC 6265 section 5.1.4 default-path of urlPath.
func defaultPath(urlPath string) string {
	if urlPath == "" || urlPath[0] != '/' {
		return "/"
	}
	i := strings.LastIndex(urlPath, "/")
	if i == 0 {
		return "/"
	}
	return urlPath[:i]
}

func (e journalEntry) String() string {
	return strconv.FormatInt(e.written.Unix(), 10) + "\t" + e.line
}

func (d *Document) readJournal() ([]journalEntry, error) {
	data, err := afero.ReadFile(d.fs, d.journal)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("document: read journal: %w", err)
	}
	var entries []journalEntry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if scanner.Text() == "" {
			continue
		}
		e, err := parseJournalLine(scanner.Text())
		if err != nil {
			d.log.Warning("document: skipped journal line: %v", err)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("document: scan journal: %w", err)
	}
	return entries, nil
}

// replay applies the journal to the jar. A missing journal is empty.
func (d *Document) replay() error {
	entries, err := d.readJournal()
	if err != nil {
		return err
	}
	for _, e := range entries {
		d.jar.SetCookies(d.u, []*http.Cookie{e.cookie})
	}
	return nil
}

func (d *Document) appendJournal(written time.Time, line string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.fs.MkdirAll(filepath.Dir(d.journal), 0755); err != nil {
		return err
	}
	f, err := d.fs.OpenFile(d.journal, os.O_APPEND|os.O_CREATE|os.O_WRONLY, journalFileMode)
	if err != nil {
		return err
	}
	e := journalEntry{written: written, line: line}
	if _, err := f.WriteString(e.String() + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Compact rewrites the journal keeping only the last write of every
// cookie that is still alive. It is a no-op without a journal.
func (d *Document) Compact() error {
	if d.fs == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	entries, err := d.readJournal()
	if err != nil {
		return err
	}
	entries = compact(entries, d.now(), d.cookieID)

	// Write to a temp file and rename it over the journal.
	tmp, err := afero.TempFile(d.fs, filepath.Dir(d.journal), ".journal.tmp.*")
	if err != nil {
		return fmt.Errorf("document: create temp journal: %w", err)
	}
	tmpPath := tmp.Name()
	for _, e := range entries {
		if _, err := tmp.WriteString(e.String() + "\n"); err != nil {
			tmp.Close()
			d.fs.Remove(tmpPath)
			return fmt.Errorf("document: write temp journal: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		d.fs.Remove(tmpPath)
		return fmt.Errorf("document: close temp journal: %w", err)
	}
	if err := d.fs.Chmod(tmpPath, journalFileMode); err != nil {
		d.fs.Remove(tmpPath)
		return fmt.Errorf("document: set journal permissions: %w", err)
	}
	if err := d.fs.Rename(tmpPath, d.journal); err != nil {
		d.fs.Remove(tmpPath)
		return fmt.Errorf("document: rename journal: %w", err)
	}
	return nil
}

// compact keeps the last entry per cookie id, ordered by first
// appearance, and drops those whose last write deleted the cookie.
func compact(entries []journalEntry, now time.Time, id func(*http.Cookie) string) []journalEntry {
	var order []string
	last := make(map[string]journalEntry)
	for _, e := range entries {
		k := id(e.cookie)
		if _, ok := last[k]; !ok {
			order = append(order, k)
		}
		last[k] = e
	}
	out := make([]journalEntry, 0, len(order))
	for _, k := range order {
		if e := last[k]; e.live(now) {
			out = append(out, e)
		}
	}
	return out
}
