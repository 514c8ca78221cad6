package cookiecodec

import (
	"net/textproto"
	"strings"
)

// Entry is one decoded key=value pair of the raw string.
type Entry struct {
	Key   string
	Value string
}

// DecodeAll tokenizes raw and returns its entries in the order they
// appear. A token without '=' is a nameless cookie and yields an entry
// with an empty key.
func DecodeAll(raw string) []Entry {
	var entries []Entry
	each(raw, func(k, v string) bool {
		entries = append(entries, Entry{Key: k, Value: v})
		return true
	})
	return entries
}

// Keys returns the decoded keys of raw in order.
func Keys(raw string) []string {
	var keys []string
	each(raw, func(k, _ string) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// FindValue returns the decoded value of the first entry named key.
func FindValue(raw, key string) (string, bool) {
	var (
		value string
		found bool
	)
	each(raw, func(k, v string) bool {
		if k == key {
			value, found = v, true
			return false
		}
		return true
	})
	return value, found
}

// HasKey reports whether raw holds an entry named key.
func HasKey(raw, key string) bool {
	_, ok := FindValue(raw, key)
	return ok
}

// Count returns the number of '=' characters in raw. It equals the number
// of entries only when no value contains a literal '='.
func Count(raw string) int {
	return strings.Count(raw, "=")
}

// each calls fn for every pair in raw until fn returns false.
func each(raw string, fn func(key, value string) bool) {
	line := textproto.TrimString(raw)
	var part string
	for len(line) > 0 {
		part, line, _ = strings.Cut(line, ";")
		part = textproto.TrimString(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			k, v = "", part
		}
		if !fn(unescape(textproto.TrimString(k)), unescape(textproto.TrimString(v))) {
			return
		}
	}
}
