// Package cookiecodec encodes and parses the single flattened string a
// browser exposes for cookies ("document.cookie").
//
// Writes produce one line per entry: the percent-encoded pair followed by
// the attribute clauses (expires, domain, path, secure, max-age), each
// emitted only when set. Reads see only "key=value" pairs joined by "; ";
// attributes are never visible again once written.
//
// The raw string is the sole source of truth. Nothing in this package keeps
// an index of it; every lookup tokenizes the string again.
package cookiecodec
