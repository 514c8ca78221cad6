// Package native provides the key-value engines that stand in for a
// browser's localStorage and sessionStorage: a SQLite-backed store that
// survives restarts and an in-memory store that lives as long as the
// process.
package native
